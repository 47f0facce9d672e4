package tint

import (
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestToRGBAIdentity(t *testing.T) {
	// An RGB-constructed color returns its stored components verbatim,
	// including out-of-range ones.
	tests := []struct {
		name       string
		r, g, b, a float64
	}{
		{"red", 1, 0, 0, 1},
		{"fractional", 0.5, 0.25, 0.1, 0.8},
		{"out of range preserved", 1.5, -0.2, 0.3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBA(tt.r, tt.g, tt.b, tt.a).ToRGBA()
			want := RGBAColor{R: tt.r, G: tt.g, B: tt.b, A: tt.a}
			if got != want {
				t.Errorf("ToRGBA() = %v, want %v", got, want)
			}
		})
	}
}

func TestToHSLAIdentity(t *testing.T) {
	tests := []struct {
		name       string
		h, s, l, a float64
	}{
		{"green", 120, 1, 0.5, 1},
		{"fractional", 340.5, 0.4, 0.3, 0.5},
		{"hue outside wheel preserved", 540, 0.5, 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSLA(tt.h, tt.s, tt.l, tt.a).ToHSLA()
			want := HSLAColor{H: tt.h, S: tt.s, L: tt.l, A: tt.a}
			if got != want {
				t.Errorf("ToHSLA() = %v, want %v", got, want)
			}
		})
	}
}

func TestCrossSpaceRoundTrip(t *testing.T) {
	// Converting an HSL color through RGB and back recovers the
	// components up to floating-point tolerance, away from the
	// degenerate gray points.
	for _, h := range []float64{10, 100, 190, 280} {
		for _, s := range []float64{0.3, 0.7} {
			for _, l := range []float64{0.2, 0.5, 0.8} {
				got := FromRGBA(HSLA(h, s, l, 1).ToRGBA()).ToHSLA()
				if !approx(got.H, h) || !approx(got.S, s) || !approx(got.L, l) || got.A != 1 {
					t.Errorf("round trip of (%v, %v, %v) = %v", h, s, l, got)
				}
			}
		}
	}
}

func TestDegenerateGray(t *testing.T) {
	got := RGB(0.5, 0.5, 0.5).ToHSLA()
	if got.S != 0 || got.L != 0.5 {
		t.Errorf("ToHSLA() = %v, want saturation 0 and lightness 0.5", got)
	}
}

func TestAlphaDefaults(t *testing.T) {
	if got := RGB(0.3, 0.6, 0.9).ToRGBA().A; got != 1 {
		t.Errorf("RGB alpha = %v, want 1", got)
	}
	if got := HSL(220, 0.5, 0.5).ToHSLA().A; got != 1 {
		t.Errorf("HSL alpha = %v, want 1", got)
	}
	if got := RGB255(12, 34, 56).Alpha(); got != 1 {
		t.Errorf("RGB255 alpha = %v, want 1", got)
	}
}

func TestRGB255Scaling(t *testing.T) {
	got := RGB255(255, 0, 0).ToRGBA()
	want := RGBA(1, 0, 0, 1).ToRGBA()
	if got != want {
		t.Errorf("RGB255(255, 0, 0).ToRGBA() = %v, want %v", got, want)
	}
}

func TestFromRecords(t *testing.T) {
	rgb := FromRGBA(RGBAColor{R: 0.1, G: 0.2, B: 0.3, A: 0.4})
	if got := rgb.ToRGBA(); got != (RGBAColor{R: 0.1, G: 0.2, B: 0.3, A: 0.4}) {
		t.Errorf("FromRGBA round trip = %v", got)
	}
	if rgb.Space() != SpaceRGB {
		t.Errorf("FromRGBA space = %v, want %v", rgb.Space(), SpaceRGB)
	}

	hsl := FromHSLA(HSLAColor{H: 120, S: 0.5, L: 0.5, A: 0.9})
	if got := hsl.ToHSLA(); got != (HSLAColor{H: 120, S: 0.5, L: 0.5, A: 0.9}) {
		t.Errorf("FromHSLA round trip = %v", got)
	}
	if hsl.Space() != SpaceHSL {
		t.Errorf("FromHSLA space = %v, want %v", hsl.Space(), SpaceHSL)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want bool
	}{
		{"same rgb", RGB(1, 0, 0), RGB(1, 0, 0), true},
		{"explicit vs defaulted alpha", RGB(1, 0, 0), RGBA(1, 0, 0, 1), true},
		{"different alpha", RGB(1, 0, 0), RGBA(1, 0, 0, 0.5), false},
		{"different component", RGB(1, 0, 0), RGB(1, 0, 0.1), false},
		// An RGB red and an HSL red render identically but are distinct
		// values; equality is structural, not perceptual.
		{"cross-space red", RGB(1, 0, 0), HSL(0, 1, 0.5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSpaceString(t *testing.T) {
	if got := SpaceRGB.String(); got != "rgb" {
		t.Errorf("SpaceRGB.String() = %q, want %q", got, "rgb")
	}
	if got := SpaceHSL.String(); got != "hsl" {
		t.Errorf("SpaceHSL.String() = %q, want %q", got, "hsl")
	}
}

func TestColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque red", RGB(1, 0, 0), 65535, 0, 0, 65535},
		{"opaque white", RGB(1, 1, 1), 65535, 65535, 65535, 65535},
		{"half alpha red premultiplies", RGBA(1, 0, 0, 0.5), 32768, 0, 0, 32768},
		{"hsl blue", HSL(240, 1, 0.5), 0, 0, 65535, 65535},
		{"out of range clamps", RGB(2, -1, 0.5), 65535, 0, 32768, 65535},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}
