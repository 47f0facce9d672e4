package tint

import "testing"

func TestLighten(t *testing.T) {
	tests := []struct {
		name   string
		color  Color
		amount float64
		want   HSLAColor
	}{
		{"red by 10%", RGB(1, 0, 0), 0.1, HSLAColor{H: 0, S: 1, L: 0.6, A: 1}},
		{"white stays white", RGB(1, 1, 1), 0.5, HSLAColor{H: 0, S: 0, L: 1, A: 1}},
		{"caps at full lightness", HSL(120, 0.5, 0.9), 0.5, HSLAColor{H: 120, S: 0.5, L: 1, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lighten(tt.color, tt.amount).ToHSLA()
			if !approx(got.H, tt.want.H) || !approx(got.S, tt.want.S) || !approx(got.L, tt.want.L) || got.A != tt.want.A {
				t.Errorf("Lighten(%v, %v) = %v, want %v", tt.color, tt.amount, got, tt.want)
			}
		})
	}
}

func TestDarken(t *testing.T) {
	tests := []struct {
		name   string
		color  Color
		amount float64
		want   HSLAColor
	}{
		{"red by 10%", RGB(1, 0, 0), 0.1, HSLAColor{H: 0, S: 1, L: 0.4, A: 1}},
		{"black stays black", RGB(0, 0, 0), 0.5, HSLAColor{H: 0, S: 0, L: 0, A: 1}},
		{"floors at zero", HSL(200, 0.5, 0.2), 0.7, HSLAColor{H: 200, S: 0.5, L: 0, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Darken(tt.color, tt.amount).ToHSLA()
			if !approx(got.H, tt.want.H) || !approx(got.S, tt.want.S) || !approx(got.L, tt.want.L) || got.A != tt.want.A {
				t.Errorf("Darken(%v, %v) = %v, want %v", tt.color, tt.amount, got, tt.want)
			}
		})
	}
}

func TestSaturate(t *testing.T) {
	got := Saturate(HSL(120, 0.5, 0.5), 0.3).ToHSLA()
	if !approx(got.S, 0.8) {
		t.Errorf("Saturate saturation = %v, want 0.8", got.S)
	}
	got = Saturate(HSL(120, 0.9, 0.5), 0.3).ToHSLA()
	if got.S != 1 {
		t.Errorf("Saturate should cap at 1, got %v", got.S)
	}
}

func TestDesaturate(t *testing.T) {
	got := Desaturate(HSL(120, 0.5, 0.5), 0.2).ToHSLA()
	if !approx(got.S, 0.3) {
		t.Errorf("Desaturate saturation = %v, want 0.3", got.S)
	}
	got = Desaturate(HSL(120, 0.1, 0.5), 0.5).ToHSLA()
	if got.S != 0 {
		t.Errorf("Desaturate should floor at 0, got %v", got.S)
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name    string
		color   Color
		degrees float64
		wantHue float64
	}{
		{"forward", HSL(100, 1, 0.5), 50, 150},
		{"wraps past 360", HSL(350, 1, 0.5), 20, 10},
		{"negative wraps", HSL(10, 1, 0.5), -30, 340},
		{"full turn is identity", HSL(123, 1, 0.5), 360, 123},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotate(tt.color, tt.degrees).ToHSLA()
			if !approx(got.H, tt.wantHue) {
				t.Errorf("Rotate(%v, %v) hue = %v, want %v", tt.color, tt.degrees, got.H, tt.wantHue)
			}
		})
	}
}

func TestFade(t *testing.T) {
	got := Fade(RGB(1, 0, 0), 0.5)
	if got.Alpha() != 0.5 {
		t.Errorf("Fade alpha = %v, want 0.5", got.Alpha())
	}
	// Fade makes the alpha explicit, so the 4-argument form is emitted.
	if want := "hsla(0,100%,50%,0.5)"; got.CSSString() != want {
		t.Errorf("Fade CSSString() = %q, want %q", got.CSSString(), want)
	}
}

func TestAdjustPreservesAlphaProvenance(t *testing.T) {
	// Lightening a defaulted-alpha color keeps the 3-argument form.
	c := Lighten(RGB(1, 0, 0), 0.1)
	if want := "hsl(0,100%,60%)"; c.CSSString() != want {
		t.Errorf("CSSString() = %q, want %q", c.CSSString(), want)
	}
	// An explicit alpha survives the adjustment.
	c = Darken(HSLA(200, 0.5, 0.5, 0.75), 0.1)
	if want := "hsla(200,50%,40%,0.75)"; c.CSSString() != want {
		t.Errorf("CSSString() = %q, want %q", c.CSSString(), want)
	}
}
