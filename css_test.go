package tint

import "testing"

func TestCSSString(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"opaque red", RGB(1, 0, 0), "rgb(100%,0%,0%)"},
		{"white", RGB(1, 1, 1), "rgb(100%,100%,100%)"},
		{"fractional alpha", RGBA(0.5, 0.25, 0.1, 0.8), "rgba(50%,25%,10%,0.8)"},
		{"rgb255 channels", RGB255(235, 111, 146), "rgb(92.16%,43.53%,57.25%)"},
		{"hsl", HSL(120, 0.5, 0.25), "hsl(120,50%,25%)"},
		{"hsla", HSLA(340, 0.4, 0.3, 0.5), "hsla(340,40%,30%,0.5)"},
		{"fractional hue rounds to 3 places", HSL(200.50041, 0.5, 0.5), "hsl(200.5,50%,50%)"},
		{"opaque rgba keeps 4-argument form", RGBA(0, 0, 0, 1), "rgba(0%,0%,0%,1)"},
		{"zero value is black", Color{}, "rgb(0%,0%,0%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.CSSString(); got != tt.want {
				t.Errorf("CSSString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	c := HSL(120, 0.5, 0.25)
	if got, want := c.String(), c.CSSString(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"rgb255 round trip", RGB255(235, 111, 146), "#eb6f92"},
		{"hsl red", HSL(0, 1, 0.5), "#ff0000"},
		{"zero padded", RGB255(0, 5, 10), "#00050a"},
		{"out of range clamps", RGB(1.5, -0.2, 0.5), "#ff0080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHexAlpha(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"opaque", RGB255(235, 111, 146), "#eb6f92ff"},
		{"fractional alpha", RGBA(0.5, 0.25, 0.1, 0.8), "#80401acc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.HexAlpha(); got != tt.want {
				t.Errorf("HexAlpha() = %q, want %q", got, tt.want)
			}
		})
	}
}
