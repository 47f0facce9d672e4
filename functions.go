package tint

import "math"

// Lighten returns a lighter version of the given color. The amount is
// added to the HSL lightness and the result is capped at 1.
func Lighten(c Color, amount float64) Color {
	return adjust(c, func(v *HSLAColor) {
		v.L = math.Min(1, v.L+amount)
	})
}

// Darken returns a darker version of the given color. The amount is
// subtracted from the HSL lightness and the result is floored at 0.
func Darken(c Color, amount float64) Color {
	return adjust(c, func(v *HSLAColor) {
		v.L = math.Max(0, v.L-amount)
	})
}

// Saturate returns a more saturated version of the given color, capped
// at full saturation.
func Saturate(c Color, amount float64) Color {
	return adjust(c, func(v *HSLAColor) {
		v.S = math.Min(1, v.S+amount)
	})
}

// Desaturate returns a less saturated version of the given color,
// floored at 0.
func Desaturate(c Color, amount float64) Color {
	return adjust(c, func(v *HSLAColor) {
		v.S = math.Max(0, v.S-amount)
	})
}

// Rotate returns the color with its hue rotated by the given number of
// degrees, wrapped into [0, 360).
func Rotate(c Color, degrees float64) Color {
	return adjust(c, func(v *HSLAColor) {
		v.H = math.Mod(v.H+degrees, 360)
		if v.H < 0 {
			v.H += 360
		}
	})
}

// Fade returns the color with its alpha replaced. The result always
// formats in the 4-argument rgba()/hsla() form.
func Fade(c Color, alpha float64) Color {
	v := c.ToHSLA()
	return HSLA(v.H, v.S, v.L, alpha)
}

// adjust applies fn to the color's HSL components and returns the
// resulting HSL-space color, preserving alpha and its provenance.
func adjust(c Color, fn func(*HSLAColor)) Color {
	v := c.ToHSLA()
	fn(&v)
	out := HSLA(v.H, v.S, v.L, v.A)
	out.explicitAlpha = c.explicitAlpha
	return out
}
