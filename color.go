// Package tint is an immutable color value library. A Color holds its
// components in either RGB or HSL space plus an alpha channel; conversion
// to the other space happens lazily, on access, and is never cached.
// Formatting to CSS color-function strings is deterministic and
// rounding-aware.
package tint

import (
	"image/color"
	"math"
)

// Space identifies which color space a Color was constructed in.
type Space uint8

const (
	// SpaceRGB holds red, green, blue components normalized to [0, 1].
	SpaceRGB Space = iota
	// SpaceHSL holds hue in degrees on a 0-360 wheel, saturation and
	// lightness in [0, 1].
	SpaceHSL
)

func (s Space) String() string {
	if s == SpaceHSL {
		return "hsl"
	}
	return "rgb"
}

// Color is an immutable color value in either RGB or HSL space.
//
// Components are stored exactly as given: constructors never clamp or
// validate, so out-of-range inputs are preserved. Normalization happens
// only inside the conversion math (hue wrap-around) and the formatter's
// rounding step.
//
// The zero value is opaque RGB black.
//
// Two Colors compare equal under == only if they were constructed in the
// same space with the same components and the same alpha provenance; use
// Equal for structural equality that ignores how alpha was supplied. An
// RGB-space red and an HSL-space red are never equal even though they
// render identically.
type Color struct {
	space space
	// c0, c1, c2 are R, G, B for SpaceRGB and H, S, L for SpaceHSL.
	c0, c1, c2 float64
	alpha      float64
	// explicitAlpha records whether the caller supplied alpha, which
	// decides between the rgb()/hsl() and rgba()/hsla() output forms.
	explicitAlpha bool
}

// space mirrors Space with an unexported type so Color cannot be
// constructed with an out-of-range tag from outside the package.
type space uint8

// RGBAColor holds the red, green, blue, and alpha components of a color,
// each as a float64 conventionally in [0, 1].
type RGBAColor struct {
	R, G, B, A float64
}

// HSLAColor holds the hue (degrees), saturation, lightness, and alpha
// components of a color. Saturation, lightness, and alpha are
// conventionally in [0, 1].
type HSLAColor struct {
	H, S, L, A float64
}

// RGB returns an opaque RGB-space color. Components are conventionally
// in [0, 1] but are not validated or clamped.
func RGB(r, g, b float64) Color {
	return Color{space: space(SpaceRGB), c0: r, c1: g, c2: b, alpha: 1}
}

// RGBA returns an RGB-space color with an explicit alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{space: space(SpaceRGB), c0: r, c1: g, c2: b, alpha: a, explicitAlpha: true}
}

// RGB255 returns an opaque RGB-space color from 0-255 channel values,
// scaled into the normalized [0, 1] range.
func RGB255(r, g, b uint8) Color {
	return RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// HSL returns an opaque HSL-space color. Hue is in degrees on a 0-360
// wheel; saturation and lightness are conventionally in [0, 1]. Nothing
// is validated or clamped.
func HSL(h, s, l float64) Color {
	return Color{space: space(SpaceHSL), c0: h, c1: s, c2: l, alpha: 1}
}

// HSLA returns an HSL-space color with an explicit alpha.
func HSLA(h, s, l, a float64) Color {
	return Color{space: space(SpaceHSL), c0: h, c1: s, c2: l, alpha: a, explicitAlpha: true}
}

// FromRGBA returns an RGB-space color from a component record. The alpha
// counts as explicitly supplied.
func FromRGBA(v RGBAColor) Color {
	return RGBA(v.R, v.G, v.B, v.A)
}

// FromHSLA returns an HSL-space color from a component record. The alpha
// counts as explicitly supplied.
func FromHSLA(v HSLAColor) Color {
	return HSLA(v.H, v.S, v.L, v.A)
}

// Space reports which space the color was constructed in.
func (c Color) Space() Space {
	return Space(c.space)
}

// Alpha returns the alpha component.
func (c Color) Alpha() float64 {
	return c.alpha
}

// ToRGBA returns the color's RGB components. If the color is RGB-space
// the stored components are returned verbatim; otherwise the HSL
// components are converted. The conversion is recomputed on every call.
func (c Color) ToRGBA() RGBAColor {
	if c.Space() == SpaceRGB {
		return RGBAColor{R: c.c0, G: c.c1, B: c.c2, A: c.alpha}
	}
	r, g, b := HSLToRGB(c.c0, c.c1, c.c2)
	return RGBAColor{R: r, G: g, B: b, A: c.alpha}
}

// ToHSLA returns the color's HSL components. If the color is HSL-space
// the stored components are returned verbatim; otherwise the RGB
// components are converted. The conversion is recomputed on every call.
func (c Color) ToHSLA() HSLAColor {
	if c.Space() == SpaceHSL {
		return HSLAColor{H: c.c0, S: c.c1, L: c.c2, A: c.alpha}
	}
	h, s, l := RGBToHSL(c.c0, c.c1, c.c2)
	return HSLAColor{H: h, S: s, L: l, A: c.alpha}
}

// Equal reports whether two colors were constructed in the same space
// with the same components and alpha. Unlike ==, it ignores whether
// alpha was supplied explicitly or defaulted.
func (c Color) Equal(o Color) bool {
	return c.space == o.space &&
		c.c0 == o.c0 && c.c1 == o.c1 && c.c2 == o.c2 &&
		c.alpha == o.alpha
}

// RGBA implements the standard [color.Color] interface, returning
// alpha-premultiplied 16-bit channels. Components are clamped to the
// displayable range at this point only.
func (c Color) RGBA() (r, g, b, a uint32) {
	v := c.ToRGBA()
	r = uint32(clamp01(v.R)*clamp01(v.A)*65535 + 0.5)
	g = uint32(clamp01(v.G)*clamp01(v.A)*65535 + 0.5)
	b = uint32(clamp01(v.B)*clamp01(v.A)*65535 + 0.5)
	a = uint32(clamp01(v.A)*65535 + 0.5)
	return r, g, b, a
}

var _ color.Color = Color{}

// clamp01 clamps a value to the [0, 1] range. NaN is mapped to 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
