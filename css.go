package tint

import (
	"math"
	"strconv"
	"strings"
)

// CSSString returns the color as a CSS color-function literal in the
// legacy comma-separated syntax: rgb()/hsl() when alpha was defaulted,
// rgba()/hsla() when it was supplied explicitly.
//
// RGB channels, saturation, and lightness are rendered as percentages
// rounded to 2 decimal places; hue and alpha as plain numbers rounded to
// 3 decimal places. Rounding uses a plain decimal point and drops
// trailing zeros, e.g. "rgba(50%,25%,10%,0.8)".
func (c Color) CSSString() string {
	var name string
	var args []string

	switch c.Space() {
	case SpaceHSL:
		name = "hsl"
		args = []string{
			formatNumber(c.c0),
			formatPercent(c.c1),
			formatPercent(c.c2),
		}
	default:
		name = "rgb"
		args = []string{
			formatPercent(c.c0),
			formatPercent(c.c1),
			formatPercent(c.c2),
		}
	}

	if c.explicitAlpha {
		name += "a"
		args = append(args, formatNumber(c.alpha))
	}

	return name + "(" + strings.Join(args, ",") + ")"
}

// String returns the CSS representation.
func (c Color) String() string {
	return c.CSSString()
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
// Channels are converted to RGB if needed, then clamped and rounded to
// the 0-255 range.
func (c Color) Hex() string {
	r, g, b := c.hex255()
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

// HexAlpha returns the color in hex format with alpha channel (#rrggbbaa).
func (c Color) HexAlpha() string {
	a := uint8(math.Round(clamp01(c.alpha) * 255))
	return c.Hex() + hexByte(a)
}

func (c Color) hex255() (r, g, b uint8) {
	v := c.ToRGBA()
	return uint8(math.Round(clamp01(v.R) * 255)),
		uint8(math.Round(clamp01(v.G) * 255)),
		uint8(math.Round(clamp01(v.B) * 255))
}

func hexByte(b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0xf]})
}

// formatPercent renders a [0, 1] fraction as a percentage rounded to
// 2 decimal places, e.g. 0.255 -> "25.5%".
func formatPercent(v float64) string {
	return strconv.FormatFloat(math.Round(v*10000)/100, 'f', -1, 64) + "%"
}

// formatNumber renders a plain numeric channel rounded to 3 decimal
// places, e.g. 0.8 -> "0.8", 120.0004 -> "120".
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
