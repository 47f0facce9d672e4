package tint

import "math"

// RGBToHSL converts normalized [0, 1] RGB channels to hue in degrees
// [0, 360), saturation, and lightness in [0, 1].
//
// An achromatic input (all channels equal) has no defined hue; the
// conventional hue 0 and saturation 0 are returned rather than the NaN
// the chroma division would produce.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	cMax := math.Max(math.Max(r, g), b)
	cMin := math.Min(math.Min(r, g), b)
	chroma := cMax - cMin

	l = (cMax + cMin) / 2

	if chroma == 0 {
		return 0, 0, l
	}

	switch cMax {
	case r:
		h = (g - b) / chroma
	case g:
		h = (b-r)/chroma + 2
	default:
		h = (r-g)/chroma + 4
	}
	h /= 6
	if h < 0 {
		h++
	}
	h *= 360

	s = chroma / (1 - math.Abs(2*l-1))

	return h, s, l
}

// HSLToRGB converts hue in degrees, saturation, and lightness in [0, 1]
// to normalized [0, 1] RGB channels. Hue is taken modulo 360, so values
// outside [0, 360) are accepted.
//
// Saturation 0 yields an achromatic gray at the given lightness
// regardless of hue; lightness 0 or 1 yields black or white regardless
// of hue and saturation.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	chroma := (1 - math.Abs(2*l-1)) * s

	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	// Each 60-degree sector holds two channels at fixed levels while the
	// third ramps linearly between them.
	switch {
	case h < 60:
		r, g, b = chroma, chroma*h/60, 0
	case h < 120:
		r, g, b = chroma*(120-h)/60, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, chroma*(h-120)/60
	case h < 240:
		r, g, b = 0, chroma*(240-h)/60, chroma
	case h < 300:
		r, g, b = chroma*(h-240)/60, 0, chroma
	default:
		r, g, b = chroma, 0, chroma*(360-h)/60
	}

	m := l - chroma/2
	return r + m, g + m, b + m
}

// RGB255ToHSL is RGBToHSL over 0-255 channel values.
func RGB255ToHSL(r, g, b uint8) (h, s, l float64) {
	return RGBToHSL(float64(r)/255, float64(g)/255, float64(b)/255)
}

// HSLToRGB255 is HSLToRGB scaled to rounded 0-255 channel values,
// clamped to the displayable range.
func HSLToRGB255(h, s, l float64) (r, g, b uint8) {
	fr, fg, fb := HSLToRGB(h, s, l)
	return uint8(math.Round(clamp01(fr) * 255)),
		uint8(math.Round(clamp01(fg) * 255)),
		uint8(math.Round(clamp01(fb) * 255))
}
