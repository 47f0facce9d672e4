package palette

import (
	"fmt"

	"github.com/jsvensson/tint"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Functions returns the expression functions available in palette files.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"rgb":        rgbFunc,
		"rgba":       rgbaFunc,
		"rgb255":     rgb255Func,
		"hsl":        hslFunc,
		"hsla":       hslaFunc,
		"lighten":    adjustFunc("lighten", "Lightens a color by the given amount (0.0 to 1.0)", tint.Lighten),
		"darken":     adjustFunc("darken", "Darkens a color by the given amount (0.0 to 1.0)", tint.Darken),
		"saturate":   adjustFunc("saturate", "Increases a color's saturation by the given amount (0.0 to 1.0)", tint.Saturate),
		"desaturate": adjustFunc("desaturate", "Decreases a color's saturation by the given amount (0.0 to 1.0)", tint.Desaturate),
		"rotate":     adjustFunc("rotate", "Rotates a color's hue by the given number of degrees", tint.Rotate),
		"fade":       adjustFunc("fade", "Replaces a color's alpha channel (0.0 to 1.0)", tint.Fade),
	}
}

// numberParams builds positional number parameters with the given names.
func numberParams(names ...string) []function.Parameter {
	params := make([]function.Parameter, len(names))
	for i, name := range names {
		params[i] = function.Parameter{Name: name, Type: cty.Number}
	}
	return params
}

// floatArgs extracts all arguments as float64.
func floatArgs(args []cty.Value) []float64 {
	out := make([]float64, len(args))
	for i, arg := range args {
		out[i], _ = arg.AsBigFloat().Float64()
	}
	return out
}

var rgbFunc = function.New(&function.Spec{
	Description: "Constructs an opaque RGB color from channels in [0, 1]",
	Params:      numberParams("red", "green", "blue"),
	Type:        function.StaticReturnType(colorType),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		v := floatArgs(args)
		return ColorVal(tint.RGB(v[0], v[1], v[2])), nil
	},
})

var rgbaFunc = function.New(&function.Spec{
	Description: "Constructs an RGB color with alpha, channels in [0, 1]",
	Params:      numberParams("red", "green", "blue", "alpha"),
	Type:        function.StaticReturnType(colorType),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		v := floatArgs(args)
		return ColorVal(tint.RGBA(v[0], v[1], v[2], v[3])), nil
	},
})

var rgb255Func = function.New(&function.Spec{
	Description: "Constructs an opaque RGB color from 0-255 integer channels",
	Params:      numberParams("red", "green", "blue"),
	Type:        function.StaticReturnType(colorType),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		channels := make([]uint8, len(args))
		for i, arg := range args {
			n, acc := arg.AsBigFloat().Int64()
			if acc != 0 || n < 0 || n > 255 {
				return cty.NilVal, fmt.Errorf("rgb255 channel must be an integer in 0-255, got %s", arg.AsBigFloat().String())
			}
			channels[i] = uint8(n)
		}
		return ColorVal(tint.RGB255(channels[0], channels[1], channels[2])), nil
	},
})

var hslFunc = function.New(&function.Spec{
	Description: "Constructs an opaque HSL color: hue in degrees, saturation and lightness in [0, 1]",
	Params:      numberParams("hue", "saturation", "lightness"),
	Type:        function.StaticReturnType(colorType),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		v := floatArgs(args)
		return ColorVal(tint.HSL(v[0], v[1], v[2])), nil
	},
})

var hslaFunc = function.New(&function.Spec{
	Description: "Constructs an HSL color with alpha",
	Params:      numberParams("hue", "saturation", "lightness", "alpha"),
	Type:        function.StaticReturnType(colorType),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		v := floatArgs(args)
		return ColorVal(tint.HSLA(v[0], v[1], v[2], v[3])), nil
	},
})

// adjustFunc wraps one of the core adjustment helpers as an HCL
// function taking a color and a number.
func adjustFunc(name, desc string, fn func(tint.Color, float64) tint.Color) function.Function {
	return function.New(&function.Spec{
		Description: desc,
		Params: []function.Parameter{
			// DynamicPseudoType so group references (objects carrying a
			// "color" attribute) are accepted alongside plain colors.
			{Name: "color", Type: cty.DynamicPseudoType},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(colorType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := ColorFromVal(args[0])
			if err != nil {
				return cty.NilVal, fmt.Errorf("%s: %w", name, err)
			}
			amount, _ := args[1].AsBigFloat().Float64()
			return ColorVal(fn(c, amount)), nil
		},
	})
}
