package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jsvensson/tint"
	"github.com/jsvensson/tint/internal/format"
	"github.com/jsvensson/tint/internal/palette"
	"github.com/jsvensson/tint/internal/stylesheet"
	"github.com/spf13/cobra"
)

var (
	flagPalette   string
	flagOut       string
	flagTemplates string
	flagApp       []string
	flagCheck     bool
	version       = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "tint",
	Short:   "Work with color values and palette files",
	Version: version,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a palette through templates or as CSS variables",
	Long:  "Render a palette file. With --templates, every .tmpl file is executed against the palette; without it, the vars block is emitted as a :root CSS custom-property block.",
	RunE:  runRender,
}

var cssCmd = &cobra.Command{
	Use:   "css (rgb|rgba|rgb255|hsl|hsla) <components...>",
	Short: "Print the CSS string for numeric color components",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCSS,
}

var convertCmd = &cobra.Command{
	Use:   "convert (rgb|hsl) <c0> <c1> <c2>",
	Short: "Convert color components to the other color space",
	Args:  cobra.ExactArgs(4),
	RunE:  runConvert,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format palette files",
	Long:  "Format one or more palette files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	renderCmd.Flags().StringVar(&flagPalette, "palette", "palette.tint", "path to palette file")
	renderCmd.Flags().StringVar(&flagOut, "out", "", "output directory (templates) or file (CSS variables; defaults to stdout)")
	renderCmd.Flags().StringVar(&flagTemplates, "templates", "", "templates directory")
	renderCmd.Flags().StringArrayVar(&flagApp, "app", nil, "render only specific templates (can be repeated)")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(cssCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	p, err := palette.Load(flagPalette)
	if err != nil {
		return fmt.Errorf("loading palette: %w", err)
	}

	if flagTemplates == "" {
		w := cmd.OutOrStdout()
		if flagOut != "" {
			f, err := os.Create(flagOut)
			if err != nil {
				return fmt.Errorf("creating %s: %w", flagOut, err)
			}
			defer f.Close()
			w = f
		}
		return stylesheet.WriteVariables(w, p)
	}

	out := flagOut
	if out == "" {
		out = "output"
	}

	e := &stylesheet.Engine{
		TemplatesDir: flagTemplates,
		OutputDir:    out,
		Apps:         flagApp,
	}

	if err := e.Run(p); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered palette files in %s\n", out)
	return nil
}

func runCSS(cmd *cobra.Command, args []string) error {
	fn, comps := args[0], args[1:]

	var c tint.Color
	switch fn {
	case "rgb":
		v, err := parseFloats(comps, 3)
		if err != nil {
			return err
		}
		c = tint.RGB(v[0], v[1], v[2])
	case "rgba":
		v, err := parseFloats(comps, 4)
		if err != nil {
			return err
		}
		c = tint.RGBA(v[0], v[1], v[2], v[3])
	case "rgb255":
		v, err := parseBytes(comps, 3)
		if err != nil {
			return err
		}
		c = tint.RGB255(v[0], v[1], v[2])
	case "hsl":
		v, err := parseFloats(comps, 3)
		if err != nil {
			return err
		}
		c = tint.HSL(v[0], v[1], v[2])
	case "hsla":
		v, err := parseFloats(comps, 4)
		if err != nil {
			return err
		}
		c = tint.HSLA(v[0], v[1], v[2], v[3])
	default:
		return fmt.Errorf("unknown color function %q (expected rgb, rgba, rgb255, hsl, or hsla)", fn)
	}

	fmt.Fprintln(cmd.OutOrStdout(), c.CSSString())
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	v, err := parseFloats(args[1:], 3)
	if err != nil {
		return err
	}

	switch args[0] {
	case "rgb":
		h, s, l := tint.RGBToHSL(v[0], v[1], v[2])
		fmt.Fprintf(cmd.OutOrStdout(), "%g %g %g\n", h, s, l)
	case "hsl":
		r, g, b := tint.HSLToRGB(v[0], v[1], v[2])
		fmt.Fprintf(cmd.OutOrStdout(), "%g %g %g\n", r, g, b)
	default:
		return fmt.Errorf("unknown color space %q (expected rgb or hsl)", args[0])
	}

	return nil
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(args))
	}
	vals := make([]float64, n)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing component %q: %w", arg, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func parseBytes(args []string, n int) ([]uint8, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(args))
	}
	vals := make([]uint8, n)
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("parsing component %q: %w", arg, err)
		}
		vals[i] = uint8(v)
	}
	return vals, nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
