// Package stylesheet renders a resolved palette to CSS output, either as
// a :root custom-property block or through user-supplied Go templates.
package stylesheet

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/jsvensson/tint"
	"github.com/jsvensson/tint/internal/palette"
)

// WriteVariables writes the palette's vars as a :root custom-property
// block. Variables are emitted in sorted order so output is
// deterministic.
func WriteVariables(w io.Writer, p *palette.Palette) error {
	names := make([]string, 0, len(p.Vars))
	for name := range p.Vars {
		names = append(names, name)
	}
	sort.Strings(names)

	if p.Meta.Name != "" {
		if _, err := fmt.Fprintf(w, "/* %s */\n", p.Meta.Name); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ":root {\n"); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "  --%s: %s;\n", name, p.Vars[name].CSSString()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

// Engine loads and executes Go templates against a resolved palette.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Apps         []string // if non-empty, only render these template basenames
}

// Run loads all .tmpl files from the templates directory, executes them
// with the palette data, and writes output files.
func (e *Engine) Run(p *palette.Palette) error {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data := buildTemplateData(p)

	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")

		if !e.shouldRender(baseName) {
			continue
		}

		if err := e.renderTemplate(tmplPath, baseName, data); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) shouldRender(name string) bool {
	// If no apps are specified, render all.
	if len(e.Apps) == 0 {
		return true
	}

	return slices.Contains(e.Apps, name)
}

func (e *Engine) renderTemplate(tmplPath, outputName string, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(data.FuncMap).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(e.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	return nil
}

// round255 scales a normalized channel to the rounded 0-255 range.
func round255(v float64) uint8 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// formatAlpha renders an alpha channel rounded to 3 decimal places.
func formatAlpha(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

// templateData is the data passed to templates.
type templateData struct {
	Meta    palette.Meta
	Vars    map[string]tint.Color
	FuncMap template.FuncMap
}

func buildTemplateData(p *palette.Palette) templateData {
	return templateData{
		Meta: p.Meta,
		Vars: p.Vars,
		FuncMap: template.FuncMap{
			"css": func(c tint.Color) string {
				return c.CSSString()
			},
			"hex": func(c tint.Color) string {
				return c.Hex()
			},
			"hexa": func(c tint.Color) string {
				return c.HexAlpha()
			},
			"rgba255": func(c tint.Color) string {
				v := c.ToRGBA()
				return fmt.Sprintf("%d, %d, %d, %s", round255(v.R), round255(v.G), round255(v.B), formatAlpha(v.A))
			},
			"v": func(name string) (tint.Color, error) {
				c, ok := p.Vars[name]
				if !ok {
					return tint.Color{}, fmt.Errorf("vars has no entry %q", name)
				}
				return c, nil
			},
			"palette": func(path string) (tint.Color, error) {
				return p.Colors.Lookup(strings.Split(path, "."))
			},
		},
	}
}
