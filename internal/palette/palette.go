// Package palette loads HCL palette files into resolved tint colors.
//
// Colors are declared with expression functions (rgb, hsl, rgb255, ...)
// built on the core constructors; there is no string color syntax. The
// palette block holds the named colors, optionally nested into groups,
// and the vars block derives output variables from them.
package palette

import (
	"fmt"
	"os"
	"reflect"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/tint"
	"github.com/zclconf/go-cty/cty"
)

// colorType is the cty capsule type carrying a tint.Color through HCL
// evaluation.
var colorType = cty.Capsule("color", reflect.TypeOf(tint.Color{}))

// ColorVal wraps a color as a cty value.
func ColorVal(c tint.Color) cty.Value {
	return cty.CapsuleVal(colorType, &c)
}

// ColorFromVal unwraps a cty value produced by one of the color
// functions or a palette reference. Group references resolve to the
// group's own color when it has one.
func ColorFromVal(val cty.Value) (tint.Color, error) {
	if val.Type().Equals(colorType) {
		return *val.EncapsulatedValue().(*tint.Color), nil
	}
	if val.Type().IsObjectType() {
		if val.Type().HasAttribute("color") {
			return ColorFromVal(val.GetAttr("color"))
		}
		return tint.Color{}, fmt.Errorf("group has no color of its own; reference a specific child or add a color attribute")
	}
	return tint.Color{}, fmt.Errorf("expected a color value, got %s", val.Type().FriendlyName())
}

// Node is a palette entry that can be both a color and a namespace.
// Color is nil for namespace-only nodes (groups without a color
// attribute). Children is nil for leaf nodes.
type Node struct {
	Color    *tint.Color
	Children map[string]*Node
}

// Lookup resolves a dot-path (as segments) to a color.
func (n *Node) Lookup(path []string) (tint.Color, error) {
	current := n
	for _, part := range path {
		if current.Children == nil {
			return tint.Color{}, fmt.Errorf("path not found: %s is a leaf, cannot traverse further", part)
		}
		child, ok := current.Children[part]
		if !ok {
			return tint.Color{}, fmt.Errorf("path not found: %q does not exist", part)
		}
		current = child
	}
	if current.Color == nil {
		return tint.Color{}, fmt.Errorf("path is a group, not a color; add a color attribute or reference a specific child")
	}
	return *current.Color, nil
}

// Meta holds palette metadata.
type Meta struct {
	Name       string
	Author     string
	Appearance string
	URL        string
}

// Palette is a fully-resolved palette file.
type Palette struct {
	Meta   Meta
	Colors *Node
	Vars   map[string]tint.Color
}

// Load reads and parses an HCL palette file.
func Load(path string) (*Palette, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return Parse(path, src)
}

// Parse parses palette source. The filename is used in diagnostics only.
func Parse(filename string, src []byte) (*Palette, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("internal error: parsed body is not *hclsyntax.Body")
	}

	p := &Palette{
		Colors: &Node{},
		Vars:   make(map[string]tint.Color),
	}

	var paletteBody, varsBody *hclsyntax.Body
	for _, block := range body.Blocks {
		switch block.Type {
		case "meta":
			if err := parseMeta(block.Body, &p.Meta); err != nil {
				return nil, err
			}
		case "palette":
			paletteBody = block.Body
		case "vars":
			varsBody = block.Body
		default:
			return nil, fmt.Errorf("unknown block %q (valid: meta, palette, vars)", block.Type)
		}
	}

	if paletteBody == nil {
		return nil, fmt.Errorf("missing required palette block")
	}

	// Palette entries may use the color functions but not reference each
	// other; references are a vars feature.
	fnCtx := &hcl.EvalContext{Functions: Functions()}
	if err := parsePaletteBody(paletteBody, fnCtx, p.Colors, "palette"); err != nil {
		return nil, err
	}

	if varsBody != nil {
		ctx := EvalContext(p.Colors)
		if err := parseVars(varsBody, ctx, p.Vars); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func parseMeta(body *hclsyntax.Body, meta *Meta) error {
	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("evaluating meta.%s: %s", name, diags.Error())
		}
		if val.Type() != cty.String {
			return fmt.Errorf("meta.%s: expected a string, got %s", name, val.Type().FriendlyName())
		}
		switch name {
		case "name":
			meta.Name = val.AsString()
		case "author":
			meta.Author = val.AsString()
		case "appearance":
			meta.Appearance = val.AsString()
		case "url":
			meta.URL = val.AsString()
		default:
			return fmt.Errorf("meta: unknown attribute %q", name)
		}
	}
	return nil
}

// parsePaletteBody parses a palette block body. Attributes declare
// colors; nested blocks declare groups, whose "color" attribute becomes
// the group's own color.
func parsePaletteBody(body *hclsyntax.Body, ctx *hcl.EvalContext, node *Node, prefix string) error {
	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return fmt.Errorf("evaluating %s.%s: %s", prefix, name, diags.Error())
		}
		c, err := ColorFromVal(val)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", prefix, name, err)
		}
		if name == "color" {
			node.Color = &c
			continue
		}
		if node.Children == nil {
			node.Children = make(map[string]*Node)
		}
		node.Children[name] = &Node{Color: &c}
	}

	for _, block := range body.Blocks {
		if node.Children == nil {
			node.Children = make(map[string]*Node)
		}
		child := &Node{}
		node.Children[block.Type] = child
		if err := parsePaletteBody(block.Body, ctx, child, prefix+"."+block.Type); err != nil {
			return err
		}
	}

	return nil
}

func parseVars(body *hclsyntax.Body, ctx *hcl.EvalContext, dest map[string]tint.Color) error {
	if len(body.Blocks) > 0 {
		return fmt.Errorf("vars: nested blocks are not allowed")
	}
	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return fmt.Errorf("evaluating vars.%s: %s", name, diags.Error())
		}
		c, err := ColorFromVal(val)
		if err != nil {
			return fmt.Errorf("vars.%s: %w", name, err)
		}
		dest[name] = c
	}
	return nil
}

// EvalContext returns an HCL evaluation context exposing the resolved
// palette under the "palette" variable plus the color functions.
func EvalContext(colors *Node) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": NodeToCty(colors),
		},
		Functions: Functions(),
	}
}

// NodeToCty converts a palette node to a cty value. Leaf nodes become
// capsule values; groups become objects, with the group's own color
// under the "color" key.
func NodeToCty(node *Node) cty.Value {
	if node.Children == nil {
		if node.Color != nil {
			return ColorVal(*node.Color)
		}
		return cty.EmptyObjectVal
	}

	vals := make(map[string]cty.Value, len(node.Children)+1)
	if node.Color != nil {
		vals["color"] = ColorVal(*node.Color)
	}

	keys := make([]string, 0, len(node.Children))
	for k := range node.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		vals[k] = NodeToCty(node.Children[k])
	}

	return cty.ObjectVal(vals)
}
