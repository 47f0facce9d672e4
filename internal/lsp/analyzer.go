package lsp

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/tint"
	"github.com/jsvensson/tint/internal/palette"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

const diagnosticSource = "tint"

// metaAttributes are the valid attributes of the meta block.
var metaAttributes = []string{"name", "author", "appearance", "url"}

// AnalysisResult holds all information produced by analyzing a palette file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Palette     *palette.Node
	Symbols     map[string]protocol.Range // "palette.base", "palette.highlight.low" -> definition range
	Colors      []ColorLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color tint.Color
	IsRef bool // true if this is a palette reference rather than a constructor call
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses palette content from memory and produces diagnostics, a symbol
// table, and resolved color locations. It collects ALL errors rather than
// short-circuiting on the first.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Symbols: make(map[string]protocol.Range),
	}

	// Parse HCL from string content
	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		// Cannot proceed with semantic analysis if syntax is broken
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	var metaBody, paletteBody, varsBody *hclsyntax.Body
	for _, block := range body.Blocks {
		switch block.Type {
		case "meta":
			metaBody = block.Body
		case "palette":
			paletteBody = block.Body
		case "vars":
			varsBody = block.Body
		default:
			result.addError(block.DefRange(), fmt.Sprintf("unknown block %q (expected meta, palette, or vars)", block.Type))
		}
	}

	if metaBody != nil {
		result.analyzeMetaBody(metaBody)
	}

	if paletteBody == nil {
		result.addError(hcl.Range{
			Filename: filename,
			Start:    hcl.Pos{Line: 1, Column: 1},
			End:      hcl.Pos{Line: 1, Column: 1},
		}, "missing required palette block")
		return result
	}

	// Palette attributes only see the color functions; references between
	// palette entries are not part of the format.
	root := &palette.Node{}
	fnCtx := &hcl.EvalContext{Functions: palette.Functions()}
	result.analyzePaletteBody(paletteBody, fnCtx, root, "palette")
	result.Palette = root

	// Vars see the resolved palette in addition to the functions.
	if varsBody != nil {
		result.analyzeVarsBody(varsBody, palette.EvalContext(root))
	}

	return result
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagnosticSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagError,
		Source:   strPtr(diagnosticSource),
		Message:  msg,
	})
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagWarning,
		Source:   strPtr(diagnosticSource),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}

// analyzeMetaBody validates the meta block: known attributes with string values,
// no nested blocks.
func (r *AnalysisResult) analyzeMetaBody(body *hclsyntax.Body) {
	for name, attr := range body.Attributes {
		known := false
		for _, valid := range metaAttributes {
			if name == valid {
				known = true
				break
			}
		}
		if !known {
			r.addWarning(attr.SrcRange, fmt.Sprintf("meta: unknown attribute %q", name))
			continue
		}

		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			r.addError(attr.SrcRange, fmt.Sprintf("evaluating meta.%s: %s", name, diags.Error()))
			continue
		}
		if val.Type() != cty.String {
			r.addError(attr.SrcRange, fmt.Sprintf("meta.%s: expected a string, got %s", name, val.Type().FriendlyName()))
		}
	}

	for _, block := range body.Blocks {
		r.addError(block.DefRange(), "meta: nested blocks are not allowed")
	}
}

// analyzePaletteBody walks a palette block body, collecting diagnostics and
// building the symbol table and color locations. Nested blocks form groups.
func (r *AnalysisResult) analyzePaletteBody(body *hclsyntax.Body, ctx *hcl.EvalContext, node *palette.Node, prefix string) {
	for name, attr := range body.Attributes {
		symbolName := prefix + "." + name

		// A group's own "color" attribute is addressed by the group path,
		// not by a ".color" suffix.
		if name != "color" {
			r.Symbols[symbolName] = hclRangeToLSP(attr.SrcRange)
		}

		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			r.addError(attr.SrcRange, fmt.Sprintf("evaluating %s: %s", symbolName, diags.Error()))
			continue
		}

		c, err := palette.ColorFromVal(val)
		if err != nil {
			r.addError(attr.SrcRange, fmt.Sprintf("%s: %s", symbolName, err.Error()))
			continue
		}

		r.Colors = append(r.Colors, ColorLocation{
			Range: hclRangeToLSP(attr.Expr.Range()),
			Color: c,
			IsRef: isReferenceExpr(attr.Expr),
		})

		if name == "color" {
			node.Color = &c
		} else {
			if node.Children == nil {
				node.Children = make(map[string]*palette.Node)
			}
			node.Children[name] = &palette.Node{Color: &c}
		}
	}

	for _, block := range body.Blocks {
		if node.Children == nil {
			node.Children = make(map[string]*palette.Node)
		}
		child := &palette.Node{}
		node.Children[block.Type] = child
		r.Symbols[prefix+"."+block.Type] = hclRangeToLSP(block.DefRange())
		r.analyzePaletteBody(block.Body, ctx, child, prefix+"."+block.Type)
	}
}

// analyzeVarsBody walks the vars block with the resolved palette in scope.
func (r *AnalysisResult) analyzeVarsBody(body *hclsyntax.Body, ctx *hcl.EvalContext) {
	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			r.addError(attr.SrcRange, fmt.Sprintf("evaluating vars.%s: %s", name, diags.Error()))
			continue
		}

		c, err := palette.ColorFromVal(val)
		if err != nil {
			r.addError(attr.SrcRange, fmt.Sprintf("vars.%s: %s", name, err.Error()))
			continue
		}

		r.Colors = append(r.Colors, ColorLocation{
			Range: hclRangeToLSP(attr.Expr.Range()),
			Color: c,
			IsRef: isReferenceExpr(attr.Expr),
		})
	}

	for _, block := range body.Blocks {
		r.addError(block.DefRange(), "vars: nested blocks are not allowed")
	}
}

// isReferenceExpr returns true if the expression is a scope traversal
// (e.g. palette.base) rather than a constructor call.
func isReferenceExpr(expr hclsyntax.Expression) bool {
	switch expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		return true
	case *hclsyntax.RelativeTraversalExpr:
		return true
	default:
		return false
	}
}
