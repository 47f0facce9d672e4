package lsp

import (
	"fmt"
	"math"
	"strings"

	"github.com/jsvensson/tint"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts a tint.Color to a protocol.Color. The protocol wants
// clamped float channels, so out-of-range values are pinned to [0, 1].
func colorToLSP(c tint.Color) protocol.Color {
	v := c.ToRGBA()
	return protocol.Color{
		Red:   clampF32(v.R),
		Green: clampF32(v.G),
		Blue:  clampF32(v.B),
		Alpha: clampF32(v.A),
	}
}

func clampF32(v float64) float32 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return float32(v)
}

// documentColors converts the analysis result's color locations into LSP
// ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation produces color presentation options for a given color and
// range. For constructor calls it returns an rgb255 (or rgba) replacement
// edit. For palette references it returns an empty slice so the editor's
// color picker cannot silently replace a reference with a literal value.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	text := extractText(content, params.Range)

	if strings.HasPrefix(text, "palette.") {
		return []protocol.ColorPresentation{}
	}

	r := uint8(math.Round(float64(params.Color.Red) * 255))
	g := uint8(math.Round(float64(params.Color.Green) * 255))
	b := uint8(math.Round(float64(params.Color.Blue) * 255))

	var newText string
	if params.Color.Alpha < 1 {
		newText = fmt.Sprintf("rgba(%.4g, %.4g, %.4g, %.4g)",
			params.Color.Red, params.Color.Green, params.Color.Blue, params.Color.Alpha)
	} else {
		newText = fmt.Sprintf("rgb255(%d, %d, %d)", r, g, b)
	}

	return []protocol.ColorPresentation{
		{
			Label: newText,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: newText,
			},
		},
	}
}

// textDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	result, _ := s.docs.Result(uri)
	return documentColors(result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
