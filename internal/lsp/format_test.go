package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestFullDocumentRange(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    protocol.Range
	}{
		{
			name:    "single line",
			content: "palette {}",
			want: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: 10},
			},
		},
		{
			name:    "trailing newline",
			content: "palette {\n}\n",
			want: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 2, Character: 0},
			},
		},
		{
			name:    "empty",
			content: "",
			want: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fullDocumentRange(tt.content)
			if got != tt.want {
				t.Errorf("fullDocumentRange(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestFormattingHandler(t *testing.T) {
	s := NewServer("test")

	uri := "file:///unformatted.tint"
	s.docs.Open(uri, "palette {\nbase = rgb255(25, 23, 36)\n}\n")

	edits, err := s.textDocumentFormatting(nil, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentUri(uri)},
	})
	if err != nil {
		t.Fatalf("formatting error: %v", err)
	}
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}

	if !strings.Contains(edits[0].NewText, "  base = rgb255(25, 23, 36)") {
		t.Errorf("expected indented attribute in formatted text, got:\n%s", edits[0].NewText)
	}

	if edits[0].Range.Start.Line != 0 || edits[0].Range.Start.Character != 0 {
		t.Errorf("edit should start at the beginning of the document, got %v", edits[0].Range.Start)
	}
}

func TestFormattingHandler_AlreadyFormatted(t *testing.T) {
	s := NewServer("test")

	uri := "file:///formatted.tint"
	content := "palette {\n  base = rgb255(25, 23, 36)\n}\n"
	s.docs.Open(uri, content)

	edits, err := s.textDocumentFormatting(nil, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentUri(uri)},
	})
	if err != nil {
		t.Fatalf("formatting error: %v", err)
	}
	if edits != nil {
		t.Errorf("expected no edits for already formatted document, got %d", len(edits))
	}
}

func TestFormattingHandler_UnknownDocument(t *testing.T) {
	s := NewServer("test")

	edits, err := s.textDocumentFormatting(nil, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///missing.tint"},
	})
	if err != nil {
		t.Fatalf("formatting error: %v", err)
	}
	if edits != nil {
		t.Error("expected no edits for unknown document")
	}
}
