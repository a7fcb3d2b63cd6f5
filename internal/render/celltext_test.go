package render

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	xast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// firstCell parses src as a GFM document and returns its first table cell.
func firstCell(t *testing.T, src []byte) ast.Node {
	t.Helper()

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(src))

	var cell ast.Node
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == xast.KindTableCell && cell == nil {
			cell = n
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking document: %v", err)
	}
	if cell == nil {
		t.Fatalf("no table cell found in %q", src)
	}
	return cell
}

func TestCellText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell string
		want string
	}{
		{
			name: "plain text",
			cell: "hello",
			want: "hello",
		},
		{
			name: "emphasis flattened",
			cell: "*a* and **b**",
			want: "a and b",
		},
		{
			name: "code span keeps raw content",
			cell: "run `a < b` now",
			want: "run a < b now",
		},
		{
			name: "link flattened to its text",
			cell: "[docs](https://example.com)",
			want: "docs",
		},
		{
			name: "image flattened to alt text",
			cell: "![alt text](img.png)",
			want: "alt text",
		},
		{
			name: "nested markup",
			cell: "**bold with `code`**",
			want: "bold with code",
		},
		{
			name: "empty cell",
			cell: "",
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := []byte("| " + tt.cell + " |\n| --- |\n| data |\n")
			cell := firstCell(t, src)
			if got := cellText(cell, src); got != tt.want {
				t.Errorf("cellText(%q) = %q, want %q", tt.cell, got, tt.want)
			}
		})
	}
}

func TestCellTextAutoLink(t *testing.T) {
	t.Parallel()

	src := []byte("| https://example.com |\n| --- |\n| data |\n")
	cell := firstCell(t, src)
	if got := cellText(cell, src); got != "https://example.com" {
		t.Errorf("cellText() = %q, want %q", got, "https://example.com")
	}
}
