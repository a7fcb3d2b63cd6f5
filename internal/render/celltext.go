package render

import (
	"strings"

	"github.com/yuin/goldmark/ast"
)

// cellText flattens a table cell's inline tree into a single plain-text
// string: literal text verbatim, code spans as their raw content, line
// breaks as a single space, emphasis/links/images reduced to their text.
// Raw HTML has no children and contributes nothing. The result is trimmed.
func cellText(n ast.Node, source []byte) string {
	var sb strings.Builder
	writeCellText(&sb, n, source)
	return strings.TrimSpace(sb.String())
}

func writeCellText(sb *strings.Builder, n ast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			// Cells are single-line; breaks collapse to a space.
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		case *ast.AutoLink:
			sb.Write(t.Label(source))
		default:
			// Code spans carry raw content in Text children; emphasis,
			// links, and other containers contribute only their children.
			writeCellText(sb, c, source)
		}
	}
}
