// Package render implements the custom goldmark node renderer for the
// restricted HTML dialect of the target publishing platform: tables become
// aligned monospace text inside <pre>, code blocks become <pre> with
// explicit <br/> breaks, inline code spans become a configurable
// emphasis/strong/quote wrapper, and raw HTML is stripped. Every other node
// kind is left to goldmark's stock HTML renderer.
package render

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	xast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Renderer overrides the node kinds the platform cannot display natively.
// It is immutable and safe for concurrent use.
type Renderer struct {
	format Format
}

// NewRenderer creates a Renderer using format for inline code spans.
func NewRenderer(format Format) *Renderer {
	return &Renderer{format: format}
}

// RegisterFuncs implements renderer.NodeRenderer.RegisterFuncs.
func (r *Renderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindFencedCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindCodeSpan, r.renderCodeSpan)
	reg.Register(ast.KindHTMLBlock, r.renderNothing)
	reg.Register(ast.KindRawHTML, r.renderNothing)
	reg.Register(xast.KindTable, r.renderTable)
}

// renderCodeBlock handles both fenced and indented code blocks. The fence
// info string is ignored: the platform has no syntax highlighting to feed
// it to.
func (r *Renderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(source))
	}
	if _, err := w.WriteString(preformatted(sb.String())); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkContinue, nil
}

// renderCodeSpan collects the span's raw segments (newlines become spaces,
// as in goldmark's stock renderer), escapes them once, and applies the
// configured wrapper markup.
func (r *Renderer) renderCodeSpan(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	var sb strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			continue
		}
		value := t.Segment.Value(source)
		if len(value) > 0 && value[len(value)-1] == '\n' {
			sb.Write(value[:len(value)-1])
			sb.WriteByte(' ')
		} else {
			sb.Write(value)
		}
	}
	if _, err := w.WriteString(codeSpan(escape(sb.String()), r.format)); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkSkipChildren, nil
}

// renderNothing strips raw HTML blocks and inline raw HTML from the output.
func (r *Renderer) renderNothing(_ util.BufWriter, _ []byte, _ ast.Node, _ bool) (ast.WalkStatus, error) {
	return ast.WalkSkipChildren, nil
}

// renderTable extracts the table into rows of plain cell text, lays it out
// as monospace pipe-delimited text, and emits it through the same
// preformatted framing as a code block. Rows are classified per row, so a
// leading run of header rows is honored. A table with no rows produces no
// output.
func (r *Renderer) renderTable(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	var rows [][]string
	headerRows := 0
	for row := node.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, cellText(cell, source))
		}
		if row.Kind() == xast.KindTableHeader && headerRows == len(rows) {
			headerRows++
		}
		rows = append(rows, cells)
	}

	if text := tableText(rows, headerRows); text != "" {
		if _, err := w.WriteString(preformatted(text)); err != nil {
			return ast.WalkStop, err
		}
	}
	return ast.WalkSkipChildren, nil
}
