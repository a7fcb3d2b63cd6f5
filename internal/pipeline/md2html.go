package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-md2html/internal/render"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// platformRendererPriority places the platform node renderer ahead of the
// stock HTML renderer (1000) and the GFM extension renderers (500); lower
// values win registration in goldmark.
const platformRendererPriority = 100

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string, format render.Format) (string, error)
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark
// (pure Go). One goldmark instance is built per inline code format at
// construction time; the map is read-only afterwards, so a single converter
// is safe for concurrent use without locking.
type GoldmarkConverter struct {
	instances map[render.Format]goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// the platform node renderer.
func NewGoldmarkConverter() *GoldmarkConverter {
	instances := make(map[render.Format]goldmark.Markdown, len(render.Formats()))
	for _, f := range render.Formats() {
		instances[f] = newGoldmark(f)
	}
	return &GoldmarkConverter{instances: instances}
}

func newGoldmark(format render.Format) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
			// Note: WithUnsafe() intentionally NOT used; the platform
			// renderer additionally strips raw HTML nodes entirely.
			renderer.WithNodeRenderers(
				util.Prioritized(render.NewRenderer(format), platformRendererPriority),
			),
		),
	)
}

// ToHTML converts Markdown content to an HTML fragment. The platform accepts
// fragments only, so no document template is applied. Supports context
// cancellation via goroutine + select pattern since Goldmark doesn't
// natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string, format render.Format) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	md, ok := c.instances[format]
	if !ok {
		md = c.instances[render.FormatDoubleQuotes]
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
