package md2html

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.FrontMatterSplitter  = (*pipeline.YAMLFrontMatter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// converterConfig holds converter-level settings applied by options.
type converterConfig struct {
	codeFormat  CodeFormat
	frontMatter bool
}

// Converter orchestrates the Markdown-to-HTML conversion pipeline.
// Create with NewConverter and use Convert for conversion. A Converter is
// immutable after construction and safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	preprocessor  pipeline.MarkdownPreprocessor
	frontMatter   pipeline.FrontMatterSplitter
	htmlConverter pipeline.HTMLConverter
}

// NewConverter creates a Converter with default configuration: double-quote
// inline code and front matter handling enabled. Use options to customize
// behavior. Returns an error if an option sets an invalid code format.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			codeFormat:  CodeFormatDoubleQuotes,
			frontMatter: true,
		},
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		frontMatter:   &pipeline.YAMLFrontMatter{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.codeFormat.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert runs the full pipeline and returns the result containing the HTML
// fragment and any decoded front matter. The context is used for
// cancellation. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	// TRUST BOUNDARY: direct library users build Input manually; CLI input
	// converges here as well.
	if input.Markdown == nil {
		return nil, ErrNilMarkdown
	}
	format := c.cfg.codeFormat
	if input.CodeFormat != "" {
		format = input.CodeFormat
	}
	if err := format.Validate(); err != nil {
		return nil, err
	}

	content := string(input.Markdown)

	// Strip front matter before anything else so delimiters are matched
	// against the document as written.
	var meta *FrontMatter
	if c.cfg.frontMatter {
		m, body := c.frontMatter.Split(content)
		meta = toFrontMatter(m)
		content = body
	}

	// Empty and all-whitespace input yields an empty fragment, not an error.
	if strings.TrimSpace(content) == "" {
		return &Result{HTML: []byte{}, Meta: meta}, nil
	}

	content = c.preprocessor.PreprocessMarkdown(ctx, content)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent, err := c.htmlConverter.ToHTML(ctx, content, format.renderFormat())
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	return &Result{HTML: []byte(htmlContent), Meta: meta}, nil
}

// Convert is a convenience wrapper for one-off conversions: it builds a
// Converter from opts and converts markdown in a single call.
func Convert(ctx context.Context, markdown []byte, opts ...Option) (string, error) {
	c, err := NewConverter(opts...)
	if err != nil {
		return "", err
	}
	res, err := c.Convert(ctx, Input{Markdown: markdown})
	if err != nil {
		return "", err
	}
	return string(res.HTML), nil
}

// toFrontMatter converts the internal pipeline.Metadata to the public type.
func toFrontMatter(m *pipeline.Metadata) *FrontMatter {
	if m == nil {
		return nil
	}
	return &FrontMatter{
		Title:  m.Title,
		Author: m.Author,
		Date:   m.Date,
		Tags:   m.Tags,
	}
}
