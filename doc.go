// Package md2html converts Markdown documents to the restricted HTML
// fragment dialect accepted by the target publishing platform.
//
// The platform has no native tables, no <code> element, and no class or
// style attributes. Tables are therefore rendered as aligned monospace text
// inside a <pre> block, code blocks become <pre> blocks with explicit <br/>
// line breaks and &nbsp; placeholders for blank lines, and inline code spans
// are wrapped in a configurable combination of <strong>, <em>, and quote
// entities. All other Markdown constructs render as standard HTML via
// Goldmark; raw HTML embedded in the source is stripped.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: []byte("# Hello\n\nWorld"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", result.HTML, 0644)
//
// For one-off conversions the package-level helper is equivalent:
//
//	html, err := md2html.Convert(ctx, []byte("# Hello"))
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Input validation (nil markdown, inline code format)
//  2. YAML front matter stripping and metadata decoding
//  3. Markdown preprocessing (line normalization, blank-line limits)
//  4. Markdown to HTML conversion via Goldmark (GFM) with the platform
//     node renderer layered over the stock HTML renderer
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithCodeFormat(md2html.CodeFormatItalic),
//	    md2html.WithFrontMatter(false),
//	)
//
// Input.CodeFormat overrides the converter-level format for one call.
// An unrecognized format fails validation with ErrInvalidCodeFormat; the
// zero value selects CodeFormatDoubleQuotes.
//
// # Input Semantics
//
// A nil Input.Markdown fails with ErrNilMarkdown. Empty or all-whitespace
// input yields an empty fragment, not an error. The output is always a
// fragment, never a full HTML document.
//
// # Concurrency
//
// A Converter is immutable after NewConverter and safe for concurrent use;
// each Convert call is independent and performs no I/O.
package md2html
