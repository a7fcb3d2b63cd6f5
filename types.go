package md2html

import (
	"fmt"

	"github.com/alnah/go-md2html/internal/render"
)

// CodeFormat selects the markup wrapped around inline code spans. The
// platform has no <code> element, so spans are approximated with emphasis,
// strong, and quote entities. The zero value selects CodeFormatDoubleQuotes.
type CodeFormat string

// The seven supported inline code formats.
const (
	CodeFormatDoubleQuotes CodeFormat = "doublequotes"
	CodeFormatBold         CodeFormat = "bold"
	CodeFormatItalic       CodeFormat = "italic"
	CodeFormatBoldItalic   CodeFormat = "bold+italic"
	CodeFormatBoldQuotes   CodeFormat = "bold+quotes"
	CodeFormatItalicQuotes CodeFormat = "italic+quotes"
	CodeFormatAll          CodeFormat = "all"
)

// Validate checks that the format is empty (meaning default) or one of the
// seven supported names.
func (f CodeFormat) Validate() error {
	switch f {
	case "", CodeFormatDoubleQuotes, CodeFormatBold, CodeFormatItalic,
		CodeFormatBoldItalic, CodeFormatBoldQuotes, CodeFormatItalicQuotes,
		CodeFormatAll:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidCodeFormat, string(f))
}

// renderFormat maps the public name to the renderer enum. Empty and unknown
// values map to double quotes; unknown values are rejected earlier by
// Validate, this keeps the mapping total.
func (f CodeFormat) renderFormat() render.Format {
	switch f {
	case CodeFormatBold:
		return render.FormatBold
	case CodeFormatItalic:
		return render.FormatItalic
	case CodeFormatBoldItalic:
		return render.FormatBoldItalic
	case CodeFormatBoldQuotes:
		return render.FormatBoldQuotes
	case CodeFormatItalicQuotes:
		return render.FormatItalicQuotes
	case CodeFormatAll:
		return render.FormatAll
	default:
		return render.FormatDoubleQuotes
	}
}

// Input holds the source and per-call options for one conversion.
type Input struct {
	// Markdown is the source document. Nil fails with ErrNilMarkdown;
	// empty or all-whitespace input yields an empty fragment.
	Markdown []byte

	// CodeFormat overrides the converter-level inline code format for this
	// call. Zero value uses the converter default.
	CodeFormat CodeFormat
}

// Result holds the conversion output.
type Result struct {
	// HTML is the converted fragment.
	HTML []byte

	// Meta holds decoded YAML front matter, or nil when the document has
	// none (or front matter handling is disabled).
	Meta *FrontMatter
}

// FrontMatter is the metadata decoded from a document's YAML header.
type FrontMatter struct {
	Title  string
	Author string
	Date   string
	Tags   []string
}
