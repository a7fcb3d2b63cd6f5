package render

// Format selects the wrapper markup applied around inline code spans.
// The platform has no <code> element, so code spans are approximated with
// emphasis, strong, and quote entities.
type Format int

const (
	FormatDoubleQuotes Format = iota
	FormatBold
	FormatItalic
	FormatBoldItalic
	FormatBoldQuotes
	FormatItalicQuotes
	FormatAll
)

// Formats returns every defined Format, in declaration order.
func Formats() []Format {
	return []Format{
		FormatDoubleQuotes,
		FormatBold,
		FormatItalic,
		FormatBoldItalic,
		FormatBoldQuotes,
		FormatItalicQuotes,
		FormatAll,
	}
}

// codeSpan wraps already-escaped inline code text in the markup pair for f.
// The mapping is total: values outside the defined range fall back to
// double quotes.
func codeSpan(escaped string, f Format) string {
	switch f {
	case FormatBold:
		return "<strong>" + escaped + "</strong>"
	case FormatItalic:
		return "<em>" + escaped + "</em>"
	case FormatBoldItalic:
		return "<strong><em>" + escaped + "</em></strong>"
	case FormatBoldQuotes:
		return "<strong>&quot;" + escaped + "&quot;</strong>"
	case FormatItalicQuotes:
		return "<em>&quot;" + escaped + "&quot;</em>"
	case FormatAll:
		return "<strong><em>&quot;" + escaped + "&quot;</em></strong>"
	default:
		return "&quot;" + escaped + "&quot;"
	}
}
