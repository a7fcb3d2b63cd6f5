package render

import "strings"

// The platform accepts exactly one mechanism for preformatted multi-line
// text: a <pre> container with explicit <br/> line breaks. Blank lines
// collapse unless replaced with a non-breaking space. This is the single
// formatting primitive shared by fenced code blocks, indented code blocks,
// and rendered tables.
const (
	lineBreak        = "<br/>"
	blankPlaceholder = "&nbsp;"
)

// htmlEscaper escapes the characters the platform treats as markup.
// Applied exactly once per line; never re-applied to its own output.
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return htmlEscaper.Replace(s)
}

// preformatted converts raw line-oriented content into a platform-safe
// <pre> block: lines are escaped, blank lines become a &nbsp; placeholder,
// and every line except the last is followed by an explicit <br/>.
func preformatted(raw string) string {
	lines := splitLines(raw)

	var sb strings.Builder
	sb.WriteString("<pre>")
	for i, line := range lines {
		if i > 0 {
			sb.WriteString(lineBreak)
		}
		if strings.TrimSpace(line) == "" {
			sb.WriteString(blankPlaceholder)
		} else {
			sb.WriteString(escape(line))
		}
	}
	sb.WriteString("</pre>\n")
	return sb.String()
}

// splitLines splits on LF or CRLF, discarding the terminators, and drops
// one trailing wholly-empty line (artifact of trailing-newline content).
func splitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(raw, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
