package pipeline

import (
	"strings"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Metadata holds the fields decoded from a document's YAML front matter.
// Date stays a string: platforms and authors use too many formats to
// normalize here, and the converter only carries the value through.
type Metadata struct {
	Title  string   `yaml:"title"`
	Author string   `yaml:"author"`
	Date   string   `yaml:"date"`
	Tags   []string `yaml:"tags"`
}

// FrontMatterSplitter detects and strips YAML front matter from a document.
type FrontMatterSplitter interface {
	// Split returns decoded metadata and the body with the front matter
	// removed. Documents without front matter, with an unterminated block,
	// or with an undecodable block are returned unchanged with nil metadata.
	Split(content string) (*Metadata, string)
}

// YAMLFrontMatter handles the common `---` delimited YAML header.
type YAMLFrontMatter struct{}

// Split implements FrontMatterSplitter.
func (YAMLFrontMatter) Split(content string) (*Metadata, string) {
	block, body, ok := splitFrontMatter(content)
	if !ok {
		return nil, content
	}
	if strings.TrimSpace(block) == "" {
		// Empty but well-delimited header: strip it, nothing to decode.
		return nil, body
	}
	if !strings.Contains(block, ":") {
		// A leading thematic break, not metadata.
		return nil, content
	}
	var meta Metadata
	if err := yamlutil.Unmarshal([]byte(block), &meta); err != nil {
		// Lenient: malformed front matter passes through as content.
		return nil, content
	}
	return &meta, body
}

// splitFrontMatter cuts a leading front matter block. The document must open
// with a `---` line; the block ends at the first `---` or `...` line.
func splitFrontMatter(content string) (block, body string, ok bool) {
	line, rest, hasNL := cutLine(content)
	if !hasNL || strings.TrimSuffix(line, "\r") != "---" {
		return "", "", false
	}

	var sb strings.Builder
	for {
		line, remainder, hasNL := cutLine(rest)
		trimmed := strings.TrimSuffix(line, "\r")
		if trimmed == "---" || trimmed == "..." {
			return sb.String(), remainder, true
		}
		sb.WriteString(trimmed)
		sb.WriteByte('\n')
		if !hasNL {
			// No closing delimiter before end of input.
			return "", "", false
		}
		rest = remainder
	}
}

// cutLine splits off the first line, discarding the LF.
func cutLine(s string) (line, rest string, hasNL bool) {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}
