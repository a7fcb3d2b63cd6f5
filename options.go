package md2html

// Option customizes a Converter at construction time.
type Option func(*Converter)

// WithCodeFormat sets the default inline code format. Per-call overrides via
// Input.CodeFormat take precedence.
func WithCodeFormat(f CodeFormat) Option {
	return func(c *Converter) {
		c.cfg.codeFormat = f
	}
}

// WithFrontMatter enables or disables YAML front matter handling.
// Enabled by default; when disabled, a leading front matter block is passed
// to the Markdown parser as regular content.
func WithFrontMatter(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.frontMatter = enabled
	}
}
