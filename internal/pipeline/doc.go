// Package pipeline implements the Markdown-to-HTML conversion stages:
//   - Markdown preprocessing (line-ending normalization, blank-line limits)
//   - YAML front matter detection, stripping, and metadata decoding
//   - Markdown to HTML conversion via Goldmark, with the platform node
//     renderer (internal/render) layered over the stock HTML renderer
//
// Each stage is defined by an interface so the orchestrating Converter in
// the root package can be tested with mocks.
package pipeline
