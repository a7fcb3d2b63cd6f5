package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrNilMarkdown       = errors.New("markdown content must not be nil")
	ErrInvalidCodeFormat = errors.New("invalid inline code format")
)
