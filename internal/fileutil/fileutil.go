// Package fileutil provides file and path utility functions for the CLI.
package fileutil

import (
	"path/filepath"
	"strings"
)

// IsMarkdownFile reports whether path has a Markdown extension.
func IsMarkdownFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// HTMLOutputPath derives the output path for an input file by replacing its
// extension with .html.
func HTMLOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".html"
}
