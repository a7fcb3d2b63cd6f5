package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs      = errors.New("usage: md2html [flags] <input.md> [output.html]")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// run reads the input file, converts it, and writes the output.
func run(ctx context.Context, flags *cliFlags, args []string, out, errOut io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrInvalidArgs
	}
	inputPath := args[0]
	if !fileutil.IsMarkdownFile(inputPath) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
	}

	var cfg *config.Config
	if flags.configPath != "" {
		var err error
		cfg, err = config.Load(flags.configPath)
		if err != nil {
			return err
		}
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	conv, err := md2html.NewConverter(converterOptions(flags, cfg)...)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := conv.Convert(ctx, md2html.Input{Markdown: content})
	if err != nil {
		return err
	}
	if flags.verbose {
		fmt.Fprintf(errOut, "Converted %s in %s\n", inputPath, time.Since(start).Round(time.Millisecond))
		if result.Meta != nil && result.Meta.Title != "" {
			fmt.Fprintf(errOut, "Title: %s\n", result.Meta.Title)
		}
	}

	outputPath := resolveOutputPath(flags, args, cfg, inputPath)
	if outputPath == "-" {
		_, err := out.Write(result.HTML)
		return err
	}
	if err := os.WriteFile(outputPath, result.HTML, 0o644); err != nil { // #nosec G306 -- rendered document, not a secret
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !flags.quiet {
		fmt.Fprintf(out, "Created %s\n", outputPath)
	}
	return nil
}

// converterOptions merges flags over config over defaults.
func converterOptions(flags *cliFlags, cfg *config.Config) []md2html.Option {
	frontMatter := !flags.noFrontMatter
	if cfg != nil && !cfg.FrontMatter.IsEnabled() {
		frontMatter = false
	}

	format := flags.codeFormat
	if format == "" && cfg != nil {
		format = cfg.Code.Format
	}

	opts := []md2html.Option{md2html.WithFrontMatter(frontMatter)}
	if format != "" {
		opts = append(opts, md2html.WithCodeFormat(md2html.CodeFormat(format)))
	}
	return opts
}

// resolveOutputPath picks the output destination: -o flag, positional
// argument, config output directory, then input path with .html extension.
func resolveOutputPath(flags *cliFlags, args []string, cfg *config.Config, inputPath string) string {
	if flags.output != "" {
		return flags.output
	}
	if len(args) == 2 {
		return args[1]
	}
	derived := fileutil.HTMLOutputPath(inputPath)
	if cfg != nil && cfg.Output.Dir != "" {
		return filepath.Join(cfg.Output.Dir, filepath.Base(derived))
	}
	return derived
}
