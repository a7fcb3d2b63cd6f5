package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{
		"md2html", "--code-format", "italic", "-o", "out.html", "-q", "input.md",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if flags.codeFormat != "italic" {
		t.Errorf("codeFormat = %q, want %q", flags.codeFormat, "italic")
	}
	if flags.output != "out.html" {
		t.Errorf("output = %q, want %q", flags.output, "out.html")
	}
	if !flags.quiet {
		t.Error("quiet = false, want true")
	}
	if len(args) != 1 || args[0] != "input.md" {
		t.Errorf("args = %v, want [input.md]", args)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{"md2html", "input.md", "output.html"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if flags.codeFormat != "" || flags.output != "" || flags.noFrontMatter || flags.quiet || flags.verbose {
		t.Errorf("unexpected non-default flags: %+v", flags)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, want two positional args", args)
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	if _, _, err := parseFlags([]string{"md2html", "--bogus"}); err == nil {
		t.Error("parseFlags() error = nil, want error for unknown flag")
	}
}
