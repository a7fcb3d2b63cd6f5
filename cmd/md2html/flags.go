package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the md2html command.
type cliFlags struct {
	output        string
	codeFormat    string
	configPath    string
	noFrontMatter bool
	quiet         bool
	verbose       bool
	version       bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (\"-\" = stdout)")
	fs.StringVar(&f.codeFormat, "code-format", "", "inline code format: doublequotes, bold, italic, bold+italic, bold+quotes, italic+quotes, all")
	fs.StringVarP(&f.configPath, "config", "c", "", "config file path")
	fs.BoolVar(&f.noFrontMatter, "no-front-matter", false, "treat YAML front matter as content")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show front matter and timing details")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the usage message.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "usage: md2html [flags] <input.md> [output.html]")
	fmt.Fprintln(w)
	fmt.Fprint(w, fs.FlagUsages())
}
