package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the convert command.
type cliFlags struct {
	format  string
	css     string
	engine  string
	backend string
	timeout string
	quiet   bool
	verbose bool

	page pageFlags
}

// pageFlags holds PDF page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// parseFlags parses command flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mdxconvert", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.format, "format", "f", "both", "output format: pdf, docx, both")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended to the PDF stylesheet")
	fs.StringVar(&f.engine, "engine", "gfm", "markdown engine: gfm, commonmark")
	fs.StringVar(&f.backend, "backend", "rod", "PDF browser driver: rod, chromedp")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")

	fs.StringVarP(&f.page.size, "page-size", "p", "letter", "page size: letter, a4, legal")
	fs.StringVar(&f.page.orientation, "orientation", "portrait", "page orientation: portrait, landscape")
	fs.Float64Var(&f.page.margin, "margin", 0.5, "page margin in inches (0.25-3.0)")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
