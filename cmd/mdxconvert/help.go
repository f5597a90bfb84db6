package main

import (
	"fmt"
	"io"
)

// printUsage writes command usage to w.
func printUsage(w io.Writer) {
	fmt.Fprintf(w, `mdxconvert %s - convert MDX files to PDF and/or DOCX

Usage:
  mdxconvert <input-path> <output-directory> [flags]

Arguments:
  input-path         an .mdx file, or a directory searched recursively
  output-directory   created if missing; outputs are named after each
                     source file's base name

Flags:
  -f, --format string     output format: pdf, docx, both (default "both")
      --css string        extra CSS file appended to the PDF stylesheet
      --engine string     markdown engine: gfm, commonmark (default "gfm")
      --backend string    PDF browser driver: rod, chromedp (default "rod")
  -t, --timeout string    PDF generation timeout (e.g., 30s, 2m)
  -p, --page-size string  page size: letter, a4, legal (default "letter")
      --orientation string   portrait or landscape (default "portrait")
      --margin float      page margin in inches, 0.25-3.0 (default 0.5)
  -q, --quiet             only show errors
  -v, --verbose           show detailed timing

Examples:
  mdxconvert docs/intro.mdx out/
  mdxconvert docs/ out/ --format pdf --page-size a4
  mdxconvert docs/ out/ --format docx -q
`, Version)
}
