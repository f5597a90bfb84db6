package mdxconv

import (
	"context"
	"regexp"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// import/export declarations, consumed up to the statement
	// terminator or end of line
	importExportDecl = regexp.MustCompile(`(?m)^[ \t]*(?:import|export)\b[^;\n]*(?:;|$)`)

	// Paired component span: opening tag starting with an uppercase
	// letter through the nearest uppercase closing tag, including all
	// enclosed content. Non-recursive: a span containing an unbalanced
	// nested tag of the same family is matched incorrectly. Known,
	// accepted limitation.
	componentSpan = regexp.MustCompile(`(?s)<[A-Z][^>]*>.*?</[A-Z][^>]*>`)

	// Self-closing component tag: <Widget prop="x"/>
	selfClosingComponent = regexp.MustCompile(`<[A-Z][^/>]*/>`)
)

// componentStripper defines the contract for removing non-Markdown
// markup from MDX source text.
type componentStripper interface {
	StripComponents(ctx context.Context, content string) string
}

// regexStripper removes component markup with best-effort pattern
// matching. Any text is accepted, including text with no markup.
type regexStripper struct{}

// StripComponents applies the deletion passes in sequence: import/export
// declarations, paired component spans, then self-closing tags. Line
// endings are normalized first so the line-anchored patterns behave the
// same on CRLF input, and blank-line runs left behind by deletions are
// compressed afterwards.
func (s *regexStripper) StripComponents(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = importExportDecl.ReplaceAllString(content, "")
	content = componentSpan.ReplaceAllString(content, "")
	content = selfClosingComponent.ReplaceAllString(content, "")
	return compressBlankLines(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
