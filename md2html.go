package mdxconv

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// htmlConverter abstracts Markdown to HTML conversion.
type htmlConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// goldmarkConverter converts Markdown to an HTML fragment using
// goldmark (pure Go). The fragment carries no document shell; the PDF
// path wraps it in a page template and the DOCX path parses it directly.
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter builds a converter for the requested engine.
// EngineGFM adds tables, strikethrough, autolinks, task lists,
// footnotes, and chroma-highlighted code fences; EngineCommonMark is
// the bare CommonMark renderer. Which engine runs only affects what the
// renderer can produce, and therefore what the downstream walker can see.
func newGoldmarkConverter(engine Engine) *goldmarkConverter {
	opts := []goldmark.Option{
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
		),
	}

	if engine == EngineGFM {
		opts = append(opts, goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes, styled by the page stylesheet
				),
			),
		))
	}

	return &goldmarkConverter{md: goldmark.New(opts...)}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (c *goldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
