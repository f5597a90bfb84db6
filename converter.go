package mdxconv

import (
	"context"
	"fmt"
)

// Compile-time interface implementation checks.
var (
	_ componentStripper = (*regexStripper)(nil)
	_ htmlConverter     = (*goldmarkConverter)(nil)
)

// Converter orchestrates the MDX to PDF/DOCX conversion pipeline.
// Create with NewConverter, call Convert per document, and Close when
// done to release the browser. A Converter is reused across documents;
// each conversion runs start-to-finish before the next begins.
type Converter struct {
	cfg           converterConfig
	stripper      componentStripper
	htmlConverter htmlConverter
	pdfConverter  pdfConverter
	docxConverter docxConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithEngine,
// WithPDFBackend).
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:      converterConfig{timeout: defaultTimeout},
		stripper: &regexStripper{},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.htmlConverter = newGoldmarkConverter(c.cfg.engine)
	c.docxConverter = &godocxBuilder{}

	// Create PDF converter if not injected (e.g., by tests)
	if c.pdfConverter == nil {
		switch c.cfg.backend {
		case BackendChromedp:
			c.pdfConverter = newChromedpConverter(c.cfg.timeout)
		default:
			c.pdfConverter = newRodConverter(c.cfg.timeout)
		}
	}

	return c, nil
}

// Convert runs the full pipeline: strip component markup, split front
// matter, render to HTML, then emit the requested formats. The context
// is used for cancellation and timeout. Recovers from internal panics
// to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	mdContent := c.stripper.StripComponents(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	meta, body := splitFrontMatter(mdContent)

	fragment, err := c.htmlConverter.ToHTML(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	title := meta.Title
	if title == "" {
		title = input.Title
	}

	res := &ConvertResult{
		HTML: []byte(fragment),
		Meta: meta,
	}

	if input.Formats.IncludesDOCX() {
		blocks, err := ParseBlocks(fragment)
		if err != nil {
			return nil, err
		}
		docxBytes, err := c.docxConverter.ToDOCX(ctx, blocks)
		if err != nil {
			return nil, fmt.Errorf("converting to DOCX: %w", err)
		}
		res.DOCX = docxBytes
	}

	if input.Formats.IncludesPDF() {
		pageHTML := buildPage(fragment, input.CSS, title)
		pdfBytes, err := c.pdfConverter.ToPDF(ctx, pageHTML, input.Page)
		if err != nil {
			return nil, fmt.Errorf("converting to PDF: %w", err)
		}
		res.PDF = pdfBytes
	}

	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func (c *Converter) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	return nil
}
