package mdxconv

import (
	"fmt"
	"strings"
	"time"
)

// Format selects which output documents a conversion produces.
type Format int

// Output format selectors.
const (
	FormatBoth Format = iota // PDF and DOCX (default)
	FormatPDF
	FormatDOCX
)

// ParseFormat parses a format selector string (case-insensitive).
// Recognized values: "pdf", "docx", "both".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "pdf":
		return FormatPDF, nil
	case "docx":
		return FormatDOCX, nil
	case "both", "":
		return FormatBoth, nil
	default:
		return FormatBoth, fmt.Errorf("%w: %q (must be pdf, docx, or both)", ErrInvalidFormat, s)
	}
}

// String returns the canonical selector string.
func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatDOCX:
		return "docx"
	default:
		return "both"
	}
}

// IncludesPDF reports whether the selector requests PDF output.
func (f Format) IncludesPDF() bool { return f == FormatPDF || f == FormatBoth }

// IncludesDOCX reports whether the selector requests DOCX output.
func (f Format) IncludesDOCX() bool { return f == FormatDOCX || f == FormatBoth }

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	switch strings.ToLower(p.Size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	switch strings.ToLower(p.Orientation) {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// Input contains conversion parameters.
type Input struct {
	Markdown string        // MDX content (required)
	CSS      string        // Extra CSS appended after the built-in stylesheet (optional)
	Title    string        // Document title; front matter title wins if present (optional)
	Formats  Format        // Which outputs to produce (default: both)
	Page     *PageSettings // PDF page settings (optional, nil = defaults)
}

// DocumentMeta holds front matter metadata extracted from the source.
// Unknown keys are ignored; dates are passed through as opaque strings.
type DocumentMeta struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Date   string `yaml:"date"`
}

// ConvertResult holds conversion outputs. HTML is always populated;
// PDF and DOCX are populated according to Input.Formats.
type ConvertResult struct {
	HTML []byte
	PDF  []byte
	DOCX []byte
	Meta DocumentMeta
}

// Engine selects the Markdown rendering configuration.
type Engine int

const (
	// EngineGFM renders GitHub Flavored Markdown with footnotes and
	// syntax-highlighted code fences (default).
	EngineGFM Engine = iota
	// EngineCommonMark renders plain CommonMark with no extensions.
	EngineCommonMark
)

// PDFBackend selects the headless Chrome driver used for PDF output.
type PDFBackend int

const (
	// BackendRod drives Chrome via go-rod (default).
	BackendRod PDFBackend = iota
	// BackendChromedp drives Chrome via chromedp.
	BackendChromedp
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout time.Duration
	engine  Engine
	backend PDFBackend
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdxconv: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithEngine selects the Markdown rendering engine configuration.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithPDFBackend selects the headless Chrome driver.
func WithPDFBackend(b PDFBackend) Option {
	return func(c *Converter) {
		c.cfg.backend = b
	}
}
