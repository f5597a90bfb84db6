package main

import (
	"errors"
	"os"

	mdxconv "github.com/keenlychuang/mdx-to-docs"
)

// Exit codes for the mdxconvert CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, mdxconv.ErrBrowserConnect) ||
		errors.Is(err, mdxconv.ErrPageCreate) ||
		errors.Is(err, mdxconv.ErrPageLoad) ||
		errors.Is(err, mdxconv.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadSource) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/validation errors (exit 2)
	if errors.Is(err, mdxconv.ErrEmptyMarkdown) ||
		errors.Is(err, mdxconv.ErrInvalidFormat) ||
		errors.Is(err, mdxconv.ErrInvalidPageSize) ||
		errors.Is(err, mdxconv.ErrInvalidOrientation) ||
		errors.Is(err, mdxconv.ErrInvalidMargin) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidEngine) ||
		errors.Is(err, ErrInvalidBackend) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
