package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	mdxconv "github.com/keenlychuang/mdx-to-docs"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "browser connect", err: mdxconv.ErrBrowserConnect, want: ExitBrowser},
		{name: "pdf generation wrapped", err: fmt.Errorf("file x: %w", mdxconv.ErrPDFGeneration), want: ExitBrowser},
		{name: "page load", err: mdxconv.ErrPageLoad, want: ExitBrowser},
		{name: "not exist", err: os.ErrNotExist, want: ExitIO},
		{name: "read source", err: fmt.Errorf("%w: boom", ErrReadSource), want: ExitIO},
		{name: "write output", err: ErrWriteOutput, want: ExitIO},
		{name: "empty markdown", err: mdxconv.ErrEmptyMarkdown, want: ExitUsage},
		{name: "invalid format", err: mdxconv.ErrInvalidFormat, want: ExitUsage},
		{name: "invalid margin", err: mdxconv.ErrInvalidMargin, want: ExitUsage},
		{name: "invalid extension", err: ErrInvalidExtension, want: ExitUsage},
		{name: "invalid engine", err: ErrInvalidEngine, want: ExitUsage},
		{name: "invalid timeout", err: ErrInvalidTimeout, want: ExitUsage},
		{name: "unknown", err: errors.New("something else"), want: ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
