package mdxconv

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func TestToHTMLHeadings(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter(EngineGFM)

	for level := 1; level <= 6; level++ {
		input := strings.Repeat("#", level) + " Heading\n"
		got, err := conv.ToHTML(context.Background(), input)
		if err != nil {
			t.Fatalf("ToHTML(level %d) error: %v", level, err)
		}
		want := fmt.Sprintf("<h%d>Heading</h%d>", level, level)
		if !strings.Contains(got, want) {
			t.Errorf("ToHTML(level %d) = %q, want contains %q", level, got, want)
		}
	}
}

func TestToHTMLBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "paragraph",
			input:    "Hello world\n",
			contains: []string{"<p>Hello world</p>"},
		},
		{
			name:     "unordered list",
			input:    "- one\n- two\n",
			contains: []string{"<ul>", "<li>one</li>", "<li>two</li>"},
		},
		{
			name:     "ordered list",
			input:    "1. first\n2. second\n",
			contains: []string{"<ol>", "<li>first</li>", "<li>second</li>"},
		},
		{
			name:     "blockquote",
			input:    "> quoted\n",
			contains: []string{"<blockquote>", "quoted"},
		},
	}

	conv := newGoldmarkConverter(EngineGFM)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() = %q, want contains %q", got, want)
				}
			}
		})
	}
}

func TestToHTMLEngines(t *testing.T) {
	t.Parallel()

	table := "| a | b |\n|---|---|\n| 1 | 2 |\n"

	t.Run("gfm renders tables", func(t *testing.T) {
		t.Parallel()

		got, err := newGoldmarkConverter(EngineGFM).ToHTML(context.Background(), table)
		if err != nil {
			t.Fatalf("ToHTML() error: %v", err)
		}
		if !strings.Contains(got, "<table>") {
			t.Errorf("ToHTML() = %q, want contains <table>", got)
		}
	})

	t.Run("commonmark leaves tables as text", func(t *testing.T) {
		t.Parallel()

		got, err := newGoldmarkConverter(EngineCommonMark).ToHTML(context.Background(), table)
		if err != nil {
			t.Fatalf("ToHTML() error: %v", err)
		}
		if strings.Contains(got, "<table>") {
			t.Errorf("ToHTML() = %q, commonmark engine should not render tables", got)
		}
	})

	t.Run("gfm strikethrough", func(t *testing.T) {
		t.Parallel()

		got, err := newGoldmarkConverter(EngineGFM).ToHTML(context.Background(), "~~gone~~\n")
		if err != nil {
			t.Fatalf("ToHTML() error: %v", err)
		}
		if !strings.Contains(got, "<del>gone</del>") {
			t.Errorf("ToHTML() = %q, want contains <del>gone</del>", got)
		}
	})
}

func TestToHTMLReturnsFragment(t *testing.T) {
	t.Parallel()

	got, err := newGoldmarkConverter(EngineGFM).ToHTML(context.Background(), "# T\n")
	if err != nil {
		t.Fatalf("ToHTML() error: %v", err)
	}
	if strings.Contains(got, "<html") || strings.Contains(got, "<body") {
		t.Errorf("ToHTML() = %q, want a bare fragment without a document shell", got)
	}
}

func TestToHTMLCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newGoldmarkConverter(EngineGFM).ToHTML(ctx, "# T\n")
	if err != context.Canceled {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
