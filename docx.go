package mdxconv

import (
	"bytes"
	"context"
	"fmt"

	"github.com/fumiama/go-docx"
)

// docxConverter abstracts word-processor document generation.
type docxConverter interface {
	ToDOCX(ctx context.Context, blocks []Block) ([]byte, error)
}

// Compile-time interface check
var _ docxConverter = (*godocxBuilder)(nil)

// Heading run sizes in half-points, indexed by level-1.
// Word's UI sizes: H1 24pt down to H6 11pt.
var headingSizes = [6]string{"48", "40", "32", "28", "24", "22"}

const quoteColor = "666666"

// godocxBuilder emits DOCX documents with fumiama/go-docx (pure Go).
// Every BlockKind has a defined mapping; inline styling from the source
// Markdown is not preserved.
type godocxBuilder struct{}

// ToDOCX builds a word-processor document from the walked block
// sequence and returns the serialized file.
func (b *godocxBuilder) ToDOCX(ctx context.Context, blocks []Block) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := docx.New().WithDefaultTheme()

	for _, blk := range blocks {
		switch blk.Kind {
		case BlockHeading:
			level := blk.Level
			if level < 1 || level > len(headingSizes) {
				level = len(headingSizes)
			}
			para := doc.AddParagraph()
			para.AddText(blk.Text).Size(headingSizes[level-1]).Bold()

		case BlockParagraph:
			doc.AddParagraph().AddText(blk.Text)

		case BlockQuote:
			para := doc.AddParagraph()
			para.AddText(blk.Text).Italic().Color(quoteColor)

		case BlockListItem:
			marker := "• "
			if blk.List == ListNumber {
				marker = fmt.Sprintf("%d. ", blk.Ordinal)
			}
			doc.AddParagraph().AddText(marker + blk.Text)
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDOCXGeneration, err)
	}
	return buf.Bytes(), nil
}
