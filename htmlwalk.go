package mdxconv

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// BlockKind identifies the structural role of a walked HTML block.
// Emitters switch on BlockKind exhaustively instead of comparing tag
// strings, so coverage is auditable.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockListItem
	BlockQuote
)

// ListType identifies the parent list of a BlockListItem.
type ListType int

const (
	ListNone ListType = iota
	ListBullet
	ListNumber
)

// Block is one block-level element extracted from the rendered HTML,
// in document order. Inline formatting inside a block collapses to
// plain text.
type Block struct {
	Kind    BlockKind
	Level   int      // heading level 1-6, zero otherwise
	List    ListType // parent list type for list items, ListNone otherwise
	Ordinal int      // 1-based position within the parent list, zero otherwise
	Text    string
}

// ParseBlocks parses an HTML fragment and returns its block-level
// elements in document order. Recognized blocks are headings 1-6,
// paragraphs, list items, and blockquotes; ul/ol containers are visited
// only to establish each item's parent-list type, and all other tags
// are skipped. Parsing is lenient: malformed HTML degrades to
// best-effort tree construction and never fails here.
func ParseBlocks(fragment string) ([]Block, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		// html.Parse only fails on reader errors, not on malformed markup.
		return nil, fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}

	body := findElement(doc, "body")
	if body == nil {
		body = doc
	}

	var blocks []Block
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		blocks = walkBlock(c, blocks)
	}
	return blocks, nil
}

// walkBlock appends the blocks found in n to acc.
func walkBlock(n *html.Node, acc []Block) []Block {
	if n.Type != html.ElementNode {
		return acc
	}

	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		if text := textContent(n); text != "" {
			acc = append(acc, Block{Kind: BlockHeading, Level: level, Text: text})
		}

	case "p":
		if text := textContent(n); text != "" {
			acc = append(acc, Block{Kind: BlockParagraph, Text: text})
		}

	case "blockquote":
		if text := textContent(n); text != "" {
			acc = append(acc, Block{Kind: BlockQuote, Text: text})
		}

	case "ul", "ol":
		acc = walkList(n, acc)
	}

	// All other tags (tables, code fences, images, hr) emit nothing.
	return acc
}

// walkList visits a list container, appending one BlockListItem per
// child item. The container itself emits no output. Nested lists inside
// an item are walked after the item's own text, with their own type and
// ordinals.
func walkList(list *html.Node, acc []Block) []Block {
	listType := ListBullet
	if list.Data == "ol" {
		listType = ListNumber
	}

	ordinal := 0
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		ordinal++

		if text := itemText(c); text != "" {
			acc = append(acc, Block{
				Kind:    BlockListItem,
				List:    listType,
				Ordinal: ordinal,
				Text:    text,
			})
		}

		// Nested lists become items of their own list.
		for g := c.FirstChild; g != nil; g = g.NextSibling {
			if g.Type == html.ElementNode && (g.Data == "ul" || g.Data == "ol") {
				acc = walkList(g, acc)
			}
		}
	}
	return acc
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// textContent flattens all descendant text of a node into plain text.
func textContent(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	if n.Type == html.ElementNode && n.Data == "br" {
		sb.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// itemText flattens an item's own text, excluding nested lists, which
// are emitted as separate items by the caller.
func itemText(li *html.Node) string {
	var sb strings.Builder
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
			continue
		}
		collectText(c, &sb)
	}
	return strings.TrimSpace(sb.String())
}
