package mdxconv

import (
	"strings"

	"github.com/keenlychuang/mdx-to-docs/internal/yamlutil"
)

const frontMatterDelimiter = "---"

// splitFrontMatter separates a leading YAML front matter block from the
// document body. The block must start on the first line with "---" and
// end at the next "---" line. The metadata block is always discarded
// from the body; parsing it is best-effort, so a malformed block yields
// empty metadata rather than an error.
func splitFrontMatter(content string) (DocumentMeta, string) {
	var meta DocumentMeta

	rest, ok := strings.CutPrefix(content, frontMatterDelimiter+"\n")
	if !ok {
		return meta, content
	}

	end := strings.Index(rest, "\n"+frontMatterDelimiter)
	if end == -1 {
		// Unterminated block: not front matter, leave content alone.
		return meta, content
	}

	block := rest[:end]
	body := rest[end+len("\n"+frontMatterDelimiter):]

	// Skip the remainder of the closing delimiter line.
	if idx := strings.Index(body, "\n"); idx != -1 {
		body = body[idx+1:]
	} else {
		body = ""
	}

	// Best-effort: malformed YAML still strips the block.
	_ = yamlutil.Unmarshal([]byte(block), &meta)

	return meta, body
}
