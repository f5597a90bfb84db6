package mdxconv

import (
	"fmt"
	"html"
	"strings"
)

// pageTemplate wraps the rendered fragment in a complete HTML5 document
// for printing. The PDF path receives everything the renderer produced,
// including elements the block walker never surfaces.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>%s</style>
</head>
<body>
%s
</body>
</html>`

// documentCSS is the fixed print stylesheet: body margins and type,
// heading colors, blockquote border, code block background.
const documentCSS = `
body {
  font-family: -apple-system, 'Segoe UI', Helvetica, Arial, sans-serif;
  font-size: 11pt;
  line-height: 1.5;
  color: #24292e;
  margin: 20px;
}
h1, h2, h3, h4, h5, h6 {
  color: #1a365d;
  line-height: 1.25;
  margin-top: 1.2em;
  margin-bottom: 0.5em;
}
h1 { font-size: 2em; border-bottom: 1px solid #eaecef; padding-bottom: 0.3em; }
h2 { font-size: 1.5em; border-bottom: 1px solid #eaecef; padding-bottom: 0.3em; }
blockquote {
  margin: 0;
  padding: 0 1em;
  color: #6a737d;
  border-left: 4px solid #dfe2e5;
}
pre {
  background-color: #f6f8fa;
  padding: 10px;
  border-radius: 5px;
  overflow-x: auto;
}
code { font-family: 'SFMono-Regular', Consolas, Menlo, monospace; font-size: 90%; }
table { border-collapse: collapse; }
th, td { border: 1px solid #dfe2e5; padding: 6px 13px; }
img { max-width: 100%; }
`

// defaultTitle is used when neither front matter nor Input supply one.
const defaultTitle = "Document"

// buildPage assembles the printable HTML document from a fragment.
// Extra CSS is appended after the built-in stylesheet so it can
// override defaults.
func buildPage(fragment, extraCSS, title string) string {
	if title == "" {
		title = defaultTitle
	}

	css := documentCSS
	if extraCSS != "" {
		css += "\n" + extraCSS
	}

	return fmt.Sprintf(pageTemplate, html.EscapeString(title), sanitizeCSS(css), fragment)
}

// sanitizeCSS escapes sequences that could break out of a <style>
// block, preventing injection through user-supplied CSS.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
