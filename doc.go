// Package mdxconv converts MDX documents to PDF and DOCX files.
//
// MDX is Markdown extended with JSX-like component markup and
// import/export declarations. The conversion pipeline strips the
// non-Markdown markup, renders the remaining Markdown to HTML with
// goldmark, and feeds the HTML to two independent emitters: a DOCX
// builder that walks the parsed HTML block by block, and a PDF
// rasterizer that prints the full styled HTML with headless Chrome.
//
// # Quick Start
//
// Create a converter, convert content, and close when done:
//
//	conv, err := mdxconv.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, mdxconv.Input{
//	    Markdown: "# Hello\n\nWorld <Widget/>",
//	    Formats:  mdxconv.FormatBoth,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", result.PDF, 0o644)
//	os.WriteFile("output.docx", result.DOCX, 0o644)
//
// The result also carries the intermediate HTML (result.HTML) for
// debugging and the parsed front matter metadata (result.Meta).
//
// # Conversion Pipeline
//
//  1. Component stripping (import/export lines, <Foo>...</Foo> spans,
//     self-closing <Foo/> tags) plus line-ending normalization
//  2. YAML front matter extraction (goccy/go-yaml)
//  3. Markdown to HTML via goldmark (GFM + syntax highlighting by
//     default, plain CommonMark with WithEngine(EngineCommonMark))
//  4. DOCX: block-level HTML walk mapped to styled paragraphs
//  5. PDF: full styled HTML rendered by headless Chrome (go-rod by
//     default, chromedp with WithPDFBackend(BackendChromedp))
//
// Note the deliberate asymmetry: the PDF path prints everything the
// renderer produced (tables, code blocks, inline styling included),
// while the DOCX path only carries headings, paragraphs, list items,
// and blockquotes as plain text.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. go-rod downloads a managed
// Chromium on first run. For containers and CI set ROD_BROWSER_BIN to
// a pre-installed binary; the sandbox is disabled automatically when
// CI=true or ROD_BROWSER_BIN is set.
package mdxconv
