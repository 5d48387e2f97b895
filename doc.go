// Package mdpdf converts a constrained subset of Markdown into a paginated
// PDF. It is a fallback renderer for environments where richer typesetting
// tools (pandoc, typst, a headless browser) are unavailable: no external
// processes, no network, just a line-oriented parser and a direct PDF
// layout engine.
//
// # Quick Start
//
//	svc := mdpdf.New()
//	pdfBytes, err := svc.Convert(ctx, mdpdf.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", pdfBytes, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Line normalization (CRLF/CR, blank-line compression)
//  2. YAML front matter extraction (title, author)
//  3. Line-by-line parsing into an ordered block model
//  4. PDF layout and pagination via fpdf
//
// # Supported Markdown
//
// Headings 1-6, paragraphs, bullet and numbered lists, fenced code blocks,
// horizontal rules, and inline bold, italic, code, and link markers. Link
// destinations are discarded; only the underlined label is rendered. The
// subset is deliberate: inputs using tables, images, or nested lists render
// those lines as plain text rather than failing.
//
// # Configuration
//
// Page geometry is configured per conversion via Input.Page; rendering
// styles via the WithStyleSheet option:
//
//	svc := mdpdf.New(mdpdf.WithStyleSheet(customStyles))
//	pdfBytes, err := svc.Convert(ctx, mdpdf.Input{
//	    Markdown: content,
//	    Page:     &mdpdf.PageSettings{Size: "a4", Orientation: "portrait", Margin: 1.0},
//	})
package mdpdf
