package mdpdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"github.com/mitchellh/go-wordwrap"
)

const pointsPerInch = 72.0

// pdfRenderer paginates a parsed document and produces the output bytes.
type pdfRenderer interface {
	Render(ctx context.Context, doc *Document, page *PageSettings) ([]byte, error)
}

// fpdfRenderer renders documents with the fpdf engine. Pagination is owned
// entirely by fpdf's automatic page break; the document model never inserts
// page breaks itself.
type fpdfRenderer struct {
	styles StyleSheet
}

func newFpdfRenderer(styles StyleSheet) *fpdfRenderer {
	return &fpdfRenderer{styles: styles}
}

func (r *fpdfRenderer) Render(ctx context.Context, doc *Document, page *PageSettings) ([]byte, error) {
	if page == nil {
		page = DefaultPageSettings()
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	pdf := fpdf.New(fpdfOrientation(page.Orientation), "pt", fpdfPageSize(page.Size), "")
	margin := page.Margin * pointsPerInch
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(doc.Title, true)
	if doc.Author != "" {
		pdf.SetAuthor(doc.Author, true)
	}
	pdf.SetCreator("mdpdf", true)

	// Core fonts are cp1252; the translator maps what it can and the rest
	// degrades to the replacement character instead of corrupting the page.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	r.renderTitle(pdf, tr, doc.Title)

	for _, b := range doc.Blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.renderBlock(pdf, tr, b)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}

func (r *fpdfRenderer) renderBlock(pdf *fpdf.Fpdf, tr func(string) string, block Block) {
	switch b := block.(type) {
	case Heading:
		r.renderHeading(pdf, tr, b)
	case Paragraph:
		r.renderParagraph(pdf, tr, b)
	case BulletList:
		r.renderList(pdf, tr, b.Items, false)
	case NumberedList:
		r.renderList(pdf, tr, b.Items, true)
	case CodeBlock:
		r.renderCodeBlock(pdf, tr, b)
	case Rule:
		pdf.Ln(r.styles.RuleGap)
	case Spacer:
		pdf.Ln(b.Height)
	}
}

// renderTitle writes the centered title element that precedes all content.
func (r *fpdfRenderer) renderTitle(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	st := r.styles.Title
	r.setStyler(pdf, st)
	pdf.MultiCell(0, st.lineHeight(), tr(title), "", "C", false)
	pdf.Ln(st.SpaceAfter + r.styles.TitleGap)
}

func (r *fpdfRenderer) renderHeading(pdf *fpdf.Fpdf, tr func(string) string, h Heading) {
	st := r.styles.Headings[h.Level-1]
	pdf.Ln(st.SpaceBefore)
	r.writeSpans(pdf, tr, h.Spans, st)
	pdf.Ln(st.lineHeight())
	if h.Level == 1 {
		r.accentRule(pdf)
	}
	pdf.Ln(st.SpaceAfter)
}

// accentRule draws the accent-colored underline below a level-1 heading.
func (r *fpdfRenderer) accentRule(pdf *fpdf.Fpdf) {
	left, _, right, _ := pdf.GetMargins()
	width, _ := pdf.GetPageSize()
	y := pdf.GetY()
	pdf.SetDrawColor(r.styles.Accent.R, r.styles.Accent.G, r.styles.Accent.B)
	pdf.SetLineWidth(1)
	pdf.Line(left, y, width-right, y)
}

func (r *fpdfRenderer) renderParagraph(pdf *fpdf.Fpdf, tr func(string) string, p Paragraph) {
	st := r.styles.Body
	pdf.Ln(st.SpaceBefore)
	if allPlain(p.Spans) {
		// Justification is only possible for a uniform style run.
		r.setStyler(pdf, st)
		pdf.MultiCell(0, st.lineHeight(), tr(spanText(p.Spans)), "", "J", false)
	} else {
		r.writeSpans(pdf, tr, p.Spans, st)
		pdf.Ln(st.lineHeight())
	}
	pdf.Ln(st.SpaceAfter)
}

func (r *fpdfRenderer) renderList(pdf *fpdf.Fpdf, tr func(string) string, items [][]Span, numbered bool) {
	st := r.styles.ListItem
	left, _, _, _ := pdf.GetMargins()
	indent := left + r.styles.ListIndent

	for i, item := range items {
		pdf.Ln(st.SpaceBefore)
		pdf.SetLeftMargin(indent)
		pdf.SetX(indent)

		label := "•"
		if numbered {
			label = fmt.Sprintf("%d.", i+1)
		}
		r.setStyler(pdf, st)
		labelWidth := pdf.GetStringWidth(tr(label)) + 0.35*st.Size
		pdf.CellFormat(labelWidth, st.lineHeight(), tr(label), "", 0, "L", false, 0, "")

		// Continuation lines align with the item text, not the label.
		pdf.SetLeftMargin(indent + labelWidth)
		r.writeSpans(pdf, tr, item, st)
		pdf.Ln(st.lineHeight() + st.SpaceAfter)
		pdf.SetLeftMargin(left)
	}
	pdf.Ln(r.styles.Body.SpaceAfter)
}

func (r *fpdfRenderer) renderCodeBlock(pdf *fpdf.Fpdf, tr func(string) string, cb CodeBlock) {
	st := r.styles.CodeBlock
	left, _, right, _ := pdf.GetMargins()
	width, _ := pdf.GetPageSize()
	boxWidth := width - left - right - 2*r.styles.CodeIndent

	r.setStyler(pdf, st)
	charWidth := pdf.GetStringWidth("0")
	columns := uint(boxWidth / charWidth)
	if columns < 1 {
		columns = 1
	}

	pdf.SetLeftMargin(left + r.styles.CodeIndent)
	pdf.SetX(left + r.styles.CodeIndent)
	for _, line := range cb.Lines {
		for _, wrapped := range strings.Split(wordwrap.WrapString(line, columns), "\n") {
			pdf.CellFormat(boxWidth, st.lineHeight(), tr(wrapped), "", 1, "L", true, 0, "")
		}
	}
	pdf.SetLeftMargin(left)
	pdf.SetX(left)
}

// writeSpans renders a styled span sequence as flowing text at the current
// position, wrapping at the right margin. The base style's line height is
// used throughout so baselines stay aligned across style changes.
func (r *fpdfRenderer) writeSpans(pdf *fpdf.Fpdf, tr func(string) string, spans []Span, base Styler) {
	lh := base.lineHeight()
	for _, sp := range spans {
		switch sp.Kind {
		case SpanBold:
			r.setStylerVariant(pdf, base, "B")
			pdf.Write(lh, tr(sp.Text))
		case SpanItalic:
			r.setStylerVariant(pdf, base, "I")
			pdf.Write(lh, tr(sp.Text))
		case SpanLink:
			r.setStylerVariant(pdf, base, "U")
			pdf.Write(lh, tr(sp.Text))
		case SpanCode:
			r.writeInlineCode(pdf, tr, sp.Text)
			r.setStyler(pdf, base)
		default:
			r.setStyler(pdf, base)
			pdf.Write(lh, tr(sp.Text))
		}
	}
}

// writeInlineCode renders an inline code span in a fixed-width font on a
// shaded background box.
func (r *fpdfRenderer) writeInlineCode(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	st := r.styles.InlineCode
	r.setStyler(pdf, st)
	s := tr(text)
	w := pdf.GetStringWidth(s) + 0.5*st.Size
	pdf.CellFormat(w, st.lineHeight(), s, "", 0, "C", true, 0, "")
}

func (r *fpdfRenderer) setStyler(pdf *fpdf.Fpdf, s Styler) {
	pdf.SetFont(s.Font, s.Style, s.Size)
	pdf.SetTextColor(s.Color.R, s.Color.G, s.Color.B)
	pdf.SetFillColor(s.Fill.R, s.Fill.G, s.Fill.B)
}

// setStylerVariant applies the base style with extra style letters merged in.
func (r *fpdfRenderer) setStylerVariant(pdf *fpdf.Fpdf, base Styler, extra string) {
	style := base.Style
	for _, c := range extra {
		if !strings.ContainsRune(style, c) {
			style += string(c)
		}
	}
	base.Style = style
	r.setStyler(pdf, base)
}

func allPlain(spans []Span) bool {
	for _, sp := range spans {
		if sp.Kind != SpanPlain {
			return false
		}
	}
	return true
}

// fpdfPageSize maps a validated page size to an fpdf size string.
func fpdfPageSize(size string) string {
	switch strings.ToLower(size) {
	case PageSizeA4:
		return "A4"
	case PageSizeLegal:
		return "Legal"
	default:
		return "Letter"
	}
}

// fpdfOrientation maps a validated orientation to an fpdf orientation code.
func fpdfOrientation(orientation string) string {
	if strings.ToLower(orientation) == OrientationLandscape {
		return "L"
	}
	return "P"
}
