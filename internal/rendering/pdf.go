package rendering

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pdfCreator   = "resume-engine"
	ptToMM       = 25.4 / 72
	lineSpacing  = 1.3
	bulletIndent = 4.0
)

// pdfTimestamp is written as both creation and modification date so that
// identical documents produce identical bytes.
var pdfTimestamp = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// WritePDF lays out doc with the core PDF fonts and writes the finished file to w.
// Nothing is written to w when layout fails.
func WritePDF(w io.Writer, doc *Document) error {
	if err := checkDocument(doc); err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(pdfTimestamp)
	pdf.SetModificationDate(pdfTimestamp)
	pdf.SetCreator(pdfCreator, false)
	pdf.SetProducer(pdfCreator, false)
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.Author, true)

	p := &pdfWriter{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		doc: doc,
	}
	p.addPage()
	for _, region := range doc.Regions {
		p.region(region)
	}

	if pdf.Err() {
		return &RenderError{Message: "failed to lay out document", Cause: pdf.Error()}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return &RenderError{Message: "failed to encode PDF", Cause: err}
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return &RenderError{Message: "failed to write PDF", Cause: err}
	}
	return nil
}

// checkDocument rejects trees the layout code cannot place.
func checkDocument(doc *Document) error {
	if doc == nil {
		return &RenderError{Message: "document is nil"}
	}
	if len(doc.Regions) == 0 {
		return &RenderError{Message: "document has no regions"}
	}
	if doc.Margin.Top < 0 || doc.Margin.Bottom < 0 || doc.Margin.Top+doc.Margin.Bottom >= PageHeight {
		return &RenderError{Message: fmt.Sprintf("invalid page margins %.1f/%.1f", doc.Margin.Top, doc.Margin.Bottom)}
	}
	for i, r := range doc.Regions {
		if r.X < 0 || r.X+r.Width > PageWidth+0.01 {
			return &RenderError{Message: fmt.Sprintf("region %d lies outside the page", i)}
		}
		if r.Width-2*r.Padding <= 0 {
			return &RenderError{Message: fmt.Sprintf("region %d has no usable width", i)}
		}
	}
	return nil
}

type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	doc *Document

	page    int
	x, y, w float64
	style   TextStyle
}

// addPage appends a page and paints every region background on it.
func (p *pdfWriter) addPage() {
	p.pdf.SetPage(p.pdf.PageCount())
	p.pdf.AddPage()
	for _, r := range p.doc.Regions {
		if r.Fill == nil {
			continue
		}
		p.pdf.SetFillColor(r.Fill.R, r.Fill.G, r.Fill.B)
		p.pdf.Rect(r.X, 0, r.Width, PageHeight, "F")
	}
}

func (p *pdfWriter) region(r Region) {
	p.switchPage(1)
	p.x = r.X + r.Padding
	p.w = r.Width - 2*r.Padding
	p.y = p.doc.Margin.Top

	for _, section := range r.Sections {
		for _, b := range section.Blocks {
			p.block(b)
		}
	}
}

func (p *pdfWriter) switchPage(page int) {
	for page > p.pdf.PageCount() {
		p.addPage()
	}
	p.page = page
	p.pdf.SetPage(page)
	// fpdf caches the current font; each page has its own text state.
	p.applyStyle(true)
}

// ensure moves to the next page when h does not fit below the cursor.
// A block taller than a whole page is placed at the top and allowed to overflow.
func (p *pdfWriter) ensure(h float64) {
	if p.y+h <= PageHeight-p.doc.Margin.Bottom || p.y <= p.doc.Margin.Top {
		return
	}
	p.switchPage(p.page + 1)
	p.y = p.doc.Margin.Top
}

func (p *pdfWriter) block(b Block) {
	switch b := b.(type) {
	case Heading:
		p.text(b.Text, b.Style, b.Align)
		if b.Rule != nil {
			p.y += 0.8
			p.rule(*b.Rule, 0.3)
			p.y += 0.4
		}
	case Paragraph:
		p.text(b.Text, b.Style, b.Align)
	case Row:
		p.row(b)
	case List:
		p.list(b)
	case Rule:
		p.rule(b.Color, b.Width)
	case Spacer:
		p.y += b.Height
	default:
		p.pdf.SetError(fmt.Errorf("unsupported block %T", b))
	}
}

func (p *pdfWriter) setStyle(s TextStyle) {
	p.style = s
	p.applyStyle(false)
}

func (p *pdfWriter) applyStyle(force bool) {
	s := p.style
	if s.Font == "" {
		return
	}
	var st strings.Builder
	if s.Bold {
		st.WriteByte('B')
	}
	if s.Italic {
		st.WriteByte('I')
	}
	// SetFont is a no-op when family, style and size match the cached font,
	// so a different size first makes the font reach the new page's stream.
	if force {
		p.pdf.SetFont(string(s.Font), st.String(), s.Size+1)
	}
	p.pdf.SetFont(string(s.Font), st.String(), s.Size)
	p.pdf.SetTextColor(s.Color.R, s.Color.G, s.Color.B)
}

func lineHeight(size float64) float64 {
	return size * ptToMM * lineSpacing
}

// lines encodes text for the core fonts and wraps it to width w.
func (p *pdfWriter) lines(text string, w float64) []string {
	if text == "" {
		return nil
	}
	raw := p.pdf.SplitLines([]byte(p.tr(text)), w)
	out := make([]string, len(raw))
	for i, l := range raw {
		out[i] = string(l)
	}
	return out
}

func (p *pdfWriter) text(text string, style TextStyle, align Align) {
	if align == "" {
		align = AlignLeft
	}
	p.setStyle(style)
	lh := lineHeight(style.Size)
	for _, line := range p.lines(text, p.w) {
		p.ensure(lh)
		p.pdf.SetXY(p.x, p.y)
		p.pdf.CellFormat(p.w, lh, line, "", 0, string(align), false, 0, "")
		p.y += lh
	}
}

func (p *pdfWriter) row(r Row) {
	p.setStyle(r.RightStyle)
	right := p.tr(r.Right)
	rightW := 0.0
	if right != "" {
		rightW = p.pdf.GetStringWidth(right) + 2
	}

	p.setStyle(r.LeftStyle)
	lh := max(lineHeight(r.LeftStyle.Size), lineHeight(r.RightStyle.Size))
	leftW := max(p.w-rightW, p.w/3)
	lines := p.lines(r.Left, leftW)
	if len(lines) == 0 {
		lines = []string{""}
	}

	for i, line := range lines {
		p.ensure(lh)
		p.pdf.SetXY(p.x, p.y)
		p.pdf.CellFormat(leftW, lh, line, "", 0, "L", false, 0, "")
		if i == 0 && right != "" {
			p.setStyle(r.RightStyle)
			p.pdf.SetXY(p.x+p.w-rightW, p.y)
			p.pdf.CellFormat(rightW, lh, right, "", 0, "R", false, 0, "")
			p.setStyle(r.LeftStyle)
		}
		p.y += lh
	}
}

func (p *pdfWriter) list(l List) {
	if l.Inline {
		p.text(strings.Join(l.Items, l.Separator), l.Style, AlignLeft)
		return
	}

	p.setStyle(l.Style)
	lh := lineHeight(l.Style.Size)
	bullet := p.tr("•")
	for _, item := range l.Items {
		for i, line := range p.lines(item, p.w-bulletIndent) {
			p.ensure(lh)
			if i == 0 {
				p.pdf.SetXY(p.x, p.y)
				p.pdf.CellFormat(bulletIndent, lh, bullet, "", 0, "L", false, 0, "")
			}
			p.pdf.SetXY(p.x+bulletIndent, p.y)
			p.pdf.CellFormat(p.w-bulletIndent, lh, line, "", 0, "L", false, 0, "")
			p.y += lh
		}
	}
}

func (p *pdfWriter) rule(c RGB, width float64) {
	p.ensure(1)
	p.pdf.SetDrawColor(c.R, c.G, c.B)
	p.pdf.SetLineWidth(max(width, 0.1))
	p.pdf.Line(p.x, p.y, p.x+p.w, p.y)
	p.y += 1
}
