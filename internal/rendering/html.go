package rendering

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
)

const htmlSource = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{margin:0;background:#e5e7eb}
.page{display:flex;width:210mm;min-height:297mm;margin:0 auto;background:#fff}
.region{box-sizing:border-box}
h1,h2,p,ul{margin:0}
hr{border:0;border-top-style:solid;margin:0.8mm 0 0.4mm}
.row{display:flex;justify-content:space-between;gap:4mm}
ul{padding-left:4mm}
@page{size:A4;margin:0}
@media print{body{background:#fff}.page{margin:0}}
</style>
</head>
<body>
<main class="page">
{{- range .Regions}}
<div class="region" style="{{.Style}}">
{{- range .Sections}}
<section data-section="{{.ID}}">
{{- range .Blocks}}{{template "block" .}}{{end}}
</section>
{{- end}}
</div>
{{- end}}
</main>
</body>
</html>
{{define "block"}}
{{- if eq .Kind "heading"}}<h2 style="{{.Style}}">{{.Text}}</h2>{{if .Rule}}<hr style="{{.Rule}}">{{end}}
{{- else if eq .Kind "paragraph"}}<p style="{{.Style}}">{{.Text}}</p>
{{- else if eq .Kind "row"}}<div class="row"><span style="{{.Style}}">{{.Text}}</span><span style="{{.RightStyle}}">{{.Right}}</span></div>
{{- else if eq .Kind "list"}}<ul style="{{.Style}}">{{range .Items}}<li>{{.}}</li>{{end}}</ul>
{{- else if eq .Kind "rule"}}<hr style="{{.Rule}}">
{{- else if eq .Kind "spacer"}}<div style="{{.Style}}"></div>
{{- end}}
{{- end}}`

var htmlPage = template.Must(template.New("resume").Parse(htmlSource))

var cssFamilies = map[FontID]string{
	FontHelvetica: "Helvetica, Arial, sans-serif",
	FontTimes:     "'Times New Roman', Times, serif",
	FontCourier:   "'Courier New', Courier, monospace",
}

type htmlView struct {
	Title   string
	Regions []htmlRegion
}

type htmlRegion struct {
	Style    template.CSS
	Sections []htmlSection
}

type htmlSection struct {
	ID     string
	Blocks []htmlBlock
}

type htmlBlock struct {
	Kind       string
	Text       string
	Right      string
	Items      []string
	Style      template.CSS
	RightStyle template.CSS
	Rule       template.CSS
}

// WriteHTML writes a standalone HTML page laid out from the same tree as WritePDF.
// Nothing is written to w when the tree is invalid.
func WriteHTML(w io.Writer, doc *Document) error {
	if err := checkDocument(doc); err != nil {
		return err
	}

	view := htmlView{Title: doc.Title}
	for _, r := range doc.Regions {
		view.Regions = append(view.Regions, newHTMLRegion(doc, r))
	}
	for _, r := range view.Regions {
		for _, s := range r.Sections {
			for _, b := range s.Blocks {
				if b.Kind == "" {
					return &RenderError{Message: fmt.Sprintf("unsupported block in section %q", s.ID)}
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := htmlPage.Execute(&buf, view); err != nil {
		return &RenderError{Message: "failed to render HTML", Cause: err}
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return &RenderError{Message: "failed to write HTML", Cause: err}
	}
	return nil
}

func newHTMLRegion(doc *Document, r Region) htmlRegion {
	style := fmt.Sprintf("width:%.1fmm;padding:%.1fmm %.1fmm %.1fmm", r.Width, doc.Margin.Top, r.Padding, doc.Margin.Bottom)
	if r.Fill != nil {
		style += ";background:" + cssColor(*r.Fill)
	}

	hr := htmlRegion{Style: template.CSS(style)}
	for _, s := range r.Sections {
		section := htmlSection{ID: string(s.ID)}
		for _, b := range s.Blocks {
			section.Blocks = append(section.Blocks, newHTMLBlock(b))
		}
		hr.Sections = append(hr.Sections, section)
	}
	return hr
}

// newHTMLBlock maps a block to its view. Unknown blocks yield an empty Kind.
func newHTMLBlock(b Block) htmlBlock {
	switch b := b.(type) {
	case Heading:
		v := htmlBlock{Kind: "heading", Text: b.Text, Style: textCSS(b.Style, b.Align)}
		if b.Rule != nil {
			v.Rule = ruleCSS(*b.Rule, 0.3)
		}
		return v
	case Paragraph:
		return htmlBlock{Kind: "paragraph", Text: b.Text, Style: textCSS(b.Style, b.Align)}
	case Row:
		return htmlBlock{
			Kind:       "row",
			Text:       b.Left,
			Right:      b.Right,
			Style:      textCSS(b.LeftStyle, AlignLeft),
			RightStyle: textCSS(b.RightStyle, AlignRight),
		}
	case List:
		if b.Inline {
			return htmlBlock{Kind: "paragraph", Text: strings.Join(b.Items, b.Separator), Style: textCSS(b.Style, AlignLeft)}
		}
		return htmlBlock{Kind: "list", Items: b.Items, Style: textCSS(b.Style, AlignLeft)}
	case Rule:
		return htmlBlock{Kind: "rule", Rule: ruleCSS(b.Color, b.Width)}
	case Spacer:
		return htmlBlock{Kind: "spacer", Style: template.CSS(fmt.Sprintf("height:%.1fmm", b.Height))}
	default:
		return htmlBlock{}
	}
}

func textCSS(s TextStyle, align Align) template.CSS {
	var b strings.Builder
	if family, ok := cssFamilies[s.Font]; ok {
		b.WriteString("font-family:" + family + ";")
	}
	fmt.Fprintf(&b, "font-size:%.1fpt;color:%s", s.Size, cssColor(s.Color))
	if s.Bold {
		b.WriteString(";font-weight:bold")
	}
	if s.Italic {
		b.WriteString(";font-style:italic")
	}
	switch align {
	case AlignCenter:
		b.WriteString(";text-align:center")
	case AlignRight:
		b.WriteString(";text-align:right")
	}
	return template.CSS(b.String())
}

func ruleCSS(c RGB, width float64) template.CSS {
	return template.CSS(fmt.Sprintf("border-top-width:%.1fmm;border-top-color:%s", max(width, 0.1), cssColor(c)))
}

func cssColor(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
