package rendering

import (
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// A4 page geometry in millimetres
const (
	PageWidth  = 210.0
	PageHeight = 297.0
)

// Document is the intermediate layout tree handed to a backend
type Document struct {
	Title  string
	Author string
	Margin Margin
	// Regions are vertical flows laid out side by side. Each starts at the top of the first page.
	Regions []Region
}

// Margin is the top and bottom page margin shared by every region
type Margin struct {
	Top, Bottom float64
}

// Region is a column at a horizontal offset with an optional background
type Region struct {
	X        float64
	Width    float64
	Padding  float64
	Fill     *RGB
	Sections []Section
}

// Section is the content of one resume section inside a region
type Section struct {
	ID     types.SectionID
	Blocks []Block
}

// TextStyle is the resolved typography of a text block
type TextStyle struct {
	Font   FontID
	Bold   bool
	Italic bool
	Size   float64
	Color  RGB
}

// Align is a horizontal text alignment
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Block is a layout primitive. The set of implementations is closed.
type Block interface {
	block()
}

// Heading is a title line, optionally underlined with a rule
type Heading struct {
	Text  string
	Style TextStyle
	Align Align
	Rule  *RGB
}

// Paragraph is wrapped text
type Paragraph struct {
	Text  string
	Style TextStyle
	Align Align
}

// Row is a left-aligned text and a right-aligned text sharing a visual row
type Row struct {
	Left       string
	LeftStyle  TextStyle
	Right      string
	RightStyle TextStyle
}

// List renders items either joined on one wrapped line or as bullets
type List struct {
	Items     []string
	Style     TextStyle
	Inline    bool
	Separator string
}

// Rule is a horizontal line across the region
type Rule struct {
	Color RGB
	Width float64
}

// Spacer is vertical whitespace
type Spacer struct {
	Height float64
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (Row) block()       {}
func (List) block()      {}
func (Rule) block()      {}
func (Spacer) block()    {}

// Text returns every visible string of the document in layout order, one per line.
func (d *Document) Text() string {
	var sb strings.Builder
	for _, region := range d.Regions {
		for _, section := range region.Sections {
			for _, b := range section.Blocks {
				for _, s := range blockText(b) {
					sb.WriteString(s)
					sb.WriteByte('\n')
				}
			}
		}
	}
	return sb.String()
}

// SectionIDs returns the sections of the document in layout order
func (d *Document) SectionIDs() []types.SectionID {
	var ids []types.SectionID
	for _, region := range d.Regions {
		for _, section := range region.Sections {
			ids = append(ids, section.ID)
		}
	}
	return ids
}

// HasSection reports whether the document contains a section
func (d *Document) HasSection(id types.SectionID) bool {
	return d.Section(id) != nil
}

// Section returns the first section with the given id, or nil
func (d *Document) Section(id types.SectionID) *Section {
	for i := range d.Regions {
		for j := range d.Regions[i].Sections {
			if d.Regions[i].Sections[j].ID == id {
				return &d.Regions[i].Sections[j]
			}
		}
	}
	return nil
}

// Text returns the visible strings of the section, one per line
func (s *Section) Text() string {
	var sb strings.Builder
	for _, b := range s.Blocks {
		for _, line := range blockText(b) {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func blockText(b Block) []string {
	switch b := b.(type) {
	case Heading:
		return []string{b.Text}
	case Paragraph:
		return []string{b.Text}
	case Row:
		return []string{b.Left, b.Right}
	case List:
		if b.Inline {
			return []string{strings.Join(b.Items, b.Separator)}
		}
		return b.Items
	default:
		return nil
	}
}
