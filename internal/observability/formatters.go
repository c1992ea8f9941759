// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/resume-engine/internal/rendering"
	"github.com/jonathan/resume-engine/internal/schemas"
	"github.com/jonathan/resume-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		// Truncate long lines by rune so accented text stays valid
		if r := []rune(line); len(r) > boxWidth-4 {
			line = string(r[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSnapshot outputs the size of every list in a profile snapshot.
func (p *Printer) PrintSnapshot(snapshot *types.ProfileSnapshot) {
	if snapshot == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", snapshot.Identity.Name))
	sb.WriteString(fmt.Sprintf("Role:       %s\n", snapshot.Identity.Role))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Paragraphs: %d\n", len(snapshot.Narrative.Paragraphs)))
	sb.WriteString(fmt.Sprintf("Positions:  %d\n", len(snapshot.WorkHistory)))
	sb.WriteString(fmt.Sprintf("Projects:   %d\n", len(snapshot.Projects)))
	sb.WriteString(fmt.Sprintf("Education:  %d\n", len(snapshot.Education)))

	if len(snapshot.SkillGroups) > 0 {
		sb.WriteString("\nSkill Groups:\n")
		count := min(len(snapshot.SkillGroups), maxItemsToShow)
		for i := 0; i < count; i++ {
			g := snapshot.SkillGroups[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d%%, %d skills)\n", g.Title, types.ClampLevel(g.Level), len(g.Skills)))
		}
		if len(snapshot.SkillGroups) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(snapshot.SkillGroups)-maxItemsToShow))
		}
	}

	p.printBox("PROFILE SNAPSHOT", sb.String())
}

// PrintStyle outputs the resolved template, palette, fonts and hidden sections.
func (p *Printer) PrintStyle(cfg *types.StyleConfig) {
	if cfg == nil {
		return
	}

	resolved := cfg.WithDefaults()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", resolved.Template))
	sb.WriteString(fmt.Sprintf("Colors:   %s / %s / %s\n", resolved.Colors.Primary, resolved.Colors.Secondary, resolved.Colors.Accent))
	sb.WriteString(fmt.Sprintf("Heading:  %s (resolved %s) %dpt\n",
		resolved.Fonts.Heading, rendering.ResolveFont(resolved.Fonts.Heading, rendering.RoleHeading), resolved.Fonts.SectionTitleSize))
	sb.WriteString(fmt.Sprintf("Body:     %s (resolved %s) %dpt\n",
		resolved.Fonts.Body, rendering.ResolveFont(resolved.Fonts.Body, rendering.RoleBody), resolved.Fonts.BodySize))

	var order []string
	var hidden []string
	for _, id := range resolved.OrderedSections() {
		order = append(order, string(id))
		if !resolved.IsVisible(id) {
			hidden = append(hidden, string(id))
		}
	}
	sb.WriteString("\nOrder:\n")
	sb.WriteString("  " + strings.Join(order, " > ") + "\n")
	if len(hidden) > 0 {
		sb.WriteString("Hidden:\n")
		sb.WriteString("  " + strings.Join(hidden, ", ") + "\n")
	}

	p.printBox("STYLE CONFIG", sb.String())
}

// PrintDocument outputs the sections placed in each region of a composed document.
func (p *Printer) PrintDocument(doc *rendering.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:   %s\n", doc.Title))
	sb.WriteString(fmt.Sprintf("Regions: %d\n", len(doc.Regions)))
	for i, r := range doc.Regions {
		sb.WriteString(fmt.Sprintf("\nRegion %d (x=%.0fmm, width=%.0fmm):\n", i+1, r.X, r.Width))
		for _, s := range r.Sections {
			sb.WriteString(fmt.Sprintf("  • %s (%d blocks)\n", s.ID, len(s.Blocks)))
		}
	}

	p.printBox("DOCUMENT LAYOUT", sb.String())
}

// RenderSummary describes one written output file
type RenderSummary struct {
	Template types.TemplateID
	Format   string
	Engine   string
	Path     string
	Bytes    int
	Duration time.Duration
}

// PrintRender outputs a summary of written files.
func (p *Printer) PrintRender(summaries []RenderSummary) {
	if len(summaries) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range summaries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("Template: %s (%s, %s)\n", s.Template, s.Format, s.Engine))
		sb.WriteString(fmt.Sprintf("Output:   %s\n", s.Path))
		sb.WriteString(fmt.Sprintf("Size:     %d bytes in %s\n", s.Bytes, s.Duration.Round(time.Millisecond)))
	}

	p.printBox("RENDERED OUTPUT", sb.String())
}

// PrintValidation outputs schema field errors, or a success line when there are none.
func (p *Printer) PrintValidation(name string, fields []schemas.FieldError) {
	var sb strings.Builder
	if len(fields) == 0 {
		sb.WriteString("✅ valid\n")
	} else {
		sb.WriteString(fmt.Sprintf("❌ %d error(s)\n\n", len(fields)))
		count := min(len(fields), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", fields[i].Field, fields[i].Message))
		}
		if len(fields) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(fields)-maxItemsToShow))
		}
	}

	p.printBox(fmt.Sprintf("VALIDATION: %s", strings.ToUpper(name)), sb.String())
}
