package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// Single-column geometry
const (
	harvardMarginX = 18.0
	harvardMarginY = 16.0
)

// harvardTemplate is the classic single-column layout: a centered header followed
// by full-width sections.
type harvardTemplate struct{}

func (harvardTemplate) ID() types.TemplateID { return types.TemplateHarvard }

func (harvardTemplate) Compose(s *types.ProfileSnapshot, cfg *types.StyleConfig) *Document {
	th := resolveTheme(cfg)
	h := harvardComposer{s: s, cfg: cfg, th: th}

	region := Region{
		X:       0,
		Width:   PageWidth,
		Padding: harvardMarginX,
	}

	// Identity and contact always form the header.
	region.Sections = appendSection(region.Sections, types.SectionIdentity, cfg, h.identity)
	region.Sections = appendSection(region.Sections, types.SectionContact, cfg, h.contact)

	for _, id := range cfg.OrderedSections() {
		switch id {
		case types.SectionNarrative:
			region.Sections = appendSection(region.Sections, id, cfg, h.narrative)
		case types.SectionWorkHistory:
			region.Sections = appendSection(region.Sections, id, cfg, h.workHistory)
		case types.SectionEducation:
			region.Sections = appendSection(region.Sections, id, cfg, h.education)
		case types.SectionProjects:
			region.Sections = appendSection(region.Sections, id, cfg, h.projects)
		case types.SectionSkillGroups:
			region.Sections = appendSection(region.Sections, id, cfg, h.skillGroups)
		}
	}

	return &Document{
		Title:   documentTitle(s),
		Author:  s.Identity.Name,
		Margin:  Margin{Top: harvardMarginY, Bottom: harvardMarginY},
		Regions: []Region{region},
	}
}

// appendSection adds the section built by build when it is visible and has content.
func appendSection(sections []Section, id types.SectionID, cfg *types.StyleConfig, build func() []Block) []Section {
	if !cfg.IsVisible(id) {
		return sections
	}
	blocks := build()
	if len(blocks) == 0 {
		return sections
	}
	return append(sections, Section{ID: id, Blocks: blocks})
}

type harvardComposer struct {
	s   *types.ProfileSnapshot
	cfg *types.StyleConfig
	th  theme
}

func (h harvardComposer) bodyStyle() TextStyle {
	return TextStyle{Font: h.th.body, Size: h.th.bodySize, Color: h.th.primary}
}

func (h harvardComposer) sectionHeading(id types.SectionID) []Block {
	return []Block{
		Spacer{Height: 3},
		Heading{
			Text:  h.cfg.Labels.For(id),
			Style: TextStyle{Font: h.th.heading, Bold: true, Size: h.th.sectionSize, Color: h.th.primary},
			Align: AlignLeft,
			Rule:  &h.th.accent,
		},
		Spacer{Height: 1.5},
	}
}

func (h harvardComposer) identity() []Block {
	id := h.s.Identity
	var blocks []Block
	if id.Name != "" {
		blocks = append(blocks, Heading{
			Text:  id.Name,
			Style: TextStyle{Font: h.th.heading, Bold: true, Size: h.th.titleSize, Color: h.th.primary},
			Align: AlignCenter,
		})
	}
	if id.Role != "" {
		blocks = append(blocks, Paragraph{
			Text:  id.Role,
			Style: TextStyle{Font: h.th.heading, Italic: true, Size: h.th.subtitleSize, Color: h.th.secondary},
			Align: AlignCenter,
		})
	}
	if tagline := Sanitize(id.Tagline); tagline != "" {
		style := h.bodyStyle()
		style.Color = h.th.secondary
		blocks = append(blocks, Paragraph{Text: tagline, Style: style, Align: AlignCenter})
	}
	return blocks
}

func (h harvardComposer) contact() []Block {
	parts := contactParts(h.s)
	if len(parts) == 0 {
		return nil
	}
	style := h.bodyStyle()
	style.Color = h.th.secondary
	return []Block{
		Paragraph{Text: strings.Join(parts, " | "), Style: style, Align: AlignCenter},
		Spacer{Height: 1},
		Rule{Color: h.th.accent, Width: 0.4},
	}
}

func (h harvardComposer) narrative() []Block {
	var body []Block
	if subtitle := Sanitize(h.s.Narrative.Subtitle); subtitle != "" {
		style := h.bodyStyle()
		style.Italic = true
		body = append(body, Paragraph{Text: subtitle, Style: style})
	}
	for _, p := range h.s.Narrative.Paragraphs {
		if text := Sanitize(p); text != "" {
			body = append(body, Paragraph{Text: text, Style: h.bodyStyle()}, Spacer{Height: 1})
		}
	}
	if line := languagesLine(h.s.Narrative.Languages); line != "" {
		body = append(body, Paragraph{Text: h.cfg.Labels.Languages + ": " + line, Style: h.bodyStyle()})
	}
	if len(body) == 0 {
		return nil
	}
	return append(h.sectionHeading(types.SectionNarrative), body...)
}

func (h harvardComposer) workHistory() []Block {
	if len(h.s.WorkHistory) == 0 {
		return nil
	}
	blocks := h.sectionHeading(types.SectionWorkHistory)
	for _, entry := range h.s.WorkHistory {
		org := entry.Company
		if entry.Current {
			org += " (" + h.cfg.Labels.Current + ")"
		}
		blocks = append(blocks, Row{
			Left:       joinNonEmpty(" | ", entry.Title, org),
			LeftStyle:  TextStyle{Font: h.th.body, Bold: true, Size: h.th.subtitleSize, Color: h.th.primary},
			Right:      entry.Period,
			RightStyle: TextStyle{Font: h.th.body, Italic: true, Size: h.th.bodySize, Color: h.th.secondary},
		})
		if desc := Sanitize(entry.Description); desc != "" {
			blocks = append(blocks, Paragraph{Text: desc, Style: h.bodyStyle()})
		}
		blocks = append(blocks, Spacer{Height: 2})
	}
	return blocks
}

func (h harvardComposer) education() []Block {
	if len(h.s.Education) == 0 {
		return nil
	}
	blocks := h.sectionHeading(types.SectionEducation)
	for _, entry := range h.s.Education {
		blocks = append(blocks, Row{
			Left:       entry.Degree,
			LeftStyle:  TextStyle{Font: h.th.body, Bold: true, Size: h.th.subtitleSize, Color: h.th.primary},
			Right:      entry.Period,
			RightStyle: TextStyle{Font: h.th.body, Italic: true, Size: h.th.bodySize, Color: h.th.secondary},
		})
		if entry.Institution != "" {
			style := h.bodyStyle()
			style.Italic = true
			blocks = append(blocks, Paragraph{Text: entry.Institution, Style: style})
		}
		blocks = append(blocks, Spacer{Height: 2})
	}
	return blocks
}

func (h harvardComposer) projects() []Block {
	if len(h.s.Projects) == 0 {
		return nil
	}
	blocks := h.sectionHeading(types.SectionProjects)
	for _, p := range h.s.Projects {
		blocks = append(blocks, Paragraph{
			Text:  joinNonEmpty(" | ", p.Title, strings.Join(p.Stack, ", ")),
			Style: TextStyle{Font: h.th.body, Bold: true, Size: h.th.subtitleSize, Color: h.th.primary},
		})
		if desc := Sanitize(p.Description); desc != "" {
			blocks = append(blocks, Paragraph{Text: desc, Style: h.bodyStyle()})
		}
		blocks = append(blocks, Spacer{Height: 2})
	}
	return blocks
}

func (h harvardComposer) skillGroups() []Block {
	if len(h.s.SkillGroups) == 0 {
		return nil
	}
	blocks := h.sectionHeading(types.SectionSkillGroups)
	for _, g := range h.s.SkillGroups {
		blocks = append(blocks, Paragraph{
			Text:  skillGroupTitle(g),
			Style: TextStyle{Font: h.th.body, Bold: true, Size: h.th.bodySize, Color: h.th.primary},
		})
		if len(g.Skills) > 0 {
			blocks = append(blocks, List{Items: g.Skills, Style: h.bodyStyle(), Inline: true, Separator: ", "})
		}
		blocks = append(blocks, Spacer{Height: 1})
	}
	return blocks
}

// skillGroupTitle renders "Title (Level%)" with the level bounded to [0,100].
func skillGroupTitle(g types.SkillGroup) string {
	return fmt.Sprintf("%s (%d%%)", g.Title, types.ClampLevel(g.Level))
}

// contactParts collects the non-empty contact fields in display order.
func contactParts(s *types.ProfileSnapshot) []string {
	var parts []string
	for _, v := range []string{s.Contact.Email, s.Contact.Phone, s.Contact.Location, s.Identity.GitHub, s.Identity.LinkedIn} {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	for _, l := range s.Contact.Links {
		if l.URL != "" {
			parts = append(parts, l.URL)
		}
	}
	return parts
}

func languagesLine(languages []types.Language) string {
	parts := make([]string, 0, len(languages))
	for _, l := range languages {
		if l.Name == "" {
			continue
		}
		if l.Proficiency != "" {
			parts = append(parts, l.Name+" ("+l.Proficiency+")")
		} else {
			parts = append(parts, l.Name)
		}
	}
	return strings.Join(parts, ", ")
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

func documentTitle(s *types.ProfileSnapshot) string {
	return joinNonEmpty(" - ", s.Identity.Name, s.Identity.Role)
}
