package rendering

import (
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// Two-column geometry
const (
	modernMainWidth   = 132.0
	modernMainPadding = 12.0
	modernSidePadding = 8.0
	modernMarginY     = 14.0
	modernSidebarTint = 0.88
)

// Column membership is fixed; order inside a column follows the config.
var (
	modernMainSections = map[types.SectionID]bool{
		types.SectionWorkHistory: true,
		types.SectionContact:     true,
	}
	modernSideSections = map[types.SectionID]bool{
		types.SectionNarrative:   true,
		types.SectionEducation:   true,
		types.SectionSkillGroups: true,
	}
)

// modernTemplate is the two-column layout. The main column is always sans-serif and
// the sidebar always serif; configured families only pick a font within that class.
type modernTemplate struct{}

func (modernTemplate) ID() types.TemplateID { return types.TemplateModern }

func (modernTemplate) Compose(s *types.ProfileSnapshot, cfg *types.StyleConfig) *Document {
	th := resolveTheme(cfg)
	m := modernComposer{
		s:   s,
		cfg: cfg,
		th:  th,
		main: columnFonts{
			heading: ResolveFontInClass(cfg.Fonts.Heading, ClassSans),
			body:    ResolveFontInClass(cfg.Fonts.Body, ClassSans),
		},
		side: columnFonts{
			heading: ResolveFontInClass(cfg.Fonts.Heading, ClassSerif),
			body:    ResolveFontInClass(cfg.Fonts.Body, ClassSerif),
		},
	}

	white := RGB{255, 255, 255}
	sidebarFill := Tint(th.secondary, modernSidebarTint)

	main := Region{X: 0, Width: modernMainWidth, Padding: modernMainPadding, Fill: &white}
	side := Region{X: modernMainWidth, Width: PageWidth - modernMainWidth, Padding: modernSidePadding, Fill: &sidebarFill}

	main.Sections = appendSection(main.Sections, types.SectionIdentity, cfg, m.identity)

	for _, id := range cfg.OrderedSections() {
		switch {
		case modernMainSections[id]:
			main.Sections = appendSection(main.Sections, id, cfg, m.builder(id))
		case modernSideSections[id]:
			side.Sections = appendSection(side.Sections, id, cfg, m.builder(id))
		}
	}

	return &Document{
		Title:   documentTitle(s),
		Author:  s.Identity.Name,
		Margin:  Margin{Top: modernMarginY, Bottom: modernMarginY},
		Regions: []Region{main, side},
	}
}

type columnFonts struct {
	heading, body FontID
}

type modernComposer struct {
	s          *types.ProfileSnapshot
	cfg        *types.StyleConfig
	th         theme
	main, side columnFonts
}

func (m modernComposer) builder(id types.SectionID) func() []Block {
	switch id {
	case types.SectionWorkHistory:
		return m.workHistory
	case types.SectionContact:
		return m.links
	case types.SectionNarrative:
		return m.narrative
	case types.SectionEducation:
		return m.education
	case types.SectionSkillGroups:
		return m.skills
	default:
		return func() []Block { return nil }
	}
}

func (m modernComposer) mainBody() TextStyle {
	return TextStyle{Font: m.main.body, Size: m.th.bodySize, Color: m.th.primary}
}

func (m modernComposer) sideBody() TextStyle {
	return TextStyle{Font: m.side.body, Size: m.th.bodySize, Color: m.th.primary}
}

func (m modernComposer) mainHeading(id types.SectionID) []Block {
	return []Block{
		Spacer{Height: 4},
		Heading{
			Text:  m.cfg.Labels.For(id),
			Style: TextStyle{Font: m.main.heading, Bold: true, Size: m.th.sectionSize, Color: m.th.primary},
			Align: AlignLeft,
			Rule:  &m.th.accent,
		},
		Spacer{Height: 2},
	}
}

func (m modernComposer) sideHeading(id types.SectionID) []Block {
	return []Block{
		Spacer{Height: 4},
		Heading{
			Text:  m.cfg.Labels.For(id),
			Style: TextStyle{Font: m.side.heading, Bold: true, Size: m.th.sectionSize, Color: m.th.accent},
			Align: AlignLeft,
		},
		Spacer{Height: 1.5},
	}
}

func (m modernComposer) identity() []Block {
	id := m.s.Identity
	var blocks []Block
	if id.Name != "" {
		blocks = append(blocks, Heading{
			Text:  id.Name,
			Style: TextStyle{Font: m.main.heading, Bold: true, Size: m.th.titleSize, Color: m.th.primary},
			Align: AlignLeft,
		})
	}
	if id.Role != "" {
		blocks = append(blocks, Paragraph{
			Text:  id.Role,
			Style: TextStyle{Font: m.main.body, Size: m.th.subtitleSize, Color: m.th.accent},
		})
	}
	if tagline := Sanitize(id.Tagline); tagline != "" {
		style := m.mainBody()
		style.Color = m.th.secondary
		blocks = append(blocks, Spacer{Height: 1}, Paragraph{Text: tagline, Style: style})
	}
	return blocks
}

func (m modernComposer) workHistory() []Block {
	if len(m.s.WorkHistory) == 0 {
		return nil
	}
	blocks := m.mainHeading(types.SectionWorkHistory)
	for _, entry := range m.s.WorkHistory {
		blocks = append(blocks,
			Paragraph{
				Text:  entry.Title,
				Style: TextStyle{Font: m.main.body, Bold: true, Size: m.th.subtitleSize, Color: m.th.primary},
			},
			Row{
				Left:       entry.Company,
				LeftStyle:  TextStyle{Font: m.main.body, Italic: true, Size: m.th.bodySize, Color: m.th.secondary},
				Right:      FormatPeriod(entry.Period, entry.Current, m.cfg.Labels.Present),
				RightStyle: TextStyle{Font: m.main.body, Size: m.th.bodySize, Color: m.th.secondary},
			},
		)
		if desc := Sanitize(entry.Description); desc != "" {
			blocks = append(blocks, Spacer{Height: 0.5}, Paragraph{Text: desc, Style: m.mainBody()})
		}
		blocks = append(blocks, Spacer{Height: 2.5})
	}
	return blocks
}

// links lists contact details and external profiles in the main column.
func (m modernComposer) links() []Block {
	var items []string
	add := func(label, value string) {
		if value = strings.TrimSpace(value); value == "" {
			return
		}
		if label != "" {
			value = label + ": " + value
		}
		items = append(items, value)
	}

	add("", m.s.Contact.Email)
	add("", m.s.Contact.Phone)
	add("", m.s.Contact.Location)
	add("GitHub", m.s.Identity.GitHub)
	add("LinkedIn", m.s.Identity.LinkedIn)
	for _, l := range m.s.Contact.Links {
		add(l.Label, l.URL)
	}

	if len(items) == 0 {
		return nil
	}
	return append(m.mainHeading(types.SectionContact), List{Items: items, Style: m.mainBody()})
}

func (m modernComposer) narrative() []Block {
	var body []Block
	if subtitle := Sanitize(m.s.Narrative.Subtitle); subtitle != "" {
		style := m.sideBody()
		style.Italic = true
		body = append(body, Paragraph{Text: subtitle, Style: style}, Spacer{Height: 1})
	}
	for _, p := range m.s.Narrative.Paragraphs {
		if text := Sanitize(p); text != "" {
			body = append(body, Paragraph{Text: text, Style: m.sideBody()}, Spacer{Height: 1.5})
		}
	}
	if line := languagesLine(m.s.Narrative.Languages); line != "" {
		label := m.sideBody()
		label.Bold = true
		body = append(body,
			Paragraph{Text: m.cfg.Labels.Languages, Style: label},
			Paragraph{Text: line, Style: m.sideBody()},
		)
	}
	if len(body) == 0 {
		return nil
	}
	return append(m.sideHeading(types.SectionNarrative), body...)
}

func (m modernComposer) education() []Block {
	if len(m.s.Education) == 0 {
		return nil
	}
	blocks := m.sideHeading(types.SectionEducation)
	for _, entry := range m.s.Education {
		bold := m.sideBody()
		bold.Bold = true
		blocks = append(blocks, Paragraph{Text: entry.Degree, Style: bold})
		if entry.Institution != "" {
			blocks = append(blocks, Paragraph{Text: entry.Institution, Style: m.sideBody()})
		}
		if entry.Period != "" {
			period := m.sideBody()
			period.Italic = true
			period.Color = m.th.secondary
			blocks = append(blocks, Paragraph{Text: FormatPeriod(entry.Period, false, m.cfg.Labels.Present), Style: period})
		}
		blocks = append(blocks, Spacer{Height: 2})
	}
	return blocks
}

func (m modernComposer) skills() []Block {
	skills := unionSkills(m.s.SkillGroups)
	if len(skills) == 0 {
		return nil
	}
	return append(m.sideHeading(types.SectionSkillGroups), List{Items: skills, Style: m.sideBody()})
}

// unionSkills flattens every group's skills in order, keeping the first
// occurrence of each label. Comparison is case-sensitive.
func unionSkills(groups []types.SkillGroup) []string {
	seen := make(map[string]bool)
	var out []string
	for _, g := range groups {
		for _, skill := range g.Skills {
			if skill == "" || seen[skill] {
				continue
			}
			seen[skill] = true
			out = append(out, skill)
		}
	}
	return out
}
