package types

import (
	"github.com/go-playground/validator/v10"
)

// TemplateID identifies a resume layout
type TemplateID string

const (
	// TemplateHarvard is the single-column layout
	TemplateHarvard TemplateID = "harvard"
	// TemplateModern is the two-column layout
	TemplateModern TemplateID = "modern"
	// TemplateClassic is a permanent alias of TemplateHarvard
	TemplateClassic TemplateID = "classic"
)

// TemplateIDs lists every accepted template identifier
var TemplateIDs = []TemplateID{TemplateHarvard, TemplateModern, TemplateClassic}

// SectionID identifies an independently visible block of the resume
type SectionID string

// Section identifiers
const (
	SectionIdentity    SectionID = "identity"
	SectionNarrative   SectionID = "narrative"
	SectionWorkHistory SectionID = "work_history"
	SectionProjects    SectionID = "projects"
	SectionSkillGroups SectionID = "skill_groups"
	SectionEducation   SectionID = "education"
	SectionContact     SectionID = "contact"
)

// DefaultSectionOrder is the order used when a config does not specify one
var DefaultSectionOrder = []SectionID{
	SectionIdentity,
	SectionNarrative,
	SectionWorkHistory,
	SectionEducation,
	SectionProjects,
	SectionSkillGroups,
	SectionContact,
}

// Font size bounds
const (
	MinFontSize = 8
	MaxFontSize = 72
)

// StyleConfig describes how a snapshot is laid out and themed
type StyleConfig struct {
	Template          TemplateID         `json:"template" validate:"required,oneof=harvard modern classic"`
	Colors            Colors             `json:"colors"`
	Fonts             Fonts              `json:"fonts"`
	SectionVisibility map[SectionID]bool `json:"section_visibility,omitempty" validate:"dive,keys,oneof=identity narrative work_history projects skill_groups education contact,endkeys"`
	SectionOrder      []SectionID        `json:"section_order,omitempty" validate:"dive,oneof=identity narrative work_history projects skill_groups education contact"`
	Labels            Labels             `json:"labels"`
}

// Colors holds abstract palette roles as hex strings. They are not checked here;
// the renderer resolves malformed values to a fallback color.
type Colors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Fonts holds family names and point sizes
type Fonts struct {
	Heading          string `json:"heading"`
	Body             string `json:"body"`
	TitleSize        int    `json:"title_size" validate:"min=8,max=72"`
	SectionTitleSize int    `json:"section_title_size" validate:"min=8,max=72"`
	SubtitleSize     int    `json:"subtitle_size" validate:"min=8,max=72"`
	BodySize         int    `json:"body_size" validate:"min=8,max=72"`
}

// Labels holds the visible text of section headings and markers
type Labels struct {
	Narrative   string `json:"narrative,omitempty"`
	WorkHistory string `json:"work_history,omitempty"`
	Projects    string `json:"projects,omitempty"`
	SkillGroups string `json:"skill_groups,omitempty"`
	Education   string `json:"education,omitempty"`
	Contact     string `json:"contact,omitempty"`
	Languages   string `json:"languages,omitempty"`
	Current     string `json:"current,omitempty"`
	Present     string `json:"present,omitempty"`
}

// For returns the heading label of a section
func (l Labels) For(id SectionID) string {
	switch id {
	case SectionNarrative:
		return l.Narrative
	case SectionWorkHistory:
		return l.WorkHistory
	case SectionProjects:
		return l.Projects
	case SectionSkillGroups:
		return l.SkillGroups
	case SectionEducation:
		return l.Education
	case SectionContact:
		return l.Contact
	default:
		return ""
	}
}

// DefaultStyleConfig returns the configuration used for every absent field
func DefaultStyleConfig() StyleConfig {
	visibility := make(map[SectionID]bool, len(DefaultSectionOrder))
	for _, id := range DefaultSectionOrder {
		visibility[id] = true
	}
	return StyleConfig{
		Template: TemplateHarvard,
		Colors: Colors{
			Primary:   "#1F2937",
			Secondary: "#4B5563",
			Accent:    "#2563EB",
		},
		Fonts: Fonts{
			Heading:          "Georgia",
			Body:             "Helvetica",
			TitleSize:        24,
			SectionTitleSize: 13,
			SubtitleSize:     11,
			BodySize:         10,
		},
		SectionVisibility: visibility,
		SectionOrder:      append([]SectionID(nil), DefaultSectionOrder...),
		Labels: Labels{
			Narrative:   "Resumo",
			WorkHistory: "Experiência",
			Projects:    "Projetos",
			SkillGroups: "Habilidades",
			Education:   "Formação",
			Contact:     "Contato",
			Languages:   "Idiomas",
			Current:     "Atual",
			Present:     "Presente",
		},
	}
}

// WithDefaults returns a copy of the config with every empty field filled from DefaultStyleConfig.
// The receiver is not modified.
func (c StyleConfig) WithDefaults() StyleConfig {
	d := DefaultStyleConfig()
	out := c

	if out.Template == "" {
		out.Template = d.Template
	}

	out.Colors.Primary = fallback(out.Colors.Primary, d.Colors.Primary)
	out.Colors.Secondary = fallback(out.Colors.Secondary, d.Colors.Secondary)
	out.Colors.Accent = fallback(out.Colors.Accent, d.Colors.Accent)

	out.Fonts.Heading = fallback(out.Fonts.Heading, d.Fonts.Heading)
	out.Fonts.Body = fallback(out.Fonts.Body, d.Fonts.Body)
	if out.Fonts.TitleSize == 0 {
		out.Fonts.TitleSize = d.Fonts.TitleSize
	}
	if out.Fonts.SectionTitleSize == 0 {
		out.Fonts.SectionTitleSize = d.Fonts.SectionTitleSize
	}
	if out.Fonts.SubtitleSize == 0 {
		out.Fonts.SubtitleSize = d.Fonts.SubtitleSize
	}
	if out.Fonts.BodySize == 0 {
		out.Fonts.BodySize = d.Fonts.BodySize
	}

	visibility := make(map[SectionID]bool, len(DefaultSectionOrder))
	for _, id := range DefaultSectionOrder {
		visibility[id] = true
	}
	for id, visible := range c.SectionVisibility {
		visibility[id] = visible
	}
	out.SectionVisibility = visibility

	if len(c.SectionOrder) == 0 {
		out.SectionOrder = d.SectionOrder
	} else {
		out.SectionOrder = append([]SectionID(nil), c.SectionOrder...)
	}

	out.Labels.Narrative = fallback(out.Labels.Narrative, d.Labels.Narrative)
	out.Labels.WorkHistory = fallback(out.Labels.WorkHistory, d.Labels.WorkHistory)
	out.Labels.Projects = fallback(out.Labels.Projects, d.Labels.Projects)
	out.Labels.SkillGroups = fallback(out.Labels.SkillGroups, d.Labels.SkillGroups)
	out.Labels.Education = fallback(out.Labels.Education, d.Labels.Education)
	out.Labels.Contact = fallback(out.Labels.Contact, d.Labels.Contact)
	out.Labels.Languages = fallback(out.Labels.Languages, d.Labels.Languages)
	out.Labels.Current = fallback(out.Labels.Current, d.Labels.Current)
	out.Labels.Present = fallback(out.Labels.Present, d.Labels.Present)

	return out
}

// Validate validates the StyleConfig using the validator.
func (c *StyleConfig) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// IsVisible reports whether a section should be rendered. Sections absent from
// SectionVisibility are visible.
func (c *StyleConfig) IsVisible(id SectionID) bool {
	visible, ok := c.SectionVisibility[id]
	return !ok || visible
}

// OrderedSections returns the configured section order with unknown and duplicate IDs
// dropped and any missing section appended in default order.
func (c *StyleConfig) OrderedSections() []SectionID {
	known := make(map[SectionID]bool, len(DefaultSectionOrder))
	for _, id := range DefaultSectionOrder {
		known[id] = true
	}

	seen := make(map[SectionID]bool, len(DefaultSectionOrder))
	order := make([]SectionID, 0, len(DefaultSectionOrder))
	for _, id := range c.SectionOrder {
		if !known[id] || seen[id] {
			continue
		}
		seen[id] = true
		order = append(order, id)
	}
	for _, id := range DefaultSectionOrder {
		if !seen[id] {
			order = append(order, id)
		}
	}
	return order
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
