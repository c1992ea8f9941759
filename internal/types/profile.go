// Package types provides type definitions for the profile data and style configuration
// consumed by the resume rendering engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Skill level bounds enforced by Normalize.
const (
	MinSkillLevel = 0
	MaxSkillLevel = 100
)

// ProfileSnapshot is the read-only composite of profile records rendered into a resume.
// Every slice is in display order.
type ProfileSnapshot struct {
	Identity    Identity         `json:"identity"`
	Narrative   Narrative        `json:"narrative"`
	WorkHistory []WorkEntry      `json:"work_history" validate:"dive"`
	Projects    []Project        `json:"projects" validate:"dive"`
	SkillGroups []SkillGroup     `json:"skill_groups" validate:"dive"`
	Education   []EducationEntry `json:"education"`
	Contact     ContactInfo      `json:"contact"`
}

// Identity holds the header data of a profile
type Identity struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Tagline  string `json:"tagline,omitempty"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Narrative is the "about" block: a titled list of paragraphs plus spoken languages
type Narrative struct {
	Title      string     `json:"title,omitempty"`
	Subtitle   string     `json:"subtitle,omitempty"`
	Paragraphs []string   `json:"paragraphs"`
	Languages  []Language `json:"languages,omitempty"`
}

// Language is a spoken language and a free-text proficiency
type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// WorkEntry is a single position in the work history.
// Period is free text; Current is independent of it.
type WorkEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// ProjectIcon is the symbolic icon attached to a project
type ProjectIcon string

// Supported project icons
const (
	IconCode     ProjectIcon = "code"
	IconGlobe    ProjectIcon = "globe"
	IconMobile   ProjectIcon = "mobile"
	IconDatabase ProjectIcon = "database"
	IconCloud    ProjectIcon = "cloud"
	IconTerminal ProjectIcon = "terminal"
	IconChart    ProjectIcon = "chart"
	IconShield   ProjectIcon = "shield"
)

// Project is a portfolio entry
type Project struct {
	Title       string      `json:"title"`
	Stack       []string    `json:"stack"`
	Description string      `json:"description"`
	Icon        ProjectIcon `json:"icon,omitempty" validate:"omitempty,oneof=code globe mobile database cloud terminal chart shield"`
}

// SkillGroup is a titled list of skills with a 0-100 proficiency level.
// Gradient is an opaque accent token owned by the web front end.
type SkillGroup struct {
	Title    string   `json:"title"`
	Level    int      `json:"level" validate:"min=0,max=100"`
	Gradient string   `json:"gradient,omitempty"`
	Skills   []string `json:"skills"`
}

// EducationEntry is a single degree
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
}

// ContactInfo holds the contact line data
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Links    []Link `json:"links,omitempty"`
}

// Link is a labeled external URL
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ClampLevel bounds a skill level to [MinSkillLevel, MaxSkillLevel]
func ClampLevel(level int) int {
	return min(max(level, MinSkillLevel), MaxSkillLevel)
}

// Normalize returns a copy of the snapshot with skill levels clamped.
// Order of every list is preserved and no other field is rewritten.
func (p *ProfileSnapshot) Normalize() *ProfileSnapshot {
	out := *p
	if p.SkillGroups != nil {
		out.SkillGroups = make([]SkillGroup, len(p.SkillGroups))
		for i, g := range p.SkillGroups {
			g.Level = ClampLevel(g.Level)
			out.SkillGroups[i] = g
		}
	}
	return &out
}

// Validate validates the snapshot using the validator.
func (p *ProfileSnapshot) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
