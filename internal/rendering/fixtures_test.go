package rendering

import (
	"github.com/jonathan/resume-engine/internal/types"
)

func sampleSnapshot() *types.ProfileSnapshot {
	return &types.ProfileSnapshot{
		Identity: types.Identity{
			Name:     "Ana Souza",
			Role:     "Backend Engineer",
			Tagline:  "Distributed systems and *reliable* APIs",
			GitHub:   "github.com/anasouza",
			LinkedIn: "linkedin.com/in/anasouza",
		},
		Narrative: types.Narrative{
			Title:      "About",
			Subtitle:   "Ten years shipping services",
			Paragraphs: []string{"I build **resilient** platforms.", "## Open source maintainer"},
			Languages: []types.Language{
				{Name: "Portuguese", Proficiency: "native"},
				{Name: "English", Proficiency: "fluent"},
			},
		},
		WorkHistory: []types.WorkEntry{
			{Title: "Staff Engineer", Company: "Globex", Period: "2022-03 - 2024-01", Current: true, Description: "- Led the **payments** rewrite"},
			{Title: "Engineer", Company: "Acme", Period: "2018-01 - 2022-02", Description: "Built [internal tools](https://acme.test)"},
		},
		Projects: []types.Project{
			{Title: "queuectl", Stack: []string{"Go", "Postgres"}, Description: "CLI for `pgmq`", Icon: types.IconTerminal},
		},
		SkillGroups: []types.SkillGroup{
			{Title: "Languages", Level: 90, Skills: []string{"Go", "Python", "SQL"}},
			{Title: "Infra", Level: 150, Skills: []string{"Kubernetes", "Go", "Terraform"}},
		},
		Education: []types.EducationEntry{
			{Degree: "BSc Computer Science", Institution: "USP", Period: "2010-02 - 2014-12"},
		},
		Contact: types.ContactInfo{
			Email:    "ana@example.com",
			Phone:    "+55 11 99999-0000",
			Location: "São Paulo",
			Links:    []types.Link{{Label: "Blog", URL: "https://ana.dev"}},
		},
	}
}

func configFor(id types.TemplateID) *types.StyleConfig {
	cfg := types.DefaultStyleConfig()
	cfg.Template = id
	return &cfg
}

func withHidden(id types.TemplateID, hidden ...types.SectionID) *types.StyleConfig {
	cfg := configFor(id)
	for _, s := range hidden {
		cfg.SectionVisibility[s] = false
	}
	return cfg
}
