package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-engine/internal/types"
)

func composeModern(t *testing.T, s *types.ProfileSnapshot, cfg *types.StyleConfig) *Document {
	t.Helper()
	doc, err := Compose(s, cfg)
	require.NoError(t, err)
	require.Len(t, doc.Regions, 2)
	return doc
}

func regionIDs(r Region) []types.SectionID {
	ids := make([]types.SectionID, 0, len(r.Sections))
	for _, s := range r.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestModern_ColumnMembership(t *testing.T) {
	doc := composeModern(t, sampleSnapshot(), configFor(types.TemplateModern))

	assert.Equal(t, []types.SectionID{types.SectionIdentity, types.SectionWorkHistory, types.SectionContact}, regionIDs(doc.Regions[0]))
	assert.Equal(t, []types.SectionID{types.SectionNarrative, types.SectionEducation, types.SectionSkillGroups}, regionIDs(doc.Regions[1]))
	assert.False(t, doc.HasSection(types.SectionProjects))
}

func TestModern_ColumnsHaveDistinctBackgrounds(t *testing.T) {
	doc := composeModern(t, sampleSnapshot(), configFor(types.TemplateModern))

	main, side := doc.Regions[0], doc.Regions[1]
	require.NotNil(t, main.Fill)
	require.NotNil(t, side.Fill)
	assert.NotEqual(t, *main.Fill, *side.Fill)
	assert.InDelta(t, PageWidth, main.Width+side.Width, 0.001)
	assert.Equal(t, main.Width, side.X)
}

func TestModern_OrderWithinColumnFollowsConfig(t *testing.T) {
	cfg := configFor(types.TemplateModern)
	cfg.SectionOrder = []types.SectionID{types.SectionContact, types.SectionSkillGroups, types.SectionWorkHistory}

	doc := composeModern(t, sampleSnapshot(), cfg)

	assert.Equal(t, []types.SectionID{types.SectionIdentity, types.SectionContact, types.SectionWorkHistory}, regionIDs(doc.Regions[0]))
	assert.Equal(t, []types.SectionID{types.SectionSkillGroups, types.SectionNarrative, types.SectionEducation}, regionIDs(doc.Regions[1]))
}

func TestModern_FontClassesAreFixedPerColumn(t *testing.T) {
	cfg := configFor(types.TemplateModern)
	cfg.Fonts.Heading = "Arial"
	cfg.Fonts.Body = "Georgia"

	doc := composeModern(t, sampleSnapshot(), cfg)

	for _, b := range doc.Regions[0].Sections[0].Blocks {
		if h, ok := b.(Heading); ok {
			assert.Equal(t, FontHelvetica, h.Style.Font)
		}
	}
	narrative := doc.Section(types.SectionNarrative)
	require.NotNil(t, narrative)
	for _, b := range narrative.Blocks {
		if p, ok := b.(Paragraph); ok {
			assert.Equal(t, FontTimes, p.Style.Font)
		}
	}
}

func TestModern_PeriodsAreReformatted(t *testing.T) {
	doc := composeModern(t, sampleSnapshot(), configFor(types.TemplateModern))

	text := doc.Section(types.SectionWorkHistory).Text()
	assert.Contains(t, text, "03/2022 - Presente")
	assert.Contains(t, text, "01/2018 - 02/2022")
	assert.Contains(t, doc.Section(types.SectionEducation).Text(), "02/2010 - 12/2014")
}

func TestModern_CurrentFlagDoesNotRewriteInput(t *testing.T) {
	s := sampleSnapshot()
	s.WorkHistory = []types.WorkEntry{{Title: "Engineer", Company: "Acme", Period: "2020-01 - 2021-01", Current: true}}

	doc := composeModern(t, s, configFor(types.TemplateModern))

	assert.Contains(t, doc.Text(), "01/2020 - Presente")
	assert.Equal(t, "2020-01 - 2021-01", s.WorkHistory[0].Period)
	assert.True(t, s.WorkHistory[0].Current)
}

func TestModern_CurrentSingleFragmentGetsPresent(t *testing.T) {
	tests := []struct {
		period string
		want   string
	}{
		{period: "2021", want: "2021 - Presente"},
		{period: "2021-05", want: "05/2021 - Presente"},
		{period: "2020-2024", want: "2020 - Presente"},
		{period: "Jan 2021", want: "01/2021 - Presente"},
		{period: "Since 2021", want: "Since 2021 - Presente"},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			s := sampleSnapshot()
			s.WorkHistory = []types.WorkEntry{{Title: "Engineer", Company: "Acme", Period: tt.period, Current: true}}

			doc := composeModern(t, s, configFor(types.TemplateModern))

			assert.Contains(t, doc.Section(types.SectionWorkHistory).Text(), tt.want)
			assert.Equal(t, tt.period, s.WorkHistory[0].Period)
		})
	}
}

func TestModern_CustomPresentLabel(t *testing.T) {
	cfg := configFor(types.TemplateModern)
	cfg.Labels.Present = "Present"

	doc := composeModern(t, sampleSnapshot(), cfg)

	assert.Contains(t, doc.Section(types.SectionWorkHistory).Text(), "03/2022 - Present")
}

func TestModern_SkillUnionIsDeduplicated(t *testing.T) {
	doc := composeModern(t, sampleSnapshot(), configFor(types.TemplateModern))

	section := doc.Section(types.SectionSkillGroups)
	require.NotNil(t, section)
	var list List
	for _, b := range section.Blocks {
		if l, ok := b.(List); ok {
			list = l
		}
	}
	assert.Equal(t, []string{"Go", "Python", "SQL", "Kubernetes", "Terraform"}, list.Items)
}

func TestUnionSkills_CaseSensitive(t *testing.T) {
	groups := []types.SkillGroup{
		{Skills: []string{"go", "Go", ""}},
		{Skills: []string{"Go", "GO"}},
	}
	assert.Equal(t, []string{"go", "Go", "GO"}, unionSkills(groups))
}

func TestModern_LinksIncludeProfiles(t *testing.T) {
	doc := composeModern(t, sampleSnapshot(), configFor(types.TemplateModern))

	text := doc.Section(types.SectionContact).Text()
	assert.Contains(t, text, "ana@example.com")
	assert.Contains(t, text, "GitHub: github.com/anasouza")
	assert.Contains(t, text, "LinkedIn: linkedin.com/in/anasouza")
	assert.Contains(t, text, "Blog: https://ana.dev")
}

func TestModern_HiddenSectionsAreOmitted(t *testing.T) {
	cfg := withHidden(types.TemplateModern, types.SectionSkillGroups, types.SectionWorkHistory)

	doc := composeModern(t, sampleSnapshot(), cfg)

	assert.False(t, doc.HasSection(types.SectionSkillGroups))
	assert.False(t, doc.HasSection(types.SectionWorkHistory))
	assert.NotContains(t, doc.Text(), "Kubernetes")
	assert.NotContains(t, doc.Text(), "Globex")
}
