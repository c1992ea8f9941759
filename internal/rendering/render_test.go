package rendering

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-engine/internal/types"
)

// extractText returns the text of every page with whitespace removed.
func extractText(t *testing.T, data []byte) (string, int) {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		require.NoError(t, err)
		sb.WriteString(text)
	}
	return strings.Join(strings.Fields(sb.String()), ""), r.NumPage()
}

func e2eSnapshot() *types.ProfileSnapshot {
	return &types.ProfileSnapshot{
		WorkHistory: []types.WorkEntry{
			{Title: "Engineer", Company: "Acme", Period: "2020 - 2024", Description: "**Built** systems"},
		},
	}
}

func TestCompose_EndToEnd(t *testing.T) {
	doc, err := Compose(e2eSnapshot(), &types.StyleConfig{Template: types.TemplateHarvard})
	require.NoError(t, err)

	section := doc.Section(types.SectionWorkHistory)
	require.NotNil(t, section)
	heading, ok := section.Blocks[1].(Heading)
	require.True(t, ok)
	assert.Equal(t, "Experiência", heading.Text)

	text := section.Text()
	assert.Contains(t, text, "Built systems")
	assert.Contains(t, text, "2020 - 2024")
	assert.NotContains(t, text, "*")
}

func TestRender_EndToEndPDF(t *testing.T) {
	data, err := Render(e2eSnapshot(), &types.StyleConfig{Template: types.TemplateHarvard})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	text, pages := extractText(t, data)
	assert.Equal(t, 1, pages)
	assert.Contains(t, text, "Builtsystems")
	assert.Contains(t, text, "2020-2024")
	assert.Contains(t, text, "Engineer")
	assert.NotContains(t, text, "**")
}

func TestRender_IsDeterministic(t *testing.T) {
	for _, id := range types.TemplateIDs {
		t.Run(string(id), func(t *testing.T) {
			first, err := Render(sampleSnapshot(), configFor(id))
			require.NoError(t, err)
			second, err := Render(sampleSnapshot(), configFor(id))
			require.NoError(t, err)
			assert.True(t, bytes.Equal(first, second))
		})
	}
}

func TestRender_ClassicAliasesHarvard(t *testing.T) {
	harvard, err := Render(sampleSnapshot(), configFor(types.TemplateHarvard))
	require.NoError(t, err)
	classic, err := Render(sampleSnapshot(), configFor(types.TemplateClassic))
	require.NoError(t, err)

	assert.Equal(t, harvard, classic)
}

func TestRender_UnsupportedTemplate(t *testing.T) {
	data, err := Render(sampleSnapshot(), configFor("fancy"))

	assert.Nil(t, data)
	var unsupported *UnsupportedTemplateError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, types.TemplateID("fancy"), unsupported.ID)
	assert.Contains(t, err.Error(), `"fancy"`)
}

func TestRender_NilInputs(t *testing.T) {
	_, err := Render(nil, configFor(types.TemplateHarvard))
	assert.ErrorIs(t, err, ErrNilSnapshot)

	_, err = Render(sampleSnapshot(), nil)
	assert.ErrorIs(t, err, ErrNilConfig)
}

func TestRender_DoesNotMutateInputs(t *testing.T) {
	s := sampleSnapshot()
	cfg := configFor(types.TemplateModern)
	cfg.SectionOrder = []types.SectionID{types.SectionEducation}

	_, err := Render(s, cfg)
	require.NoError(t, err)

	assert.Equal(t, sampleSnapshot(), s)
	assert.Equal(t, []types.SectionID{types.SectionEducation}, cfg.SectionOrder)
	assert.Equal(t, 150, s.SkillGroups[1].Level)
}

func TestRender_PDFContainsSections(t *testing.T) {
	data, err := Render(sampleSnapshot(), configFor(types.TemplateModern))
	require.NoError(t, err)

	text, _ := extractText(t, data)
	assert.Contains(t, text, "AnaSouza")
	assert.Contains(t, text, "03/2022-Presente")
	assert.Contains(t, text, "Kubernetes")
	assert.NotContains(t, text, "queuectl")
}

func TestRender_HiddenSectionAbsentFromPDF(t *testing.T) {
	data, err := Render(sampleSnapshot(), withHidden(types.TemplateHarvard, types.SectionProjects))
	require.NoError(t, err)

	text, _ := extractText(t, data)
	assert.NotContains(t, text, "queuectl")
	assert.Contains(t, text, "Globex")
}

func TestRender_LongHistoryPaginates(t *testing.T) {
	for _, id := range []types.TemplateID{types.TemplateHarvard, types.TemplateModern} {
		t.Run(string(id), func(t *testing.T) {
			s := sampleSnapshot()
			s.WorkHistory = nil
			for i := range 40 {
				s.WorkHistory = append(s.WorkHistory, types.WorkEntry{
					Title:       fmt.Sprintf("Engineer %d", i),
					Company:     "Acme",
					Period:      "2020-01 - 2021-01",
					Description: strings.Repeat("Shipped features and fixed bugs. ", 6),
				})
			}

			data, err := Render(s, configFor(id))
			require.NoError(t, err)

			text, pages := extractText(t, data)
			assert.Greater(t, pages, 1)
			assert.Contains(t, text, "Engineer39")
		})
	}
}

func TestCompose_EntriesKeepInputOrder(t *testing.T) {
	names := []string{"Zeta", "Alpha", "Mid"}
	s := sampleSnapshot()
	s.WorkHistory = nil
	s.Projects = nil
	s.Education = nil
	for _, n := range names {
		s.WorkHistory = append(s.WorkHistory, types.WorkEntry{Title: n + " Engineer", Company: n + " Corp", Period: "2020-01 - 2021-01"})
		s.Projects = append(s.Projects, types.Project{Title: n + " Tool", Description: "cli"})
		s.Education = append(s.Education, types.EducationEntry{Degree: n + " Degree", Institution: n + " University", Period: "2010 - 2014"})
	}

	tests := []struct {
		template types.TemplateID
		sections map[types.SectionID]string
	}{
		{
			template: types.TemplateHarvard,
			sections: map[types.SectionID]string{
				types.SectionWorkHistory: " Engineer",
				types.SectionProjects:    " Tool",
				types.SectionEducation:   " Degree",
			},
		},
		{
			template: types.TemplateModern,
			sections: map[types.SectionID]string{
				types.SectionWorkHistory: " Engineer",
				types.SectionEducation:   " Degree",
			},
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.template), func(t *testing.T) {
			doc, err := Compose(s, configFor(tt.template))
			require.NoError(t, err)

			for id, suffix := range tt.sections {
				section := doc.Section(id)
				require.NotNil(t, section, id)
				text := section.Text()
				last := -1
				for _, n := range names {
					idx := strings.Index(text, n+suffix)
					require.GreaterOrEqual(t, idx, 0, "%s missing from %s", n+suffix, id)
					assert.Greater(t, idx, last, "%s out of order in %s", n+suffix, id)
					last = idx
				}
			}
		})
	}
}

func TestRender_ConcurrentCallsAreIndependent(t *testing.T) {
	want := make(map[types.TemplateID][]byte)
	for _, id := range types.TemplateIDs {
		data, err := Render(sampleSnapshot(), configFor(id))
		require.NoError(t, err)
		want[id] = data
	}

	results := make([][]byte, 24)
	var g errgroup.Group
	for i := range results {
		id := types.TemplateIDs[i%len(types.TemplateIDs)]
		g.Go(func() error {
			data, err := Render(sampleSnapshot(), configFor(id))
			results[i] = data
			return err
		})
	}
	require.NoError(t, g.Wait())

	for i, data := range results {
		id := types.TemplateIDs[i%len(types.TemplateIDs)]
		assert.True(t, bytes.Equal(want[id], data), "render %d (%s) differs", i, id)
	}
}

func TestRenderHTML_SameSections(t *testing.T) {
	cfg := withHidden(types.TemplateHarvard, types.SectionEducation)
	data, err := RenderHTML(sampleSnapshot(), cfg)
	require.NoError(t, err)

	doc, err := Compose(sampleSnapshot(), cfg)
	require.NoError(t, err)
	for _, id := range doc.SectionIDs() {
		assert.Contains(t, string(data), fmt.Sprintf(`data-section="%s"`, id))
	}
	assert.NotContains(t, string(data), `data-section="education"`)
}

func TestTemplates_ListsEveryIdentifier(t *testing.T) {
	var ids []types.TemplateID
	for _, info := range Templates() {
		ids = append(ids, info.ID)
		_, err := TemplateFor(info.ID)
		assert.NoError(t, err)
	}
	assert.ElementsMatch(t, types.TemplateIDs, ids)
}
