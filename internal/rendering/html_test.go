package rendering

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-engine/internal/types"
)

func parseHTML(t *testing.T, data []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	return doc
}

func TestWriteHTML_SectionsInOrder(t *testing.T) {
	data, err := RenderHTML(sampleSnapshot(), configFor(types.TemplateModern))
	require.NoError(t, err)
	page := parseHTML(t, data)

	assert.Equal(t, 2, page.Find("div.region").Length())

	var ids []string
	page.Find("section[data-section]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("data-section")
		ids = append(ids, id)
	})
	assert.Equal(t, []string{"identity", "work_history", "contact", "narrative", "education", "skill_groups"}, ids)
}

func TestWriteHTML_TitleAndText(t *testing.T) {
	data, err := RenderHTML(sampleSnapshot(), configFor(types.TemplateHarvard))
	require.NoError(t, err)
	page := parseHTML(t, data)

	assert.Equal(t, "Ana Souza - Backend Engineer", page.Find("title").Text())
	work := page.Find(`section[data-section="work_history"]`)
	assert.Equal(t, "Experiência", work.Find("h2").First().Text())
	assert.Contains(t, work.Text(), "Led the payments rewrite")
	assert.Equal(t, "2022-03 - 2024-01", work.Find("div.row span").Eq(1).Text())
}

func TestWriteHTML_EscapesContent(t *testing.T) {
	s := sampleSnapshot()
	s.Identity.Name = `<script>alert("x")</script>`

	data, err := RenderHTML(s, configFor(types.TemplateHarvard))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "<script>")
	page := parseHTML(t, data)
	assert.Equal(t, 0, page.Find("script").Length())
	assert.Equal(t, `<script>alert("x")</script>`, page.Find(`section[data-section="identity"] h2`).Text())
}

func TestWriteHTML_InlineStyles(t *testing.T) {
	data, err := RenderHTML(sampleSnapshot(), configFor(types.TemplateModern))
	require.NoError(t, err)
	page := parseHTML(t, data)

	sidebar, ok := page.Find("div.region").Eq(1).Attr("style")
	require.True(t, ok)
	assert.Contains(t, sidebar, "background:#")
	assert.NotContains(t, sidebar, "ZgotmplZ")

	heading, ok := page.Find(`section[data-section="narrative"] h2`).Attr("style")
	require.True(t, ok)
	assert.True(t, strings.Contains(heading, "serif"))
	assert.Contains(t, heading, "font-weight:bold")
}

func TestWriteHTML_InvalidDocument(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHTML(&buf, &Document{})

	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Zero(t, buf.Len())
}

func TestWriteHTML_UnknownBlock(t *testing.T) {
	doc := &Document{
		Regions: []Region{{Width: PageWidth, Padding: 10, Sections: []Section{
			{ID: types.SectionNarrative, Blocks: []Block{&Paragraph{Text: "pointer"}}},
		}}},
	}

	var buf bytes.Buffer
	err := WriteHTML(&buf, doc)

	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Zero(t, buf.Len())
}
