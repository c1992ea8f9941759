package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-engine/internal/rendering"
	"github.com/jonathan/resume-engine/internal/types"
)

func TestRenderFiles_SinglePDF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "resume.pdf")

	summaries, err := renderFiles(context.Background(), renderOptions{
		SnapshotPath: "testdata/snapshot.json",
		OutPath:      out,
		Format:       formatPDF,
		Engine:       engineNative,
	})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, types.TemplateHarvard, summaries[0].Template)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
	assert.Equal(t, len(data), summaries[0].Bytes)
}

func TestRenderFiles_YAMLStyleAndOverride(t *testing.T) {
	out := filepath.Join(t.TempDir(), "resume.html")

	summaries, err := renderFiles(context.Background(), renderOptions{
		SnapshotPath: "testdata/snapshot.json",
		StylePath:    "testdata/style.yaml",
		OutPath:      out,
		Template:     types.TemplateHarvard,
		Format:       formatHTML,
		Engine:       engineNative,
	})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, types.TemplateHarvard, summaries[0].Template)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "Ana Souza")
	// Projects are hidden by the style file.
	assert.NotContains(t, html, `data-section="projects"`)
	assert.Contains(t, html, `data-section="work_history"`)
}

func TestRenderFiles_AllTemplates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	summaries, err := renderFiles(context.Background(), renderOptions{
		SnapshotPath: "testdata/snapshot.json",
		StylePath:    "testdata/style.yaml",
		OutPath:      dir,
		Format:       formatPDF,
		Engine:       engineNative,
		AllTemplates: true,
	})
	require.NoError(t, err)
	require.Len(t, summaries, len(types.TemplateIDs))

	files := make(map[types.TemplateID][]byte)
	for i, id := range types.TemplateIDs {
		assert.Equal(t, id, summaries[i].Template)
		data, err := os.ReadFile(filepath.Join(dir, string(id)+".pdf"))
		require.NoError(t, err)
		files[id] = data
	}
	// classic renders the harvard layout byte for byte
	assert.Equal(t, files[types.TemplateHarvard], files[types.TemplateClassic])
	assert.NotEqual(t, files[types.TemplateHarvard], files[types.TemplateModern])
}

func TestRenderFiles_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		opts    renderOptions
		wantErr string
	}{
		{
			name:    "unknown format",
			opts:    renderOptions{SnapshotPath: "testdata/snapshot.json", OutPath: filepath.Join(dir, "a"), Format: "docx", Engine: engineNative},
			wantErr: "unsupported format",
		},
		{
			name:    "unknown engine",
			opts:    renderOptions{SnapshotPath: "testdata/snapshot.json", OutPath: filepath.Join(dir, "b"), Format: formatPDF, Engine: "latex"},
			wantErr: "unsupported engine",
		},
		{
			name:    "chrome html",
			opts:    renderOptions{SnapshotPath: "testdata/snapshot.json", OutPath: filepath.Join(dir, "c"), Format: formatHTML, Engine: engineChrome},
			wantErr: "only produces pdf",
		},
		{
			name:    "template with all templates",
			opts:    renderOptions{SnapshotPath: "testdata/snapshot.json", OutPath: dir, Format: formatPDF, Engine: engineNative, Template: types.TemplateModern, AllTemplates: true},
			wantErr: "cannot use --template",
		},
		{
			name:    "missing snapshot",
			opts:    renderOptions{SnapshotPath: "testdata/missing.json", OutPath: filepath.Join(dir, "d"), Format: formatPDF, Engine: engineNative},
			wantErr: "failed to load snapshot",
		},
		{
			name:    "invalid style",
			opts:    renderOptions{SnapshotPath: "testdata/snapshot.json", StylePath: "testdata/style_invalid.json", OutPath: filepath.Join(dir, "e"), Format: formatPDF, Engine: engineNative},
			wantErr: "failed to load style",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := renderFiles(context.Background(), tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRenderFiles_UnsupportedTemplate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "resume.pdf")

	_, err := renderFiles(context.Background(), renderOptions{
		SnapshotPath: "testdata/snapshot.json",
		OutPath:      out,
		Template:     "fancy",
		Format:       formatPDF,
		Engine:       engineNative,
	})

	var unsupported *rendering.UnsupportedTemplateError
	require.ErrorAs(t, err, &unsupported)
	assert.NoFileExists(t, out)
}
