package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "test"}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_InvalidJSON_MissingField(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"age": 3}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "test"}`)

	err := ValidateJSON(filepath.Join(dir, "missing.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)

	err := ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString_Valid(t *testing.T) {
	assert.NoError(t, ValidateJSONString(personSchema, `{"name": "test"}`))
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(personSchema, `{"name": 30}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "name", validationErr.Errors[0].Field)
}

func TestValidateJSONString_Malformed(t *testing.T) {
	err := ValidateJSONString(personSchema, `{ invalid json }`)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.NotNil(t, errors.Unwrap(err))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. name: is required")
	assert.Contains(t, errorMsg, "2. age: must be a number")
}

func TestValidateStyleConfig(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantField string
	}{
		{name: "minimal", json: `{"template": "harvard"}`},
		{name: "full", json: `{
			"template": "modern",
			"colors": {"primary": "#111111", "secondary": "oops", "accent": "#2563EB"},
			"fonts": {"heading": "Inter", "body": "Georgia", "title_size": 28, "body_size": 10},
			"section_visibility": {"projects": false},
			"section_order": ["skill_groups", "work_history"],
			"labels": {"work_history": "Experience", "present": "Present"}
		}`},
		{name: "missing template", json: `{}`, wantField: "(root)"},
		{name: "unknown template", json: `{"template": "fancy"}`, wantField: "template"},
		{name: "font too small", json: `{"template": "harvard", "fonts": {"body_size": 4}}`, wantField: "fonts.body_size"},
		{name: "unknown section key", json: `{"template": "harvard", "section_visibility": {"hobbies": true}}`, wantField: "section_visibility"},
		{name: "unknown section in order", json: `{"template": "harvard", "section_order": ["hobbies"]}`, wantField: "section_order.0"},
		{name: "unknown field", json: `{"template": "harvard", "theme": "dark"}`, wantField: "(root)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStyleConfig([]byte(tt.json))
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			fields := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestValidateProfileSnapshot(t *testing.T) {
	valid := `{
		"identity": {"name": "Ana", "role": "Engineer"},
		"narrative": {"paragraphs": ["Hello"], "languages": [{"name": "Portuguese", "proficiency": "native"}]},
		"work_history": [{"title": "Engineer", "company": "Acme", "period": "2020 - 2024", "current": false, "description": "**Built** systems"}],
		"projects": [{"title": "cli", "stack": ["Go"], "description": "", "icon": "terminal"}],
		"skill_groups": [{"title": "Backend", "level": 150, "skills": ["Go"]}],
		"education": null,
		"contact": {"email": "ana@example.com", "links": [{"label": "Blog", "url": "https://ana.dev"}]}
	}`
	assert.NoError(t, ValidateProfileSnapshot([]byte(valid)))

	err := ValidateProfileSnapshot([]byte(`{"work_history": [{"current": "yes"}]}`))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "work_history.0.current", validationErr.Errors[0].Field)

	err = ValidateProfileSnapshot([]byte(`{"projects": [{"icon": "rocket"}]}`))
	require.True(t, errors.As(err, &validationErr))
}
