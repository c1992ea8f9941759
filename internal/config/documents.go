package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jonathan/resume-engine/internal/schemas"
	"github.com/jonathan/resume-engine/internal/types"
)

// LoadStyleConfig reads a style config from a JSON or YAML file.
// The result is schema checked, defaulted and validated.
func LoadStyleConfig(path string) (*types.StyleConfig, error) {
	data, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	return ParseStyleConfig(data)
}

// ParseStyleConfig decodes a JSON style config. Absent fields take their defaults.
func ParseStyleConfig(data []byte) (*types.StyleConfig, error) {
	if err := schemas.ValidateStyleConfig(data); err != nil {
		return nil, err
	}

	var cfg types.StyleConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse style config: %w", err)
	}

	resolved := cfg.WithDefaults()
	if err := resolved.Validate(); err != nil {
		return nil, fmt.Errorf("invalid style config: %w", err)
	}
	return &resolved, nil
}

// LoadProfileSnapshot reads a profile snapshot from a JSON or YAML file.
func LoadProfileSnapshot(path string) (*types.ProfileSnapshot, error) {
	data, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	return ParseProfileSnapshot(data)
}

// ParseProfileSnapshot decodes a JSON profile snapshot, clamping skill levels.
func ParseProfileSnapshot(data []byte) (*types.ProfileSnapshot, error) {
	if err := schemas.ValidateProfileSnapshot(data); err != nil {
		return nil, err
	}

	var snapshot types.ProfileSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse profile snapshot: %w", err)
	}

	normalized := snapshot.Normalize()
	if err := normalized.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile snapshot: %w", err)
	}
	return normalized, nil
}

// readDocument returns the file content as JSON, converting YAML files by extension.
func readDocument(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("document path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
		converted, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML %s: %w", path, err)
		}
		return converted, nil
	default:
		return data, nil
	}
}
