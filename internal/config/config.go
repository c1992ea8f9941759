// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Default values applied by DefaultConfig
const (
	DefaultPort              = 8080
	DefaultRequestsPerMinute = 60
	DefaultBurst             = 10
	DefaultMaxBodyBytes      = 1 << 20
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port         int    `json:"port,omitempty"`           // HTTP listen port
	DatabaseURL  string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	MaxBodyBytes int64  `json:"max_body_bytes,omitempty"` // Request body limit

	// Rendering
	StylePath  string `json:"style_path,omitempty"`  // Default style config (JSON or YAML)
	ChromePath string `json:"chrome_path,omitempty"` // Chrome binary for the browser PDF engine

	RateLimit RateLimitConfig `json:"rate_limit,omitempty"`

	// Behavior
	Verbose  bool   `json:"verbose,omitempty"`   // Print detailed debug information
	LogLevel string `json:"log_level,omitempty"` // debug, info, warn or error
}

// RateLimitConfig configures the per-client token bucket
type RateLimitConfig struct {
	RequestsPerMinute int `json:"requests_per_minute,omitempty"`
	Burst             int `json:"burst,omitempty"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		Port:         DefaultPort,
		MaxBodyBytes: DefaultMaxBodyBytes,
		LogLevel:     "info",
		RateLimit: RateLimitConfig{
			RequestsPerMinute: DefaultRequestsPerMinute,
			Burst:             DefaultBurst,
		},
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("config error: 'max_body_bytes' must be non-negative")
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}
	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("config error: 'rate_limit.requests_per_minute' must be non-negative")
	}
	if c.RateLimit.Burst < 0 {
		return fmt.Errorf("config error: 'rate_limit.burst' must be non-negative")
	}

	if c.StylePath != "" {
		if _, err := os.Stat(c.StylePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: style file not found: %s", c.StylePath)
		}
	}
	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.StylePath == "" {
		result.StylePath = defaults.StylePath
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxBodyBytes == 0 {
		result.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if result.RateLimit.RequestsPerMinute == 0 {
		result.RateLimit.RequestsPerMinute = defaults.RateLimit.RequestsPerMinute
	}
	if result.RateLimit.Burst == 0 {
		result.RateLimit.Burst = defaults.RateLimit.Burst
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv fills empty fields from environment variables read through getenv.
// PORT, DATABASE_URL, STYLE_PATH and CHROME_PATH are recognized.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if c.Port == 0 {
		if v := getenv("PORT"); v != "" {
			port, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("config error: invalid PORT %q: %w", v, err)
			}
			c.Port = port
		}
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = getenv("DATABASE_URL")
	}
	if c.StylePath == "" {
		c.StylePath = getenv("STYLE_PATH")
	}
	if c.ChromePath == "" {
		c.ChromePath = getenv("CHROME_PATH")
	}
	return nil
}
