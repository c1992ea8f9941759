package ratelimit

import (
	"net/http"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific route.
type EndpointConfig struct {
	Path   string        // Path pattern; a trailing "/" matches by prefix
	Method string        // HTTP method
	Limit  int           // Maximum requests per window; 0 means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration // Buckets idle longer than this are dropped
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewConfig builds a configuration from a per-minute default and burst.
// A zero requestsPerMinute disables limiting.
func NewConfig(requestsPerMinute, burst int, whitelist ...string) *Config {
	if requestsPerMinute <= 0 {
		return &Config{Enabled: false}
	}

	allowed := make(map[string]bool, len(whitelist))
	for _, ip := range whitelist {
		if ip != "" {
			allowed[ip] = true
		}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    requestsPerMinute,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		Whitelist:       allowed,
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(requestsPerMinute, burst),
	}
}

// DefaultEndpointConfigs returns the per-route limits derived from the default rate.
// Full renders are the most expensive; previews are issued while a user edits and
// get a wider budget.
func DefaultEndpointConfigs(requestsPerMinute, burst int) []EndpointConfig {
	if burst <= 0 {
		burst = requestsPerMinute
	}
	return []EndpointConfig{
		{Path: "/render", Method: http.MethodPost, Limit: requestsPerMinute, Window: time.Minute, Burst: burst},
		{Path: "/preview", Method: http.MethodPost, Limit: requestsPerMinute * 4, Window: time.Minute, Burst: burst * 4},
		{Path: "/users/", Method: http.MethodPut, Limit: requestsPerMinute, Window: time.Minute, Burst: burst},
		{Path: "/users/", Method: http.MethodGet, Limit: requestsPerMinute * 2, Window: time.Minute, Burst: burst * 2},
		{Path: "/templates", Method: http.MethodGet, Limit: 0},
	}
}
