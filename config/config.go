// Package config holds the client configuration, loaded from environment
// variables via github.com/caarlos0/env. Domain-specific settings live in
// their own files:
//   - api.go: backend endpoint and HTTP behaviour
//   - session.go: durable session storage selection
//   - cache.go: article feed caching
package config

// AppConfig is the root configuration struct composed from the per-domain
// configs below.
type AppConfig struct {
	// API is the backend endpoint configuration.
	API APIConfig `envPrefix:"MDD_"`

	// Session selects and tunes the durable session storage.
	Session SessionConfig `envPrefix:"MDD_SESSION_"`

	// Cache tunes the client-side article cache.
	Cache CacheConfig `envPrefix:"MDD_CACHE_"`

	// Verbose switches the logger from warnings-only to full info output.
	Verbose bool `env:"MDD_VERBOSE" envDefault:"false"`
}

// Sanitize applies guardrails to values loaded from env. Call it after
// parsing, before handing the config to bootstrap.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Cache.Sanitize()
}
