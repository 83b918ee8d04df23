package config

import "time"

const (
	defaultHTTPTimeout = 10 * time.Second
	maxHTTPTimeout     = 2 * time.Minute
)

// APIConfig locates the MDD backend and bounds outgoing requests.
type APIConfig struct {
	// BaseURL is the API root all endpoint paths are appended to.
	BaseURL string `env:"API_URL" envDefault:"http://localhost:8082/api"`

	// HTTPTimeout bounds each request end to end. There are no retries
	// anywhere in this client, so this is also the worst-case wait.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
}

// Sanitize clamps the timeout to something usable.
func (c *APIConfig) Sanitize() {
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = defaultHTTPTimeout
	}
	if c.HTTPTimeout > maxHTTPTimeout {
		c.HTTPTimeout = maxHTTPTimeout
	}
}
