package config

import "time"

const defaultArticleTTL = 5 * time.Minute

// CacheConfig tunes the client-side article cache.
type CacheConfig struct {
	// ArticleTTL is the staleness window: a non-forced listing inside it
	// reuses the cached feed without a network call.
	ArticleTTL time.Duration `env:"ARTICLE_TTL" envDefault:"5m"`
}

// Sanitize restores the default window when the value is unusable.
func (c *CacheConfig) Sanitize() {
	if c.ArticleTTL <= 0 {
		c.ArticleTTL = defaultArticleTTL
	}
}
