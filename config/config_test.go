package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestSessionBackendUnmarshalText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    SessionBackend
		expectError bool
	}{
		{"file backend", "file", SessionBackendFile, false},
		{"redis backend", "redis", SessionBackendRedis, false},
		{"case insensitive", "REDIS", SessionBackendRedis, false},
		{"invalid backend", "s3", "", true},
		{"empty is invalid", "", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b SessionBackend
			err := b.UnmarshalText([]byte(tc.input))
			if tc.expectError {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b != tc.expected {
				t.Fatalf("got %q, want %q", b, tc.expected)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != "http://localhost:8082/api" {
		t.Fatalf("unexpected default base url %q", cfg.API.BaseURL)
	}
	if cfg.API.HTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected default timeout %v", cfg.API.HTTPTimeout)
	}
	if cfg.Session.Backend != SessionBackendFile {
		t.Fatalf("unexpected default session backend %q", cfg.Session.Backend)
	}
	if cfg.Cache.ArticleTTL != 5*time.Minute {
		t.Fatalf("unexpected default article ttl %v", cfg.Cache.ArticleTTL)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MDD_API_URL", "https://mdd.example.com/api")
	t.Setenv("MDD_SESSION_BACKEND", "redis")
	t.Setenv("MDD_SESSION_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("MDD_CACHE_ARTICLE_TTL", "90s")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != "https://mdd.example.com/api" {
		t.Fatalf("base url override lost: %q", cfg.API.BaseURL)
	}
	if cfg.Session.Backend != SessionBackendRedis {
		t.Fatalf("backend override lost: %q", cfg.Session.Backend)
	}
	if cfg.Session.Redis.Addr != "redis.internal:6380" {
		t.Fatalf("redis addr override lost: %q", cfg.Session.Redis.Addr)
	}
	if cfg.Cache.ArticleTTL != 90*time.Second {
		t.Fatalf("cache ttl override lost: %v", cfg.Cache.ArticleTTL)
	}
}

func TestSanitizeClampsValues(t *testing.T) {
	cfg := AppConfig{}
	cfg.API.HTTPTimeout = -1
	cfg.Cache.ArticleTTL = 0
	cfg.Sanitize()

	if cfg.API.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("expected timeout default, got %v", cfg.API.HTTPTimeout)
	}
	if cfg.Cache.ArticleTTL != defaultArticleTTL {
		t.Fatalf("expected ttl default, got %v", cfg.Cache.ArticleTTL)
	}

	cfg.API.HTTPTimeout = time.Hour
	cfg.Sanitize()
	if cfg.API.HTTPTimeout != maxHTTPTimeout {
		t.Fatalf("expected timeout clamp to %v, got %v", maxHTTPTimeout, cfg.API.HTTPTimeout)
	}
}
