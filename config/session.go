package config

import (
	"fmt"
	"strings"
)

// SessionBackend selects where the durable session record lives.
type SessionBackend string

const (
	// SessionBackendFile keeps the session under the user config dir.
	SessionBackendFile SessionBackend = "file"
	// SessionBackendRedis keeps the session in Redis, for shared or
	// ephemeral environments without useful local state.
	SessionBackendRedis SessionBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "file", "redis":
		*b = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: file, redis)", v)
	}
}

// RedisConfig connects the Redis session backend.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"       envDefault:"0"`
}

// SessionConfig groups durable session storage settings.
type SessionConfig struct {
	// Backend picks the storage implementation.
	Backend SessionBackend `env:"BACKEND" envDefault:"file"`

	// StateDir overrides the file backend's directory. Empty means
	// <user config dir>/mdd.
	StateDir string `env:"STATE_DIR"`

	// Redis configuration (used when Backend=redis).
	Redis RedisConfig `envPrefix:"REDIS_"`
}
