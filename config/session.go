package config

import (
	"fmt"
	"strings"
	"time"
)

// SessionBackend selects the session store implementation.
type SessionBackend string

const (
	// SessionBackendRedis persists sessions in Redis (production).
	SessionBackendRedis SessionBackend = "redis"
	// SessionBackendMemory keeps sessions in process memory (dev/tests).
	SessionBackendMemory SessionBackend = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "redis", "memory":
		*b = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: redis, memory)", v)
	}
}

// SessionConfig contains session store configuration.
type SessionConfig struct {
	// Backend determines where sessions are persisted.
	Backend SessionBackend `env:"BACKEND" envDefault:"redis"`

	// TTL is how long a session stays valid after login.
	TTL time.Duration `env:"TTL" envDefault:"24h"`

	// KeyPrefix namespaces session keys in the backing store.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"renoh-cafe:session:"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.TTL <= 0 {
		s.TTL = 24 * time.Hour
	}
	if s.KeyPrefix == "" {
		s.KeyPrefix = "renoh-cafe:session:"
	}
}

// RedisConfig contains Redis connection configuration.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
