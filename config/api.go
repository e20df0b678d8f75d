package config

import "time"

// APIConfig contains configuration for the upstream cafe API.
// All persistent state (cafes, posts, comments, users) lives behind
// this API; the web front-end only holds sessions locally.
type APIConfig struct {
	// BaseURL is the base URL of the cafe API (no trailing slash).
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:4000"`

	// Timeout is the per-request timeout for upstream calls.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	if a.Timeout <= 0 {
		a.Timeout = 10 * time.Second
	}
	// Normalize a trailing slash so path joining stays predictable.
	for len(a.BaseURL) > 0 && a.BaseURL[len(a.BaseURL)-1] == '/' {
		a.BaseURL = a.BaseURL[:len(a.BaseURL)-1]
	}
}
