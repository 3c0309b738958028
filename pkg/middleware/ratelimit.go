package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimitEnv maps environment variable names for rate limit configuration.
type RateLimitEnv struct {
	Requests string
	Window   string
}

// RateLimitConfig limits requests per client IP and endpoint. Zero requests disables it.
type RateLimitConfig struct {
	Requests int    `toml:"requests"`
	Window   string `toml:"window"`
}

func (c *RateLimitConfig) WindowDuration() time.Duration {
	d, _ := time.ParseDuration(c.Window)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *RateLimitConfig) Finalize(env *RateLimitEnv) error {
	if c.Window == "" {
		c.Window = "1m"
	}
	if env != nil {
		if env.Requests != "" {
			if v := os.Getenv(env.Requests); v != "" {
				if n, err := strconv.Atoi(v); err == nil {
					c.Requests = n
				}
			}
		}
		if env.Window != "" {
			if v := os.Getenv(env.Window); v != "" {
				c.Window = v
			}
		}
	}

	if c.Requests < 0 {
		return fmt.Errorf("requests cannot be negative")
	}
	if d, err := time.ParseDuration(c.Window); err != nil {
		return fmt.Errorf("invalid window: %w", err)
	} else if d <= 0 {
		return fmt.Errorf("window must be positive")
	}
	return nil
}

func (c *RateLimitConfig) Merge(overlay *RateLimitConfig) {
	if overlay.Requests != 0 {
		c.Requests = overlay.Requests
	}
	if overlay.Window != "" {
		c.Window = overlay.Window
	}
}

// RateLimit rejects requests beyond cfg.Requests per window with 429.
func RateLimit(cfg *RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.Requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		cfg.Requests,
		cfg.WindowDuration(),
		httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
	)
}
