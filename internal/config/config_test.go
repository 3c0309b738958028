package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/hero-catalog/internal/config"
)

// clearEnv blanks the overrides that would otherwise leak in from the host.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVICE_ENV", "PORT", "SERVER_PORT", "SERVER_HOST",
		"DATABASE_URL", "DATABASE_NAME", "DATABASE_USER",
		"FRONTEND_ORIGIN", "API_BASE_PATH", "API_MAX_BODY_SIZE", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

const baseConfig = `
shutdown_timeout = "20s"

[server]
host = "127.0.0.1"
port = 3000

[database]
host = "localhost"
port = 5432
name = "heroes"
user = "postgres"

[api]
max_body_size = "2MB"

[api.pagination]
default_page_size = 5
max_page_size = 100
`

func TestLoadFrom_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, config.BaseConfigFile, baseConfig)

	cfg, err := config.LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != 20*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 20s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Server.Addr() != "127.0.0.1:3000" {
		t.Errorf("Addr() = %q, want %q", cfg.Server.Addr(), "127.0.0.1:3000")
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("BasePath = %q, want /api", cfg.API.BasePath)
	}
	if got := cfg.API.MaxBodySizeBytes(); got != 2*1024*1024 {
		t.Errorf("MaxBodySizeBytes() = %d, want %d", got, 2*1024*1024)
	}
	if cfg.API.Pagination.DefaultPageSize != 5 {
		t.Errorf("DefaultPageSize = %d, want 5", cfg.API.Pagination.DefaultPageSize)
	}
	if cfg.API.OpenAPI.Title == "" {
		t.Error("OpenAPI title should have a default")
	}
	if cfg.API.RateLimit.Window != "1m" {
		t.Errorf("RateLimit.Window = %q, want 1m", cfg.API.RateLimit.Window)
	}
}

func TestLoadFrom_Overlay(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, config.BaseConfigFile, baseConfig)
	writeFile(t, dir, "config.test.toml", `shutdown_timeout = "60s"

[server]
port = 9090
`)
	t.Setenv("SERVICE_ENV", "test")

	cfg, err := config.LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q, want %q", cfg.ShutdownTimeout, "60s")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want base value kept", cfg.Server.Host)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8088")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/heroes")
	t.Setenv("FRONTEND_ORIGIN", "http://localhost:5173, https://heroes.example.com")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.Port != 8088 {
		t.Errorf("Server.Port = %d, want 8088", cfg.Server.Port)
	}
	if cfg.Database.Dsn() != "postgres://u:p@db:5432/heroes" {
		t.Errorf("Dsn() = %q, want DATABASE_URL", cfg.Database.Dsn())
	}
	if !cfg.API.CORS.Enabled {
		t.Error("FRONTEND_ORIGIN should enable CORS")
	}
	if len(cfg.API.CORS.Origins) != 2 || cfg.API.CORS.Origins[1] != "https://heroes.example.com" {
		t.Errorf("CORS.Origins = %v", cfg.API.CORS.Origins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", `shutdown_timeout = `},
		{"bad shutdown timeout", "shutdown_timeout = \"soon\"\n[database]\nurl = \"postgres://x\""},
		{"bad body size", "[database]\nurl = \"postgres://x\"\n[api]\nmax_body_size = \"lots\""},
		{"nested base path", "[database]\nurl = \"postgres://x\"\n[api]\nbase_path = \"/api/v1\""},
		{"missing database", `[server]
port = 3000`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			writeFile(t, dir, config.BaseConfigFile, tt.content)

			if _, err := config.LoadFrom(dir); err == nil {
				t.Error("LoadFrom() error = nil, want error")
			}
		})
	}
}
