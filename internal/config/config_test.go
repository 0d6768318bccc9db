// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv unsets every variable Load reads and restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{PathEnvVar}
	for k := range envMappings {
		keys = append(keys, strings.ToUpper(k))
	}
	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, v) })
			os.Unsetenv(key)
		}
	}
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s: got %q, want %q", field, got, want)
		}
	}

	check("App.Host", cfg.App.Host, "0.0.0.0")
	check("App.Port", cfg.App.Port, "8080")
	check("App.Env", cfg.App.Env, "development")
	check("Log.Level", cfg.Log.Level, "info")
	check("Log.Format", cfg.Log.Format, "text")
	check("Database.User", cfg.Database.User, "folio")
	check("Database.Name", cfg.Database.Name, "folio")
	check("Valkey.Port", cfg.Valkey.Port, "6379")
	check("HTTP.SiteName", cfg.HTTP.SiteName, "Folio")

	if cfg.Database.Enabled || cfg.Valkey.Enabled {
		t.Error("database and valkey should be disabled by default")
	}
	if cfg.Valkey.ResponseTTL != 30*time.Second {
		t.Errorf("ResponseTTL: got %v, want 30s", cfg.Valkey.ResponseTTL)
	}
	if cfg.HTTP.RateLimit != 120 || cfg.HTTP.RateWindow != time.Minute {
		t.Errorf("rate limit: got %d per %v", cfg.HTTP.RateLimit, cfg.HTTP.RateWindow)
	}
	if len(cfg.HTTP.CORSOrigins) != 1 || cfg.HTTP.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins: got %v", cfg.HTTP.CORSOrigins)
	}
	if !cfg.IsDev() {
		t.Error("IsDev() should be true by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_ENABLED", "true")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("VALKEY_RESPONSE_TTL", "45s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT", "10")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.App.Port != "9090" {
		t.Errorf("App.Port: got %q", cfg.App.Port)
	}
	if !cfg.Database.Enabled || cfg.Database.Host != "db.internal" {
		t.Errorf("database: got %+v", cfg.Database)
	}
	if cfg.Valkey.ResponseTTL != 45*time.Second {
		t.Errorf("ResponseTTL: got %v", cfg.Valkey.ResponseTTL)
	}
	if len(cfg.HTTP.CORSOrigins) != 2 || cfg.HTTP.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins: got %v", cfg.HTTP.CORSOrigins)
	}
	if cfg.HTTP.RateLimit != 10 {
		t.Errorf("RateLimit: got %d", cfg.HTTP.RateLimit)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format: got %q", cfg.Log.Format)
	}
}

func TestLoad_EmptyEnvKeepsDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_HOST", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.App.Host != "0.0.0.0" {
		t.Errorf("empty APP_HOST should keep the default, got %q", cfg.App.Host)
	}
}

// TestLoad_File verifies the YAML layer sits between defaults and env.
func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "folio.yaml")
	data := `
app:
  port: "7000"
  env: testing
http:
  site_name: My Folio
  cors_origins:
    - https://site.example
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(PathEnvVar, path)
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.App.Port != "7000" {
		t.Errorf("file should override default port, got %q", cfg.App.Port)
	}
	if cfg.App.Env != "development" {
		t.Errorf("env should override file, got %q", cfg.App.Env)
	}
	if cfg.HTTP.SiteName != "My Folio" {
		t.Errorf("SiteName: got %q", cfg.HTTP.SiteName)
	}
	if len(cfg.HTTP.CORSOrigins) != 1 || cfg.HTTP.CORSOrigins[0] != "https://site.example" {
		t.Errorf("CORSOrigins: got %v", cfg.HTTP.CORSOrigins)
	}
}

func TestLoad_ProductionRequiresPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_ENABLED", "true")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for default password in production")
	}

	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.IsDev() {
		t.Error("IsDev() should be false in production")
	}
}

func TestLoad_ProductionWithoutDatabase(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err != nil {
		t.Errorf("memory store in production should not need a password: %v", err)
	}
}

func TestDSNAndAddr(t *testing.T) {
	cfg := defaultConfig()
	cfg.Database.Password = "pw"

	want := "postgres://folio:pw@localhost:5432/folio?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
	if got := cfg.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", got)
	}
	if got := cfg.ValkeyAddr(); got != "localhost:6379" {
		t.Errorf("ValkeyAddr() = %q", got)
	}
}
