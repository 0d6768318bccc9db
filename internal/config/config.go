// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading. Values are
// layered: built-in defaults, then an optional YAML file, then environment
// variables, with later layers overriding earlier ones.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// PathEnvVar names the environment variable that points at a config file.
const PathEnvVar = "FOLIO_CONFIG"

// DefaultPaths are searched in order when PathEnvVar is unset.
var DefaultPaths = []string{"folio.yaml", "/etc/folio/folio.yaml"}

// Config holds all application configuration values.
type Config struct {
	App      AppConfig      `koanf:"app"`
	Log      LogConfig      `koanf:"log"`
	Database DatabaseConfig `koanf:"database"`
	Valkey   ValkeyConfig   `koanf:"valkey"`
	HTTP     HTTPConfig     `koanf:"http"`
}

// AppConfig holds server settings.
type AppConfig struct {
	Host string `koanf:"host"`
	Port string `koanf:"port"`
	Env  string `koanf:"env"` // "development", "production", "testing"
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // text or json
}

// DatabaseConfig holds the PostgreSQL connection. When disabled the
// in-memory store is used.
type DatabaseConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
}

// ValkeyConfig holds the Valkey (Redis-compatible) connection used for
// shared view counters and the response cache.
type ValkeyConfig struct {
	Enabled     bool          `koanf:"enabled"`
	Host        string        `koanf:"host"`
	Port        string        `koanf:"port"`
	Password    string        `koanf:"password"`
	ResponseTTL time.Duration `koanf:"response_ttl"`
}

// HTTPConfig holds API surface settings.
type HTTPConfig struct {
	CORSOrigins []string      `koanf:"cors_origins"`
	RateLimit   int           `koanf:"rate_limit"`
	RateWindow  time.Duration `koanf:"rate_window"`
	SiteURL     string        `koanf:"site_url"`
	SiteName    string        `koanf:"site_name"`
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Host: "0.0.0.0",
			Port: "8080",
			Env:  "development",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Database: DatabaseConfig{
			Enabled:  false,
			Host:     "localhost",
			Port:     "5432",
			User:     "folio",
			Password: "changeme",
			Name:     "folio",
		},
		Valkey: ValkeyConfig{
			Enabled:     false,
			Host:        "localhost",
			Port:        "6379",
			ResponseTTL: 30 * time.Second,
		},
		HTTP: HTTPConfig{
			CORSOrigins: []string{"*"},
			RateLimit:   120,
			RateWindow:  time.Minute,
			SiteURL:     "http://localhost:8080",
			SiteName:    "Folio",
		},
	}
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	"app_host": "app.host",
	"app_port": "app.port",
	"app_env":  "app.env",

	"log_level":  "log.level",
	"log_format": "log.format",

	"postgres_enabled":  "database.enabled",
	"postgres_host":     "database.host",
	"postgres_port":     "database.port",
	"postgres_user":     "database.user",
	"postgres_password": "database.password",
	"postgres_db":       "database.name",

	"valkey_enabled":      "valkey.enabled",
	"valkey_host":         "valkey.host",
	"valkey_port":         "valkey.port",
	"valkey_password":     "valkey.password",
	"valkey_response_ttl": "valkey.response_ttl",

	"cors_origins": "http.cors_origins",
	"rate_limit":   "http.rate_limit",
	"rate_window":  "http.rate_window",
	"site_url":     "http.site_url",
	"site_name":    "http.site_name",
}

// envTransform maps a variable to its koanf path. Empty values are skipped
// so that an empty variable behaves like an unset one.
func envTransform(key, value string) (string, any) {
	if value == "" {
		return "", nil
	}
	return envMappings[strings.ToLower(key)], value
}

// Load reads configuration from defaults, the config file and the
// environment. Returns an error if critical values are missing in
// production mode.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load config defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load config env: %w", err)
	}

	if err := splitList(k, "http.cors_origins"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.App.Env == "production" && c.Database.Enabled && c.Database.Password == "changeme" {
		return fmt.Errorf("POSTGRES_PASSWORD must be set in production")
	}
	if c.HTTP.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative")
	}
	if c.HTTP.RateLimit > 0 && c.HTTP.RateWindow <= 0 {
		return fmt.Errorf("rate window must be positive")
	}
	return nil
}

// findConfigFile returns the first config file that exists, or "".
func findConfigFile() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// splitList turns a comma-separated string at path (as set from the
// environment) into a trimmed slice.
func splitList(k *koanf.Koanf, path string) error {
	s, ok := k.Get(path).(string)
	if !ok {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if err := k.Set(path, parts); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	d := c.Database
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.App.Host, c.App.Port)
}

// ValkeyAddr returns the Valkey address (host:port).
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.Valkey.Host, c.Valkey.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.App.Env == "development"
}
