// Package config loads LearnSphere client settings from a YAML file
// with LEARNSPHERE_* environment overrides.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Config holds the client settings. Zero TimeoutSeconds means no
// request deadline, which content and quiz generation need.
type Config struct {
	ServerURL      string `koanf:"server_url" yaml:"server_url"`
	CookiePath     string `koanf:"cookie_path" yaml:"cookie_path"`
	CachePath      string `koanf:"cache_path" yaml:"cache_path"`
	TimeoutSeconds int    `koanf:"timeout_seconds" yaml:"timeout_seconds"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		ServerURL:      "http://localhost:5000",
		CookiePath:     filepath.Join(stateDir(), "cookies.json"),
		CachePath:      filepath.Join(stateDir(), "history.db"),
		TimeoutSeconds: 0,
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	return filepath.Join(stateDir(), "config.yaml")
}

func stateDir() string {
	if dir := os.Getenv("LEARNSPHERE_HOME"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "learnsphere")
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LEARNSPHERE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// LEARNSPHERE_SERVER_URL -> server_url, etc.
	if err := k.Load(env.Provider("LEARNSPHERE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LEARNSPHERE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path, creating
// parent directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server_url is required")
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server_url %q: must be an absolute http(s) URL", c.ServerURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid server_url scheme %q", u.Scheme)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must be non-negative")
	}
	return nil
}
