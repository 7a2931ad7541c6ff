// Package config loads DocParse configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`
	History HistoryConfig `yaml:"history"`
}

// APIConfig locates the parsing service. BaseURL is the one setting the
// application cannot run without.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// UnmarshalYAML decodes the timeout from a duration string ("30s", "2m").
// Fields absent from the document keep their current (default) values.
func (c *APIConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.BaseURL != "" {
		c.BaseURL = raw.BaseURL
	}
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("api.timeout: %w", err)
		}
		c.Timeout = d
	}
	return nil
}

// LoggingConfig controls the slog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// HistoryConfig controls the local submission-history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: 5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    filepath.Join(DataDir(), "history.db"),
		},
	}
}

// DataDir returns the directory for local state (config, history database).
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".docparse"
	}
	return filepath.Join(home, ".docparse")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DataDir(), "config.yaml")
}

// Load reads configuration from path, layered over Default. A missing file
// is not an error; defaults apply. Environment variables override the file:
// DOCPARSE_API_URL replaces api.base_url.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to env overrides
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if url := os.Getenv("DOCPARSE_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}

	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = 5 * time.Minute
	}

	return cfg, nil
}
