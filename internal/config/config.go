// Package config provides configuration for petshelter. Configuration is
// loaded from multiple sources with the following precedence:
// embedded defaults → config file → env vars
// The config file is optional and is never created or modified; the program
// leaves no files behind.
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/alexander-akhmetov/petshelter/internal/dirs"
)

//go:embed defaults/config.yaml
var defaultsFS embed.FS

// Config holds all configuration settings for petshelter.
// Fields ending in *Set track whether that field was explicitly set in the
// config file. This allows distinguishing explicit false from "not set", so
// a file can override an embedded default with a zero value.
type Config struct {
	// ShelterName is the name shown in the welcome banner.
	ShelterName string `yaml:"shelter_name"`

	// Plain forces the line-based frontend even when running on a terminal.
	Plain bool `yaml:"plain"`

	// Set tracking for merge behavior
	PlainSet bool `yaml:"-"`

	// Private: track where config was loaded from
	sources []string // ordered list of sources that contributed to this config
}

// Sources returns the ordered list of sources that contributed to this config.
func (c *Config) Sources() []string {
	return c.sources
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadWithDir(DefaultConfigDir())
}

// LoadWithDir loads configuration with an explicit config directory. A
// missing config file is not an error; defaults and env vars still apply.
func LoadWithDir(dir string) (*Config, error) {
	// 1. Start with embedded defaults
	cfg, err := loadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load embedded defaults: %w", err)
	}
	cfg.sources = append(cfg.sources, "embedded")

	// 2. Merge the config file, if present
	path := filepath.Join(dir, "config.yaml")
	if fileCfg, err := loadFile(path); err == nil {
		cfg.mergeFrom(fileCfg)
		cfg.sources = append(cfg.sources, path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("load config file: %w", err)
	}

	// 3. Apply environment variables (highest precedence)
	cfg.applyEnv()

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory path.
func DefaultConfigDir() string {
	return dirs.ConfigDir()
}

// loadEmbedded loads config from the embedded defaults.
func loadEmbedded() (*Config, error) {
	data, err := defaultsFS.ReadFile("defaults/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded defaults: %w", err)
	}
	return parseConfig(data)
}

// loadFile loads config from a file path.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user's config file
	if err != nil {
		return nil, err
	}
	return parseConfigWithTracking(data)
}

// parseConfig parses YAML config data into a Config struct.
func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// parseConfigWithTracking parses YAML config and tracks which fields were set.
func parseConfigWithTracking(data []byte) (*Config, error) {
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, err
	}

	// Parse into a map to detect which fields were explicitly set
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if _, ok := raw["plain"]; ok {
		cfg.PlainSet = true
	}

	return cfg, nil
}

// applyEnv applies environment variables to the config.
// Env vars take precedence over the config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("PETSHELTER_SHELTER_NAME"); v != "" {
		c.ShelterName = v
		c.sources = append(c.sources, "env:PETSHELTER_SHELTER_NAME")
	}

	if v := os.Getenv("PETSHELTER_PLAIN"); v != "" {
		c.Plain = v == "true" || v == "1"
		c.PlainSet = true
		c.sources = append(c.sources, "env:PETSHELTER_PLAIN")
	}
}

// mergeFrom merges non-empty/set values from src into c.
func (c *Config) mergeFrom(src *Config) {
	if src.ShelterName != "" {
		c.ShelterName = src.ShelterName
	}
	if src.PlainSet {
		c.Plain = src.Plain
		c.PlainSet = true
	}
}
