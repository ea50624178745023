// Package config loads tinygrep configuration from an optional YAML
// file. CLI flags always override file settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where LoadConfig looks when no explicit path is
// given.
const DefaultConfigPath = ".tinygrep.yaml"

// Config represents tinygrep configuration options
type Config struct {
	// LineNumbers shows line numbers with output lines by default
	LineNumbers bool `yaml:"line_numbers"`

	// Color enables match highlighting by default
	Color bool `yaml:"color"`

	// LogLevel sets the verbose-logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// HighlightCompat restores the historical regex highlighting that
	// wraps every textual occurrence of a matched substring instead of
	// only the located span
	HighlightCompat bool `yaml:"highlight_compat"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LineNumbers:     false,
		Color:           false,
		LogLevel:        "info",
		HighlightCompat: false,
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without
// error. If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
