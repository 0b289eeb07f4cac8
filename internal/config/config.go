// Package config loads and saves the user configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable settings.
type Config struct {
	// ScrambleLength is the number of moves generated by the scramble command.
	ScrambleLength int `yaml:"scramble_length"`

	// DatabasePath overrides the default solve history location.
	// Empty means ~/.cubesolve/cubesolve.db.
	DatabasePath string `yaml:"database_path"`

	// ColorOutput enables the colored cube net in terminal output.
	ColorOutput bool `yaml:"color_output"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		ScrambleLength: 25,
		ColorOutput:    true,
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubesolve", "config.yaml"), nil
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.ScrambleLength <= 0 {
		cfg.ScrambleLength = Default().ScrambleLength
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
