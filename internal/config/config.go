// Package config loads the user configuration from ~/.fleetdeck/config.yaml.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Table TableConfig `yaml:"table"`
	Theme Theme       `yaml:"theme"`
}

// TableConfig controls the vehicles table defaults.
type TableConfig struct {
	// PageSize is the fixed number of rows per page.
	PageSize int `yaml:"page_size"`

	// HiddenColumns lists column ids hidden by default. Hidden columns can
	// still be toggled back on in the TUI.
	HiddenColumns []string `yaml:"hidden_columns"`
}

// Theme holds the dashboard colors.
type Theme struct {
	Highlight string `yaml:"highlight"`
	Subtle    string `yaml:"subtle"`
	Danger    string `yaml:"danger"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			PageSize: 10,
		},
		Theme: Theme{
			Highlight: "#7D56F4",
			Subtle:    "#6C6C6C",
			Danger:    "#E06C75",
		},
	}
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return Default(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// applyDefaults fills in any missing values with defaults.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Table.PageSize <= 0 {
		c.Table.PageSize = def.Table.PageSize
	}
	if c.Theme.Highlight == "" {
		c.Theme.Highlight = def.Theme.Highlight
	}
	if c.Theme.Subtle == "" {
		c.Theme.Subtle = def.Theme.Subtle
	}
	if c.Theme.Danger == "" {
		c.Theme.Danger = def.Theme.Danger
	}
}

func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".fleetdeck", "config.yaml"), nil
}
