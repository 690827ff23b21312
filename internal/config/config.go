// Package config persists the user's default easing style and padding level.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/glide/internal/easing"
	"github.com/1broseidon/glide/internal/layout"
)

// Config holds the persisted preferences. Durations are intrinsic to each
// easing style and are deliberately not configurable.
type Config struct {
	// DefaultStyle is the easing style used when a request doesn't name one.
	DefaultStyle string `yaml:"default_style"`
	// Padding is the named gap level applied around placed windows.
	Padding string `yaml:"padding"`
	// Hotkeys maps placement names to global key sequences,
	// e.g. left: "Mod4-Left". Changes require a daemon restart.
	Hotkeys map[string]string `yaml:"hotkeys,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultStyle: string(easing.StyleSmooth),
		Padding:      string(layout.PaddingMedium),
	}
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "glide", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file
// yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates a configuration file.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the named style and padding level exist.
func (c *Config) Validate() error {
	if _, err := easing.ParseStyle(c.DefaultStyle); err != nil {
		return fmt.Errorf("default_style: %w", err)
	}
	if _, err := layout.ParsePadding(c.Padding); err != nil {
		return fmt.Errorf("padding: %w", err)
	}
	for name := range c.Hotkeys {
		if _, err := layout.ParsePlacement(name); err != nil {
			return fmt.Errorf("hotkeys: %w", err)
		}
	}
	return nil
}

// Save writes the configuration to the standard location, creating the
// directory if needed.
func (c *Config) Save() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveToPath(path)
}

// SaveToPath writes the configuration to the given file.
func (c *Config) SaveToPath(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

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

// Style returns the parsed default easing style.
func (c *Config) Style() easing.Style {
	s, err := easing.ParseStyle(c.DefaultStyle)
	if err != nil {
		return easing.StyleSmooth
	}
	return s
}

// PaddingLevel returns the parsed padding level.
func (c *Config) PaddingLevel() layout.PaddingLevel {
	p, err := layout.ParsePadding(c.Padding)
	if err != nil {
		return layout.PaddingMedium
	}
	return p
}
