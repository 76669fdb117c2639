package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the renderer cannot work with.
func (c *Config) Validate() error {
	if c.Facade.TextureSize < 1 {
		return fmt.Errorf("facade.texture_size must be positive, got %d", c.Facade.TextureSize)
	}
	if c.Facade.FOV <= 0 || c.Facade.FOV >= 180 {
		return fmt.Errorf("facade.fov must be in (0, 180), got %g", c.Facade.FOV)
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		return fmt.Errorf("graphics.fov must be in (0, 180), got %g", c.Graphics.FOV)
	}
	if c.Facade.Padding < 1 {
		return fmt.Errorf("facade.padding must be at least 1, got %g", c.Facade.Padding)
	}
	if c.Scene.GridCount < 0 {
		return fmt.Errorf("scene.grid_count must not be negative, got %d", c.Scene.GridCount)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Facade")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Facade")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "facade")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "facade")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
