package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/lighting"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/terrain"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority
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

// Validate checks values that would otherwise fail deep inside the viewer.
func (c *Config) Validate() error {
	if c.Terrain.Heightmap == "" {
		return fmt.Errorf("terrain.heightmap is required")
	}
	if _, err := terrain.ParseMode(c.Terrain.Mode); err != nil {
		return fmt.Errorf("terrain.mode: %w", err)
	}
	if _, err := lighting.ParseMode(c.Graphics.Light); err != nil {
		return fmt.Errorf("graphics.light: %w", err)
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Overview.Size <= 0 {
		return fmt.Errorf("overview.size must be positive, got %v", c.Overview.Size)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./scene3d.yaml",
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
		return filepath.Join(home, "Library", "Application Support", "HeliXScene3D")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "HeliXScene3D")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "heli-x-scene3d")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "heli-x-scene3d")
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
