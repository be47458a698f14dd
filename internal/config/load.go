package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate for an unusable setting.
var ErrInvalid = errors.New("invalid config value")

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
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
		return filepath.Join(home, "Library", "Application Support", "Scenekit")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Scenekit")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "scenekit")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "scenekit")
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

// Validate rejects settings the demos cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalid)
	case c.Simulation.StepInterval <= 0:
		return fmt.Errorf("simulation.step_interval %v: %w", c.Simulation.StepInterval, ErrInvalid)
	case c.Simulation.MaxPixelsPerStep <= 0:
		return fmt.Errorf("simulation.max_pixels_per_step %d: %w", c.Simulation.MaxPixelsPerStep, ErrInvalid)
	case c.Rods.Slices < 3:
		return fmt.Errorf("rods.slices %d: %w", c.Rods.Slices, ErrInvalid)
	case c.Solar.StepInterval <= 0:
		return fmt.Errorf("solar.step_interval %v: %w", c.Solar.StepInterval, ErrInvalid)
	case c.Solar.SphereSlices < 3 || c.Solar.SphereStacks < 2:
		return fmt.Errorf("solar sphere %dx%d: %w", c.Solar.SphereSlices, c.Solar.SphereStacks, ErrInvalid)
	}
	return nil
}
