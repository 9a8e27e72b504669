package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/sonido-negativo/algorithms/chromatic"
	"github.com/RyanBlaney/sonido-negativo/logging"
)

// ColorMode controls ANSI colors in logs and CLI output
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds the settings shared by the session and the CLI
type Config struct {
	KeyCenter     string    `yaml:"key_center" json:"key_center"`         // Initial key center
	Separator     string    `yaml:"separator" json:"separator"`           // Token separator for note sequences
	LogLevel      string    `yaml:"log_level" json:"log_level"`           // debug, info, warn, error
	Colors        ColorMode `yaml:"colors" json:"colors"`                 // auto, always, never
	OverlayRadius float64   `yaml:"overlay_radius" json:"overlay_radius"` // Radius of the axis overlay circle
}

// Default returns the settings used when no file is given
func Default() *Config {
	return &Config{
		KeyCenter:     "C",
		Separator:     " ",
		LogLevel:      "info",
		Colors:        ColorAuto,
		OverlayRadius: 1.0,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	var errs []error

	if !chromatic.Default().Contains(c.KeyCenter) {
		errs = append(errs, fmt.Errorf("key_center %q: %w", c.KeyCenter, chromatic.ErrNotFound))
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	switch c.Colors {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("colors %q: must be auto, always or never", c.Colors))
	}

	if c.OverlayRadius <= 0 {
		errs = append(errs, fmt.Errorf("overlay_radius must be positive, got %g", c.OverlayRadius))
	}

	return errors.Join(errs...)
}

// Level returns the parsed log level, falling back to info
func (c *Config) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.InfoLevel
	}
	return level
}

// UseColors resolves the color mode against whether output is a terminal
func (c *Config) UseColors(terminal bool) bool {
	switch c.Colors {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}
