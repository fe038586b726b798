package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/asciify/internal/ascii"
	"github.com/san-kum/asciify/internal/theme"
)

const (
	DefaultWidth    = 100
	MinWidth        = 20
	MaxWidth        = 400
	DefaultResample = "nearest"
	DefaultTheme    = "dark"
	DefaultLogLevel = "info"
	DefaultOutput   = "."
)

// ErrWidthRange indicates a width outside [MinWidth, MaxWidth].
var ErrWidthRange = errors.New("config: width out of range")

type Config struct {
	Width     int    `yaml:"width"`
	Theme     string `yaml:"theme"`
	Resample  string `yaml:"resample"`
	OutputDir string `yaml:"output_dir"`
	StateDir  string `yaml:"state_dir,omitempty"`
	LogLevel  string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:     DefaultWidth,
		Theme:     DefaultTheme,
		Resample:  DefaultResample,
		OutputDir: DefaultOutput,
		LogLevel:  DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CheckWidth reports whether w is a width the tools accept.
func CheckWidth(w int) error {
	if w < MinWidth || w > MaxWidth {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrWidthRange, w, MinWidth, MaxWidth)
	}
	return nil
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	if err := CheckWidth(c.Width); err != nil {
		return err
	}
	if _, err := theme.Parse(c.Theme); err != nil {
		return err
	}
	if _, err := ascii.GetResampler(c.Resample); err != nil {
		return err
	}
	return nil
}

// GetTheme returns the configured theme, falling back to the default.
func (c *Config) GetTheme() theme.Theme {
	t, err := theme.Parse(c.Theme)
	if err != nil {
		return theme.Default
	}
	return t
}

// GetResampler returns the configured resampler, falling back to nearest.
func (c *Config) GetResampler() ascii.Resampler {
	rs, err := ascii.GetResampler(c.Resample)
	if err != nil {
		return ascii.Nearest
	}
	return rs
}
