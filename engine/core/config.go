package core

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hubastard/spritebatch/engine/colors"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned by Validate and LoadConfig.
var ErrInvalidConfig = errors.New("invalid config")

// Config for the engine run.
type Config struct {
	Title      string       `toml:"title"`
	Width      int          `toml:"width"`
	Height     int          `toml:"height"`
	VSync      bool         `toml:"vsync"`
	ClearColor colors.Color `toml:"clear_color"`

	// BatchSize is the number of quads each sprite batch holds before it
	// flushes on its own.
	BatchSize int `toml:"batch_size"`

	// Font is a TTF file under assets/fonts; empty selects the built-in Go font.
	Font     string  `toml:"font"`
	FontSize float32 `toml:"font_size"`

	// LogLevel is one of debug, info, warn, error, in any case.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Title:      "Grove Sprite Batch",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.CornflowerBlue,
		BatchSize:  1000,
		FontSize:   24,
		LogLevel:   "info",
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.BatchSize <= 0:
		return fmt.Errorf("%w: batch_size must be positive, got %d", ErrInvalidConfig, c.BatchSize)
	case c.FontSize <= 0:
		return fmt.Errorf("%w: font_size must be positive, got %v", ErrInvalidConfig, c.FontSize)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
