package core

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/spritebatch/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grove.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, colors.CornflowerBlue, cfg.ClearColor)
	assert.Equal(t, 1000, cfg.BatchSize)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
title = "demo"
width = 800
height = 600
batch_size = 64
font_size = 18.5
log_level = "debug"
clear_color = { R = 10, G = 20, B = 30, A = 255 }
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, 64, cfg.BatchSize)
	assert.InDelta(t, 18.5, cfg.FontSize, 1e-6)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, colors.RGBA(10, 20, 30, 255), cfg.ClearColor)
	// untouched keys keep their defaults
	assert.True(t, cfg.VSync)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadConfigParseError(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "width = [oops"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "batch_size = 0"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"width":      func(c *Config) { c.Width = 0 },
		"height":     func(c *Config) { c.Height = -1 },
		"batch size": func(c *Config) { c.BatchSize = -5 },
		"font size":  func(c *Config) { c.FontSize = 0 },
		"log level":  func(c *Config) { c.LogLevel = "verbose" },
	} {
		cfg := DefaultConfig()
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, name)
	}
}

func TestLogLevelAgreesWithParseLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "DEBUG", "Warn", "error", "INFO"} {
		cfg := DefaultConfig()
		cfg.LogLevel = lvl
		assert.NoError(t, cfg.Validate(), lvl)
	}
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))

	cfg, err := LoadConfig(writeConfig(t, `log_level = "WARN"`))
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, ParseLevel(cfg.LogLevel))
}
