package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SLIDENAV_CONFIG", "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Carousel.DefaultIndex)
	assert.Equal(t, float64(120), c.Carousel.Threshold)
	assert.Equal(t, 1.6, c.Carousel.Sensitivity)
	assert.Equal(t, 200*time.Millisecond, c.Carousel.Debounce)
	assert.Equal(t, 40, c.UI.PanelWidth)
	assert.Equal(t, 8.0, c.UI.CellWidth)
	assert.Equal(t, "info", c.Log.Level)
	assert.Len(t, c.CarouselOptions(), 4)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[carousel]
default_index = 0
threshold = 80
debounce = "350ms"

[ui]
panel_width = 30
gap = 2
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Carousel.DefaultIndex)
	assert.Equal(t, float64(80), c.Carousel.Threshold)
	assert.Equal(t, 350*time.Millisecond, c.Carousel.Debounce)
	assert.Equal(t, 30, c.UI.PanelWidth)
	assert.Equal(t, 2, c.UI.Gap)
	assert.Equal(t, 1.6, c.Carousel.Sensitivity, "unset keys keep defaults")
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SLIDENAV_CAROUSEL_THRESHOLD", "42")
	t.Setenv("SLIDENAV_LOG_LEVEL", "debug")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, float64(42), c.Carousel.Threshold)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	isolate(t)
	base, err := Load("")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative index", func(c *Config) { c.Carousel.DefaultIndex = -1 }, "default_index"},
		{"zero threshold", func(c *Config) { c.Carousel.Threshold = 0 }, "threshold"},
		{"zero sensitivity", func(c *Config) { c.Carousel.Sensitivity = 0 }, "sensitivity"},
		{"zero debounce", func(c *Config) { c.Carousel.Debounce = 0 }, "debounce"},
		{"narrow panel", func(c *Config) { c.UI.PanelWidth = 2 }, "panel_width"},
		{"short panel", func(c *Config) { c.UI.PanelHeight = 1 }, "panel_height"},
		{"negative gap", func(c *Config) { c.UI.Gap = -1 }, "gap"},
		{"zero cell width", func(c *Config) { c.UI.CellWidth = 0 }, "cell_width"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
