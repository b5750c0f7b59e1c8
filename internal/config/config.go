// Package config loads slidenav settings from defaults, an optional config
// file and SLIDENAV_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"slidenav/internal/carousel"
)

// Config holds application configuration.
type Config struct {
	Carousel CarouselConfig `mapstructure:"carousel"`
	UI       UIConfig       `mapstructure:"ui"`
	Deck     DeckConfig     `mapstructure:"deck"`
	Log      LogConfig      `mapstructure:"log"`
	Trace    TraceConfig    `mapstructure:"trace"`
}

// CarouselConfig tunes the gesture core.
type CarouselConfig struct {
	DefaultIndex int           `mapstructure:"default_index"`
	Threshold    float64       `mapstructure:"threshold"`
	Sensitivity  float64       `mapstructure:"sensitivity"`
	Debounce     time.Duration `mapstructure:"debounce"`
}

// UIConfig sizes the terminal strip. Widths are in cells; CellWidth converts
// cells to the pixel units the carousel thresholds are expressed in.
type UIConfig struct {
	PanelWidth  int     `mapstructure:"panel_width"`
	PanelHeight int     `mapstructure:"panel_height"`
	Gap         int     `mapstructure:"gap"`
	CellWidth   float64 `mapstructure:"cell_width"`
}

// DeckConfig points at the slide deck file. Empty means the built-in demo deck.
type DeckConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig controls the structured log sink.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// TraceConfig controls OTLP export of gesture spans.
type TraceConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
	Insecure    bool   `mapstructure:"insecure"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("carousel.default_index", carousel.DefaultIndex)
	v.SetDefault("carousel.threshold", carousel.DefaultCommitThreshold)
	v.SetDefault("carousel.sensitivity", carousel.DefaultSensitivity)
	v.SetDefault("carousel.debounce", carousel.DefaultDebounceWindow)
	v.SetDefault("ui.panel_width", 40)
	v.SetDefault("ui.panel_height", 12)
	v.SetDefault("ui.gap", 4)
	v.SetDefault("ui.cell_width", 8.0)
	v.SetDefault("deck.path", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("trace.endpoint", "")
	v.SetDefault("trace.service_name", "slidenav")
	v.SetDefault("trace.insecure", true)
}

// Load reads configuration from file and env. Env var overrides use prefix SLIDENAV_.
// path selects the config file; when empty SLIDENAV_CONFIG is consulted, then
// $HOME/.config/slidenav/config.{toml,yaml}. A missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = os.Getenv("SLIDENAV_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "slidenav"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SLIDENAV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Carousel.DefaultIndex < 0 {
		return fmt.Errorf("carousel.default_index must be >= 0, got %d", c.Carousel.DefaultIndex)
	}
	if c.Carousel.Threshold <= 0 {
		return fmt.Errorf("carousel.threshold must be > 0, got %.2f", c.Carousel.Threshold)
	}
	if c.Carousel.Sensitivity <= 0 {
		return fmt.Errorf("carousel.sensitivity must be > 0, got %.2f", c.Carousel.Sensitivity)
	}
	if c.Carousel.Debounce <= 0 {
		return fmt.Errorf("carousel.debounce must be > 0, got %s", c.Carousel.Debounce)
	}
	if c.UI.PanelWidth < 4 {
		return fmt.Errorf("ui.panel_width must be >= 4, got %d", c.UI.PanelWidth)
	}
	if c.UI.PanelHeight < 3 {
		return fmt.Errorf("ui.panel_height must be >= 3, got %d", c.UI.PanelHeight)
	}
	if c.UI.Gap < 0 {
		return fmt.Errorf("ui.gap must be >= 0, got %d", c.UI.Gap)
	}
	if c.UI.CellWidth <= 0 {
		return fmt.Errorf("ui.cell_width must be > 0, got %.2f", c.UI.CellWidth)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}

// CarouselOptions converts the carousel section into controller options.
func (c Config) CarouselOptions() []carousel.Option {
	return []carousel.Option{
		carousel.WithDefaultIndex(c.Carousel.DefaultIndex),
		carousel.WithThreshold(c.Carousel.Threshold),
		carousel.WithSensitivity(c.Carousel.Sensitivity),
		carousel.WithDebounceWindow(c.Carousel.Debounce),
	}
}
