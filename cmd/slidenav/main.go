package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"slidenav/internal/config"
	"slidenav/internal/deck"
	"slidenav/internal/trace"
	"slidenav/internal/ui"
)

// options holds the parsed CLI flags. Non-empty flags override config values.
type options struct {
	configPath string
	deckPath   string
	logFile    string
}

func parseFlags() options {
	var o options

	flag.StringVar(&o.configPath, "config", "", "path to a config file (default $SLIDENAV_CONFIG or ~/.config/slidenav/config.*)")
	flag.StringVar(&o.deckPath, "deck", "", "path to a YAML slide deck (default: built-in demo deck)")
	flag.StringVar(&o.logFile, "log-file", "", "write structured logs to this file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: slidenav [flags]\n\n")
		fmt.Fprintf(os.Stderr, "slidenav shows a slide deck as a draggable carousel in the terminal.\n")
		fmt.Fprintf(os.Stderr, "Drag with the mouse, click the arrows or dots, or use the keyboard.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return o
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(o options) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.deckPath != "" {
		cfg.Deck.Path = o.deckPath
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	d, err := loadDeck(cfg.Deck.Path)
	if err != nil {
		return err
	}

	ctx := context.Background()
	provider, err := trace.NewProvider(ctx, trace.ExporterConfig{
		Endpoint:    cfg.Trace.Endpoint,
		ServiceName: cfg.Trace.ServiceName,
		Insecure:    cfg.Trace.Insecure,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown failed", "err", err)
		}
	}()

	view, err := ui.NewCarouselView(d, ui.CarouselOptions{
		PanelWidth:  cfg.UI.PanelWidth,
		PanelHeight: cfg.UI.PanelHeight,
		Gap:         cfg.UI.Gap,
		CellWidth:   cfg.UI.CellWidth,
		Carousel:    cfg.CarouselOptions(),
		Recorder:    trace.NewRecorder(provider, 0),
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	defer view.Close()

	logger.Info("starting", "slides", d.Len(), "deck", cfg.Deck.Path, "tracing", provider.Enabled())

	model := ui.NewAppModel(view).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// loadDeck reads the deck at path, or returns the demo deck when path is empty.
func loadDeck(path string) (*deck.Deck, error) {
	if path == "" {
		return deck.Demo(), nil
	}
	d, err := deck.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}
	return d, nil
}

// newLogger opens the log sink. The terminal belongs to the UI, so without a
// log file records are discarded.
func newLogger(c config.LogConfig) (*slog.Logger, func() error, error) {
	opts := &slog.HandlerOptions{Level: parseLevel(c.Level)}
	if c.File == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), f.Close, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
