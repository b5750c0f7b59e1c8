package carousel

import (
	"log/slog"
	"time"
)

// DefaultIndex is the panel activated by Init unless configured otherwise.
const DefaultIndex = 2

// Options configures a Controller.
type Options struct {
	DefaultIndex   int
	Threshold      float64
	Sensitivity    float64
	DebounceWindow time.Duration
	// Post runs deferred work (debounced reflows) on the host's event loop.
	// The debounce timer fires on its own goroutine, so Post must hand fn
	// back to whatever goroutine drives the controller. Required.
	Post            func(fn func())
	Logger          *slog.Logger
	GestureObserver GestureObserver
}

// Option mutates Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		DefaultIndex:   DefaultIndex,
		Threshold:      DefaultCommitThreshold,
		Sensitivity:    DefaultSensitivity,
		DebounceWindow: DefaultDebounceWindow,
		Logger:         slog.New(slog.DiscardHandler),
	}
}

// WithDefaultIndex sets the panel activated by Init.
func WithDefaultIndex(i int) Option {
	return func(o *Options) { o.DefaultIndex = i }
}

// WithThreshold sets the commit threshold.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if t > 0 {
			o.Threshold = t
		}
	}
}

// WithSensitivity sets the drag amplification factor.
func WithSensitivity(s float64) Option {
	return func(o *Options) {
		if s > 0 {
			o.Sensitivity = s
		}
	}
}

// WithDebounceWindow sets the viewport-change quiet period.
func WithDebounceWindow(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.DebounceWindow = d
		}
	}
}

// WithPost sets how debounced work is handed back to the host loop.
func WithPost(post func(fn func())) Option {
	return func(o *Options) {
		if post != nil {
			o.Post = post
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithGestureObserver receives drag session start/end notifications.
func WithGestureObserver(obs GestureObserver) Option {
	return func(o *Options) { o.GestureObserver = obs }
}
