package ui

import "slidenav/internal/carousel"

// TermRenderer is the carousel's drawing surface. It only records state; the
// next View() call draws it.
type TermRenderer struct {
	offset     float64
	transition bool
	current    int
	frames     int // SetOffset calls, for the status line
}

var _ carousel.Renderer = (*TermRenderer)(nil)

// NewTermRenderer creates a renderer with no current panel.
func NewTermRenderer() *TermRenderer {
	return &TermRenderer{current: carousel.None}
}

// SetOffset implements carousel.Renderer.
func (r *TermRenderer) SetOffset(x float64) {
	r.offset = x
	r.frames++
}

// SetTransition implements carousel.Renderer.
func (r *TermRenderer) SetTransition(enabled bool) {
	r.transition = enabled
}

// SetCurrent implements carousel.Renderer.
func (r *TermRenderer) SetCurrent(index int) {
	r.current = index
}

// Offset returns the strip translation in carousel units.
func (r *TermRenderer) Offset() float64 { return r.offset }

// Transition reports whether movement is currently animated.
func (r *TermRenderer) Transition() bool { return r.transition }

// Current returns the panel marked current.
func (r *TermRenderer) Current() int { return r.current }

// Frames returns how many offsets have been rendered.
func (r *TermRenderer) Frames() int { return r.frames }
