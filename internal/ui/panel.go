package ui

import (
	"math"

	"slidenav/internal/carousel"
)

// BoundsFunc returns panel i's left edge and width in cells within the strip.
type BoundsFunc func(i int) (x, w int)

// StripBounds lays panels out left to right, width cells each with gap cells
// between them.
func StripBounds(width, gap int) BoundsFunc {
	return func(i int) (int, int) {
		return i * (width + gap), width
	}
}

// TermGeometry measures a strip of Count panels in a terminal of the current
// width. Carousel units are cells multiplied by CellWidth, so thresholds keep
// their pixel-scale meaning.
type TermGeometry struct {
	Count     int
	Bounds    BoundsFunc
	CellWidth float64
	viewport  int // cells
}

var _ carousel.Geometry = (*TermGeometry)(nil)

// NewTermGeometry creates a geometry for count panels.
func NewTermGeometry(count, panelWidth, gap int, cellWidth float64) *TermGeometry {
	return &TermGeometry{
		Count:     count,
		Bounds:    StripBounds(panelWidth, gap),
		CellWidth: cellWidth,
		viewport:  80,
	}
}

// SetViewport records the terminal width in cells.
func (g *TermGeometry) SetViewport(cells int) {
	g.viewport = cells
}

// Viewport returns the terminal width in cells.
func (g *TermGeometry) Viewport() int {
	return g.viewport
}

// ViewportWidth implements carousel.Geometry.
func (g *TermGeometry) ViewportWidth() float64 {
	return float64(g.viewport) * g.CellWidth
}

// Boxes implements carousel.Geometry.
func (g *TermGeometry) Boxes() []carousel.Box {
	boxes := make([]carousel.Box, g.Count)
	for i := range boxes {
		x, w := g.Bounds(i)
		boxes[i] = carousel.Box{
			OffsetLeft: float64(x) * g.CellWidth,
			Width:      float64(w) * g.CellWidth,
		}
	}
	return boxes
}

// ToUnits converts a terminal column to carousel units.
func (g *TermGeometry) ToUnits(col int) float64 {
	return float64(col) * g.CellWidth
}

// ToCells converts carousel units to whole cells.
func (g *TermGeometry) ToCells(units float64) int {
	return int(math.Round(units / g.CellWidth))
}

// StripWidth returns the full strip width in cells.
func (g *TermGeometry) StripWidth() int {
	if g.Count == 0 {
		return 0
	}
	x, w := g.Bounds(g.Count - 1)
	return x + w
}
