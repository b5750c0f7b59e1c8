package carousel

// Box is a measured panel: its left edge within the strip and its width.
type Box struct {
	OffsetLeft float64
	Width      float64
}

// Geometry supplies panel measurements and the viewport width.
// Units are arbitrary but must match the units of input samples.
type Geometry interface {
	ViewportWidth() float64
	Boxes() []Box
}

// StaticGeometry is a fixed Geometry, useful for hosts whose panels never move
// and for tests.
type StaticGeometry struct {
	Viewport float64
	Panels   []Box
}

// ViewportWidth implements Geometry.
func (g *StaticGeometry) ViewportWidth() float64 { return g.Viewport }

// Boxes implements Geometry.
func (g *StaticGeometry) Boxes() []Box { return g.Panels }

// UniformBoxes returns n boxes of the given width laid out left to right with
// gap between them.
func UniformBoxes(n int, width, gap float64) []Box {
	boxes := make([]Box, n)
	for i := range boxes {
		boxes[i] = Box{OffsetLeft: float64(i) * (width + gap), Width: width}
	}
	return boxes
}
