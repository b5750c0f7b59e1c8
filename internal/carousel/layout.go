package carousel

// Panel is one item of the carousel with its computed resting offset.
type Panel struct {
	Index         int
	RestingOffset float64
}

// Layout holds the resting offset table for a panel sequence.
type Layout struct {
	panels []Panel
}

// RestingOffsetFor returns the translation that centers box in a viewport of
// the given width. Moving the strip left (negative) reveals panels to the right.
func RestingOffsetFor(viewportWidth float64, box Box) float64 {
	margin := (viewportWidth - box.Width) / 2
	return -(box.OffsetLeft - margin)
}

// Recompute rebuilds the offset table from fresh measurements and returns it.
// Calling it twice with the same inputs yields the same table.
func (l *Layout) Recompute(viewportWidth float64, boxes []Box) []Panel {
	panels := make([]Panel, len(boxes))
	for i, b := range boxes {
		panels[i] = Panel{Index: i, RestingOffset: RestingOffsetFor(viewportWidth, b)}
	}
	l.panels = panels
	return l.Panels()
}

// RestingOffset returns the resting offset of panel i.
// Returns false if i is out of range.
func (l *Layout) RestingOffset(i int) (float64, bool) {
	if i < 0 || i >= len(l.panels) {
		return 0, false
	}
	return l.panels[i].RestingOffset, true
}

// Len returns the number of panels in the table.
func (l *Layout) Len() int {
	return len(l.panels)
}

// Panels returns a copy of the offset table.
func (l *Layout) Panels() []Panel {
	out := make([]Panel, len(l.panels))
	copy(out, l.panels)
	return out
}
