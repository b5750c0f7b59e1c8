package carousel

// Renderer is the host's drawing surface for the strip.
type Renderer interface {
	// SetOffset translates the strip horizontally.
	SetOffset(x float64)
	// SetTransition enables or disables animated movement.
	SetTransition(enabled bool)
	// SetCurrent marks panel index as the current one, clearing any other.
	SetCurrent(index int)
}
