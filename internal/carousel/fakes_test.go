package carousel

// recordingRenderer captures every call the controller makes.
type recordingRenderer struct {
	offsets     []float64
	transitions []bool
	current     []int
}

func (r *recordingRenderer) SetOffset(x float64) { r.offsets = append(r.offsets, x) }
func (r *recordingRenderer) SetTransition(enabled bool) { r.transitions = append(r.transitions, enabled) }
func (r *recordingRenderer) SetCurrent(index int) { r.current = append(r.current, index) }

func (r *recordingRenderer) lastOffset() float64 {
	if len(r.offsets) == 0 {
		return 0
	}
	return r.offsets[len(r.offsets)-1]
}

func (r *recordingRenderer) lastTransition() bool {
	if len(r.transitions) == 0 {
		return false
	}
	return r.transitions[len(r.transitions)-1]
}

// fivePanels is the strip used throughout: panel i at offsetLeft i*300,
// width 300, viewport 300, so restingOffset[i] = -300i.
func fivePanels() *StaticGeometry {
	return &StaticGeometry{Viewport: 300, Panels: UniformBoxes(5, 300, 0)}
}

// inlinePost runs deferred work immediately. Only for tests that never let
// the debounce timer fire.
func inlinePost(fn func()) { fn() }
