package carousel

// InputFamily distinguishes the input source of a sample.
type InputFamily int

const (
	Mouse InputFamily = iota
	Touch
)

func (f InputFamily) String() string {
	switch f {
	case Mouse:
		return "mouse"
	case Touch:
		return "touch"
	default:
		return "unknown"
	}
}

// Sample is one raw pointer reading: the primary mouse position or the first
// changed touch point, along the carousel axis.
type Sample struct {
	Family InputFamily
	X      float64
}

type moveListener struct {
	id int
	fn func(Sample)
}

// MoveHub delivers move samples to listeners subscribed for the sample's
// input family.
type MoveHub struct {
	nextID    int
	listeners map[InputFamily][]moveListener
}

// NewMoveHub creates an empty hub.
func NewMoveHub() *MoveHub {
	return &MoveHub{listeners: make(map[InputFamily][]moveListener)}
}

// Subscribe registers fn for moves of the given family.
// The returned function removes the subscription; calling it again is a no-op.
func (h *MoveHub) Subscribe(family InputFamily, fn func(Sample)) func() {
	h.nextID++
	id := h.nextID
	h.listeners[family] = append(h.listeners[family], moveListener{id: id, fn: fn})
	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		h.remove(family, id)
	}
}

func (h *MoveHub) remove(family InputFamily, id int) {
	ls := h.listeners[family]
	for i, l := range ls {
		if l.id == id {
			h.listeners[family] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Dispatch delivers s to every listener of its family, in subscription order.
func (h *MoveHub) Dispatch(s Sample) {
	ls := h.listeners[s.Family]
	if len(ls) == 0 {
		return
	}
	snapshot := make([]moveListener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		l.fn(s)
	}
}

// Listeners returns the number of active subscriptions for family.
func (h *MoveHub) Listeners(family InputFamily) int {
	return len(h.listeners[family])
}
