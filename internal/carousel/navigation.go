package carousel

import "fmt"

// None marks an undefined neighbor in an Index.
const None = -1

// Index is the navigation triple around the active panel.
// Prev and Next are None at the first and last panel respectively.
type Index struct {
	Prev   int
	Active int
	Next   int
}

// HasPrev reports whether a previous panel exists.
func (i Index) HasPrev() bool { return i.Prev != None }

// HasNext reports whether a next panel exists.
func (i Index) HasNext() bool { return i.Next != None }

func (i Index) String() string {
	return fmt.Sprintf("{prev:%d active:%d next:%d}", i.Prev, i.Active, i.Next)
}

// indexFor builds the triple for active within a sequence of count panels.
func indexFor(active, count int) Index {
	idx := Index{Prev: None, Active: active, Next: None}
	if active > 0 {
		idx.Prev = active - 1
	}
	if active < count-1 {
		idx.Next = active + 1
	}
	return idx
}

// Navigator owns the Index for a fixed-length panel sequence.
type Navigator struct {
	count    int
	current  Index
	OnChange func(Index) // Called after every successful SetActive, same index included
}

// NewNavigator creates a navigator over count panels with panel 0 active.
// No OnChange fires for the initial state.
func NewNavigator(count int) *Navigator {
	return &Navigator{count: count, current: indexFor(0, count)}
}

// Len returns the number of panels.
func (n *Navigator) Len() int {
	return n.count
}

// Current returns the current Index.
func (n *Navigator) Current() Index {
	return n.current
}

// SetActive makes panel i active.
// Returns false and leaves state untouched if i is outside [0, Len()-1].
func (n *Navigator) SetActive(i int) bool {
	if i < 0 || i >= n.count {
		return false
	}
	n.current = indexFor(i, n.count)
	if n.OnChange != nil {
		n.OnChange(n.current)
	}
	return true
}

// Prev activates the previous panel if there is one.
func (n *Navigator) Prev() bool {
	if !n.current.HasPrev() {
		return false
	}
	return n.SetActive(n.current.Prev)
}

// Next activates the next panel if there is one.
func (n *Navigator) Next() bool {
	if !n.current.HasNext() {
		return false
	}
	return n.SetActive(n.current.Next)
}
