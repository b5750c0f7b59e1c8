package carousel

import "fmt"

// Trigger is an activatable control, such as an arrow or a dot.
type Trigger interface {
	OnActivate(fn func())
}

// ControlList is an ordered list of per-panel controls with one current item.
type ControlList interface {
	Items() []Trigger
	SetCurrent(index int)
}

// Button is a minimal Trigger that hosts activate directly.
type Button struct {
	Name     string
	handlers []func()
}

// OnActivate implements Trigger.
func (b *Button) OnActivate(fn func()) {
	b.handlers = append(b.handlers, fn)
}

// Activate runs every registered handler.
func (b *Button) Activate() {
	for _, fn := range b.handlers {
		fn()
	}
}

// ControlItem is one entry of DefaultControls.
type ControlItem struct {
	Button
	Label  string // 1-based panel number
	Target string // anchor, e.g. "#slide3"
}

// DefaultControls is the control list synthesized when the host supplies none:
// one item per panel labelled 1..n.
type DefaultControls struct {
	items   []*ControlItem
	current int
}

// NewDefaultControls creates n control items.
func NewDefaultControls(n int) *DefaultControls {
	items := make([]*ControlItem, n)
	for i := range items {
		items[i] = &ControlItem{
			Button: Button{Name: fmt.Sprintf("control-%d", i)},
			Label:  fmt.Sprintf("%d", i+1),
			Target: fmt.Sprintf("#slide%d", i+1),
		}
	}
	return &DefaultControls{items: items, current: None}
}

// Items implements ControlList.
func (d *DefaultControls) Items() []Trigger {
	out := make([]Trigger, len(d.items))
	for i, it := range d.items {
		out[i] = it
	}
	return out
}

// Item returns the i-th control item, or nil if out of range.
func (d *DefaultControls) Item(i int) *ControlItem {
	if i < 0 || i >= len(d.items) {
		return nil
	}
	return d.items[i]
}

// Len returns the number of items.
func (d *DefaultControls) Len() int {
	return len(d.items)
}

// SetCurrent implements ControlList.
func (d *DefaultControls) SetCurrent(index int) {
	if index < 0 || index >= len(d.items) {
		d.current = None
		return
	}
	d.current = index
}

// Current returns the highlighted item index, or None.
func (d *DefaultControls) Current() int {
	return d.current
}
