package carousel

import (
	"log/slog"

	"github.com/google/uuid"
)

// Controller is one carousel instance. It owns its layout, navigation state,
// drag tracking and observers; nothing is shared between instances.
//
// A Controller is not safe for concurrent use. Hosts call it from their event
// loop and route debounced work back onto that loop through Options.Post.
type Controller struct {
	id       string
	geom     Geometry
	renderer Renderer
	opts     Options
	log      *slog.Logger

	layout      Layout
	nav         *Navigator
	hub         *MoveHub
	tracker     *GestureTracker
	broadcaster *Broadcaster
	reflow      *Debouncer

	offset        float64
	transition    bool
	initialized   bool
	unsubControls func()
}

// New creates a controller over the given collaborators. Call Init before use.
func New(geom Geometry, r Renderer, opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	id := uuid.NewString()
	return &Controller{
		id:          id,
		geom:        geom,
		renderer:    r,
		opts:        o,
		log:         o.Logger.With("carousel", id),
		hub:         NewMoveHub(),
		broadcaster: NewBroadcaster(),
	}
}

// Init validates collaborators, computes the initial layout, enables
// transitions and activates the default panel. It returns the controller for
// chaining. Calling Init again is a no-op.
func (c *Controller) Init() (*Controller, error) {
	if c.initialized {
		return c, nil
	}
	if c.geom == nil {
		return nil, &ConfigError{Element: "geometry"}
	}
	if c.renderer == nil {
		return nil, &ConfigError{Element: "renderer"}
	}
	if c.opts.Post == nil {
		return nil, &ConfigError{Element: "post"}
	}
	boxes := c.geom.Boxes()
	if len(boxes) == 0 {
		return nil, &ConfigError{Element: "panels"}
	}

	c.layout.Recompute(c.geom.ViewportWidth(), boxes)
	c.nav = NewNavigator(len(boxes))
	c.nav.OnChange = c.apply
	c.tracker = newGestureTracker(c, c.hub, CommitPolicy{Threshold: c.opts.Threshold}, c.opts.Sensitivity, c.opts.GestureObserver)
	c.reflow = NewDebouncer(c.opts.DebounceWindow, func() { c.opts.Post(c.Reflow) })
	c.initialized = true

	c.setTransition(true)
	c.nav.SetActive(clamp(c.opts.DefaultIndex, 0, len(boxes)-1))

	c.log.Info("carousel initialized",
		"panels", len(boxes),
		"active", c.nav.Current().Active,
		"viewport", c.geom.ViewportWidth())
	return c, nil
}

// ID returns the instance identifier.
func (c *Controller) ID() string {
	return c.id
}

// Current returns the navigation index. The zero Index is returned before Init.
func (c *Controller) Current() Index {
	if c.nav == nil {
		return Index{Prev: None, Active: None, Next: None}
	}
	return c.nav.Current()
}

// Offset returns the last offset handed to the renderer.
func (c *Controller) Offset() float64 {
	return c.offset
}

// Transition reports whether transitions are currently enabled.
func (c *Controller) Transition() bool {
	return c.transition
}

// Dragging reports whether a drag session is open.
func (c *Controller) Dragging() bool {
	return c.tracker != nil && c.tracker.State() == GestureDragging
}

// Session returns the open drag session, if any.
func (c *Controller) Session() (DragSession, bool) {
	if c.tracker == nil {
		return DragSession{}, false
	}
	return c.tracker.Session()
}

// Panels returns the current resting offset table.
func (c *Controller) Panels() []Panel {
	return c.layout.Panels()
}

// Hub exposes the move-sample hub, mainly for inspection.
func (c *Controller) Hub() *MoveHub {
	return c.hub
}

// Subscribe registers an index-change observer.
func (c *Controller) Subscribe(obs Observer) func() {
	return c.broadcaster.Subscribe(obs)
}

// Notifications returns how many index changes have been broadcast.
func (c *Controller) Notifications() int {
	return c.broadcaster.Sent()
}

// ChangeSlide activates panel i. Out-of-range indices are ignored.
func (c *Controller) ChangeSlide(i int) bool {
	if !c.initialized {
		return false
	}
	return c.nav.SetActive(i)
}

// ActivatePrev moves to the previous panel, if any.
func (c *Controller) ActivatePrev() bool {
	if !c.initialized {
		return false
	}
	return c.nav.Prev()
}

// ActivateNext moves to the next panel, if any.
func (c *Controller) ActivateNext() bool {
	if !c.initialized {
		return false
	}
	return c.nav.Next()
}

// Press starts a drag from s.
func (c *Controller) Press(s Sample) {
	if !c.initialized {
		return
	}
	c.tracker.Press(s)
}

// Move feeds a move sample to whichever drag is listening for its family.
func (c *Controller) Move(s Sample) {
	if !c.initialized {
		return
	}
	c.hub.Dispatch(s)
}

// Release ends the drag and commits its outcome.
func (c *Controller) Release(s Sample) {
	if !c.initialized {
		return
	}
	c.tracker.Release(s)
}

// ViewportChanged schedules a debounced Reflow.
func (c *Controller) ViewportChanged() {
	if !c.initialized {
		return
	}
	c.reflow.Signal()
}

// Reflow re-measures the panels and re-applies the active index at its
// possibly changed resting offset. The index itself does not change.
func (c *Controller) Reflow() {
	if !c.initialized {
		return
	}
	boxes := c.geom.Boxes()
	if len(boxes) != c.nav.Len() {
		c.log.Warn("panel count changed; keeping previous layout",
			"want", c.nav.Len(), "got", len(boxes))
	} else {
		c.layout.Recompute(c.geom.ViewportWidth(), boxes)
	}
	c.nav.SetActive(c.nav.Current().Active)
	c.log.Debug("reflowed", "viewport", c.geom.ViewportWidth(), "offset", c.offset)
}

// Close cancels any pending reflow.
func (c *Controller) Close() {
	if c.reflow != nil {
		c.reflow.Stop()
	}
}

// AddArrows wires prev/next triggers to ActivatePrev/ActivateNext.
func (c *Controller) AddArrows(prev, next Trigger) error {
	if prev == nil {
		return &ConfigError{Element: "prev arrow"}
	}
	if next == nil {
		return &ConfigError{Element: "next arrow"}
	}
	prev.OnActivate(func() { c.ActivatePrev() })
	next.OnActivate(func() { c.ActivateNext() })
	return nil
}

// AddControls wires a per-panel control list. When list is nil a
// DefaultControls with one item per panel is created. Activating item i
// calls ChangeSlide(i); the list's current item follows every index change.
// A later call replaces the highlighted list; the earlier list's items stay
// wired to ChangeSlide but no longer track the index.
func (c *Controller) AddControls(list ControlList) (ControlList, error) {
	if !c.initialized {
		return nil, ErrNotInitialized
	}
	if list == nil {
		list = NewDefaultControls(c.nav.Len())
	}
	items := list.Items()
	for _, item := range items {
		if item == nil {
			return nil, &ConfigError{Element: "control item"}
		}
	}
	for i, item := range items {
		item.OnActivate(func() { c.ChangeSlide(i) })
	}
	list.SetCurrent(c.nav.Current().Active)
	if c.unsubControls != nil {
		c.unsubControls()
	}
	c.unsubControls = c.broadcaster.Subscribe(ObserverFunc(func(idx Index) {
		list.SetCurrent(idx.Active)
	}))
	return list, nil
}

// apply renders idx and notifies observers. Bound to Navigator.OnChange.
// An open drag continues from the new resting offset.
func (c *Controller) apply(idx Index) {
	offset, _ := c.layout.RestingOffset(idx.Active)
	c.tracker.rebase(offset)
	c.renderOffset(offset)
	c.renderer.SetCurrent(idx.Active)
	c.broadcaster.Notify(idx)
}

func (c *Controller) committedOffset() float64 {
	offset, _ := c.layout.RestingOffset(c.nav.Current().Active)
	return offset
}

func (c *Controller) renderOffset(x float64) {
	c.offset = x
	c.renderer.SetOffset(x)
}

func (c *Controller) setTransition(enabled bool) {
	c.transition = enabled
	c.renderer.SetTransition(enabled)
}

func (c *Controller) current() Index {
	return c.nav.Current()
}

func (c *Controller) commit(target int) {
	idx := c.nav.Current()
	c.nav.SetActive(target)
	c.log.Debug("drag committed", "from", idx.Active, "to", target)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
