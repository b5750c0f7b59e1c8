package carousel

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSensitivity scales raw pointer travel into live movement.
const DefaultSensitivity = 1.6

// GestureState is the tracker's state.
type GestureState int

const (
	GestureIdle GestureState = iota
	GestureDragging
)

func (s GestureState) String() string {
	if s == GestureDragging {
		return "Dragging"
	}
	return "Idle"
}

// DragSession is the state of one open drag. It only exists between press and
// release.
type DragSession struct {
	ID              string
	Family          InputFamily
	StartX          float64
	Movement        float64 // (StartX - X) * sensitivity; positive when dragged left
	CommittedOffset float64 // resting offset of the active panel at press
	Samples         int
	StartedAt       time.Time
}

// DragResult describes how a drag session ended.
type DragResult struct {
	Session DragSession
	From    int
	Target  int
	Outcome Outcome
	EndedAt time.Time
}

// GestureObserver receives drag session lifecycle notifications.
type GestureObserver interface {
	DragStarted(s DragSession)
	DragEnded(r DragResult)
}

// dragHost is what the tracker needs from its owner.
type dragHost interface {
	committedOffset() float64
	renderOffset(x float64)
	setTransition(enabled bool)
	current() Index
	commit(target int)
}

// GestureTracker turns press/move/release samples into drag sessions and
// commits the outcome on release.
type GestureTracker struct {
	host        dragHost
	hub         *MoveHub
	policy      CommitPolicy
	sensitivity float64
	observer    GestureObserver
	now         func() time.Time

	session     *DragSession
	unsubscribe func()
	onMove      func(Sample) // bound once so every subscription uses the same callback
}

func newGestureTracker(host dragHost, hub *MoveHub, policy CommitPolicy, sensitivity float64, observer GestureObserver) *GestureTracker {
	if sensitivity == 0 {
		sensitivity = DefaultSensitivity
	}
	t := &GestureTracker{
		host:        host,
		hub:         hub,
		policy:      policy,
		sensitivity: sensitivity,
		observer:    observer,
		now:         time.Now,
	}
	t.onMove = t.move
	return t
}

// State returns Idle or Dragging.
func (t *GestureTracker) State() GestureState {
	if t.session != nil {
		return GestureDragging
	}
	return GestureIdle
}

// Session returns a copy of the open session, if any.
func (t *GestureTracker) Session() (DragSession, bool) {
	if t.session == nil {
		return DragSession{}, false
	}
	return *t.session, true
}

// Press opens a drag session. A press during an open session replaces it.
func (t *GestureTracker) Press(s Sample) {
	t.stopListening()
	t.session = &DragSession{
		ID:              uuid.NewString(),
		Family:          s.Family,
		StartX:          s.X,
		CommittedOffset: t.host.committedOffset(),
		StartedAt:       t.now(),
	}
	t.host.setTransition(false)
	t.unsubscribe = t.hub.Subscribe(s.Family, t.onMove)
	if t.observer != nil {
		t.observer.DragStarted(*t.session)
	}
}

// move renders the live offset for one sample.
func (t *GestureTracker) move(s Sample) {
	if t.session == nil {
		return
	}
	t.session.Movement = (t.session.StartX - s.X) * t.sensitivity
	t.session.Samples++
	t.host.renderOffset(t.session.CommittedOffset - t.session.Movement)
}

// rebase moves the open session's baseline to offset after the active index
// or layout changed mid-drag.
func (t *GestureTracker) rebase(offset float64) {
	if t.session != nil {
		t.session.CommittedOffset = offset
	}
}

// Release closes the session and commits the decided target. Any release
// ends the drag, whichever input family it comes from; the outcome is
// decided by the movement the session's own family produced.
func (t *GestureTracker) Release(s Sample) {
	if t.session == nil {
		return
	}
	t.stopListening()
	session := *t.session
	t.session = nil

	idx := t.host.current()
	target, outcome := t.policy.decide(session.Movement, idx)
	t.host.setTransition(true)
	t.host.commit(target)

	if t.observer != nil {
		t.observer.DragEnded(DragResult{
			Session: session,
			From:    idx.Active,
			Target:  target,
			Outcome: outcome,
			EndedAt: t.now(),
		})
	}
}

func (t *GestureTracker) stopListening() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
}
