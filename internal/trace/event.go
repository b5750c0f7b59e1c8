package trace

import (
	"fmt"
	"time"

	"slidenav/internal/carousel"
)

// EventType identifies the kind of recorded carousel event
type EventType string

const (
	EventDrag     EventType = "drag"     // A press..release gesture
	EventNavigate EventType = "navigate" // Index applied outside a drag (arrows, dots, keys, reflow)
)

// Event is one entry of the recorder's history
type Event struct {
	Type      EventType
	SessionID string // Drag session ID; empty for navigate events
	Family    string // "mouse" or "touch"; empty for navigate events
	From      int
	To        int
	Movement  float64
	Samples   int
	Outcome   string
	Timestamp time.Time
	Duration  time.Duration
}

// Summary renders the event as a short status line.
func (e Event) Summary() string {
	switch e.Type {
	case EventDrag:
		return fmt.Sprintf("%s drag %+.0f → %s (%d→%d)", e.Family, e.Movement, e.Outcome, e.From+1, e.To+1)
	default:
		return fmt.Sprintf("navigate → %d", e.To+1)
	}
}

// dragEvent converts a finished drag into a history entry.
func dragEvent(r carousel.DragResult) Event {
	return Event{
		Type:      EventDrag,
		SessionID: r.Session.ID,
		Family:    r.Session.Family.String(),
		From:      r.From,
		To:        r.Target,
		Movement:  r.Session.Movement,
		Samples:   r.Session.Samples,
		Outcome:   r.Outcome.String(),
		Timestamp: r.Session.StartedAt,
		Duration:  r.EndedAt.Sub(r.Session.StartedAt),
	}
}
