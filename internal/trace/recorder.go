package trace

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"slidenav/internal/carousel"
)

// DefaultHistory is the number of events kept when NewRecorder gets max <= 0
const DefaultHistory = 10

// Recorder turns carousel drag sessions and index changes into spans and a
// short in-memory history.
type Recorder struct {
	mu         sync.Mutex
	tracer     oteltrace.Tracer
	carouselID string
	max        int
	history    []Event // oldest first, at most max entries

	span      oteltrace.Span // open drag span, nil when idle
	sessionID string
}

// Ensure Recorder can observe a carousel.
var (
	_ carousel.GestureObserver = (*Recorder)(nil)
	_ carousel.Observer        = (*Recorder)(nil)
)

// NewRecorder creates a recorder that reports spans through p.
func NewRecorder(p *Provider, max int) *Recorder {
	if max <= 0 {
		max = DefaultHistory
	}
	return &Recorder{
		tracer: p.Tracer(),
		max:    max,
	}
}

// Bind tags every subsequent span with the controller's instance ID.
func (r *Recorder) Bind(carouselID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carouselID = carouselID
}

// DragStarted implements carousel.GestureObserver.
func (r *Recorder) DragStarted(s carousel.DragSession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.span != nil {
		// press while dragging replaced the previous session
		r.span.SetAttributes(attribute.String("slidenav.drag.outcome", "replaced"))
		r.span.End(oteltrace.WithTimestamp(s.StartedAt))
	}
	_, span := r.tracer.Start(context.Background(), "carousel.drag",
		oteltrace.WithTimestamp(s.StartedAt),
		oteltrace.WithAttributes(
			attribute.String("slidenav.carousel.id", r.carouselID),
			attribute.String("slidenav.drag.id", s.ID),
			attribute.String("slidenav.drag.family", s.Family.String()),
			attribute.Float64("slidenav.drag.start_x", s.StartX),
			attribute.Float64("slidenav.drag.committed_offset", s.CommittedOffset),
		),
	)
	r.span = span
	r.sessionID = s.ID
}

// DragEnded implements carousel.GestureObserver.
func (r *Recorder) DragEnded(res carousel.DragResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.span != nil && r.sessionID == res.Session.ID {
		r.span.SetAttributes(
			attribute.Float64("slidenav.drag.movement", res.Session.Movement),
			attribute.Int("slidenav.drag.samples", res.Session.Samples),
			attribute.Int("slidenav.index.from", res.From),
			attribute.Int("slidenav.index.to", res.Target),
			attribute.String("slidenav.drag.outcome", res.Outcome.String()),
		)
		r.span.SetStatus(codes.Ok, "")
		r.span.End(oteltrace.WithTimestamp(res.EndedAt))
		r.span = nil
		r.sessionID = ""
	}
	r.append(dragEvent(res))
}

// OnIndexChange implements carousel.Observer. Changes made while a drag is
// closing are folded into that drag's span.
func (r *Recorder) OnIndexChange(idx carousel.Index) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if r.span != nil {
		r.span.AddEvent("index_change",
			oteltrace.WithTimestamp(now),
			oteltrace.WithAttributes(attribute.Int("slidenav.index.active", idx.Active)))
		return
	}
	_, span := r.tracer.Start(context.Background(), "carousel.navigate",
		oteltrace.WithTimestamp(now),
		oteltrace.WithAttributes(
			attribute.String("slidenav.carousel.id", r.carouselID),
			attribute.Int("slidenav.index.active", idx.Active),
		),
	)
	span.End(oteltrace.WithTimestamp(now))
	r.append(Event{Type: EventNavigate, From: carousel.None, To: idx.Active, Timestamp: now})
}

// History returns recorded events, oldest first.
func (r *Recorder) History() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.history))
	copy(out, r.history)
	return out
}

// Last returns the most recent event.
func (r *Recorder) Last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return Event{}, false
	}
	return r.history[len(r.history)-1], true
}

// append must be called with r.mu held.
func (r *Recorder) append(e Event) {
	r.history = append(r.history, e)
	if len(r.history) > r.max {
		r.history = r.history[len(r.history)-r.max:]
	}
}
