package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"slidenav/internal/carousel"
)

func newRecordedCarousel(t *testing.T) (*carousel.Controller, *Recorder, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	p := NewProviderWith(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	rec := NewRecorder(p, 3)
	geom := &carousel.StaticGeometry{Viewport: 300, Panels: carousel.UniformBoxes(5, 300, 0)}
	c, err := carousel.New(geom, nopRenderer{},
		carousel.WithGestureObserver(rec),
		carousel.WithPost(func(fn func()) { fn() }),
	).Init()
	require.NoError(t, err)
	t.Cleanup(c.Close)
	rec.Bind(c.ID())
	c.Subscribe(rec)
	return c, rec, sr
}

type nopRenderer struct{}

func (nopRenderer) SetOffset(float64) {}
func (nopRenderer) SetTransition(bool) {}
func (nopRenderer) SetCurrent(int) {}

func attrMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(attrs))
	for _, kv := range attrs {
		m[string(kv.Key)] = kv.Value
	}
	return m
}

func TestRecorder_DragSpan(t *testing.T) {
	c, rec, sr := newRecordedCarousel(t)

	c.Press(carousel.Sample{Family: carousel.Mouse, X: 500})
	c.Move(carousel.Sample{Family: carousel.Mouse, X: 400})
	c.Release(carousel.Sample{Family: carousel.Mouse, X: 400})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "carousel.drag", span.Name())

	attrs := attrMap(span.Attributes())
	assert.Equal(t, c.ID(), attrs["slidenav.carousel.id"].AsString())
	assert.Equal(t, "mouse", attrs["slidenav.drag.family"].AsString())
	assert.Equal(t, "advance", attrs["slidenav.drag.outcome"].AsString())
	assert.Equal(t, int64(3), attrs["slidenav.index.to"].AsInt64())
	assert.InDelta(t, 160, attrs["slidenav.drag.movement"].AsFloat64(), 1e-9)

	require.Len(t, span.Events(), 1)
	assert.Equal(t, "index_change", span.Events()[0].Name)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, EventDrag, last.Type)
	assert.Equal(t, 3, last.To)
}

func TestRecorder_NavigateSpan(t *testing.T) {
	c, rec, sr := newRecordedCarousel(t)

	c.ActivateNext()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "carousel.navigate", spans[0].Name())

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, EventNavigate, last.Type)
	assert.Equal(t, 3, last.To)
}

func TestRecorder_ReplacedSessionEndsSpan(t *testing.T) {
	c, _, sr := newRecordedCarousel(t)

	c.Press(carousel.Sample{Family: carousel.Mouse, X: 500})
	c.Press(carousel.Sample{Family: carousel.Touch, X: 100})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "replaced", attrMap(spans[0].Attributes())["slidenav.drag.outcome"].AsString())
}

func TestRecorder_HistoryIsBounded(t *testing.T) {
	c, rec, _ := newRecordedCarousel(t)
	for i := 0; i < 5; i++ {
		c.ChangeSlide(i)
	}
	h := rec.History()
	require.Len(t, h, 3)
	assert.Equal(t, 2, h[0].To)
	assert.Equal(t, 4, h[2].To)
}

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	p, err := NewProvider(context.Background(), ExporterConfig{})
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))
}
