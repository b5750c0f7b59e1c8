package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroadcaster_NotifiesInOrder(t *testing.T) {
	b := NewBroadcaster()
	var got []string
	b.Subscribe(ObserverFunc(func(idx Index) { got = append(got, "a") }))
	b.Subscribe(ObserverFunc(func(idx Index) { got = append(got, "b") }))

	b.Notify(indexFor(1, 3))
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, b.Sent())
}

func TestBroadcaster_Unsubscribe(t *testing.T) {
	b := NewBroadcaster()
	var calls int
	unsub := b.Subscribe(ObserverFunc(func(Index) { calls++ }))
	b.Notify(indexFor(0, 2))
	unsub()
	b.Notify(indexFor(1, 2))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, b.Len())
}

func TestBroadcaster_PanickingObserverDoesNotBlockOthers(t *testing.T) {
	b := NewBroadcaster()
	var reached bool
	b.Subscribe(ObserverFunc(func(Index) { panic("boom") }))
	b.Subscribe(ObserverFunc(func(Index) { reached = true }))

	assert.NotPanics(t, func() { b.Notify(indexFor(0, 1)) })
	assert.True(t, reached)
}

func TestBroadcaster_NilObserverIgnored(t *testing.T) {
	b := NewBroadcaster()
	unsub := b.Subscribe(nil)
	unsub()
	assert.Equal(t, 0, b.Len())
}
