package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigator_SetActiveNeighbors(t *testing.T) {
	const count = 5
	n := NewNavigator(count)
	for i := 0; i < count; i++ {
		assert.True(t, n.SetActive(i))
		idx := n.Current()
		assert.Equal(t, i, idx.Active)

		wantPrev := None
		if i > 0 {
			wantPrev = i - 1
		}
		wantNext := None
		if i < count-1 {
			wantNext = i + 1
		}
		assert.Equal(t, wantPrev, idx.Prev, "prev at %d", i)
		assert.Equal(t, wantNext, idx.Next, "next at %d", i)
	}
}

func TestNavigator_OutOfRangeIsNoop(t *testing.T) {
	n := NewNavigator(3)
	var calls int
	n.OnChange = func(Index) { calls++ }
	n.SetActive(1)
	before := n.Current()

	assert.False(t, n.SetActive(-1))
	assert.False(t, n.SetActive(3))
	assert.False(t, n.SetActive(100))
	assert.Equal(t, before, n.Current())
	assert.Equal(t, 1, calls)
}

func TestNavigator_PrevNextAtBounds(t *testing.T) {
	n := NewNavigator(3)
	var seen []int
	n.OnChange = func(idx Index) { seen = append(seen, idx.Active) }

	assert.False(t, n.Prev(), "no prev at first panel")
	assert.True(t, n.Next())
	assert.True(t, n.Next())
	assert.False(t, n.Next(), "no next at last panel")
	assert.True(t, n.Prev())

	assert.Equal(t, []int{1, 2, 1}, seen)
}

func TestNavigator_SameIndexStillNotifies(t *testing.T) {
	n := NewNavigator(3)
	var calls int
	n.OnChange = func(Index) { calls++ }

	n.SetActive(1)
	n.SetActive(1)
	assert.Equal(t, 2, calls)
}

func TestNavigator_SinglePanel(t *testing.T) {
	n := NewNavigator(1)
	idx := n.Current()
	assert.False(t, idx.HasPrev())
	assert.False(t, idx.HasNext())
	assert.Equal(t, 0, idx.Active)
}
