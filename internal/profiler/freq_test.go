package profiler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyTableCounts(t *testing.T) {
	ft := NewFrequencyTable(100)
	for _, v := range []string{"a", "b", "a", "c", "a"} {
		ft.Add(v)
	}
	assert.Equal(t, 3, ft.Len())
	assert.Equal(t, 3, ft.Count("a"))
	assert.Equal(t, 1, ft.Count("b"))
	assert.Equal(t, 0, ft.Count("missing"))
	assert.False(t, ft.Overflowed)
}

func TestFrequencyTableCapThenIgnore(t *testing.T) {
	ft := NewFrequencyTable(2)
	ft.Add("a")
	ft.Add("b")
	ft.Add("c") // beyond the cap: dropped, flag raised
	assert.True(t, ft.Overflowed)
	assert.Equal(t, 2, ft.Len())
	assert.Equal(t, 0, ft.Count("c"))

	// Existing keys keep accumulating past the cap.
	ft.Add("a")
	ft.Add("a")
	assert.Equal(t, 3, ft.Count("a"))
	assert.Equal(t, 2, ft.Len())
}

func TestFrequencyTableItemsOrdering(t *testing.T) {
	ft := NewFrequencyTable(100)
	for _, v := range []string{"x", "y", "y", "z", "z", "a", "z"} {
		ft.Add(v)
	}
	items := ft.Items()
	require.Equal(t, []ValueCount{
		{Value: "z", Count: 3},
		{Value: "y", Count: 2},
		{Value: "a", Count: 1},
		{Value: "x", Count: 1},
	}, items)
}

func TestFrequencyTableItemsDeterministic(t *testing.T) {
	build := func() []ValueCount {
		ft := NewFrequencyTable(1000)
		for i := 0; i < 100; i++ {
			ft.Add(fmt.Sprintf("v%02d", i%17))
		}
		return ft.Items()
	}
	assert.Equal(t, build(), build())
}
