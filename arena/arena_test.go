package arena_test

import (
	"testing"

	"github.com/katalvlaran/rbd/arena"
	"github.com/stretchr/testify/require"
)

func TestComboRoundTrip(t *testing.T) {
	a := arena.New()
	combo := a.Combo(3)
	require.Len(t, combo, 3)
	combo[0], combo[1], combo[2] = 1, 2, 3
	require.Equal(t, []uint8{1, 2, 3}, a.Combo(3))
}

func TestComboTruncatesToRequestedLength(t *testing.T) {
	a := arena.New()
	require.Len(t, a.Combo(0), 0)
	require.Len(t, a.Combo(10), 10)
}

func TestResetClearsCombo(t *testing.T) {
	a := arena.New()
	combo := a.Combo(2)
	combo[0], combo[1] = 7, 9

	a.Reset()

	require.Equal(t, []uint8{0, 0}, a.Combo(2))
}

func TestFrameSizesToRequestedPivotWidth(t *testing.T) {
	a := arena.New()
	pivot, p, marked := a.Frame(0, 3)
	require.Len(t, pivot, 3)
	require.Len(t, p, 4)
	require.Len(t, marked, 3)
}

func TestFrameAtDistinctDepthsDoesNotAlias(t *testing.T) {
	a := arena.New()
	pivot0, p0, _ := a.Frame(0, 2)
	pivot0[0], pivot0[1] = 0.1, 0.2
	p0[0], p0[1], p0[2] = 1, 2, 3

	pivot1, p1, _ := a.Frame(1, 2)
	pivot1[0], pivot1[1] = 0.9, 0.8
	p1[0], p1[1], p1[2] = 9, 8, 7

	// Re-fetching depth 0's frame must still see depth 0's values, unchanged
	// by writes made through depth 1's frame.
	pivot0Again, p0Again, _ := a.Frame(0, 2)
	require.Equal(t, []float64{0.1, 0.2}, pivot0Again)
	require.Equal(t, []float64{1, 2, 3}, p0Again)
}

func TestFrameReusedOnRepeatedCallsAtSameDepth(t *testing.T) {
	a := arena.New()
	first, _, _ := a.Frame(2, 5)
	second, _, _ := a.Frame(2, 5)
	first[0] = 42
	require.Equal(t, 42.0, second[0], "same depth must return the same backing array")
}
