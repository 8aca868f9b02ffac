package wave_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessera-labs/wfc/internal/wave"
)

// fixedRNG always returns the same float, for deterministic min-entropy tests.
type fixedRNG struct{ v float64 }

func (f fixedRNG) Float64() float64 { return f.v }

func TestNewWaveAllAlive(t *testing.T) {
	w := wave.New(2, 2, []float64{1, 1, 2})
	for i := 0; i < 4; i++ {
		require.Equal(t, 3, w.NumAlive(i))
		for p := 0; p < 3; p++ {
			require.True(t, w.Get(i, p))
		}
	}
	require.False(t, w.Impossible())
}

func TestSetEliminatesAndUpdatesAliveCount(t *testing.T) {
	w := wave.New(1, 1, []float64{1, 1, 2})
	w.Set(0, 0, false)
	require.False(t, w.Get(0, 0))
	require.Equal(t, 2, w.NumAlive(0))
	require.False(t, w.Impossible())
}

func TestSetToZeroMarksImpossible(t *testing.T) {
	w := wave.New(1, 1, []float64{1, 1})
	w.Set(0, 0, false)
	w.Set(0, 1, false)
	require.True(t, w.Impossible())
	require.Equal(t, -2, w.MinEntropyCell(fixedRNG{0}))
}

func TestSetIsNoOpWhenUnchanged(t *testing.T) {
	w := wave.New(1, 1, []float64{1, 1})
	w.Set(0, 0, false)
	n := w.NumAlive(0)
	w.Set(0, 0, false)
	require.Equal(t, n, w.NumAlive(0))
}

func TestMinEntropySkipsCollapsedCells(t *testing.T) {
	w := wave.New(1, 2, []float64{1, 1, 1})
	// Collapse cell 0 to a single pattern.
	w.Set(0, 1, false)
	w.Set(0, 2, false)
	require.Equal(t, 1, w.NumAlive(0))

	i := w.MinEntropyCell(fixedRNG{0})
	require.Equal(t, 1, i, "only cell 1 still has n>1")
}

func TestMinEntropyReturnsMinusOneWhenAllCollapsed(t *testing.T) {
	w := wave.New(1, 1, []float64{1, 1})
	w.Set(0, 1, false)
	require.Equal(t, 1, w.NumAlive(0))
	require.Equal(t, -1, w.MinEntropyCell(fixedRNG{0}))
}

func TestCollapsedReadsSurvivingPatternPerCell(t *testing.T) {
	w := wave.New(1, 2, []float64{1, 1, 1})
	w.Set(0, 0, false)
	w.Set(0, 2, false)
	w.Set(1, 1, false)
	w.Set(1, 2, false)

	collapsed := w.Collapsed()
	require.Equal(t, 1, collapsed.At(0, 0))
	require.Equal(t, 0, collapsed.At(0, 1))
}
