package propagator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessera-labs/wfc/internal/direction"
	"github.com/tessera-labs/wfc/internal/propagator"
	"github.com/tessera-labs/wfc/internal/wave"
)

// compatAllDirs builds a compatible[p][d] table where every direction has
// the same allowed-pattern list for a given pattern.
func compatAllDirs(perPattern [][]int) [][][]int {
	out := make([][][]int, len(perPattern))
	for p, allowed := range perPattern {
		out[p] = make([][]int, 4)
		for _, d := range direction.All {
			out[p][d] = allowed
		}
	}
	return out
}

func TestPropagateCascadesElimination(t *testing.T) {
	// Pattern 0 tolerates either neighbor; pattern 1 only tolerates itself.
	compat := compatAllDirs([][]int{
		{0, 1},
		{1},
	})
	w := wave.New(1, 2, []float64{1, 1})
	pr := propagator.New(w, compat, false)

	// Directly eliminate pattern 1 at (0,1) and propagate.
	w.Set(1, 1, false)
	pr.AddElimination(0, 1, 1)
	ok := pr.Propagate()

	require.True(t, ok)
	require.False(t, w.GetYX(0, 0, 1), "pattern 1 at (0,0) loses its only support once its neighbor copy is gone")
	require.True(t, w.GetYX(0, 0, 0), "pattern 0 is untouched")
}

func TestBanReturnsFalseOnContradiction(t *testing.T) {
	compat := compatAllDirs([][]int{
		{0},
	})
	w := wave.New(1, 1, []float64{1})
	pr := propagator.New(w, compat, false)

	ok := pr.Ban(0, 0, 0)
	require.False(t, ok)
	require.True(t, w.Impossible())
}

func TestBanNoOpWhenAlreadyDead(t *testing.T) {
	compat := compatAllDirs([][]int{
		{0}, {1},
	})
	w := wave.New(1, 1, []float64{1, 1})
	pr := propagator.New(w, compat, false)

	require.True(t, pr.Ban(0, 0, 1))
	// Banning it again should be a no-op, not double-count the elimination.
	require.True(t, pr.Ban(0, 0, 1))
	require.False(t, w.Impossible())
}
