package direction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessera-labs/wfc/internal/direction"
)

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range direction.All {
		require.Equal(t, d, direction.Opposite(direction.Opposite(d)))
	}
}

func TestOppositeValues(t *testing.T) {
	require.Equal(t, direction.Down, direction.Opposite(direction.Up))
	require.Equal(t, direction.Right, direction.Opposite(direction.Left))
}

func TestDeltaTableConsistentWithOpposite(t *testing.T) {
	for _, d := range direction.All {
		dx, dy := direction.Delta(d)
		odx, ody := direction.Delta(direction.Opposite(d))
		require.Equal(t, -dx, odx)
		require.Equal(t, -dy, ody)
	}
}
