package tiling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessera-labs/wfc/internal/direction"
	"github.com/tessera-labs/wfc/internal/grid"
	"github.com/tessera-labs/wfc/internal/tile"
	"github.com/tessera-labs/wfc/internal/tiling"
)

func xTile(name string, weight float64, v int) *tile.Tile[int] {
	g := grid.NewGrid2D[int](1, 1)
	g.Set(0, 0, v)
	return tile.New(g, tile.SymX, weight, name)
}

func TestGenerateOrientedTileIDsFlatIndexing(t *testing.T) {
	tiles := []*tile.Tile[int]{xTile("a", 1, 1), xTile("b", 1, 2)}
	idToTile, tileToID := tiling.GenerateOrientedTileIDs(tiles)

	require.Len(t, idToTile, 2)
	require.Equal(t, [2]int{0, 0}, idToTile[0])
	require.Equal(t, [2]int{1, 0}, idToTile[1])
	require.Equal(t, 0, tileToID[0][0])
	require.Equal(t, 1, tileToID[1][0])
}

func TestGeneratePropagatorSymmetricXTilesAllowEachOther(t *testing.T) {
	tiles := []*tile.Tile[int]{xTile("a", 1, 1), xTile("b", 1, 2)}
	idToTile, tileToID := tiling.GenerateOrientedTileIDs(tiles)
	neighbors := []tiling.Neighbor{{Tile1: 0, Orientation1: 0, Tile2: 1, Orientation2: 0}}

	compat := tiling.GeneratePropagator(neighbors, tiles, idToTile, tileToID)

	require.Contains(t, compat[0][direction.Right], 1)
	require.Contains(t, compat[1][direction.Left], 0)
}

func TestTilesWeightSpreadsAcrossOrientations(t *testing.T) {
	tiles := []*tile.Tile[int]{xTile("a", 4, 1)}
	weights := tiling.TilesWeight(tiles)
	require.Equal(t, []float64{4}, weights, "SymX has exactly one orientation, so weight is unchanged")
}

func TestDecodeStampsTilePixels(t *testing.T) {
	tiles := []*tile.Tile[int]{xTile("a", 1, 7), xTile("b", 1, 9)}
	idToTile, _ := tiling.GenerateOrientedTileIDs(tiles)

	collapsed := grid.NewGrid2D[int](1, 2)
	collapsed.Set(0, 0, 0)
	collapsed.Set(0, 1, 1)

	out := tiling.Decode(collapsed, tiles, idToTile)
	require.Equal(t, 7, out.At(0, 0))
	require.Equal(t, 9, out.At(0, 1))
}
