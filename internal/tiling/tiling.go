// Package tiling implements the tiling-model front-end (spec §4.6): tiles
// declared once in their base orientation are expanded into oriented-tile
// ids, a propagator compatibility table is built from authored adjacency
// declarations via each tile's action map, and a collapsed wave is decoded
// back into a full-resolution image.
//
// Grounded on WFCTilingModel.hpp. The action→direction table below
// (add(0,2), add(1,0), add(2,1), add(3,3), add(4,1), add(5,3), add(6,2),
// add(7,0)) is copied verbatim from the original; it does not line up with
// either of the original's two English direction-label schemes, so the
// numeric indices are kept as-is rather than re-derived from a label that
// would need picking one inconsistent scheme over the other.
package tiling

import (
	"github.com/tessera-labs/wfc/internal/direction"
	"github.com/tessera-labs/wfc/internal/grid"
	"github.com/tessera-labs/wfc/internal/tile"
)

// NumPossibleOrientations returns how many distinct orientations a tile of
// the given symmetry class has.
func NumPossibleOrientations(sym tile.Symmetry) int {
	switch sym {
	case tile.SymX:
		return 1
	case tile.SymI, tile.SymBackslash:
		return 2
	case tile.SymT, tile.SymL:
		return 4
	default:
		return 8
	}
}

// Neighbor declares that tiles[Tile1] in orientation Orientation1 may sit
// to the left (direction.Left) of tiles[Tile2] in orientation
// Orientation2 — the authored adjacency relation a config file supplies;
// every other direction's compatibility is derived from it via each tile's
// action map.
type Neighbor struct {
	Tile1, Orientation1 int
	Tile2, Orientation2 int
}

// actionDirection mirrors WFCTilingModel.hpp's sequence of
// add(action, direction) calls when expanding one authored neighbor
// declaration into all 8 of its symmetry-derived consequences.
var actionDirection = [8]direction.Direction{
	2, 0, 1, 3, 1, 3, 2, 0,
}

// GenerateOrientedTileIDs flattens tiles[i].Data[j] into a single
// contiguous id space, returning idToOrientedTile (oriented id -> (tile,
// orientation)) and orientedTileIDs (tile, orientation -> oriented id).
func GenerateOrientedTileIDs[T comparable](tiles []*tile.Tile[T]) (idToOrientedTile [][2]int, orientedTileIDs [][]int) {
	id := 0
	for i, t := range tiles {
		orientedTileIDs = append(orientedTileIDs, make([]int, len(t.Data)))
		for j := range t.Data {
			idToOrientedTile = append(idToOrientedTile, [2]int{i, j})
			orientedTileIDs[i][j] = id
			id++
		}
	}
	return idToOrientedTile, orientedTileIDs
}

// GeneratePropagator expands the authored neighbor declarations into the
// full compatible[orientedID][direction] table every other orientation of
// every declared pair implies, via each tile's action map.
func GeneratePropagator[T comparable](neighbors []Neighbor, tiles []*tile.Tile[T], idToOrientedTile [][2]int, orientedTileIDs [][]int) [][][]int {
	n := len(idToOrientedTile)
	dense := make([][4][]bool, n)
	for i := range dense {
		for d := 0; d < 4; d++ {
			dense[i][d] = make([]bool, n)
		}
	}

	for _, nb := range neighbors {
		actionMap1 := tile.GenerateActionMap(tiles[nb.Tile1].Symmetry)
		actionMap2 := tile.GenerateActionMap(tiles[nb.Tile2].Symmetry)

		for action := 0; action < 8; action++ {
			d := actionDirection[action]
			o1 := actionMap1[action][nb.Orientation1]
			o2 := actionMap2[action][nb.Orientation2]
			id1 := orientedTileIDs[nb.Tile1][o1]
			id2 := orientedTileIDs[nb.Tile2][o2]

			dense[id1][d][id2] = true
			od := direction.Opposite(d)
			dense[id2][od][id1] = true
		}
	}

	compatible := make([][][]int, n)
	for i := 0; i < n; i++ {
		compatible[i] = make([][]int, 4)
		for d := 0; d < 4; d++ {
			for j := 0; j < n; j++ {
				if dense[i][d][j] {
					compatible[i][d] = append(compatible[i][d], j)
				}
			}
		}
	}
	return compatible
}

// TilesWeight spreads each tile's authored weight evenly across its
// oriented variants, in oriented-id order, for use as the wave's per-
// pattern weight vector.
func TilesWeight[T comparable](tiles []*tile.Tile[T]) []float64 {
	var weights []float64
	for _, t := range tiles {
		w := t.Weight / float64(len(t.Data))
		for range t.Data {
			weights = append(weights, w)
		}
	}
	return weights
}

// Decode renders a fully collapsed wave of oriented-tile ids into a
// full-resolution image, stamping each cell's tile's pixel data at its
// appropriate offset.
func Decode[T comparable](collapsed *grid.Grid2D[int], tiles []*tile.Tile[T], idToOrientedTile [][2]int) *grid.Grid2D[T] {
	size := tiles[0].Data[0].Height
	out := grid.NewGrid2D[T](size*collapsed.Height, size*collapsed.Width)

	for i := 0; i < collapsed.Height; i++ {
		for j := 0; j < collapsed.Width; j++ {
			ot := idToOrientedTile[collapsed.At(i, j)]
			pattern := tiles[ot[0]].Data[ot[1]]
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					out.Set(i*size+y, j*size+x, pattern.At(y, x))
				}
			}
		}
	}
	return out
}
