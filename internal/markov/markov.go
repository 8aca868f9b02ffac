// Package markov implements the Markov-model front-end (spec §4.7): like
// Tiling, but the neighbour list is inferred by walking one or more fully
// tiled example images rather than read from config.
//
// Grounded on WFCMarkovModel.hpp: FindTileAndMakeSymmetries locates the
// oriented tile matching an observed window, FindNeighborsForTileAtPosition
// examines its four axial neighbours, and every non-RIGHT observation is
// normalised to LEFT/RIGHT form by rotating both sides (TOP: 3 rotations,
// LEFT: 2, BOTTOM: 1) so it can be folded into the same tiling.Neighbor
// shape the Tiling model consumes directly.
package markov

import (
	"fmt"

	"github.com/tessera-labs/wfc/internal/grid"
	"github.com/tessera-labs/wfc/internal/tile"
	"github.com/tessera-labs/wfc/internal/tiling"
)

// axis names the four directions an observed window is checked against,
// in the same RIGHT/TOP/LEFT/BOTTOM order as the original's NeighborType.
type axis int

const (
	axisRight axis = iota
	axisTop
	axisLeft
	axisBottom
)

// rotationsFor gives the number of 90° rotations FindNeighborsForTileAtPosition's
// caller applies to normalise an observation on this axis into LEFT/RIGHT
// form; axisRight needs none.
var rotationsFor = [4]int{0, 3, 2, 1}

// findTile locates the (tileIndex, orientationIndex) whose pixel data
// exactly matches window, by exact equality against every stored
// orientation. Returns ok=false if no tile matches.
func findTile[T comparable](tiles []*tile.Tile[T], window *grid.Grid2D[T]) (tileIdx, orientIdx int, ok bool) {
	key := window.Key()
	for ti, t := range tiles {
		for oi, d := range t.Data {
			if d.Key() == key {
				return ti, oi, true
			}
		}
	}
	return 0, 0, false
}

// getRotatedOrientationID maps orientation under numRotations applications
// of the tile's rotation map, matching WFCTilingModel.hpp's
// GetRotatedOrientationIDForObservedTile.
func getRotatedOrientationID(sym tile.Symmetry, orientation, numRotations int) int {
	rotation := tile.GenerateRotationMap(sym)
	o := orientation
	for i := 0; i < numRotations; i++ {
		o = int(rotation[o])
	}
	return o
}

// InferNeighbors walks every example image in tile-sized, non-overlapping
// steps, identifies the tile+orientation at each step by exact pixel match,
// examines its four axial neighbours, and accumulates a de-duplicated list
// of LEFT/RIGHT-normalised tiling.Neighbor declarations.
//
// An observed window that matches no known tile orientation is a hard
// error: the tile set is incomplete for this example (spec §4.7).
func InferNeighbors[T comparable](tiles []*tile.Tile[T], examples []*grid.Grid2D[T], tileSize int) ([]tiling.Neighbor, error) {
	seen := make(map[tiling.Neighbor]bool)
	var neighbors []tiling.Neighbor

	add := func(n tiling.Neighbor) {
		if !seen[n] {
			seen[n] = true
			neighbors = append(neighbors, n)
		}
	}

	for _, example := range examples {
		maxY := example.Height - tileSize
		maxX := example.Width - tileSize
		for y := 0; y <= maxY; y += tileSize {
			for x := 0; x <= maxX; x += tileSize {
				window := example.SubNonToric(y, x, tileSize, tileSize)
				ti, oi, ok := findTile(tiles, window)
				if !ok {
					return nil, fmt.Errorf("markov: observed tile at (%d,%d) in example matches no known tile orientation", y, x)
				}

				for _, ax := range [4]axis{axisRight, axisTop, axisLeft, axisBottom} {
					probeAxis(tiles, example, y, x, tileSize, ti, oi, ax, add)
				}
			}
		}
	}

	return neighbors, nil
}

// probe checks the window at (y,x) against the tile set, returning its
// (tileIndex, orientationIndex) if it lies within example's bounds and
// matches a known tile. A neighbour window outside the example's bounds,
// or one that matches no known tile, is simply not a usable neighbour
// observation — only the primary walked window is a hard error (spec
// §4.7), matching WFCMarkovModel.hpp's PopulateNeighbor, which logs and
// skips rather than failing when a neighbour window is unrecognized.
func probe[T comparable](tiles []*tile.Tile[T], example *grid.Grid2D[T], y, x, tileSize int) (int, int, bool) {
	if y < 0 || x < 0 || y+tileSize > example.Height || x+tileSize > example.Width {
		return 0, 0, false
	}
	window := example.SubNonToric(y, x, tileSize, tileSize)
	ti, oi, ok := findTile(tiles, window)
	return ti, oi, ok
}

// probeAxis checks the neighbor of the tile at (y,x) along one axis and, if
// present, normalises it to LEFT/RIGHT form (no rotation for axisRight)
// before adding it.
func probeAxis[T comparable](tiles []*tile.Tile[T], example *grid.Grid2D[T], y, x, tileSize, observedTileIdx, observedOrientIdx int, ax axis, add func(tiling.Neighbor)) {
	var ny, nx int
	switch ax {
	case axisRight:
		ny, nx = y, x+tileSize
	case axisTop:
		ny, nx = y-tileSize, x
	case axisLeft:
		ny, nx = y, x-tileSize
	case axisBottom:
		ny, nx = y+tileSize, x
	}

	neighborTile, neighborOrient, found := probe(tiles, example, ny, nx, tileSize)
	if !found {
		return
	}

	rotations := rotationsFor[ax]
	observedSym := tiles[observedTileIdx].Symmetry
	neighborSym := tiles[neighborTile].Symmetry

	o1 := getRotatedOrientationID(observedSym, observedOrientIdx, rotations)
	o2 := getRotatedOrientationID(neighborSym, neighborOrient, rotations)

	add(tiling.Neighbor{Tile1: observedTileIdx, Orientation1: o1, Tile2: neighborTile, Orientation2: o2})
}
