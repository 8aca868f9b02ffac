// Package tile implements the tiling model's symmetry classes: how a tile's
// rotation/reflection orientations map onto each other, and the oriented
// variants a single authored tile expands into (spec §4.6, grounded on
// WFCTile.hpp).
package tile

import "github.com/tessera-labs/wfc/internal/grid"

// Symmetry names the dihedral symmetry class of a tile, which determines
// how many distinct orientations it has and how rotation/reflection permute
// them.
type Symmetry int

const (
	SymX Symmetry = iota
	SymT
	SymI
	SymL
	SymBackslash
	SymP
)

// GenerateRotationMap returns, for each orientation id, the orientation id
// reached by rotating the tile 90° counter-clockwise.
func GenerateRotationMap(sym Symmetry) []uint {
	switch sym {
	case SymX:
		return []uint{0}
	case SymI, SymBackslash:
		return []uint{1, 0}
	case SymT, SymL:
		return []uint{1, 2, 3, 0}
	case SymP:
		return []uint{1, 2, 3, 0, 5, 6, 7, 4}
	default:
		return []uint{1, 2, 3, 0, 5, 6, 7, 4}
	}
}

// GenerateReflectionMap returns, for each orientation id, the orientation id
// reached by reflecting the tile across its x axis.
func GenerateReflectionMap(sym Symmetry) []uint {
	switch sym {
	case SymX:
		return []uint{0}
	case SymI:
		return []uint{0, 1}
	case SymBackslash:
		return []uint{1, 0}
	case SymT:
		return []uint{0, 3, 2, 1}
	case SymL:
		return []uint{1, 0, 3, 2}
	case SymP:
		return []uint{4, 7, 6, 5, 0, 3, 2, 1}
	default:
		return []uint{4, 7, 6, 5, 0, 3, 2, 1}
	}
}

// GenerateActionMap returns action_map[a][i]: the orientation id obtained by
// applying action a to orientation i. Actions 0-3 are 0/90/180/270 degree
// counter-clockwise rotations; actions 4-7 are the same rotations preceded
// by an x-axis reflection.
func GenerateActionMap(sym Symmetry) [][]uint {
	rotation := GenerateRotationMap(sym)
	reflection := GenerateReflectionMap(sym)
	size := len(rotation)

	actionMap := make([][]uint, 8)
	for a := range actionMap {
		actionMap[a] = make([]uint, size)
	}

	for i := 0; i < size; i++ {
		actionMap[0][i] = uint(i)
	}
	for a := 1; a < 4; a++ {
		for i := 0; i < size; i++ {
			actionMap[a][i] = rotation[actionMap[a-1][i]]
		}
	}
	for i := 0; i < size; i++ {
		actionMap[4][i] = reflection[actionMap[0][i]]
	}
	for a := 5; a < 8; a++ {
		for i := 0; i < size; i++ {
			actionMap[a][i] = rotation[actionMap[a-1][i]]
		}
	}
	return actionMap
}

// Tile is one authored tile definition: its distinct orientations, symmetry
// class, selection weight, and name (used in config and logs).
type Tile[T comparable] struct {
	Data     []*grid.Grid2D[T] // one entry per distinct orientation
	Symmetry Symmetry
	Weight   float64
	Name     string
}

// GenerateOriented expands a tile's base orientation into every distinct
// orientation implied by its symmetry class, via repeated 90° rotation (and,
// for SymP, one reflection partway through).
func GenerateOriented[T comparable](data *grid.Grid2D[T], sym Symmetry) []*grid.Grid2D[T] {
	oriented := []*grid.Grid2D[T]{data}

	switch sym {
	case SymI, SymBackslash:
		oriented = append(oriented, data.Rotated())
	case SymT, SymL:
		cur := data
		for i := 0; i < 3; i++ {
			cur = cur.Rotated()
			oriented = append(oriented, cur)
		}
	case SymP:
		cur := data
		for i := 0; i < 3; i++ {
			cur = cur.Rotated()
			oriented = append(oriented, cur)
		}
		cur = cur.Rotated().Reflected()
		oriented = append(oriented, cur)
		for i := 0; i < 3; i++ {
			cur = cur.Rotated()
			oriented = append(oriented, cur)
		}
	}

	return oriented
}

// New builds a Tile from a single base orientation, expanding the rest via
// GenerateOriented.
func New[T comparable](data *grid.Grid2D[T], sym Symmetry, weight float64, name string) *Tile[T] {
	return &Tile[T]{
		Data:     GenerateOriented(data, sym),
		Symmetry: sym,
		Weight:   weight,
		Name:     name,
	}
}

// NewWithOrientations builds a Tile from an already-computed set of
// orientations, e.g. when orientations were read directly from distinct
// input images rather than generated by rotation.
func NewWithOrientations[T comparable](data []*grid.Grid2D[T], sym Symmetry, weight float64, name string) *Tile[T] {
	return &Tile[T]{Data: data, Symmetry: sym, Weight: weight, Name: name}
}
