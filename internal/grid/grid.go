// Package grid provides the row-major dense rectangular containers shared by
// every model front-end: Grid2D for pattern/tile pixel data and decoded
// output, Grid3D for per-cell per-pattern per-direction counters.
//
// The teacher's occupancy maps (pkg/common/direction.go's coordKey,
// pkg/generator's fmt.Sprintf("%d,%d", ...) keys) key spatial state by a
// formatted string; Grid2D.Key follows the same idea to let a fixed-size
// pixel window be interned into a map despite Go map keys needing to be
// comparable, which a slice-backed generic struct is not.
package grid

import (
	"fmt"
	"strings"
)

// Grid2D is a dense row-major H×W grid of T.
type Grid2D[T comparable] struct {
	Height, Width int
	data          []T
}

// NewGrid2D allocates a Height×Width grid with every cell at the zero value
// of T.
func NewGrid2D[T comparable](height, width int) *Grid2D[T] {
	return &Grid2D[T]{Height: height, Width: width, data: make([]T, height*width)}
}

// NewGrid2DFrom wraps an existing row-major data slice. len(data) must equal
// height*width; callers that violate this get a panic from At/Set, not a
// silent truncation.
func NewGrid2DFrom[T comparable](height, width int, data []T) *Grid2D[T] {
	return &Grid2D[T]{Height: height, Width: width, data: data}
}

func (g *Grid2D[T]) index(i, j int) int {
	if i < 0 || i >= g.Height || j < 0 || j >= g.Width {
		panic(fmt.Sprintf("grid: index (%d,%d) out of bounds for %dx%d grid", i, j, g.Height, g.Width))
	}
	return j + i*g.Width
}

// At returns the element at row i, column j.
func (g *Grid2D[T]) At(i, j int) T {
	return g.data[g.index(i, j)]
}

// Set writes the element at row i, column j.
func (g *Grid2D[T]) Set(i, j int, v T) {
	g.data[g.index(i, j)] = v
}

// Reflected returns the grid mirrored across the vertical axis (columns
// reversed), same dimensions.
func (g *Grid2D[T]) Reflected() *Grid2D[T] {
	out := NewGrid2D[T](g.Height, g.Width)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out.Set(y, x, g.At(y, g.Width-1-x))
		}
	}
	return out
}

// Rotated returns the grid rotated 90° counter-clockwise. The result has
// swapped dimensions (Width×Height becomes Height×Width).
func (g *Grid2D[T]) Rotated() *Grid2D[T] {
	out := NewGrid2D[T](g.Width, g.Height)
	for y := 0; y < g.Width; y++ {
		for x := 0; x < g.Height; x++ {
			out.Set(y, x, g.At(x, g.Width-1-y))
		}
	}
	return out
}

// SubToric extracts an h×w sub-window starting at (y,x), wrapping indices
// modulo the grid's own dimensions.
func (g *Grid2D[T]) SubToric(y, x, h, w int) *Grid2D[T] {
	out := NewGrid2D[T](h, w)
	for ki := 0; ki < h; ki++ {
		for kj := 0; kj < w; kj++ {
			out.Set(ki, kj, g.At(mod(y+ki, g.Height), mod(x+kj, g.Width)))
		}
	}
	return out
}

// SubNonToric extracts an h×w sub-window starting at (y,x) with plain
// indexing. The caller must ensure y+h <= Height and x+w <= Width;
// out-of-bounds access panics via At's bounds check.
func (g *Grid2D[T]) SubNonToric(y, x, h, w int) *Grid2D[T] {
	out := NewGrid2D[T](h, w)
	for ki := 0; ki < h; ki++ {
		for kj := 0; kj < w; kj++ {
			out.Set(ki, kj, g.At(y+ki, x+kj))
		}
	}
	return out
}

// Equal reports whether two grids have identical dimensions and elements.
func (g *Grid2D[T]) Equal(other *Grid2D[T]) bool {
	if g.Height != other.Height || g.Width != other.Width {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Key returns a string uniquely determined by the grid's size and contents,
// suitable for interning equal grids into a map (Go map keys must be
// comparable; a slice-backed grid is not, so patterns are interned by this
// computed key instead).
func (g *Grid2D[T]) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d:", g.Height, g.Width)
	for _, v := range g.data {
		fmt.Fprintf(&b, "%v,", v)
	}
	return b.String()
}

// Data exposes the underlying row-major backing slice, e.g. for decoding a
// pattern's representative pixel.
func (g *Grid2D[T]) Data() []T {
	return g.data
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Grid3D is a dense row-major H×W×D grid of T, used for per-cell
// per-pattern support counters (D is the pattern count; each element holds
// one counter per direction).
type Grid3D[T any] struct {
	Height, Width, Depth int
	data                 []T
}

// NewGrid3D allocates a Height×Width×Depth grid with every cell at the zero
// value of T.
func NewGrid3D[T any](height, width, depth int) *Grid3D[T] {
	return &Grid3D[T]{Height: height, Width: width, Depth: depth, data: make([]T, height*width*depth)}
}

func (g *Grid3D[T]) index(i, j, k int) int {
	return k + j*g.Depth + i*g.Width*g.Depth
}

// At returns a pointer to the element at (i,j,k) so callers can mutate it
// in place without a Set round-trip (the propagator's hot loop decrements
// this value many times per elimination).
func (g *Grid3D[T]) At(i, j, k int) *T {
	return &g.data[g.index(i, j, k)]
}
