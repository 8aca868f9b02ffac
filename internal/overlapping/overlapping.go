// Package overlapping implements the overlapping-model front-end (spec
// §4.5): extracting N×N patterns from an example image, building their
// compatibility table from pixel-overlap agreement, optionally pinning a
// ground row, and decoding a collapsed wave back into an image.
//
// Grounded on WFCOverlappingModel.hpp.
package overlapping

import (
	"github.com/tessera-labs/wfc/internal/direction"
	"github.com/tessera-labs/wfc/internal/grid"
	"github.com/tessera-labs/wfc/internal/propagator"
	"github.com/tessera-labs/wfc/internal/wave"
)

// Options configures one overlapping-model problem instance.
type Options struct {
	PeriodicInput  bool
	PeriodicOutput bool
	OutHeight      int
	OutWidth       int
	Symmetry       int // 1-8: how many of the 8 dihedral symmetries to generate per pattern
	Ground         bool
	PatternSize    int
}

// WaveHeight returns the wave's cell-grid height: the full output height
// when the output wraps, otherwise shrunk so every wave cell still has a
// full pattern window available.
func (o Options) WaveHeight() int {
	if o.PeriodicOutput {
		return o.OutHeight
	}
	return o.OutHeight - o.PatternSize + 1
}

// WaveWidth is WaveHeight's width counterpart.
func (o Options) WaveWidth() int {
	if o.PeriodicOutput {
		return o.OutWidth
	}
	return o.OutWidth - o.PatternSize + 1
}

// Model owns the extracted patterns, their compatibility table, and the
// input image they were extracted from (needed to locate the ground
// pattern).
type Model struct {
	input    *grid.Grid2D[uint32]
	options  Options
	patterns []*grid.Grid2D[uint32]
	weights  []float64
}

// New extracts patterns from input (an RGBA-packed image, one uint32 per
// pixel) and builds the compatibility table.
func New(input *grid.Grid2D[uint32], options Options) *Model {
	patterns, weights := extractPatterns(input, options)
	return &Model{input: input, options: options, patterns: patterns, weights: weights}
}

// Patterns returns the extracted pattern windows.
func (m *Model) Patterns() []*grid.Grid2D[uint32] { return m.patterns }

// Weights returns each pattern's occurrence weight, in the same order as
// Patterns.
func (m *Model) Weights() []float64 { return m.weights }

// extractPatterns slides a PatternSize x PatternSize window over every
// position in input (wrapping if PeriodicInput), interns each window plus
// its first Symmetry dihedral variants, and accumulates occurrence counts
// as weights.
func extractPatterns(input *grid.Grid2D[uint32], options Options) ([]*grid.Grid2D[uint32], []float64) {
	ids := make(map[string]int)
	var patterns []*grid.Grid2D[uint32]
	var weights []float64

	maxI, maxJ := input.Height, input.Width
	if !options.PeriodicInput {
		maxI = input.Height - options.PatternSize + 1
		maxJ = input.Width - options.PatternSize + 1
	}

	sym := options.Symmetry
	if sym < 1 {
		sym = 1
	}
	if sym > 8 {
		sym = 8
	}

	for i := 0; i < maxI; i++ {
		for j := 0; j < maxJ; j++ {
			var base *grid.Grid2D[uint32]
			if options.PeriodicInput {
				base = input.SubToric(i, j, options.PatternSize, options.PatternSize)
			} else {
				base = input.SubNonToric(i, j, options.PatternSize, options.PatternSize)
			}

			variants := dihedralVariants(base)
			for k := 0; k < sym; k++ {
				v := variants[k]
				key := v.Key()
				if id, ok := ids[key]; ok {
					weights[id]++
					continue
				}
				ids[key] = len(patterns)
				patterns = append(patterns, v)
				weights = append(weights, 1)
			}
		}
	}

	return patterns, weights
}

// dihedralVariants computes all 8 symmetries of a pattern window, in the
// same order as WFCOverlappingModel.hpp's GetPatterns.
func dihedralVariants(base *grid.Grid2D[uint32]) [8]*grid.Grid2D[uint32] {
	var v [8]*grid.Grid2D[uint32]
	v[0] = base
	v[1] = v[0].Reflected()
	v[2] = v[0].Rotated()
	v[3] = v[2].Reflected()
	v[4] = v[2].Rotated()
	v[5] = v[4].Reflected()
	v[6] = v[4].Rotated()
	v[7] = v[6].Reflected()
	return v
}

// compatibleWithOffset reports whether p2, placed at (dy,dx) relative to
// p1, agrees with p1 on every overlapping pixel.
func compatibleWithOffset(p1, p2 *grid.Grid2D[uint32], dy, dx int) bool {
	xmin, xmax := 0, p1.Width
	if dx < 0 {
		xmax = dx + p2.Width
	} else {
		xmin = dx
	}
	ymin, ymax := 0, p1.Height
	if dy < 0 {
		ymax = dy + p2.Height
	} else {
		ymin = dy
	}

	for y := ymin; y < ymax; y++ {
		for x := xmin; x < xmax; x++ {
			if p1.At(y, x) != p2.At(y-dy, x-dx) {
				return false
			}
		}
	}
	return true
}

// GenerateCompatible builds compatible[p1][d]: every pattern p2 allowed in
// direction d of a cell holding p1.
func GenerateCompatible(patterns []*grid.Grid2D[uint32]) [][][]int {
	compatible := make([][][]int, len(patterns))
	for p1 := range patterns {
		compatible[p1] = make([][]int, 4)
		for _, d := range direction.All {
			dx, dy := direction.Delta(d)
			for p2 := range patterns {
				if compatibleWithOffset(patterns[p1], patterns[p2], dy, dx) {
					compatible[p1][d] = append(compatible[p1][d], p2)
				}
			}
		}
	}
	return compatible
}

// groundPatternID finds the pattern extracted from the bottom-middle of the
// input image, used to pin a floor row in the output (spec §4.5's ground
// option).
func (m *Model) groundPatternID() int {
	groundWindow := m.input.SubNonToric(m.input.Height-m.options.PatternSize, m.input.Width/2, m.options.PatternSize, m.options.PatternSize)
	key := groundWindow.Key()
	for i, p := range m.patterns {
		if p.Key() == key {
			return i
		}
	}
	return 0
}

// InitializeGround pins the ground pattern along the bottom wave row and
// forbids it everywhere else, then propagates the consequences. Call this
// once, right after building the propagator, before running the solver.
func (m *Model) InitializeGround(w *wave.Wave, prop *propagator.Propagator) bool {
	groundID := m.groundPatternID()
	waveHeight, waveWidth := m.options.WaveHeight(), m.options.WaveWidth()

	for j := 0; j < waveWidth; j++ {
		for p := range m.patterns {
			if p != groundID && w.GetYX(waveHeight-1, j, p) {
				if !prop.Ban(waveHeight-1, j, p) {
					return false
				}
			}
		}
	}
	for i := 0; i < waveHeight-1; i++ {
		for j := 0; j < waveWidth; j++ {
			if w.GetYX(i, j, groundID) {
				if !prop.Ban(i, j, groundID) {
					return false
				}
			}
		}
	}
	return true
}

// Decode renders a fully collapsed wave back into an output image, using
// each cell's collapsed pattern's top-left pixel, and — for non-periodic
// output — borrowing the trailing PatternSize-1 rows/columns from the last
// column/row's patterns so the output's full size is covered.
func (m *Model) Decode(collapsed *grid.Grid2D[int]) *grid.Grid2D[uint32] {
	out := grid.NewGrid2D[uint32](m.options.OutHeight, m.options.OutWidth)
	waveHeight, waveWidth := m.options.WaveHeight(), m.options.WaveWidth()

	for y := 0; y < waveHeight; y++ {
		for x := 0; x < waveWidth; x++ {
			out.Set(y, x, m.patterns[collapsed.At(y, x)].At(0, 0))
		}
	}

	if m.options.PeriodicOutput {
		return out
	}

	for y := 0; y < waveHeight; y++ {
		pattern := m.patterns[collapsed.At(y, waveWidth-1)]
		for dx := 1; dx < m.options.PatternSize; dx++ {
			out.Set(y, waveWidth-1+dx, pattern.At(0, dx))
		}
	}
	for x := 0; x < waveWidth; x++ {
		pattern := m.patterns[collapsed.At(waveHeight-1, x)]
		for dy := 1; dy < m.options.PatternSize; dy++ {
			out.Set(waveHeight-1+dy, x, pattern.At(dy, 0))
		}
	}
	corner := m.patterns[collapsed.At(waveHeight-1, waveWidth-1)]
	for dy := 1; dy < m.options.PatternSize; dy++ {
		for dx := 1; dx < m.options.PatternSize; dx++ {
			out.Set(waveHeight-1+dy, waveWidth-1+dx, corner.At(dy, dx))
		}
	}

	return out
}
