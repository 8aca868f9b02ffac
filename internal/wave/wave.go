// Package wave implements the per-cell possibility matrix with incrementally
// maintained Shannon entropy (spec §4.2). This is the numerically sensitive
// half of the solver: five memoised scalars per cell are kept consistent by
// Set alone, so entropy never needs recomputing from scratch.
package wave

import (
	"math"

	"github.com/tessera-labs/wfc/internal/grid"
)

// RNG is the minimal random source the wave needs to break entropy ties.
// The solver supplies a seeded *rand.Rand (see internal/solver.New);
// wave itself has no opinion on the algorithm.
type RNG interface {
	Float64() float64 // uniform in [0, 1)
}

// Wave holds, for every cell and pattern, whether the pattern is still
// possible there, plus the memoised entropy terms spec §3 defines.
type Wave struct {
	height, width int
	numPatterns   int

	alive []bool // height*width*numPatterns, row-major over (cell, pattern)

	weight    []float64 // w[p]
	weightLog []float64 // w[p] * ln(w[p])

	sumWeight    []float64 // per cell: Σw
	sumWeightLog []float64 // per cell: Σ w·ln w
	logSum       []float64 // per cell: ln Σw
	numAlive     []int     // per cell: n
	entropy      []float64 // per cell: H

	minAbsHalfPLogP float64
	impossible      bool
}

// New constructs a Wave where every cell starts with every pattern alive.
// weights must be strictly positive per spec §3 ("Pattern... weight w[p] >
// 0"); they are normalized to sum to 1 before any plogp/entropy term is
// derived from them, so the noise bound spec §9 requires is computed from
// the final pattern-frequency list rather than raw occurrence counts
// (entropy itself is scale-invariant, but minAbsHalfPLogP is not).
func New(height, width int, weights []float64) *Wave {
	numPatterns := len(weights)
	normalized := normalizeWeights(weights)
	w := &Wave{
		height:      height,
		width:       width,
		numPatterns: numPatterns,
		alive:       make([]bool, height*width*numPatterns),
		weight:      normalized,
		weightLog:   make([]float64, numPatterns),
	}
	for i := range w.alive {
		w.alive[i] = true
	}

	minHalf := math.Inf(1)
	var baseSum, baseSumLog float64
	for p, wt := range normalized {
		plogp := wt * math.Log(wt)
		w.weightLog[p] = plogp
		baseSum += wt
		baseSumLog += plogp
		if h := math.Abs(plogp / 2); h < minHalf {
			minHalf = h
		}
	}
	w.minAbsHalfPLogP = minHalf

	numCells := height * width
	w.sumWeight = make([]float64, numCells)
	w.sumWeightLog = make([]float64, numCells)
	w.logSum = make([]float64, numCells)
	w.numAlive = make([]int, numCells)
	w.entropy = make([]float64, numCells)

	baseLogSum := math.Log(baseSum)
	baseEntropy := baseLogSum - baseSumLog/baseSum
	for i := 0; i < numCells; i++ {
		w.sumWeight[i] = baseSum
		w.sumWeightLog[i] = baseSumLog
		w.logSum[i] = baseLogSum
		w.numAlive[i] = numPatterns
		w.entropy[i] = baseEntropy
	}

	return w
}

// normalizeWeights returns a copy of weights scaled to sum to 1, the same
// normalization the original performs on its pattern-frequency list before
// constructing its wave.
func normalizeWeights(weights []float64) []float64 {
	var sum float64
	for _, wt := range weights {
		sum += wt
	}
	out := make([]float64, len(weights))
	for p, wt := range weights {
		out[p] = wt / sum
	}
	return out
}

func (w *Wave) bitIndex(i, p int) int { return p + i*w.numPatterns }

// Get reports whether pattern p is still possible at the flat cell index i.
func (w *Wave) Get(i, p int) bool {
	return w.alive[w.bitIndex(i, p)]
}

// GetYX is Get with (y,x) coordinates instead of a flat index.
func (w *Wave) GetYX(y, x, p int) bool {
	return w.Get(y*w.width+x, p)
}

// NumPatterns returns the number of distinct patterns the wave tracks.
func (w *Wave) NumPatterns() int { return w.numPatterns }

// Height and Width return the wave's cell-grid dimensions.
func (w *Wave) Height() int { return w.height }
func (w *Wave) Width() int  { return w.width }

// NumAlive returns how many patterns remain possible at cell i.
func (w *Wave) NumAlive(i int) int { return w.numAlive[i] }

// Impossible reports whether any cell has ever reached zero alive patterns.
// Sticky: once true it never clears, since the wave is discarded on
// failure (spec §3 "Lifecycles").
func (w *Wave) Impossible() bool { return w.impossible }

// Set eliminates (value=false) or would-restore (value=true, unsupported
// here — see note) pattern p at cell i. Set is the only write path; it is a
// no-op when the value does not change.
//
// Only false is ever a legal argument in this engine: patterns are never
// restored once eliminated (spec §3, §4.3's invariant is one-directional).
func (w *Wave) Set(i, p int, value bool) {
	idx := w.bitIndex(i, p)
	if w.alive[idx] == value {
		return
	}
	w.alive[idx] = value

	w.sumWeightLog[i] -= w.weightLog[p]
	w.sumWeight[i] -= w.weight[p]
	w.logSum[i] = math.Log(w.sumWeight[i])
	w.numAlive[i]--
	w.entropy[i] = w.logSum[i] - w.sumWeightLog[i]/w.sumWeight[i]

	if w.numAlive[i] == 0 {
		w.impossible = true
	}
}

// MinEntropyCell scans every cell and returns the flat index of the one
// with the lowest entropy plus tie-breaking noise, per spec §4.2:
//
//   - -2 if the wave is already impossible;
//   - -1 if every cell has collapsed (n==1): success;
//   - otherwise the argmin cell's flat index.
func (w *Wave) MinEntropyCell(rng RNG) int {
	if w.impossible {
		return -2
	}

	min := math.Inf(1)
	argmin := -1

	for i := 0; i < w.height*w.width; i++ {
		if w.numAlive[i] == 1 {
			continue
		}
		entropy := w.entropy[i]
		if entropy <= min {
			noise := rng.Float64() * w.minAbsHalfPLogP
			if entropy+noise < min {
				min = entropy + noise
				argmin = i
			}
		}
	}

	return argmin
}

// SumWeight returns the current Σw at cell i, used by the solver to draw a
// weighted pattern choice during observation.
func (w *Wave) SumWeight(i int) float64 { return w.sumWeight[i] }

// Weight returns the static weight of pattern p, normalized so that all
// pattern weights sum to 1.
func (w *Wave) Weight(p int) float64 { return w.weight[p] }

// Collapsed renders a fully-collapsed wave (every cell's NumAlive == 1)
// into a grid of the surviving pattern id per cell, for a model
// front-end's Decode step. Any cell with more than one alive pattern
// collapses to the lowest-indexed one, since Decode is only ever called
// after Solver.Run has returned true.
func (w *Wave) Collapsed() *grid.Grid2D[int] {
	out := grid.NewGrid2D[int](w.height, w.width)
	for i := 0; i < w.height*w.width; i++ {
		for p := 0; p < w.numPatterns; p++ {
			if w.Get(i, p) {
				out.Set(i/w.width, i%w.width, p)
				break
			}
		}
	}
	return out
}
