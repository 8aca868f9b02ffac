// Package propagator implements arc-consistency propagation over a Wave
// (spec §4.3): compatibility tables between patterns, per-cell per-pattern
// per-direction support counters, and a LIFO worklist that drains every
// consequence of an elimination before the solver observes again.
package propagator

import (
	"github.com/tessera-labs/wfc/internal/direction"
	"github.com/tessera-labs/wfc/internal/grid"
	"github.com/tessera-labs/wfc/internal/wave"
)

// elimination is one (cell, pattern) pair removed from the wave, still
// waiting to have its consequences propagated to neighbors.
type elimination struct {
	y, x, p int
}

// Propagator maintains, for every cell/pattern/direction, how many patterns
// in the neighboring cell (in that direction) are still compatible with it.
// When a counter reaches zero, the pattern can no longer be supported there
// and is eliminated in turn — the classic AC-3 style arc-consistency loop.
type Propagator struct {
	wave *wave.Wave

	height, width, numPatterns int
	periodic                   bool

	// compatible[p][d] lists the patterns allowed in the cell one step in
	// direction d from a cell holding pattern p.
	compatible [][][]int

	// support[y,x,p][d]: remaining count of patterns still alive in the
	// neighboring cell in direction opposite(d) that allow p in direction d.
	support *grid.Grid3D[[4]int]

	stack []elimination
}

// New builds a Propagator bound to w. compatible[p][d] must list every
// pattern allowed to sit in direction d of a cell holding pattern p
// (spec §4.1's compatibility relation); periodic controls whether
// neighbor lookups wrap at the wave's edges.
func New(w *wave.Wave, compatible [][][]int, periodic bool) *Propagator {
	height, width, numPatterns := w.Height(), w.Width(), w.NumPatterns()

	pr := &Propagator{
		wave:        w,
		height:      height,
		width:       width,
		numPatterns: numPatterns,
		periodic:    periodic,
		compatible:  compatible,
		support:     grid.NewGrid3D[[4]int](height, width, numPatterns),
	}
	pr.initSupport()
	return pr
}

// initSupport computes, for every cell/pattern/direction, how many patterns
// are compatible with p in direction d — the same quantity regardless of
// cell since every cell starts with every pattern alive, then seeds each
// cell's counters from that uniform baseline.
//
// support[p][d] counts candidates in the neighbor cell in direction
// opposite(d) that would still support p, i.e. patterns q for which p is
// allowed in direction d of q — so the baseline is
// |compatible[p][opposite(d)]|, not |compatible[p][d]|. Propagate's
// decrement loop walks compatible[e.p][d] from the eliminated cell to find
// which patterns in its direction-d neighbor lose a supporter, which is
// exactly the relation this baseline must match.
func (pr *Propagator) initSupport() {
	baseline := make([][4]int, pr.numPatterns)
	for p := 0; p < pr.numPatterns; p++ {
		for _, d := range direction.All {
			baseline[p][d] = len(pr.compatible[p][direction.Opposite(d)])
		}
	}
	for y := 0; y < pr.height; y++ {
		for x := 0; x < pr.width; x++ {
			for p := 0; p < pr.numPatterns; p++ {
				*pr.support.At(y, x, p) = baseline[p]
			}
		}
	}
}

// neighbor returns the coordinates one step from (y,x) in direction d,
// wrapping if periodic; ok is false for a non-periodic out-of-bounds step.
func (pr *Propagator) neighbor(y, x int, d direction.Direction) (ny, nx int, ok bool) {
	dx, dy := direction.Delta(d)
	ny, nx = y+dy, x+dx
	if pr.periodic {
		ny = mod(ny, pr.height)
		nx = mod(nx, pr.width)
		return ny, nx, true
	}
	if ny < 0 || ny >= pr.height || nx < 0 || nx >= pr.width {
		return 0, 0, false
	}
	return ny, nx, true
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// AddElimination records that pattern p was just removed at (y,x) and
// queues it for propagation. The caller is responsible for having already
// called Wave.Set; AddElimination only pushes the worklist entry.
func (pr *Propagator) AddElimination(y, x, p int) {
	pr.stack = append(pr.stack, elimination{y: y, x: x, p: p})
}

// Propagate drains the worklist, pushing each elimination's consequences
// out to its four neighbors and eliminating any pattern whose support
// drops to zero, until no further eliminations remain or the wave becomes
// impossible. Returns false if the wave reached a contradiction.
func (pr *Propagator) Propagate() bool {
	for len(pr.stack) > 0 {
		e := pr.stack[len(pr.stack)-1]
		pr.stack = pr.stack[:len(pr.stack)-1]

		for _, d := range direction.All {
			ny, nx, ok := pr.neighbor(e.y, e.x, d)
			if !ok {
				continue
			}
			ni := ny*pr.width + nx

			allowed := pr.compatible[e.p][d]
			for _, p2 := range allowed {
				if !pr.wave.GetYX(ny, nx, p2) {
					continue
				}
				counters := pr.support.At(ny, nx, p2)
				counters[d]--
				if counters[d] == 0 {
					pr.eliminate(ni, ny, nx, p2)
					if pr.wave.Impossible() {
						return false
					}
				}
			}
		}
	}
	return !pr.wave.Impossible()
}

// eliminate removes pattern p from cell (y,x) and queues its own
// consequences for propagation.
func (pr *Propagator) eliminate(i, y, x, p int) {
	pr.wave.Set(i, p, false)
	pr.AddElimination(y, x, p)
}

// Ban eliminates pattern p at (y,x) immediately and propagates its
// consequences before returning, used for one-shot constraints like ground
// placement (spec §4.5) rather than batched observation.
func (pr *Propagator) Ban(y, x, p int) bool {
	i := y*pr.width + x
	if !pr.wave.GetYX(y, x, p) {
		return !pr.wave.Impossible()
	}
	pr.eliminate(i, y, x, p)
	return pr.Propagate()
}
