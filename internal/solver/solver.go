// Package solver drives the observe/propagate state machine (spec §4.4)
// that repeatedly collapses the lowest-entropy cell and propagates its
// consequences until the wave either fully collapses or contradicts.
package solver

import (
	"math/rand"

	"github.com/tessera-labs/wfc/internal/propagator"
	"github.com/tessera-labs/wfc/internal/wave"
)

// Solver owns one Wave/Propagator pair through to completion. It is built
// fresh for every solve attempt, the same way the teacher builds a fresh
// rand.Rand per generation attempt rather than reusing state across
// retries.
type Solver struct {
	wave *wave.Wave
	prop *propagator.Propagator
	rng  *rand.Rand
}

// New binds a Solver to an already-constructed wave and propagator, seeded
// by seed. *rand.Rand satisfies wave.RNG directly (Float64() float64), so
// no adapter type is needed.
func New(w *wave.Wave, prop *propagator.Propagator, seed int64) *Solver {
	return &Solver{
		wave: w,
		prop: prop,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Run executes the observe/propagate loop to completion. It returns true
// once every cell has collapsed to a single pattern, or false if the wave
// ever contradicts (some cell reaches zero alive patterns).
func (s *Solver) Run() bool {
	for {
		i := s.wave.MinEntropyCell(s.rng)
		switch {
		case i == -2:
			return false
		case i == -1:
			return true
		}

		s.observe(i)
		if s.wave.Impossible() {
			return false
		}
		if !s.prop.Propagate() {
			return false
		}
	}
}

// observe collapses cell i to a single pattern, drawn with probability
// proportional to each alive pattern's static weight (spec §4.4's
// "observe" step), and queues every other alive pattern there for
// elimination.
func (s *Solver) observe(i int) {
	n := s.wave.NumPatterns()

	target := s.rng.Float64() * s.wave.SumWeight(i)
	chosen := -1
	var acc float64
	for p := 0; p < n; p++ {
		if !s.wave.Get(i, p) {
			continue
		}
		acc += s.wave.Weight(p)
		if target < acc {
			chosen = p
			break
		}
	}
	if chosen == -1 {
		// Floating point rounding can leave target >= acc after the last
		// alive pattern; fall back to it rather than collapsing to nothing.
		for p := n - 1; p >= 0; p-- {
			if s.wave.Get(i, p) {
				chosen = p
				break
			}
		}
	}

	y, x := i/s.wave.Width(), i%s.wave.Width()
	for p := 0; p < n; p++ {
		if p == chosen || !s.wave.Get(i, p) {
			continue
		}
		s.wave.Set(i, p, false)
		s.prop.AddElimination(y, x, p)
	}
}

// Wave exposes the underlying wave for decoding once Run returns true.
func (s *Solver) Wave() *wave.Wave { return s.wave }
