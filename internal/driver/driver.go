// Package driver runs a list of problems to completion (spec §4.8):
// up to 10 attempts per problem with fresh seeds, writing the decoded image
// on the first success, logging and moving on after persistent failure.
// Output paths are timestamped and namespaced per problem, following the
// retry-loop and stats-JSON shape of the teacher's pkg/generator.Generate
// (per-level retry with incrementing seeds) and cmd/stats (JSON summary).
package driver

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/tessera-labs/wfc/internal/grid"
	"github.com/tessera-labs/wfc/internal/imageio"
	"github.com/tessera-labs/wfc/internal/logging"
	"github.com/tessera-labs/wfc/internal/progress"
	"github.com/tessera-labs/wfc/internal/wfcerr"
)

// MaxAttempts is the retry ceiling spec §4.8/§7 names for one problem.
const MaxAttempts = 10

// Problem is anything the driver can attempt to solve: build a fresh
// solver from seed, run it, and decode the result on success.
type Problem interface {
	Name() string
	// Attempt runs one solve attempt with the given seed. ok is false on
	// contradiction; err is non-nil only for a problem-fatal failure
	// (malformed input, I/O) that should abort this problem immediately
	// without retrying.
	Attempt(seed int64) (image *grid.Grid2D[uint32], ok bool, err error)
}

// Stat records one problem's outcome, accumulated across a driver run and
// written out as a JSON summary (mirrors cmd/stats's Stat shape).
type Stat struct {
	Name     string `json:"name"`
	Success  bool   `json:"success"`
	Attempts int    `json:"attempts"`
	Seed     int64  `json:"seed,omitempty"`
}

// Driver owns the output root and a global seed source problems draw their
// per-attempt seeds from.
type Driver struct {
	outputRoot string
	rng        *rand.Rand
	verbose    bool
}

// New creates a Driver rooted at outputRoot, timestamped once per run so
// repeated invocations never collide (spec §5: "the driver must ensure
// unique output paths per problem").
func New(outputRoot string, seed int64, verbose bool) (*Driver, error) {
	runDir := filepath.Join(outputRoot, runTimestamp())
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return nil, fmt.Errorf("driver: create output root %s: %w: %v", runDir, wfcerr.ErrIO, err)
	}
	return &Driver{
		outputRoot: runDir,
		rng:        rand.New(rand.NewSource(seed)),
		verbose:    verbose,
	}, nil
}

// runTimestamp names a run directory by wall-clock time plus a short random
// suffix, so two driver runs started within the same second never collide
// (spec §5's "unique output paths per problem" extends to the run itself).
func runTimestamp() string {
	return time.Now().Format("20060102-150405") + "-" + uuid.NewString()[:8]
}

// Run attempts every problem in order, writing each success's decoded
// image under a per-problem subfolder, and returns a Stat per problem.
func (d *Driver) Run(problems []Problem) []Stat {
	stats := make([]Stat, 0, len(problems))
	for _, p := range problems {
		stats = append(stats, d.runOne(p))
	}
	return stats
}

func (d *Driver) runOne(p Problem) Stat {
	spin := progress.New(fmt.Sprintf("solving %s", p.Name()), d.verbose)
	spin.Start()
	defer spin.Stop()

	problemDir := filepath.Join(d.outputRoot, p.Name())
	if err := os.MkdirAll(problemDir, 0o755); err != nil {
		spin.LogWarning("%s: could not create output directory: %v", p.Name(), err)
		return Stat{Name: p.Name(), Success: false}
	}

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		spin.UpdateMessage("solving %s (attempt %d/%d)", p.Name(), attempt, MaxAttempts)

		seed := d.rng.Int63()
		img, ok, err := p.Attempt(seed)
		if err != nil {
			spin.LogWarning("%s: fatal error on attempt %d: %v", p.Name(), attempt, err)
			return Stat{Name: p.Name(), Success: false, Attempts: attempt}
		}
		if ok {
			outPath := filepath.Join(problemDir, "output.png")
			if err := imageio.Write(outPath, img); err != nil {
				spin.LogWarning("%s: failed to write output: %v", p.Name(), err)
				return Stat{Name: p.Name(), Success: false, Attempts: attempt}
			}
			spin.LogInfo("%s: solved on attempt %d/%d -> %s", p.Name(), attempt, MaxAttempts, outPath)
			return Stat{Name: p.Name(), Success: true, Attempts: attempt, Seed: seed}
		}
		logging.Verbose("%s: attempt %d/%d contradicted", p.Name(), attempt, MaxAttempts)
	}

	spin.LogWarning("%s: exhausted %d attempts", p.Name(), MaxAttempts)
	return Stat{Name: p.Name(), Success: false, Attempts: MaxAttempts}
}

// WriteStats writes stats as a JSON array to path, for later offline
// summarization (mirrors cmd/stats's input format).
func WriteStats(path string, stats []Stat) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("driver: marshal stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("driver: write stats %s: %w: %v", path, wfcerr.ErrIO, err)
	}
	return nil
}
