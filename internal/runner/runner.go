// Package runner assembles a problem-configuration document (internal/
// problem) and the image/tileset files it references into a list of
// driver.Problem values, one per declared <overlapping>, <simpletiled>, or
// <markov> entry. This is the glue layer the teacher's
// pkg/generator.Generate plays for a single puzzle level: read config,
// build the in-memory structures a solve attempt needs, and hand back
// something the retry driver can call repeatedly with a fresh seed.
package runner

import (
	"fmt"
	"path/filepath"

	"github.com/tessera-labs/wfc/internal/driver"
	"github.com/tessera-labs/wfc/internal/grid"
	"github.com/tessera-labs/wfc/internal/imageio"
	"github.com/tessera-labs/wfc/internal/markov"
	"github.com/tessera-labs/wfc/internal/overlapping"
	"github.com/tessera-labs/wfc/internal/problem"
	"github.com/tessera-labs/wfc/internal/propagator"
	"github.com/tessera-labs/wfc/internal/solver"
	"github.com/tessera-labs/wfc/internal/tile"
	"github.com/tessera-labs/wfc/internal/tiling"
	"github.com/tessera-labs/wfc/internal/wave"
	"github.com/tessera-labs/wfc/internal/wfcerr"
)

// Layout names the directories a samples root is expected to contain,
// mirroring WFCEntry.hpp's imageReadPath/configReadPath split: one folder
// of raw example images, one folder of named tileset subdirectories.
type Layout struct {
	Root string
}

func (l Layout) configPath() string { return filepath.Join(l.Root, "samples.xml") }
func (l Layout) imagePath(name string) string {
	return filepath.Join(l.Root, "samples", name+".png")
}
func (l Layout) tilesetDir(subset string) string { return filepath.Join(l.Root, "tilesets", subset) }

// BuildError pairs one problem declaration's name with the error that kept
// it from being built, so a bad tile image or unknown symmetry letter in
// one declaration doesn't prevent the rest of the document's problems from
// running (spec §7: a malformed problem is fatal to that problem only).
type BuildError struct {
	Name string
	Err  error
}

func (e BuildError) Error() string { return fmt.Sprintf("%s: %v", e.Name, e.Err) }
func (e BuildError) Unwrap() error { return e.Err }

// Build parses the samples.xml document under layout.Root and constructs a
// driver.Problem for every declared entry that builds successfully, in
// document order. A failure parsing the document itself is returned as
// docErr (fatal to the whole run); a failure building one declared problem
// is collected into buildErrs and does not stop the rest from building.
func Build(layout Layout) (problems []driver.Problem, buildErrs []BuildError, docErr error) {
	doc, err := problem.Load(layout.configPath())
	if err != nil {
		return nil, nil, err
	}

	for _, p := range doc.Overlapping {
		job, err := buildOverlapping(layout, p)
		if err != nil {
			buildErrs = append(buildErrs, BuildError{Name: p.Name, Err: err})
			continue
		}
		problems = append(problems, job)
	}
	for _, p := range doc.SimpleTiled {
		job, err := buildSimpleTiled(layout, p)
		if err != nil {
			buildErrs = append(buildErrs, BuildError{Name: p.Name, Err: err})
			continue
		}
		problems = append(problems, job)
	}
	for _, p := range doc.Markov {
		job, err := buildMarkov(layout, p)
		if err != nil {
			buildErrs = append(buildErrs, BuildError{Name: p.Name, Err: err})
			continue
		}
		problems = append(problems, job)
	}
	return problems, buildErrs, nil
}

// overlappingJob owns one fully-built overlapping.Model and the output
// dimensions its problem declaration asked for.
type overlappingJob struct {
	name    string
	model   *overlapping.Model
	options overlapping.Options
}

func buildOverlapping(layout Layout, p problem.OverlappingProblem) (*overlappingJob, error) {
	input, err := imageio.Read(layout.imagePath(p.Name))
	if err != nil {
		return nil, fmt.Errorf("runner: overlapping %q: %w: %v", p.Name, wfcerr.ErrMalformedProblem, err)
	}

	options := overlapping.Options{
		PeriodicInput:  *p.PeriodicInput,
		PeriodicOutput: p.Periodic,
		OutHeight:      p.Height,
		OutWidth:       p.Width,
		Symmetry:       p.Symmetry,
		Ground:         p.GroundEnabled(),
		PatternSize:    p.N,
	}
	return &overlappingJob{name: p.Name, model: overlapping.New(input, options), options: options}, nil
}

func (j *overlappingJob) Name() string { return j.name }

func (j *overlappingJob) Attempt(seed int64) (*grid.Grid2D[uint32], bool, error) {
	compatible := overlapping.GenerateCompatible(j.model.Patterns())
	w := wave.New(j.options.WaveHeight(), j.options.WaveWidth(), j.model.Weights())
	prop := propagator.New(w, compatible, j.options.PeriodicOutput)

	if j.options.Ground {
		if !j.model.InitializeGround(w, prop) {
			return nil, false, nil
		}
	}

	s := solver.New(w, prop, seed)
	if !s.Run() {
		return nil, false, nil
	}
	return j.model.Decode(w.Collapsed()), true, nil
}

// tiledJob is the shared solve path for simpletiled and markov problems:
// both reduce to a set of oriented tiles, a compatibility table derived
// from a neighbor list, and an output size, differing only in where the
// neighbor list comes from.
type tiledJob struct {
	name             string
	tiles            []*tile.Tile[uint32]
	idToOrientedTile [][2]int
	compatible       [][][]int
	weights          []float64
	periodic         bool
	height, width    int
}

func (j *tiledJob) Name() string { return j.name }

func (j *tiledJob) Attempt(seed int64) (*grid.Grid2D[uint32], bool, error) {
	w := wave.New(j.height, j.width, j.weights)
	prop := propagator.New(w, j.compatible, j.periodic)

	s := solver.New(w, prop, seed)
	if !s.Run() {
		return nil, false, nil
	}
	return tiling.Decode(w.Collapsed(), j.tiles, j.idToOrientedTile), true, nil
}

// loadTiles reads a tileset's data.xml and every tile's image, expanding
// each into its full set of oriented variants.
func loadTiles(layout Layout, subset string) (*problem.TileSet, []*tile.Tile[uint32], error) {
	dir := layout.tilesetDir(subset)
	ts, err := problem.LoadTileSet(filepath.Join(dir, "data.xml"))
	if err != nil {
		return nil, nil, err
	}

	tiles := make([]*tile.Tile[uint32], len(ts.Tiles))
	for i, decl := range ts.Tiles {
		sym, err := problem.ParseSymmetry(decl.Symmetry)
		if err != nil {
			return nil, nil, err
		}
		data, err := imageio.Read(filepath.Join(dir, decl.Name+".png"))
		if err != nil {
			return nil, nil, fmt.Errorf("runner: tileset %q tile %q: %w: %v", subset, decl.Name, wfcerr.ErrMalformedProblem, err)
		}
		tiles[i] = tile.New(data, sym, decl.Weight, decl.Name)
	}
	return ts, tiles, nil
}

func tileIndexByName(tiles []*tile.Tile[uint32], name string) (int, error) {
	for i, t := range tiles {
		if t.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("runner: neighbor declaration references unknown tile %q: %w", name, wfcerr.ErrMalformedProblem)
}

func buildSimpleTiled(layout Layout, p problem.SimpleTiledProblem) (*tiledJob, error) {
	ts, tiles, err := loadTiles(layout, p.Subset)
	if err != nil {
		return nil, err
	}

	neighbors := make([]tiling.Neighbor, 0, len(ts.Neighbors))
	for _, nd := range ts.Neighbors {
		leftName, leftOrient, err := problem.ParseNeighborEndpoint(nd.Left)
		if err != nil {
			return nil, err
		}
		rightName, rightOrient, err := problem.ParseNeighborEndpoint(nd.Right)
		if err != nil {
			return nil, err
		}
		leftIdx, err := tileIndexByName(tiles, leftName)
		if err != nil {
			return nil, err
		}
		rightIdx, err := tileIndexByName(tiles, rightName)
		if err != nil {
			return nil, err
		}
		neighbors = append(neighbors, tiling.Neighbor{
			Tile1: leftIdx, Orientation1: leftOrient,
			Tile2: rightIdx, Orientation2: rightOrient,
		})
	}

	return newTiledJob(p.Name, tiles, neighbors, p.Periodic, p.Height, p.Width), nil
}

func buildMarkov(layout Layout, p problem.MarkovProblem) (*tiledJob, error) {
	ts, tiles, err := loadTiles(layout, p.Subset)
	if err != nil {
		return nil, err
	}

	examples := make([]*grid.Grid2D[uint32], len(p.Inputs))
	for i, name := range p.Inputs {
		img, err := imageio.Read(layout.imagePath(name))
		if err != nil {
			return nil, fmt.Errorf("runner: markov %q example %q: %w: %v", p.Name, name, wfcerr.ErrMalformedProblem, err)
		}
		examples[i] = img
	}

	neighbors, err := markov.InferNeighbors(tiles, examples, ts.Size)
	if err != nil {
		return nil, fmt.Errorf("runner: markov %q: %w: %v", p.Name, wfcerr.ErrMalformedProblem, err)
	}

	return newTiledJob(p.Name, tiles, neighbors, p.Periodic, p.Height, p.Width), nil
}

func newTiledJob(name string, tiles []*tile.Tile[uint32], neighbors []tiling.Neighbor, periodic bool, height, width int) *tiledJob {
	idToOrientedTile, orientedTileIDs := tiling.GenerateOrientedTileIDs(tiles)
	compatible := tiling.GeneratePropagator(neighbors, tiles, idToOrientedTile, orientedTileIDs)
	weights := tiling.TilesWeight(tiles)

	return &tiledJob{
		name:             name,
		tiles:            tiles,
		idToOrientedTile: idToOrientedTile,
		compatible:       compatible,
		weights:          weights,
		periodic:         periodic,
		height:           height,
		width:            width,
	}
}
