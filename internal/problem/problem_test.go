package problem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessera-labs/wfc/internal/problem"
	"github.com/tessera-labs/wfc/internal/tile"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDocumentAppliesOverlappingDefaults(t *testing.T) {
	doc := writeFile(t, t.TempDir(), "samples.xml", `<samples>
  <overlapping name="rooms"/>
</samples>`)

	parsed, err := problem.Load(doc)
	require.NoError(t, err)
	require.Len(t, parsed.Overlapping, 1)

	p := parsed.Overlapping[0]
	require.Equal(t, "rooms", p.Name)
	require.Equal(t, 3, p.N)
	require.Equal(t, 8, p.Symmetry)
	require.Equal(t, 2, p.Screenshots)
	require.Equal(t, 48, p.Width)
	require.Equal(t, 48, p.Height)
	require.True(t, *p.PeriodicInput)
	require.False(t, p.GroundEnabled())
}

func TestGroundEnabledParsesNonzeroString(t *testing.T) {
	p := problem.OverlappingProblem{Ground: "true"}
	require.True(t, p.GroundEnabled())
	p.Ground = "0"
	require.False(t, p.GroundEnabled())
	p.Ground = ""
	require.False(t, p.GroundEnabled())
}

func TestLoadTileSetAppliesDefaultsAndParsesNeighbors(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "data.xml", `<set size="2">
  <tiles>
    <tile name="empty"/>
    <tile name="wall" symmetry="I" weight="2.5"/>
  </tiles>
  <neighbors>
    <neighbor left="empty" right="wall 1"/>
  </neighbors>
</set>`)

	ts, err := problem.LoadTileSet(doc)
	require.NoError(t, err)
	require.Equal(t, 2, ts.Size)
	require.Equal(t, "X", ts.Tiles[0].Symmetry)
	require.Equal(t, float64(1), ts.Tiles[0].Weight)
	require.Equal(t, "I", ts.Tiles[1].Symmetry)

	name, orient, err := problem.ParseNeighborEndpoint(ts.Neighbors[0].Right)
	require.NoError(t, err)
	require.Equal(t, "wall", name)
	require.Equal(t, 1, orient)
}

func TestLoadTileSetRejectsZeroSize(t *testing.T) {
	doc := writeFile(t, t.TempDir(), "data.xml", `<set><tiles><tile name="a"/></tiles></set>`)
	_, err := problem.LoadTileSet(doc)
	require.Error(t, err)
}

func TestParseSymmetryResolvesEveryLetter(t *testing.T) {
	cases := map[string]tile.Symmetry{
		"":   tile.SymX,
		"X":  tile.SymX,
		"I":  tile.SymI,
		"\\": tile.SymBackslash,
		"T":  tile.SymT,
		"L":  tile.SymL,
		"P":  tile.SymP,
	}
	for letter, want := range cases {
		got, err := problem.ParseSymmetry(letter)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := problem.ParseSymmetry("Q")
	require.Error(t, err)
}
