package runner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessera-labs/wfc/internal/grid"
	"github.com/tessera-labs/wfc/internal/imageio"
	"github.com/tessera-labs/wfc/internal/runner"
)

func uniformImage(h, w int, color uint32) *grid.Grid2D[uint32] {
	g := grid.NewGrid2D[uint32](h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(y, x, color)
		}
	}
	return g
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestBuildOverlappingSolvesAUniformInput(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "samples.xml"), `<samples>
  <overlapping name="rooms" N="2" width="4" height="4" periodic="true"/>
</samples>`)
	require.NoError(t, imageio.Write(filepath.Join(root, "samples", "rooms.png"), uniformImage(4, 4, 0xff0000ff)))

	problems, buildErrs, err := runner.Build(runner.Layout{Root: root})
	require.NoError(t, err)
	require.Empty(t, buildErrs)
	require.Len(t, problems, 1)
	require.Equal(t, "rooms", problems[0].Name())

	img, ok, err := problems[0].Attempt(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, img.Height)
	require.Equal(t, 4, img.Width)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			require.Equal(t, uint32(0xff0000ff), img.At(y, x))
		}
	}
}

func TestBuildSimpleTiledSolvesASingleSelfCompatibleTile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "samples.xml"), `<samples>
  <simpletiled name="floor" subset="basic" width="2" height="2" periodic="true"/>
</samples>`)
	writeFile(t, filepath.Join(root, "tilesets", "basic", "data.xml"), `<set size="2">
  <tiles>
    <tile name="empty"/>
  </tiles>
  <neighbors>
    <neighbor left="empty" right="empty"/>
  </neighbors>
</set>`)
	require.NoError(t, imageio.Write(filepath.Join(root, "tilesets", "basic", "empty.png"), uniformImage(2, 2, 0x00000000)))

	problems, buildErrs, err := runner.Build(runner.Layout{Root: root})
	require.NoError(t, err)
	require.Empty(t, buildErrs)
	require.Len(t, problems, 1)

	img, ok, err := problems[0].Attempt(7)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, img.Height)
	require.Equal(t, 4, img.Width)
}

func TestBuildCollectsPerProblemErrorWithoutFailingTheWholeDocument(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "samples.xml"), `<samples>
  <overlapping name="ghost" N="2" width="4" height="4"/>
  <overlapping name="rooms" N="2" width="4" height="4" periodic="true"/>
</samples>`)
	require.NoError(t, imageio.Write(filepath.Join(root, "samples", "rooms.png"), uniformImage(4, 4, 0xff0000ff)))

	problems, buildErrs, err := runner.Build(runner.Layout{Root: root})
	require.NoError(t, err)
	require.Len(t, buildErrs, 1)
	require.Equal(t, "ghost", buildErrs[0].Name)
	require.Len(t, problems, 1, "rooms must still build despite ghost's missing image")
	require.Equal(t, "rooms", problems[0].Name())
}

func TestBuildReturnsDocErrorOnUnparsableConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "samples.xml"), `not valid xml at all <<<`)

	_, _, err := runner.Build(runner.Layout{Root: root})
	require.Error(t, err)
}
