package imageio_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessera-labs/wfc/internal/grid"
	"github.com/tessera-labs/wfc/internal/imageio"
)

func TestPackUnpackRoundTrips(t *testing.T) {
	packed := imageio.Pack(10, 20, 30, 255)
	r, g, b, a := imageio.Unpack(packed)
	require.Equal(t, uint8(10), r)
	require.Equal(t, uint8(20), g)
	require.Equal(t, uint8(30), b)
	require.Equal(t, uint8(255), a)
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	g := grid.NewGrid2D[uint32](2, 2)
	g.Set(0, 0, imageio.Pack(255, 0, 0, 255))
	g.Set(0, 1, imageio.Pack(0, 255, 0, 255))
	g.Set(1, 0, imageio.Pack(0, 0, 255, 255))
	g.Set(1, 1, imageio.Pack(255, 255, 255, 255))

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, imageio.Write(path, g))

	back, err := imageio.Read(path)
	require.NoError(t, err)
	require.Equal(t, g.Height, back.Height)
	require.Equal(t, g.Width, back.Width)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			require.Equal(t, g.At(y, x), back.At(y, x))
		}
	}
}
