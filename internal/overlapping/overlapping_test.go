package overlapping_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessera-labs/wfc/internal/grid"
	"github.com/tessera-labs/wfc/internal/overlapping"
)

func uniformInput(h, w int, color uint32) *grid.Grid2D[uint32] {
	g := grid.NewGrid2D[uint32](h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(y, x, color)
		}
	}
	return g
}

func TestExtractPatternsFromUniformInputYieldsOnePattern(t *testing.T) {
	input := uniformInput(4, 4, 0xff0000ff)
	opts := overlapping.Options{
		PeriodicInput: true, PeriodicOutput: true,
		OutHeight: 4, OutWidth: 4, Symmetry: 1, PatternSize: 2,
	}
	m := overlapping.New(input, opts)

	require.Len(t, m.Patterns(), 1, "a uniform image has exactly one distinct NxN window")
	require.Equal(t, float64(16), m.Weights()[0], "periodic 4x4 input has 16 window positions")
}

func TestGenerateCompatibleUniformPatternAllowsItself(t *testing.T) {
	input := uniformInput(4, 4, 0xabcdefff)
	opts := overlapping.Options{PeriodicInput: true, PeriodicOutput: true, OutHeight: 4, OutWidth: 4, Symmetry: 1, PatternSize: 2}
	m := overlapping.New(input, opts)

	compatible := overlapping.GenerateCompatible(m.Patterns())
	require.Len(t, compatible, 1)
	for d := 0; d < 4; d++ {
		require.Equal(t, []int{0}, compatible[0][d])
	}
}

func TestWaveDimensionsNonPeriodicShrinkByPatternSize(t *testing.T) {
	opts := overlapping.Options{OutHeight: 10, OutWidth: 12, PatternSize: 3, PeriodicOutput: false}
	require.Equal(t, 8, opts.WaveHeight())
	require.Equal(t, 10, opts.WaveWidth())
}

func TestWaveDimensionsPeriodicMatchOutput(t *testing.T) {
	opts := overlapping.Options{OutHeight: 10, OutWidth: 12, PatternSize: 3, PeriodicOutput: true}
	require.Equal(t, 10, opts.WaveHeight())
	require.Equal(t, 12, opts.WaveWidth())
}

func TestDecodeUniformWaveProducesUniformImage(t *testing.T) {
	input := uniformInput(4, 4, 0x11223344)
	opts := overlapping.Options{PeriodicInput: true, PeriodicOutput: true, OutHeight: 4, OutWidth: 4, Symmetry: 1, PatternSize: 2}
	m := overlapping.New(input, opts)

	collapsed := grid.NewGrid2D[int](4, 4)
	out := m.Decode(collapsed)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			require.Equal(t, uint32(0x11223344), out.At(y, x))
		}
	}
}
