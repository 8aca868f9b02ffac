// Package imageio is the stdlib image/image-png boundary: reading an
// example image into the RGBA-packed grid the models operate on, and
// writing a decoded grid out as a PNG (spec §6's "Image I/O").
//
// Grounded on the pack's image usage (other_examples' go-wfc ExportImage
// uses image.NewRGBA + image/draw); this package trades that draw-based
// compositing for direct pixel access since our grids are already
// pixel-dense.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/tessera-labs/wfc/internal/grid"
)

// Pack combines an RGBA color's four channels into one uint32, the packed
// form the models key pattern equality on.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// Unpack splits a packed color back into its four channels.
func Unpack(c uint32) (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Read decodes the image at path into a row-major grid of packed RGBA
// pixels.
func Read(path string) (*grid.Grid2D[uint32], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	height, width := bounds.Dy(), bounds.Dx()
	out := grid.NewGrid2D[uint32](height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out.Set(y, x, Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)))
		}
	}
	return out, nil
}

// Write encodes g as a PNG at path, creating parent directories as needed.
func Write(path string, g *grid.Grid2D[uint32]) error {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			r, gg, b, a := Unpack(g.At(y, x))
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: gg, B: b, A: a})
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("imageio: create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	return nil
}
