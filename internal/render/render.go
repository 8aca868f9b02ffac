// Package render prints a decoded WFC output image to a terminal for quick
// visual inspection, the same role the teacher's pkg/common.RenderLevelToWriter
// played for a puzzle level: a bordered grid with a header, an ascii/unicode
// style switch, and an optional coordinate ruler. Per-cell glyph selection
// here is luminance/color based rather than vine-connector based, since the
// subject is a raster image instead of a path graph.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/tessera-labs/wfc/internal/grid"
	"github.com/tessera-labs/wfc/internal/imageio"
)

// asciiRamp goes from darkest to lightest, the standard terminal luminance
// ramp used when color output isn't available or wanted.
const asciiRamp = " .:-=+*#%@"

// gutterWidth is the width of the row-label column printed to the left of
// the left border ("    " or "%3d ").
const gutterWidth = 4

// Preview writes a bordered terminal rendering of img to w. style "ascii"
// maps each pixel's luminance onto asciiRamp; any other style (including
// the default "unicode") prints one colored block character per pixel via
// fatih/color.
//
// When w is a terminal (detected via golang.org/x/term, the same way the
// teacher's stack auto-detects TTYs for color support), rows wider than the
// detected width are truncated rather than wrapped, since a wrapped grid is
// no longer readable as a grid, and a footer line after the grid reports how
// many columns were dropped.
func Preview(w io.Writer, img *grid.Grid2D[uint32], style string, showCoords bool) {
	height, width := img.Height, img.Width
	if height <= 0 || width <= 0 {
		fmt.Fprintf(w, "invalid image size: %dx%d\n", width, height)
		return
	}

	visibleWidth := width
	truncated := false
	if termWidth, ok := terminalWidth(w); ok {
		if budget := termWidth - gutterWidth - 2; budget > 0 && width > budget {
			visibleWidth = budget
			truncated = true
		}
	}

	fmt.Fprintf(w, "image: %dx%d\n", width, height)
	printHorizontalBorder(w, visibleWidth)

	for y := 0; y < height; y++ {
		if showCoords {
			fmt.Fprintf(w, "%3d ", y)
		} else {
			fmt.Fprint(w, "    ")
		}
		fmt.Fprint(w, "|")
		for x := 0; x < visibleWidth; x++ {
			r, g, b, _ := imageio.Unpack(img.At(y, x))
			if style == "ascii" {
				fmt.Fprint(w, string(asciiGlyph(r, g, b)))
			} else {
				fmt.Fprint(w, colorBlock(r, g, b))
			}
		}
		fmt.Fprint(w, "|\n")
	}

	printHorizontalBorder(w, visibleWidth)
	if showCoords {
		fmt.Fprint(w, "    ")
		for x := 0; x < visibleWidth; x++ {
			fmt.Fprintf(w, "%d", x%10)
		}
		fmt.Fprint(w, "\n")
	}
	if truncated {
		fmt.Fprintf(w, "(truncated %d of %d columns to fit the terminal width)\n", width-visibleWidth, width)
	}
}

// terminalWidth reports the column width of w's underlying file descriptor,
// when w is a terminal. Anything else (a *strings.Builder in tests, a file
// being redirected to, a pipe) reports ok=false and the caller renders the
// image at full width.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0, false
	}
	return width, true
}

func printHorizontalBorder(w io.Writer, width int) {
	fmt.Fprint(w, "    +")
	for x := 0; x < width; x++ {
		fmt.Fprint(w, "-")
	}
	fmt.Fprint(w, "+\n")
}

// asciiGlyph buckets a pixel's perceptual luminance into asciiRamp.
func asciiGlyph(r, g, b uint8) byte {
	lum := (299*int(r) + 587*int(g) + 114*int(b)) / 1000
	idx := lum * (len(asciiRamp) - 1) / 255
	return asciiRamp[idx]
}

// colorBlock renders one pixel as a block character in the nearest of the
// 8 basic ANSI colors. fatih/color v1.7.0 predates its true-color (RGB)
// support, so the closest basic color is the best approximation available
// at this pinned version.
func colorBlock(r, g, b uint8) string {
	return color.New(nearestANSIColor(r, g, b)).Sprint("█")
}

// nearestANSIColor picks whichever of the 8 basic ANSI foreground colors is
// closest to (r,g,b) by thresholding each channel against the midpoint.
func nearestANSIColor(r, g, b uint8) color.Attribute {
	const mid = 128
	ri, gi, bi := r >= mid, g >= mid, b >= mid
	switch {
	case !ri && !gi && !bi:
		return color.FgBlack
	case ri && !gi && !bi:
		return color.FgRed
	case !ri && gi && !bi:
		return color.FgGreen
	case ri && gi && !bi:
		return color.FgYellow
	case !ri && !gi && bi:
		return color.FgBlue
	case ri && !gi && bi:
		return color.FgMagenta
	case !ri && gi && bi:
		return color.FgCyan
	default:
		return color.FgWhite
	}
}
