package render

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessera-labs/wfc/internal/imageio"
	"github.com/tessera-labs/wfc/internal/render"
)

var (
	file       string
	style      string
	coordsFlag bool
)

// RenderCmd renders a decoded output PNG to the terminal for quick visual
// inspection, without needing an external image viewer.
var RenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a solved PNG to the terminal (ASCII/Unicode)",
	Long: `Render prints a bordered terminal preview of an output image.

Examples:
  wfc render --file output/20260731-120000-ab12cd34/rooms/output.png
  wfc render -f output.png --style ascii --coords`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if file == "" {
			return fmt.Errorf("please provide --file to render")
		}
		img, err := imageio.Read(file)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		render.Preview(cmd.OutOrStdout(), img, style, coordsFlag)
		return nil
	},
}

func init() {
	RenderCmd.Flags().StringVarP(&file, "file", "f", "", "path to a PNG produced by `wfc run`")
	RenderCmd.Flags().StringVarP(&style, "style", "s", "unicode", "render style: ascii or unicode")
	RenderCmd.Flags().BoolVarP(&coordsFlag, "coords", "c", false, "show axis coordinates")
}

// GetCommand returns the render command for registration with root.
func GetCommand() *cobra.Command {
	return RenderCmd
}
