package clean

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessera-labs/wfc/internal/logging"
)

var output string

// cleanCmd removes a previous run's output directory.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove a previous run's output directory",
	Long: `Remove deletes the --output directory and everything under it,
including every timestamped run and the images it produced.

This is a destructive operation. Use with caution.

Examples:
  wfc clean
  wfc clean --output ./out -v`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.Info("removing %s", output)
		if err := os.RemoveAll(output); err != nil {
			return fmt.Errorf("clean: %w", err)
		}
		logging.Info("removed %s", output)
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVarP(&output, "output", "o", "output", "output directory to remove")
}

// GetCommand returns the clean command for registration with root.
func GetCommand() *cobra.Command {
	return cleanCmd
}
