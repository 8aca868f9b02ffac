package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessera-labs/wfc/cmd/clean"
	"github.com/tessera-labs/wfc/cmd/render"
	"github.com/tessera-labs/wfc/cmd/run"
	"github.com/tessera-labs/wfc/cmd/validate"
	"github.com/tessera-labs/wfc/internal/logging"
)

var (
	verbose    bool
	samplesDir string
	logFile    string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wfc",
	Short: "Wave Function Collapse procedural image generator",
	Long: `wfc generates images by collapsing a grid of overlapping or tiled
patterns down to a single consistent arrangement.

It provides commands for:
  - Running a problem-configuration document end to end
  - Validating a configuration and its referenced assets without solving
  - Cleaning a previous run's output directory`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.SetVerbose(verbose)
		if logFile != "" {
			closer, err := logging.SetLogFile(logFile)
			if err != nil {
				return fmt.Errorf("failed to open --log-file: %w", err)
			}
			_ = closer
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging output")
	rootCmd.PersistentFlags().StringVarP(&samplesDir, "samples", "s", "samples", "root directory containing samples.xml and its referenced assets")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write log output to this file")

	rootCmd.AddCommand(run.GetCommand())
	rootCmd.AddCommand(validate.GetCommand())
	rootCmd.AddCommand(clean.GetCommand())
	rootCmd.AddCommand(render.GetCommand())
}
