package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessera-labs/wfc/internal/logging"
	"github.com/tessera-labs/wfc/internal/runner"
)

// validateCmd parses a samples.xml document and every tileset/image it
// references without invoking the solver, surfacing a malformed problem up
// front rather than discovering it partway through a long run.
var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"val"},
	Short:   "Validate a samples.xml document and its referenced assets",
	Long: `Validate performs a structural-only pass over the configuration under
--samples: it parses every declared problem and loads every tile image
and example image it references, but never runs the solver.

Examples:
  wfc validate
  wfc validate --samples ./samples -v`,
	RunE: func(cmd *cobra.Command, args []string) error {
		samplesDir, err := cmd.Flags().GetString("samples")
		if err != nil {
			return err
		}

		logging.Info("validating %s", samplesDir)
		problems, buildErrs, docErr := runner.Build(runner.Layout{Root: samplesDir})
		if docErr != nil {
			return fmt.Errorf("validate: %w", docErr)
		}

		for _, be := range buildErrs {
			logging.Error("%s: %v", be.Name, be.Err)
		}
		logging.Info("%d problem(s) valid, %d malformed", len(problems), len(buildErrs))

		if len(buildErrs) > 0 {
			return fmt.Errorf("validate: %d problem(s) failed validation", len(buildErrs))
		}
		return nil
	},
}

// GetCommand returns the validate command for registration with root.
func GetCommand() *cobra.Command {
	return validateCmd
}
