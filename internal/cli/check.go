package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scottrsm/sudogo/internal/validator"
)

// CheckResult holds validation results.
type CheckResult struct {
	Valid  bool               `json:"valid"`
	Errors []*validator.Error `json:"errors,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <puzzle-file>",
		Short: "Validate a puzzle file without solving it",
		Long: `Validate a puzzle file's shape, values, and unit constraints.

Reports each failure category once: shape, illegal values, and row,
column, and block duplicates. A valid but unsatisfiable puzzle passes -
only the solver can decide satisfiability.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(rootOpts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	rows, err := readPuzzleFile(formatter, path)
	if err != nil {
		return err
	}
	formatter.VerboseLog("read %d row(s) from %s", len(rows), path)

	if verrs := validator.Check(rows); len(verrs) > 0 {
		return outputPuzzleErrors(formatter, verrs)
	}

	if formatter.Format == "json" {
		return formatter.Success(CheckResult{Valid: true})
	}
	fmt.Fprintln(formatter.Writer, "puzzle is valid")
	return nil
}
