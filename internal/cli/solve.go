package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/scottrsm/sudogo/internal/grid"
	"github.com/scottrsm/sudogo/internal/gridio"
	"github.com/scottrsm/sudogo/internal/solver"
	"github.com/scottrsm/sudogo/internal/store"
	"github.com/scottrsm/sudogo/internal/validator"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	Output   string // write the solution CSV here
	Store    string // archive the run in this SQLite database
	MaxNodes int    // search node budget, 0 = unbounded
}

// SolveReport is the payload describing a finished solve run.
type SolveReport struct {
	TraceID  string   `json:"trace_id"`
	Status   string   `json:"status"`
	Nodes    int      `json:"nodes"`
	MaxDepth int      `json:"max_depth"`
	Grid     []string `json:"grid,omitempty"` // solution rows, comma-separated
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve <puzzle-file>",
		Short: "Solve a Sudoku puzzle file",
		Long: `Solve a 9x9 Sudoku puzzle given as comma-separated text.

Empty cells may be written as "0", "NA", ".", or left blank. The puzzle
is validated first; solving runs constraint propagation and, when
needed, MRV backtracking search. An unsolvable puzzle is a normal
outcome (exit code 1), distinct from a malformed file (exit code 3).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			applySolveDefaults(rootOpts, opts, cmd)
			return runSolve(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the solution as CSV to this file")
	cmd.Flags().StringVar(&opts.Store, "store", "", "archive the run in this SQLite database")
	cmd.Flags().IntVar(&opts.MaxNodes, "max-nodes", 0, "abort after this many search trials (0 = unbounded)")

	return cmd
}

// applySolveDefaults fills unset flags from the config file.
func applySolveDefaults(rootOpts *RootOptions, opts *SolveOptions, cmd *cobra.Command) {
	cfg := rootOpts.Config
	if cfg == nil {
		return
	}
	if !cmd.Flags().Changed("max-nodes") && cfg.MaxNodes > 0 {
		opts.MaxNodes = cfg.MaxNodes
	}
	if !cmd.Flags().Changed("store") && cfg.Store != "" {
		opts.Store = cfg.Store
	}
}

func runSolve(rootOpts *RootOptions, opts *SolveOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   rootOpts.Verbose,
	}
	traceID := newRunID()

	rows, err := readPuzzleFile(formatter, path)
	if err != nil {
		return err
	}

	if verrs := validator.Check(rows); len(verrs) > 0 {
		return outputPuzzleErrors(formatter, verrs)
	}

	puzzle, err := grid.FromTokens(rows)
	if err != nil {
		// Validation guarantees this cannot happen.
		msg := fmt.Sprintf("building grid: %v", err)
		_ = formatter.Error(ErrCodeGeneric, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	if formatter.Verbose && formatter.Format == "text" {
		fmt.Fprint(formatter.Writer, gridio.Render(puzzle))
	}

	var solveOpts []solver.Option
	if opts.MaxNodes > 0 {
		solveOpts = append(solveOpts, solver.WithMaxNodes(opts.MaxNodes))
	}

	start := time.Now()
	res := solver.Solve(puzzle, solveOpts...)
	elapsed := time.Since(start)

	slog.Debug("solve finished",
		"trace_id", traceID,
		"status", res.Status.String(),
		"nodes", res.Nodes,
		"max_depth", res.MaxDepth,
		"duration", elapsed,
	)

	if opts.Store != "" {
		if err := archiveRun(cmd.Context(), opts.Store, traceID, puzzle, res, elapsed); err != nil {
			msg := fmt.Sprintf("archiving run: %v", err)
			_ = formatter.Error(ErrCodeStoreFailed, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		formatter.VerboseLog("archived run %s in %s", traceID, opts.Store)
	}

	report := SolveReport{
		TraceID:  traceID,
		Status:   res.Status.String(),
		Nodes:    res.Nodes,
		MaxDepth: res.MaxDepth,
	}

	switch res.Status {
	case solver.StatusSolved:
		report.Grid = gridio.Rows(res.Grid)
		if opts.Output != "" {
			if err := gridio.WriteFile(opts.Output, res.Grid); err != nil {
				msg := fmt.Sprintf("writing solution: %v", err)
				_ = formatter.Error(ErrCodeWriteFailed, msg, nil)
				return NewExitError(ExitCommandError, msg)
			}
			formatter.VerboseLog("solution written to %s", opts.Output)
		}
		return outputSolveSuccess(formatter, res, report)

	case solver.StatusAborted:
		msg := fmt.Sprintf("search aborted after %d nodes (budget %d)", res.Nodes, opts.MaxNodes)
		_ = formatter.Error(ErrCodeAborted, msg, report)
		return NewExitError(ExitUnsolvable, msg)

	default: // solver.StatusUnsolvable
		msg := "puzzle has no solution"
		_ = formatter.Error(ErrCodeUnsolvable, msg, report)
		return NewExitError(ExitUnsolvable, msg)
	}
}

// outputSolveSuccess renders a solved grid in the configured format.
func outputSolveSuccess(formatter *OutputFormatter, res solver.Result, report SolveReport) error {
	if formatter.Format == "json" {
		return formatter.Success(report)
	}

	fmt.Fprint(formatter.Writer, gridio.Render(res.Grid))
	fmt.Fprintf(formatter.Writer, "solved: %d node(s), depth %d\n", res.Nodes, res.MaxDepth)
	return nil
}

// archiveRun records the solve outcome in the SQLite archive. Failed
// runs are archived too; their solution column stays NULL.
func archiveRun(ctx context.Context, path, traceID string, puzzle grid.Grid, res solver.Result, elapsed time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	rec := store.SolveRecord{
		ID:        traceID,
		Puzzle:    strings.Join(gridio.Rows(puzzle), "\n"),
		Status:    res.Status.String(),
		Nodes:     res.Nodes,
		MaxDepth:  res.MaxDepth,
		Duration:  elapsed,
		CreatedAt: time.Now(),
	}
	if res.Status == solver.StatusSolved {
		rec.Solution = strings.Join(gridio.Rows(res.Grid), "\n")
	}
	return st.RecordSolve(ctx, rec)
}
