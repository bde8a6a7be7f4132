package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/scottrsm/sudogo/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	Store string
	Limit int
}

// HistoryEntry is the JSON shape of one archived solve run.
type HistoryEntry struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Nodes      int    `json:"nodes"`
	MaxDepth   int    `json:"max_depth"`
	DurationMS int64  `json:"duration_ms"`
	CreatedAt  string `json:"created_at"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived solve runs",
		Long: `List solve runs recorded with "solve --store", newest first.

The store path comes from --store or from the config file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("store") && rootOpts.Config != nil && rootOpts.Config.Store != "" {
				opts.Store = rootOpts.Config.Store
			}
			return runHistory(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Store, "store", "", "SQLite archive to read")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum runs to list (0 = all)")

	return cmd
}

func runHistory(rootOpts *RootOptions, opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	if opts.Store == "" {
		msg := "no store configured: pass --store or set store in the config file"
		_ = formatter.Error(ErrCodeGeneric, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}
	if _, err := os.Stat(opts.Store); os.IsNotExist(err) {
		// Opening would create an empty database; a missing archive is
		// a command error instead.
		msg := fmt.Sprintf("store not found: %s", opts.Store)
		_ = formatter.Error(ErrCodeNotFound, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	st, err := store.Open(opts.Store)
	if err != nil {
		msg := fmt.Sprintf("opening store: %v", err)
		_ = formatter.Error(ErrCodeStoreFailed, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}
	defer st.Close()

	recs, err := st.List(cmd.Context(), opts.Limit)
	if err != nil {
		msg := fmt.Sprintf("listing runs: %v", err)
		_ = formatter.Error(ErrCodeStoreFailed, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	if formatter.Format == "json" {
		entries := make([]HistoryEntry, len(recs))
		for i, rec := range recs {
			entries[i] = HistoryEntry{
				ID:         rec.ID,
				Status:     rec.Status,
				Nodes:      rec.Nodes,
				MaxDepth:   rec.MaxDepth,
				DurationMS: rec.Duration.Milliseconds(),
				CreatedAt:  rec.CreatedAt.UTC().Format(time.RFC3339),
			}
		}
		return formatter.Success(entries)
	}

	if len(recs) == 0 {
		fmt.Fprintln(formatter.Writer, "no archived runs")
		return nil
	}
	for _, rec := range recs {
		fmt.Fprintf(formatter.Writer, "%s  %-10s  nodes=%-6d depth=%-3d %8s  %s\n",
			rec.ID, rec.Status, rec.Nodes, rec.MaxDepth, rec.Duration, rec.CreatedAt.UTC().Format(time.RFC3339))
	}
	return nil
}
