package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/inspectlab/regionq/internal/eval"
	"github.com/inspectlab/regionq/internal/querytree"
	"github.com/inspectlab/regionq/internal/store"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Database string
	Output   string
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query <query.json>",
		Short: "Evaluate a region query against the point database",
		Long: `Evaluate a JSON region query description against the point database
and write the matching points to the output file, one "<x> <y>" line per
point, sorted ascending by y then x.

Example:
  regionq query --db points.db --output result.txt query.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite point database (required)")
	cmd.Flags().StringVar(&opts.Output, "output", "output.txt", "path of the result file")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runQuery(opts *QueryOptions, queryPath string, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)

	// Run token for log correlation across the query's stages.
	run := uuid.Must(uuid.NewV7()).String()
	slog.Debug("query starting", "run", run, "query", queryPath, "db", opts.Database)

	raw, err := os.ReadFile(queryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return WrapExitError(ExitFailure, "query file not found", err)
		}
		return WrapExitError(ExitFailure, "failed to read query file", err)
	}

	node, err := querytree.Build(raw)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to build query", err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to open point store", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing store", "run", run, "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	set, err := eval.New(st).Evaluate(ctx, node)
	if err != nil {
		return WrapExitError(ExitFailure, "query evaluation failed", err)
	}
	points := eval.Finalize(set)
	slog.Debug("query evaluated", "run", run, "points", len(points))

	if err := writeOutput(opts.Output, points); err != nil {
		return WrapExitError(ExitFailure, "failed to write output", err)
	}

	slog.Info("query complete", "run", run, "points", len(points), "output", opts.Output)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d points to %s\n", len(points), opts.Output)
	return nil
}
