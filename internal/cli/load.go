package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/inspectlab/regionq/internal/store"
)

// LoadOptions holds flags for the load command.
type LoadOptions struct {
	*RootOptions
	Database string
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "load <data-dir>",
		Short: "Bulk-load the point database from data files",
		Long: `Bulk-load the point database from a directory holding the three
line-aligned data files: points.txt ("x y" per line), categories.txt and
groups.txt (one integer per line). Line i of each file describes point i.

Any prior contents of the database are replaced.

Example:
  regionq load --db points.db ./data`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite point database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runLoad(opts *LoadOptions, dataDir string, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)

	if info, err := os.Stat(dataDir); err != nil {
		return WrapExitError(ExitFailure, "data directory not found", err)
	} else if !info.IsDir() {
		return WrapExitError(ExitFailure, "not a directory", fmt.Errorf("%s", dataDir))
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to open point store", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing store", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	n, err := st.Load(ctx, dataDir)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load data", err)
	}

	slog.Info("load complete", "points", n, "db", opts.Database)
	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d points into %s\n", n, opts.Database)
	return nil
}
