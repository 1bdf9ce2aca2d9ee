package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the regionq CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "regionq",
		Short: "Region queries over labeled inspection points",
		Long: `regionq answers spatial region queries over a set of labeled 2D
inspection points held in a SQLite database.

Load the database once from the three line-aligned data files, then run
boolean crop/and/or query descriptions against it.`,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewLoadCommand(opts))

	return cmd
}

// configureLogging sets the default slog logger for a command invocation.
// Diagnostics go to stderr; stdout stays reserved for command output.
func configureLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
