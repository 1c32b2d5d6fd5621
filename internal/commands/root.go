// Package commands wires the bookkeeping engine to a cobra CLI. Every
// mutating command loads the engine state from the project's state
// file, applies one transition, saves the state back, and appends any
// audit rows, so the on-disk order matches submission order.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookkeep-dev/bookkeep/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bookkeep",
		Short:   "Plain-language double-entry bookkeeping",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newProcessCommand())
	rootCmd.AddCommand(newManualCommand())
	rootCmd.AddCommand(newAccountsCommand())
	rootCmd.AddCommand(newTrialBalanceCommand())
	rootCmd.AddCommand(newStatementsCommand())
	rootCmd.AddCommand(newBalanceCommand())
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newCloseCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newResetCommand())

	return rootCmd
}
