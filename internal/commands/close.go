package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func newCloseCommand() *cobra.Command {
	var dir string
	var dateStr string

	cmd := &cobra.Command{
		Use:   "close",
		Short: "Post period-end closing entries into Retained Earnings",
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := openProject(dir)
			if err != nil {
				return err
			}

			date := time.Now()
			if dateStr != "" {
				date, err = time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("parsing date %q: %w", dateStr, err)
				}
			}

			entries, _, err := pr.eng.CreateClosingEntries(date)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("Nothing to close.")
				return nil
			}

			if err := pr.saveState(); err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Printf("Posted %s: %s (%s)\n", e.ID, e.Narration, e.TotalDebits.StringFixed(2))
			}
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&dateStr, "date", "", "closing date (YYYY-MM-DD, default today)")
	return cmd
}

func newResetCommand() *cobra.Command {
	var dir string
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all ledger state back to the base chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("reset discards every posted entry; re-run with --force to confirm")
			}

			pr, err := openProject(dir)
			if err != nil {
				return err
			}

			pr.eng.Reset()
			if err := pr.saveState(); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, "Ledger state reset.")
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().BoolVar(&force, "force", false, "confirm the reset")
	return cmd
}
