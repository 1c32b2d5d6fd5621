package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bookkeep-dev/bookkeep/internal/journal"
)

func newExportCommand() *cobra.Command {
	var dir string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export posted journal entries as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := openProject(dir)
			if err != nil {
				return err
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if err := journal.WriteEntries(w, pr.eng.JournalEntries()); err != nil {
				return fmt.Errorf("exporting journal: %w", err)
			}
			if out != "" {
				fmt.Printf("Exported %d entries to %s\n", len(pr.eng.JournalEntries()), out)
			}
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}
