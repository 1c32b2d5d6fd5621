package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bookkeep-dev/bookkeep/internal/engine"
	"github.com/bookkeep-dev/bookkeep/internal/model"
)

func newManualCommand() *cobra.Command {
	var dir string
	var narration string
	var dateStr string
	var reference string
	var lineSpecs []string

	cmd := &cobra.Command{
		Use:   "manual",
		Short: "Post a manual journal entry without interpretation",
		Long: `Post a professionally prepared journal entry. Each --line takes the
form CODE:DEBIT:CREDIT, e.g. --line 1010:0:30000 --line 6000:30000:0.
The entry must balance; unbalanced input is rejected whole.`,
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

			lines, err := parseLines(lineSpecs)
			if err != nil {
				return err
			}

			entry, _, err := pr.eng.PostManualJournalEntry(narration, date, lines, reference)
			if errors.Is(err, engine.ErrRejected) {
				fmt.Printf("Entry rejected (debits %s, credits %s): %v\n",
					entry.TotalDebits.StringFixed(2), entry.TotalCredits.StringFixed(2), err)
				return err
			}
			if err != nil {
				return err
			}

			if err := pr.saveState(); err != nil {
				return err
			}

			fmt.Printf("Posted %s: %s (%s)\n", entry.ID, entry.Narration, entry.TotalDebits.StringFixed(2))
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&narration, "narration", "", "entry narration (required)")
	_ = cmd.MarkFlagRequired("narration")
	cmd.Flags().StringVar(&dateStr, "date", "", "entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference")
	cmd.Flags().StringArrayVar(&lineSpecs, "line", nil, "journal line CODE:DEBIT:CREDIT (repeatable)")
	_ = cmd.MarkFlagRequired("line")

	return cmd
}

func parseLines(specs []string) ([]model.JournalLine, error) {
	var lines []model.JournalLine
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("line %q: want CODE:DEBIT:CREDIT", spec)
		}

		debit, err := decimal.NewFromString(parts[1])
		if err != nil {
			return nil, fmt.Errorf("line %q: parsing debit: %w", spec, err)
		}
		credit, err := decimal.NewFromString(parts[2])
		if err != nil {
			return nil, fmt.Errorf("line %q: parsing credit: %w", spec, err)
		}

		lines = append(lines, model.JournalLine{AccountCode: parts[0], Debit: debit, Credit: credit})
	}
	return lines, nil
}
