package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bookkeep-dev/bookkeep/internal/auditlog"
	"github.com/bookkeep-dev/bookkeep/internal/engine"
)

func newProcessCommand() *cobra.Command {
	var dir string
	var amountStr string
	var category string
	var dateStr string

	cmd := &cobra.Command{
		Use:   "process <description>",
		Short: "Interpret a plain-language transaction and post it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := openProject(dir)
			if err != nil {
				return err
			}

			params := engine.ProcessParams{Description: args[0], Category: category}
			if amountStr != "" {
				amount, err := decimal.NewFromString(amountStr)
				if err != nil {
					return fmt.Errorf("parsing amount %q: %w", amountStr, err)
				}
				params.Amount = amount
			}
			if dateStr != "" {
				date, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("parsing date %q: %w", dateStr, err)
				}
				params.Date = date
			}

			result, events, err := pr.eng.ProcessTransaction(params)
			if err != nil {
				return err
			}
			if result == nil {
				fmt.Println("No amount found in the description; nothing was recorded. Add --amount or restate the transaction.")
				return nil
			}

			if err := pr.saveState(); err != nil {
				return err
			}
			if err := appendAudit(pr, result); err != nil {
				return err
			}

			fmt.Println(result.Summary)
			for _, q := range result.Interpretation.QuestionsNeeded {
				fmt.Printf("  needs info: %s\n", q)
			}
			for _, ev := range events {
				fmt.Printf("  event: %s %s\n", ev.Kind, ev.Summary)
			}
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&amountStr, "amount", "", "override the extracted amount")
	cmd.Flags().StringVar(&category, "category", "", "category hint for classification")
	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date (YYYY-MM-DD, default today)")

	return cmd
}

func appendAudit(pr *project, result *engine.ProcessResult) error {
	row := auditlog.Entry{
		Timestamp:   time.Now(),
		EntryID:     result.Entry.ID,
		Description: result.Entry.Narration,
		Type:        string(result.Entry.TransactionType),
		Amount:      result.Entry.TotalDebits.StringFixed(2),
		Confidence:  result.Interpretation.Confidence.StringFixed(2),
		Assumptions: strings.Join(result.Interpretation.Assumptions, "; "),
		Questions:   strings.Join(result.Interpretation.QuestionsNeeded, "; "),
	}
	if err := auditlog.Append(pr.auditPath(), []auditlog.Entry{row}); err != nil {
		return fmt.Errorf("appending audit log: %w", err)
	}
	return nil
}
