package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// Header is the CSV header for exported journal rows.
const Header = "entry_id,date,account_code,account_name,debit,credit,memo,narration,reference,type,status"

const dateFormat = "2006-01-02"

// WriteEntries writes posted entries as flat CSV rows, one row per
// line, for spreadsheet consumption.
func WriteEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range entries {
		for _, l := range e.Lines {
			row := []string{
				e.ID,
				e.Date.Format(dateFormat),
				l.AccountCode,
				l.AccountName,
				"",
				"",
				l.Memo,
				e.Narration,
				e.Reference,
				string(e.TransactionType),
				string(e.Status),
			}
			if !l.Debit.IsZero() {
				row[4] = l.Debit.StringFixed(2)
			}
			if !l.Credit.IsZero() {
				row[5] = l.Credit.StringFixed(2)
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing entry %s: %w", e.ID, err)
			}
		}
	}
	return cw.Error()
}
