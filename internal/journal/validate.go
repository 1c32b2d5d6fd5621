package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// AccountChecker tests whether an account code exists in the chart of
// accounts.
type AccountChecker interface {
	Exists(code string) bool
}

// Validate enforces the posting invariants on a single entry:
//
//  1. Total debits equal total credits within the balance tolerance.
//  2. Each line carries exactly one of debit/credit, never both.
//  3. No negative debit or credit amounts.
//  4. Every account code exists in the chart of accounts.
//  5. Amounts have at most two decimal places.
func Validate(entry model.JournalEntry, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, l := range entry.Lines {
		totalDebit = totalDebit.Add(l.Debit)
		totalCredit = totalCredit.Add(l.Credit)
	}
	if totalDebit.Sub(totalCredit).Abs().GreaterThan(model.BalanceTolerance) {
		errs = append(errs, ValidationError{
			Invariant:   1,
			EntryID:     entry.ID,
			Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
		})
	}

	two := decimal.NewFromInt(100)
	for i, l := range entry.Lines {
		lineID := fmt.Sprintf("%s/%d", entry.ID, i)

		hasDebit := !l.Debit.IsZero()
		hasCredit := !l.Credit.IsZero()
		if hasDebit && hasCredit {
			errs = append(errs, ValidationError{
				Invariant:   2,
				EntryID:     lineID,
				Description: "line must not carry both a debit and a credit",
			})
		}

		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			errs = append(errs, ValidationError{
				Invariant:   3,
				EntryID:     lineID,
				Description: "negative amounts are not allowed; use the opposite side",
			})
		}

		if !accounts.Exists(l.AccountCode) {
			errs = append(errs, ValidationError{
				Invariant:   4,
				EntryID:     lineID,
				Description: fmt.Sprintf("unknown account %s", l.AccountCode),
			})
		}

		if !l.Debit.Mul(two).Equal(l.Debit.Mul(two).Floor()) || !l.Credit.Mul(two).Equal(l.Credit.Mul(two).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     lineID,
				Description: "amount has more than 2 decimal places",
			})
		}
	}

	return errs
}
