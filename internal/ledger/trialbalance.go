package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// TrialBalanceRow places one account's balance on its normal side. A
// negative balance flips to the opposite column, which surfaces contra
// balances instead of hiding them as negatives.
type TrialBalanceRow struct {
	AccountCode string
	AccountName string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// TrialBalance lists every account with history and the two column
// totals, which must be equal for a consistent ledger.
type TrialBalance struct {
	Rows         []TrialBalanceRow
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
}

// TrialBalance derives the trial balance from the current ledger.
func (b *Book) TrialBalance() TrialBalance {
	tb := TrialBalance{TotalDebits: decimal.Zero, TotalCredits: decimal.Zero}

	for _, a := range b.Accounts() {
		if a.ClosingBalance.IsZero() && len(a.Entries) == 0 {
			continue
		}

		row := TrialBalanceRow{AccountCode: a.AccountCode, AccountName: a.AccountName}
		balance := a.ClosingBalance
		side := a.NormalBalance
		if balance.IsNegative() {
			balance = balance.Neg()
			if side == model.SideDebit {
				side = model.SideCredit
			} else {
				side = model.SideDebit
			}
		}
		if side == model.SideDebit {
			row.Debit = balance
		} else {
			row.Credit = balance
		}

		tb.Rows = append(tb.Rows, row)
		tb.TotalDebits = tb.TotalDebits.Add(row.Debit)
		tb.TotalCredits = tb.TotalCredits.Add(row.Credit)
	}
	return tb
}
