package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one posted line's effect on an account. Append-only:
// never mutated after creation.
type LedgerEntry struct {
	Date      time.Time       `json:"date"`
	JournalID string          `json:"journalId"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Balance   decimal.Decimal `json:"balance"`
	Reference string          `json:"reference,omitempty"`
}

// LedgerAccount is the running history and balance of one account.
type LedgerAccount struct {
	AccountCode    string          `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	AccountType    AccountClass    `json:"accountType"`
	NormalBalance  BalanceSide     `json:"normalBalance"`
	Entries        []LedgerEntry   `json:"entries"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// Apply posts one signed movement to the account and appends the
// resulting LedgerEntry. The delta follows the account's normal
// balance: debit-normal accounts grow on debits, credit-normal on
// credits.
func (a *LedgerAccount) Apply(date time.Time, journalID, reference string, debit, credit decimal.Decimal) LedgerEntry {
	delta := debit.Sub(credit)
	if a.NormalBalance == SideCredit {
		delta = credit.Sub(debit)
	}
	a.ClosingBalance = a.ClosingBalance.Add(delta)

	entry := LedgerEntry{
		Date:      date,
		JournalID: journalID,
		Debit:     debit,
		Credit:    credit,
		Balance:   a.ClosingBalance,
		Reference: reference,
	}
	a.Entries = append(a.Entries, entry)
	return entry
}
