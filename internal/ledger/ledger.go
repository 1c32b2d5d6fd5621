// Package ledger keeps per-account running balances and derives trial
// balances, financial statements, and period-end closing entries from
// posted journal entries.
package ledger

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// AccountSource resolves account codes against the chart of accounts.
type AccountSource interface {
	Get(code string) (model.ChartAccount, bool)
}

// Book holds the general ledger: one LedgerAccount per posted-to code.
// It is the only mutable state in the pipeline and expects a single
// writer; readers get copies.
type Book struct {
	accounts map[string]*model.LedgerAccount
}

// NewBook returns an empty general ledger.
func NewBook() *Book {
	return &Book{accounts: make(map[string]*model.LedgerAccount)}
}

// NewBookFromAccounts rebuilds a Book from snapshotted accounts.
func NewBookFromAccounts(accounts []model.LedgerAccount) *Book {
	b := NewBook()
	for _, a := range accounts {
		copied := a
		b.accounts[a.AccountCode] = &copied
	}
	return b
}

// Post applies every line of a balanced entry to the ledger. Atomic:
// all account codes are resolved before any balance changes, so a bad
// line leaves the ledger untouched.
func (b *Book) Post(entry model.JournalEntry, chart AccountSource) error {
	if !entry.IsBalanced {
		return fmt.Errorf("entry %s: cannot post an unbalanced entry", entry.ID)
	}

	targets := make([]*model.LedgerAccount, len(entry.Lines))
	opened := make(map[string]*model.LedgerAccount)
	for i, l := range entry.Lines {
		account, ok := b.accounts[l.AccountCode]
		if !ok {
			account, ok = opened[l.AccountCode]
		}
		if !ok {
			meta, found := chart.Get(l.AccountCode)
			if !found {
				return fmt.Errorf("entry %s: unknown account %s", entry.ID, l.AccountCode)
			}
			account = &model.LedgerAccount{
				AccountCode:   meta.Code,
				AccountName:   meta.Name,
				AccountType:   meta.Class,
				NormalBalance: meta.NormalBalance,
			}
			opened[l.AccountCode] = account
		}
		targets[i] = account
	}

	for code, account := range opened {
		b.accounts[code] = account
	}
	for i, l := range entry.Lines {
		targets[i].Apply(entry.Date, entry.ID, entry.Reference, l.Debit, l.Credit)
	}
	return nil
}

// Account returns a copy of one ledger account.
func (b *Book) Account(code string) (model.LedgerAccount, bool) {
	a, ok := b.accounts[code]
	if !ok {
		return model.LedgerAccount{}, false
	}
	return *a, true
}

// Balance returns the closing balance for a code, zero if the account
// has never been posted to.
func (b *Book) Balance(code string) decimal.Decimal {
	if a, ok := b.accounts[code]; ok {
		return a.ClosingBalance
	}
	return decimal.Zero
}

// History returns the append-only entry trail for a code.
func (b *Book) History(code string) []model.LedgerEntry {
	a, ok := b.accounts[code]
	if !ok {
		return nil
	}
	out := make([]model.LedgerEntry, len(a.Entries))
	copy(out, a.Entries)
	return out
}

// Accounts returns copies of all ledger accounts sorted by code.
func (b *Book) Accounts() []model.LedgerAccount {
	codes := make([]string, 0, len(b.accounts))
	for code := range b.accounts {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]model.LedgerAccount, 0, len(codes))
	for _, code := range codes {
		out = append(out, *b.accounts[code])
	}
	return out
}

// signedBalance is the account balance oriented so that debit-normal
// growth is positive for debit-normal accounts and credit-normal
// growth is positive for credit-normal ones. Contra accounts therefore
// subtract naturally when summed by class.
func signedBalance(a model.LedgerAccount, towards model.BalanceSide) decimal.Decimal {
	if a.NormalBalance == towards {
		return a.ClosingBalance
	}
	return a.ClosingBalance.Neg()
}
