package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookkeep-dev/bookkeep/internal/chart"
	"github.com/bookkeep-dev/bookkeep/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testDate() time.Time {
	return time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
}

func entry(id string, lines ...model.JournalLine) model.JournalEntry {
	e := model.JournalEntry{
		ID:              id,
		Date:            testDate(),
		Narration:       "test",
		Lines:           lines,
		TransactionType: model.TypeAdjustment,
		Status:          model.StatusPosted,
	}
	e.Totals()
	return e
}

func debit(code, amount string) model.JournalLine {
	return model.JournalLine{AccountCode: code, Debit: dec(amount)}
}

func credit(code, amount string) model.JournalLine {
	return model.JournalLine{AccountCode: code, Credit: dec(amount)}
}

func TestPost_NormalBalanceConvention(t *testing.T) {
	book := NewBook()
	accounts := chart.NewService(nil)

	// Debit grows a debit-normal account, credit grows a credit-normal
	// one.
	err := book.Post(entry("2026-08-001",
		debit(chart.CodeCash, "50000"),
		credit(chart.CodeSales, "50000"),
	), accounts)
	require.NoError(t, err)

	assert.True(t, book.Balance(chart.CodeCash).Equal(dec("50000")))
	assert.True(t, book.Balance(chart.CodeSales).Equal(dec("50000")))

	// The opposite side shrinks them.
	err = book.Post(entry("2026-08-002",
		debit(chart.CodeSales, "10000"),
		credit(chart.CodeCash, "10000"),
	), accounts)
	require.NoError(t, err)

	assert.True(t, book.Balance(chart.CodeCash).Equal(dec("40000")))
	assert.True(t, book.Balance(chart.CodeSales).Equal(dec("40000")))
}

func TestPost_RunningBalancesInHistory(t *testing.T) {
	book := NewBook()
	accounts := chart.NewService(nil)

	require.NoError(t, book.Post(entry("2026-08-001",
		debit(chart.CodeBank, "100"), credit(chart.CodeSales, "100")), accounts))
	require.NoError(t, book.Post(entry("2026-08-002",
		debit(chart.CodeBank, "50"), credit(chart.CodeSales, "50")), accounts))
	require.NoError(t, book.Post(entry("2026-08-003",
		debit(chart.CodeRentExpense, "30"), credit(chart.CodeBank, "30")), accounts))

	history := book.History(chart.CodeBank)
	require.Len(t, history, 3)
	assert.True(t, history[0].Balance.Equal(dec("100")))
	assert.True(t, history[1].Balance.Equal(dec("150")))
	assert.True(t, history[2].Balance.Equal(dec("120")))
	assert.Equal(t, "2026-08-003", history[2].JournalID)
}

func TestPost_UnbalancedEntryRejected(t *testing.T) {
	book := NewBook()
	bad := entry("2026-08-001", debit(chart.CodeCash, "100"), credit(chart.CodeSales, "50"))
	require.False(t, bad.IsBalanced)

	err := book.Post(bad, chart.NewService(nil))
	require.Error(t, err)
	assert.Empty(t, book.Accounts())
}

func TestPost_AtomicOnUnknownAccount(t *testing.T) {
	book := NewBook()
	bad := entry("2026-08-001", debit(chart.CodeCash, "100"), credit("9999", "100"))

	err := book.Post(bad, chart.NewService(nil))
	require.Error(t, err)
	// Nothing was applied, not even the valid first line.
	assert.True(t, book.Balance(chart.CodeCash).IsZero())
	assert.Empty(t, book.History(chart.CodeCash))
	assert.Empty(t, book.Accounts())
}

// Ledger consistency: the stored closing balance must equal the
// balance recomputed independently from the entry history.
func TestClosingBalanceMatchesHistory(t *testing.T) {
	book := NewBook()
	accounts := chart.NewService(nil)

	postings := []model.JournalEntry{
		entry("2026-08-001", debit(chart.CodeCash, "50000"), credit(chart.CodeSales, "50000")),
		entry("2026-08-002", debit(chart.CodeRentExpense, "30000"), credit(chart.CodeCash, "30000")),
		entry("2026-08-003", debit(chart.CodeCash, "2500"), credit(chart.CodeOtherIncome, "2500")),
	}
	for _, e := range postings {
		require.NoError(t, book.Post(e, accounts))
	}

	for _, a := range book.Accounts() {
		recomputed := decimal.Zero
		for _, le := range a.Entries {
			if a.NormalBalance == model.SideDebit {
				recomputed = recomputed.Add(le.Debit).Sub(le.Credit)
			} else {
				recomputed = recomputed.Add(le.Credit).Sub(le.Debit)
			}
		}
		assert.True(t, recomputed.Equal(a.ClosingBalance),
			"%s: recomputed %s stored %s", a.AccountCode, recomputed, a.ClosingBalance)
	}
}

// Determinism: replaying the same ordered entries against a fresh book
// reproduces identical balances.
func TestReplayDeterminism(t *testing.T) {
	postings := []model.JournalEntry{
		entry("2026-08-001", debit(chart.CodeCash, "50000"), credit(chart.CodeSales, "50000")),
		entry("2026-08-002", debit(chart.CodeRentExpense, "30000"), credit(chart.CodeBank, "30000")),
		entry("2026-08-003", debit(chart.CodeBank, "40000"), credit(chart.CodeCash, "40000")),
	}

	run := func() []model.LedgerAccount {
		book := NewBook()
		accounts := chart.NewService(nil)
		for _, e := range postings {
			require.NoError(t, book.Post(e, accounts))
		}
		return book.Accounts()
	}

	first := run()
	second := run()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].AccountCode, second[i].AccountCode)
		assert.True(t, first[i].ClosingBalance.Equal(second[i].ClosingBalance))
		assert.Equal(t, len(first[i].Entries), len(second[i].Entries))
	}
}

func TestSnapshotRoundTripViaAccounts(t *testing.T) {
	book := NewBook()
	accounts := chart.NewService(nil)
	require.NoError(t, book.Post(entry("2026-08-001",
		debit(chart.CodeCash, "100"), credit(chart.CodeSales, "100")), accounts))

	restored := NewBookFromAccounts(book.Accounts())
	assert.True(t, restored.Balance(chart.CodeCash).Equal(dec("100")))
	require.Len(t, restored.History(chart.CodeCash), 1)
}
