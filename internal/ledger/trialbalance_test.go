package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookkeep-dev/bookkeep/internal/chart"
)

func TestTrialBalance_TotalsAlwaysEqual(t *testing.T) {
	book := NewBook()
	accounts := chart.NewService(nil)

	require.NoError(t, book.Post(entry("2026-08-001",
		debit(chart.CodeCash, "50000"), credit(chart.CodeSales, "50000")), accounts))
	require.NoError(t, book.Post(entry("2026-08-002",
		debit(chart.CodeRentExpense, "30000"), credit(chart.CodeBank, "30000")), accounts))
	require.NoError(t, book.Post(entry("2026-08-003",
		debit(chart.CodeVehicles, "200000"), credit(chart.CodeLoansPayable, "200000")), accounts))

	tb := book.TrialBalance()
	assert.True(t, tb.TotalDebits.Equal(tb.TotalCredits),
		"debits %s credits %s", tb.TotalDebits, tb.TotalCredits)
	assert.Len(t, tb.Rows, 6)
}

func TestTrialBalance_NegativeBalanceFlipsSide(t *testing.T) {
	book := NewBook()
	accounts := chart.NewService(nil)

	// Bank is debit-normal; crediting it below zero must show on the
	// credit column (an overdraft), not as a negative debit.
	require.NoError(t, book.Post(entry("2026-08-001",
		debit(chart.CodeRentExpense, "30000"), credit(chart.CodeBank, "30000")), accounts))

	tb := book.TrialBalance()
	var bankRow *TrialBalanceRow
	for i := range tb.Rows {
		if tb.Rows[i].AccountCode == chart.CodeBank {
			bankRow = &tb.Rows[i]
		}
	}
	require.NotNil(t, bankRow)
	assert.True(t, bankRow.Debit.IsZero())
	assert.True(t, bankRow.Credit.Equal(dec("30000")))

	assert.True(t, tb.TotalDebits.Equal(tb.TotalCredits))
}

func TestTrialBalance_EmptyLedger(t *testing.T) {
	tb := NewBook().TrialBalance()
	assert.Empty(t, tb.Rows)
	assert.True(t, tb.TotalDebits.IsZero())
	assert.True(t, tb.TotalCredits.IsZero())
}
