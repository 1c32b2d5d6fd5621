package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookkeep-dev/bookkeep/internal/chart"
	"github.com/bookkeep-dev/bookkeep/internal/model"
)

func TestClosingLines_ZeroAccountsIntoRetainedEarnings(t *testing.T) {
	book := seedBook(t)
	accounts := chart.NewService(nil)

	incomeLines, expenseLines := book.ClosingLines()
	require.NotEmpty(t, incomeLines)
	require.NotEmpty(t, expenseLines)

	incomeClose := entry("2026-08-101", incomeLines...)
	require.True(t, incomeClose.IsBalanced, "income close must balance")
	expenseClose := entry("2026-08-102", expenseLines...)
	require.True(t, expenseClose.IsBalanced, "expense close must balance")

	require.NoError(t, book.Post(incomeClose, accounts))
	require.NoError(t, book.Post(expenseClose, accounts))

	// All income and expense accounts are now flat.
	for _, a := range book.Accounts() {
		if a.AccountType == model.ClassIncome || a.AccountType == model.ClassExpense {
			assert.True(t, a.ClosingBalance.IsZero(), "%s balance %s", a.AccountCode, a.ClosingBalance)
		}
	}

	// Retained Earnings holds the period's net income.
	assert.True(t, book.Balance(chart.CodeRetainedEarnings).Equal(dec("220000")),
		"retained %s", book.Balance(chart.CodeRetainedEarnings))

	tb := book.TrialBalance()
	assert.True(t, tb.TotalDebits.Equal(tb.TotalCredits))
}

func TestClosingLines_EmptyWhenNothingToClose(t *testing.T) {
	income, expense := NewBook().ClosingLines()
	assert.Empty(t, income)
	assert.Empty(t, expense)
}

func TestClosingLines_ContraIncomeAccount(t *testing.T) {
	book := NewBook()
	accounts := chart.NewService(nil)

	require.NoError(t, book.Post(entry("2026-08-001",
		debit(chart.CodeCash, "100000"), credit(chart.CodeSales, "100000")), accounts))
	require.NoError(t, book.Post(entry("2026-08-002",
		debit(chart.CodeSalesReturns, "10000"), credit(chart.CodeCash, "10000")), accounts))

	incomeLines, _ := book.ClosingLines()
	incomeClose := entry("2026-08-003", incomeLines...)
	require.True(t, incomeClose.IsBalanced)
	require.NoError(t, book.Post(incomeClose, accounts))

	assert.True(t, book.Balance(chart.CodeSales).IsZero())
	assert.True(t, book.Balance(chart.CodeSalesReturns).IsZero())
	// Net 90000 of income lands in Retained Earnings.
	assert.True(t, book.Balance(chart.CodeRetainedEarnings).Equal(decimal.NewFromInt(90000)))
}
