package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/chart"
	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// ClosingLines builds the period-end lines that zero every income and
// expense account into Retained Earnings. Returned as two line sets
// (income close, expense close) so each becomes its own entry; either
// may be empty when there is nothing to close.
func (b *Book) ClosingLines() (income, expense []model.JournalLine) {
	incomeNet := decimal.Zero
	expenseNet := decimal.Zero

	for _, a := range b.Accounts() {
		if a.ClosingBalance.IsZero() {
			continue
		}
		switch a.AccountType {
		case model.ClassIncome:
			income = append(income, zeroingLine(a))
			incomeNet = incomeNet.Add(signedBalance(a, model.SideCredit))
		case model.ClassExpense:
			expense = append(expense, zeroingLine(a))
			expenseNet = expenseNet.Add(signedBalance(a, model.SideDebit))
		}
	}

	retained := func(amount decimal.Decimal, creditSide bool) model.JournalLine {
		l := model.JournalLine{AccountCode: chart.CodeRetainedEarnings, AccountName: "Retained Earnings"}
		if creditSide {
			l.Credit = amount
		} else {
			l.Debit = amount
		}
		return l
	}

	if len(income) > 0 {
		income = append(income, retained(incomeNet.Abs(), incomeNet.IsPositive() || incomeNet.IsZero()))
	}
	if len(expense) > 0 {
		expense = append(expense, retained(expenseNet.Abs(), expenseNet.IsNegative()))
	}
	return income, expense
}

// zeroingLine posts the exact opposite of an account's balance.
func zeroingLine(a model.LedgerAccount) model.JournalLine {
	l := model.JournalLine{AccountCode: a.AccountCode, AccountName: a.AccountName, Memo: "period close"}
	amount := a.ClosingBalance.Abs()
	onNormalSide := !a.ClosingBalance.IsNegative()

	zeroOnDebit := a.NormalBalance == model.SideCredit
	if !onNormalSide {
		zeroOnDebit = !zeroOnDebit
	}
	if zeroOnDebit {
		l.Debit = amount
	} else {
		l.Credit = amount
	}
	return l
}
