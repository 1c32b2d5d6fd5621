package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/chart"
	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// Account-code prefixes used to split the income statement. Cost
// accounts (5xxx) are kept apart from operating expenses (6xxx).
const (
	prefixIncome      = "4"
	prefixCostOfSales = "5"
	prefixOperating   = "6"
	prefixFixedAsset  = "15"
)

// CashFlow is the indirect-method cash flow statement.
type CashFlow struct {
	NetIncome         decimal.Decimal
	Depreciation      decimal.Decimal
	ReceivablesChange decimal.Decimal
	InventoryChange   decimal.Decimal
	PayablesChange    decimal.Decimal
	Operating         decimal.Decimal
	Investing         decimal.Decimal
	Financing         decimal.Decimal
	NetChange         decimal.Decimal
}

// EquityStatement is the equity roll-forward for the period.
type EquityStatement struct {
	CapitalAdditions decimal.Decimal
	Drawings         decimal.Decimal
	NetIncome        decimal.Decimal
	RetainedEarnings decimal.Decimal
	ClosingEquity    decimal.Decimal
}

// Statements is the draft financial statement set derived from the
// ledger on demand.
type Statements struct {
	Revenue           decimal.Decimal
	CostOfSales       decimal.Decimal
	GrossProfit       decimal.Decimal
	OperatingExpenses decimal.Decimal
	NetIncome         decimal.Decimal

	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal

	CashFlow CashFlow
	Equity   EquityStatement
}

// Statements derives the full statement draft from the current ledger.
// Income and expense accounts are assumed still open; net income is
// folded into equity so the balance sheet ties out.
func (b *Book) Statements() Statements {
	var s Statements

	for _, a := range b.Accounts() {
		switch {
		case strings.HasPrefix(a.AccountCode, prefixIncome):
			s.Revenue = s.Revenue.Add(signedBalance(a, model.SideCredit))
		case strings.HasPrefix(a.AccountCode, prefixCostOfSales):
			s.CostOfSales = s.CostOfSales.Add(signedBalance(a, model.SideDebit))
		case strings.HasPrefix(a.AccountCode, prefixOperating):
			s.OperatingExpenses = s.OperatingExpenses.Add(signedBalance(a, model.SideDebit))
		}

		switch a.AccountType {
		case model.ClassAsset:
			s.TotalAssets = s.TotalAssets.Add(signedBalance(a, model.SideDebit))
		case model.ClassLiability:
			s.TotalLiabilities = s.TotalLiabilities.Add(signedBalance(a, model.SideCredit))
		case model.ClassEquity:
			s.TotalEquity = s.TotalEquity.Add(signedBalance(a, model.SideCredit))
		}
	}

	s.GrossProfit = s.Revenue.Sub(s.CostOfSales)
	s.NetIncome = s.GrossProfit.Sub(s.OperatingExpenses)
	s.TotalEquity = s.TotalEquity.Add(s.NetIncome)

	s.CashFlow = b.cashFlow(s.NetIncome)
	s.Equity = b.equityStatement(s.NetIncome)
	return s
}

// cashFlow builds the indirect-method statement. Within a single
// period the change in a balance-sheet account is its closing balance,
// since every account opens at zero.
func (b *Book) cashFlow(netIncome decimal.Decimal) CashFlow {
	cf := CashFlow{NetIncome: netIncome}

	cf.Depreciation = b.Balance(chart.CodeDepreciationExp)
	cf.ReceivablesChange = b.Balance(chart.CodeReceivable)
	cf.InventoryChange = b.Balance(chart.CodeInventory)
	cf.PayablesChange = b.Balance(chart.CodePayable)

	// Growth in asset accounts consumes cash; growth in payables
	// releases it.
	cf.Operating = netIncome.
		Add(cf.Depreciation).
		Sub(cf.ReceivablesChange).
		Sub(cf.InventoryChange).
		Add(cf.PayablesChange)

	for _, a := range b.Accounts() {
		if strings.HasPrefix(a.AccountCode, prefixFixedAsset) && a.AccountCode != chart.CodeAccumDepreciation {
			cf.Investing = cf.Investing.Sub(signedBalance(a, model.SideDebit))
		}
	}

	cf.Financing = b.Balance(chart.CodeLoansPayable).
		Add(b.Balance(chart.CodeOwnersCapital)).
		Sub(b.Balance(chart.CodeOwnersDrawings))

	cf.NetChange = cf.Operating.Add(cf.Investing).Add(cf.Financing)
	return cf
}

func (b *Book) equityStatement(netIncome decimal.Decimal) EquityStatement {
	es := EquityStatement{
		CapitalAdditions: b.Balance(chart.CodeOwnersCapital),
		Drawings:         b.Balance(chart.CodeOwnersDrawings),
		NetIncome:        netIncome,
		RetainedEarnings: b.Balance(chart.CodeRetainedEarnings),
	}
	es.ClosingEquity = es.CapitalAdditions.
		Sub(es.Drawings).
		Add(es.NetIncome).
		Add(es.RetainedEarnings)
	return es
}
