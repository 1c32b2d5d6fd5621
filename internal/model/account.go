package model

// AccountClass classifies accounts in the chart of accounts.
type AccountClass string

const (
	ClassAsset     AccountClass = "asset"
	ClassLiability AccountClass = "liability"
	ClassEquity    AccountClass = "equity"
	ClassIncome    AccountClass = "income"
	ClassExpense   AccountClass = "expense"
)

// BalanceSide is the side on which an account accumulates value.
type BalanceSide string

const (
	SideDebit  BalanceSide = "debit"
	SideCredit BalanceSide = "credit"
)

// NormalSide returns the conventional normal balance for a class.
// Contra accounts (accumulated depreciation, owner's drawings,
// purchase returns) override this per account in the chart.
func (c AccountClass) NormalSide() BalanceSide {
	switch c {
	case ClassAsset, ClassExpense:
		return SideDebit
	default:
		return SideCredit
	}
}

// ChartAccount is one row of the chart of accounts.
type ChartAccount struct {
	Code          string       `json:"code"`
	Name          string       `json:"name"`
	Class         AccountClass `json:"class"`
	SubClass      string       `json:"subClass,omitempty"`
	NormalBalance BalanceSide  `json:"normalBalance"`
	Custom        bool         `json:"custom,omitempty"`
}
