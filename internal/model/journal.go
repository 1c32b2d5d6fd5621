package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the concrete bookkeeping event an input resolved to.
type TransactionType string

const (
	TypeSale            TransactionType = "sale"
	TypeSaleReturn      TransactionType = "sale-return"
	TypePurchase        TransactionType = "purchase"
	TypePurchaseReturn  TransactionType = "purchase-return"
	TypeExpense         TransactionType = "expense"
	TypeAssetPurchase   TransactionType = "asset-purchase"
	TypeAssetDisposal   TransactionType = "asset-disposal"
	TypeDepreciation    TransactionType = "depreciation"
	TypeLoanReceived    TransactionType = "loan-received"
	TypeLoanRepayment   TransactionType = "loan-repayment"
	TypeOwnerInvestment TransactionType = "owner-investment"
	TypeOwnerDrawing    TransactionType = "owner-drawing"
	TypeReceipt         TransactionType = "receipt"
	TypePayment         TransactionType = "payment"
	TypeTransfer        TransactionType = "transfer"
	TypeAdjustment      TransactionType = "adjustment"
	TypeClosing         TransactionType = "closing"
	TypeOther           TransactionType = "other"
)

// EntryStatus is the lifecycle state of a journal entry.
type EntryStatus string

const (
	StatusDraft    EntryStatus = "draft"
	StatusPosted   EntryStatus = "posted"
	StatusRejected EntryStatus = "rejected"
)

// JournalLine is one debit or credit movement within an entry.
// Exactly one of Debit/Credit is non-zero on a well-formed line.
type JournalLine struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Memo        string          `json:"memo,omitempty"`
}

// JournalEntry is one balanced set of lines for a single business event.
// Once posted it is immutable; corrections go through reversing entries.
type JournalEntry struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	Narration       string          `json:"narration"`
	Reference       string          `json:"reference,omitempty"`
	Lines           []JournalLine   `json:"lines"`
	TotalDebits     decimal.Decimal `json:"totalDebits"`
	TotalCredits    decimal.Decimal `json:"totalCredits"`
	IsBalanced      bool            `json:"isBalanced"`
	TransactionType TransactionType `json:"transactionType"`
	Status          EntryStatus     `json:"status"`
}

// BalanceTolerance is the rounding slack allowed between total debits
// and credits before an entry is considered unbalanced.
var BalanceTolerance = decimal.RequireFromString("0.01")

// Totals recomputes TotalDebits/TotalCredits and IsBalanced from Lines.
func (e *JournalEntry) Totals() {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, l := range e.Lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	e.TotalDebits = debits
	e.TotalCredits = credits
	e.IsBalanced = debits.Sub(credits).Abs().LessThanOrEqual(BalanceTolerance)
}
