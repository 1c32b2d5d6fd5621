package model

import "github.com/shopspring/decimal"

// Tag values shared by the extraction fields.
const TagUnknown = "unknown"

// Extraction is the raw signal pulled out of a description before
// classification. Every field is a closed-vocabulary tag or "unknown".
type Extraction struct {
	Action         string
	Object         string
	Counterparty   string
	Timing         string
	BusinessImpact string
	Amount         decimal.Decimal
	HasAmount      bool
}

// PaymentMethod is the detected settlement channel.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodBank     PaymentMethod = "bank"
	MethodPOS      PaymentMethod = "pos"
	MethodCheque   PaymentMethod = "cheque"
	MethodTransfer PaymentMethod = "transfer"
	MethodMobile   PaymentMethod = "mobile"
	MethodCredit   PaymentMethod = "credit"
)

// ContextFlags carry judgment calls the journal builder needs beyond
// the transaction type itself.
type ContextFlags struct {
	Settlement     bool // posting settles an existing receivable/payable
	TransferToBank bool // transfer direction: cash into bank
}

// Interpretation is the transient classification result for one input.
// It is produced per submission and never persisted.
type Interpretation struct {
	TransactionType TransactionType
	Amount          decimal.Decimal
	NetAmount       decimal.Decimal
	VATAmount       decimal.Decimal
	WHTAmount       decimal.Decimal
	PaymentMethod   PaymentMethod
	IsCredit        bool
	Assumptions     []string
	QuestionsNeeded []string
	Confidence      decimal.Decimal
}
