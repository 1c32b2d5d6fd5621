// Package classify turns extracted signals into an accounting nature,
// a concrete transaction type, and a refined interpretation ready for
// journal building.
package classify

import (
	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// natureRule maps a predicate over the extraction to a nature. Rules
// run in order; the first hit wins.
type natureRule struct {
	name   string
	nature model.AccountClass
	match  func(model.Extraction) bool
}

var natureRules = []natureRule{
	// An explicit business-impact hint outranks everything.
	{name: "hint-income", nature: model.ClassIncome, match: func(e model.Extraction) bool { return e.BusinessImpact == "income" }},
	{name: "hint-expense", nature: model.ClassExpense, match: func(e model.Extraction) bool { return e.BusinessImpact == "expense" }},
	{name: "hint-asset", nature: model.ClassAsset, match: func(e model.Extraction) bool { return e.BusinessImpact == "asset" }},
	{name: "hint-liability", nature: model.ClassLiability, match: func(e model.Extraction) bool { return e.BusinessImpact == "liability" }},
	{name: "hint-equity", nature: model.ClassEquity, match: func(e model.Extraction) bool { return e.BusinessImpact == "equity" }},

	// Action-specific rules.
	{name: "invested", nature: model.ClassEquity, match: func(e model.Extraction) bool { return e.Action == "invested" }},
	{name: "withdrawn", nature: model.ClassEquity, match: func(e model.Extraction) bool { return e.Action == "withdrawn" }},
	{name: "borrowed", nature: model.ClassLiability, match: func(e model.Extraction) bool { return e.Action == "borrowed" }},
	{name: "repaid", nature: model.ClassLiability, match: func(e model.Extraction) bool { return e.Action == "repaid" }},
	{name: "depreciated", nature: model.ClassExpense, match: func(e model.Extraction) bool { return e.Action == "depreciated" }},
	{name: "written-off", nature: model.ClassExpense, match: func(e model.Extraction) bool { return e.Action == "written-off" }},

	// Counterparty + action combinations.
	{name: "sold-to-customer", nature: model.ClassIncome, match: func(e model.Extraction) bool {
		// Selling a fixed asset is a disposal, not revenue.
		return (e.Action == "sold" || e.Action == "earned") && e.Counterparty == "customer" && e.Object != "fixed-asset"
	}},
	{name: "received-from-customer", nature: model.ClassIncome, match: func(e model.Extraction) bool {
		return e.Action == "received" && e.Counterparty == "customer"
	}},
	{name: "bought-from-supplier", nature: model.ClassExpense, match: func(e model.Extraction) bool {
		return e.Action == "bought" && e.Counterparty == "supplier" && e.Object != "fixed-asset"
	}},

	// Object-based defaults.
	{name: "asset-object", nature: model.ClassAsset, match: func(e model.Extraction) bool {
		return e.Object == "fixed-asset" && (e.Action == "bought" || e.Action == "paid" || e.Action == "sold")
	}},
	{name: "advance-object", nature: model.ClassLiability, match: func(e model.Extraction) bool {
		return e.Object == "customer-advance"
	}},
	{name: "sold-anything", nature: model.ClassIncome, match: func(e model.Extraction) bool {
		return (e.Action == "sold" || e.Action == "earned") && e.Object != "fixed-asset"
	}},
}

// Nature resolves the accounting nature of an extraction. The fallback
// is expense: an expense always needs an offsetting cash or payable
// movement, the safest posture when the signal is weak.
func Nature(ex model.Extraction) model.AccountClass {
	for _, r := range natureRules {
		if r.match(ex) {
			return r.nature
		}
	}
	return model.ClassExpense
}

// TransactionType derives the concrete type from the nature and the
// extracted tuple. Transfer and return actions override nature-based
// rules entirely.
func TransactionType(ex model.Extraction, nature model.AccountClass) model.TransactionType {
	switch ex.Action {
	case "transferred":
		return model.TypeTransfer
	case "returned":
		if ex.Counterparty == "supplier" {
			return model.TypePurchaseReturn
		}
		return model.TypeSaleReturn
	}

	switch nature {
	case model.ClassEquity:
		if ex.Action == "withdrawn" {
			return model.TypeOwnerDrawing
		}
		return model.TypeOwnerInvestment
	case model.ClassLiability:
		switch {
		case ex.Action == "repaid":
			return model.TypeLoanRepayment
		case ex.Action == "borrowed" || ex.Object == "loan":
			return model.TypeLoanReceived
		case ex.Object == "customer-advance":
			return model.TypeReceipt
		}
		return model.TypeOther
	case model.ClassAsset:
		switch {
		case ex.Action == "depreciated":
			return model.TypeDepreciation
		case ex.Action == "sold":
			return model.TypeAssetDisposal
		case ex.Action == "bought" || ex.Action == "paid":
			return model.TypeAssetPurchase
		}
		return model.TypeOther
	case model.ClassIncome:
		switch {
		case ex.Action == "sold" || ex.Action == "earned":
			return model.TypeSale
		case ex.Action == "received":
			return model.TypeReceipt
		}
		return model.TypeSale
	case model.ClassExpense:
		switch {
		case ex.Action == "depreciated":
			return model.TypeDepreciation
		case ex.Action == "bought" && ex.Object == "goods":
			return model.TypePurchase
		case ex.Action == "received":
			return model.TypeReceipt
		case ex.Action == "paid" && ex.Object == model.TagUnknown && ex.Counterparty == "supplier":
			return model.TypePayment
		}
		return model.TypeExpense
	}
	return model.TypeOther
}
