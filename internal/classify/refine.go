package classify

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/config"
	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// Settlement cues: language that marks a cash movement as clearing an
// existing receivable or payable rather than a fresh sale or purchase.
var settlementCues = []string{"receivable", "outstanding", "invoice", "earlier", "against", "owed", "owing", "balance due"}

// Keywords that force capitalization ahead of the generic expense
// rules. A capitalizable purchase must never be expensed.
var assetCues = []string{
	"laptop", "computer", "equipment", "machine", "machinery", "vehicle",
	"car", "truck", "furniture", "building", "land", "generator", "printer", "plant",
}

var serviceWHTCues = []string{"professional", "consult", "service", "rent", "dividend", "interest", "commission", "royalt"}

var paymentMethodRules = []struct {
	method   model.PaymentMethod
	keywords []string
}{
	{model.MethodPOS, []string{"pos", "point of sale", "card machine"}},
	{model.MethodCheque, []string{"cheque", "check no", "check number"}},
	{model.MethodMobile, []string{"mobile money", "momo", "ussd", "opay", "palmpay"}},
	{model.MethodTransfer, []string{"transfer", "wire", "neft"}},
	{model.MethodCash, []string{"cash", "notes", "petty"}},
	{model.MethodBank, []string{"bank", "deposit", "account"}},
}

// Refine resolves the cases the nature classifier under-specifies and
// attaches tax amounts, assumptions, and open questions. The returned
// interpretation has every field populated except Confidence, which
// Score fills from the assumption and question counts.
func Refine(description string, ex model.Extraction, initial model.TransactionType, cfg *config.Config) (model.Interpretation, model.ContextFlags) {
	text := strings.ToLower(description)

	interp := model.Interpretation{
		TransactionType: initial,
		Amount:          ex.Amount,
		NetAmount:       ex.Amount,
	}
	var flags model.ContextFlags

	settlement := containsAny(text, settlementCues)

	// Credit vs. cash: outstanding timing means the offset is a
	// receivable or payable, not a cash account.
	if ex.Timing == "outstanding" && !settlement {
		interp.IsCredit = true
		interp.Assumptions = append(interp.Assumptions, "credit terms language found; posting against receivable/payable instead of cash")
	}

	// Settlement of an existing balance reclassifies a generic paid or
	// received movement.
	if settlement {
		flags.Settlement = true
		switch {
		case ex.Action == "paid" || initial == model.TypePayment || initial == model.TypeExpense:
			interp.TransactionType = model.TypePayment
			interp.Assumptions = append(interp.Assumptions, "settlement cue found; treating as payment against an existing payable")
		case ex.Action == "received" || initial == model.TypeReceipt || initial == model.TypeSale:
			interp.TransactionType = model.TypeReceipt
			interp.Assumptions = append(interp.Assumptions, "settlement cue found; treating as receipt against an existing receivable")
		}
	}

	// Capitalizable purchases take priority over generic expense
	// classification.
	if !flags.Settlement && containsAny(text, assetCues) {
		switch interp.TransactionType {
		case model.TypeExpense, model.TypePayment, model.TypePurchase, model.TypeOther:
			interp.TransactionType = model.TypeAssetPurchase
			interp.Assumptions = append(interp.Assumptions, "asset keywords found; capitalizing as a fixed-asset purchase")
		}
	}

	interp.PaymentMethod = detectPaymentMethod(text)
	if interp.PaymentMethod == model.MethodBank && !strings.Contains(text, "bank") {
		interp.Assumptions = append(interp.Assumptions, "no payment channel stated; assumed bank")
	}

	if interp.TransactionType == model.TypeTransfer {
		flags.TransferToBank = !containsAny(text, []string{"from bank", "to cash", "withdrew"})
	}

	if interp.TransactionType == model.TypeAssetDisposal {
		interp.QuestionsNeeded = append(interp.QuestionsNeeded, "original acquisition cost of the disposed asset is needed to compute gain or loss")
	}
	if ex.Action == model.TagUnknown {
		interp.QuestionsNeeded = append(interp.QuestionsNeeded, "could not identify what happened in this transaction; confirm the classification")
	}

	applyTaxes(text, &interp, cfg.Tax)

	return interp, flags
}

// applyTaxes detects value-added and withholding tax language and
// splits the amount accordingly. Rates come from config; these are
// flat-rate approximations, not statutory computations.
func applyTaxes(text string, interp *model.Interpretation, tax config.TaxConfig) {
	if containsAny(text, []string{"vat", "value added tax", "value-added tax"}) {
		if containsAny(text, []string{"inclusive", "including vat", "incl vat", "incl. vat"}) {
			// Extract the tax from an inclusive total.
			net := interp.Amount.Div(decimal.NewFromInt(1).Add(tax.VATRate)).Round(2)
			interp.VATAmount = interp.Amount.Sub(net)
			interp.NetAmount = net
			interp.Assumptions = append(interp.Assumptions,
				fmt.Sprintf("VAT extracted from inclusive total at %s%%", ratePercent(tax.VATRate)))
		} else {
			interp.VATAmount = interp.Amount.Mul(tax.VATRate).Round(2)
			interp.Assumptions = append(interp.Assumptions,
				fmt.Sprintf("VAT added at %s%% on top of the stated amount", ratePercent(tax.VATRate)))
		}
	}

	if containsAny(text, []string{"withholding", "wht"}) {
		rate := tax.WHTGoodsRate
		kind := "goods/contracts"
		if containsAny(text, serviceWHTCues) {
			rate = tax.WHTServicesRate
			kind = "services"
		}
		interp.WHTAmount = interp.NetAmount.Mul(rate).Round(2)
		interp.Assumptions = append(interp.Assumptions,
			fmt.Sprintf("withholding tax at %s%% (%s rate) deducted from settlement", ratePercent(rate), kind))
	}
}

func detectPaymentMethod(text string) model.PaymentMethod {
	for _, r := range paymentMethodRules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.method
			}
		}
	}
	return model.MethodBank
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func ratePercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String()
}
