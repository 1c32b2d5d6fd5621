package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookkeep-dev/bookkeep/internal/config"
	"github.com/bookkeep-dev/bookkeep/internal/extract"
	"github.com/bookkeep-dev/bookkeep/internal/model"
)

func refineText(t *testing.T, description string) (model.Interpretation, model.ContextFlags) {
	t.Helper()
	cfg := config.Default("test")
	ex := extract.Extract(description, "")
	nature := Nature(ex)
	initial := TransactionType(ex, nature)
	return Refine(description, ex, initial, cfg)
}

func TestRefine_SettlementOfPayable(t *testing.T) {
	interp, flags := refineText(t, "paid supplier 75000 against outstanding invoice")

	assert.Equal(t, model.TypePayment, interp.TransactionType)
	assert.True(t, flags.Settlement)
	// Settling an old invoice is a cash movement, not a new credit
	// purchase.
	assert.False(t, interp.IsCredit)
}

func TestRefine_SettlementOfReceivable(t *testing.T) {
	interp, flags := refineText(t, "received 50000 from customer against outstanding invoice")

	assert.Equal(t, model.TypeReceipt, interp.TransactionType)
	assert.True(t, flags.Settlement)
	assert.False(t, interp.IsCredit)
}

func TestRefine_CreditSaleWithoutSettlementCue(t *testing.T) {
	interp, flags := refineText(t, "sold goods on credit for 50000")

	assert.Equal(t, model.TypeSale, interp.TransactionType)
	assert.False(t, flags.Settlement)
	assert.True(t, interp.IsCredit)
	assert.NotEmpty(t, interp.Assumptions)
}

func TestRefine_AssetKeywordsOverrideExpense(t *testing.T) {
	// "paid for" alone classifies as expense; the laptop keyword must
	// force capitalization.
	interp, _ := refineText(t, "paid 200000 for a new laptop")
	assert.Equal(t, model.TypeAssetPurchase, interp.TransactionType)
}

func TestRefine_PaymentMethods(t *testing.T) {
	tests := []struct {
		description string
		method      model.PaymentMethod
	}{
		{"sold goods for 50000 cash", model.MethodCash},
		{"paid rent 30000 via pos", model.MethodPOS},
		{"paid rent 30000 by cheque", model.MethodCheque},
		{"received 10000 by mobile money", model.MethodMobile},
		{"paid rent 30000", model.MethodBank},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			interp, _ := refineText(t, tt.description)
			assert.Equal(t, tt.method, interp.PaymentMethod)
		})
	}
}

func TestRefine_VATAdditive(t *testing.T) {
	interp, _ := refineText(t, "sold goods for 100000 plus vat")

	require.True(t, interp.VATAmount.Equal(decimal.RequireFromString("7500")),
		"got %s", interp.VATAmount)
	assert.True(t, interp.NetAmount.Equal(decimal.NewFromInt(100000)))
}

func TestRefine_VATInclusive(t *testing.T) {
	interp, _ := refineText(t, "sold goods for 107500 vat inclusive")

	assert.True(t, interp.NetAmount.Equal(decimal.NewFromInt(100000)), "net %s", interp.NetAmount)
	assert.True(t, interp.VATAmount.Equal(decimal.RequireFromString("7500")), "vat %s", interp.VATAmount)
}

func TestRefine_WHTRates(t *testing.T) {
	// Services rate.
	interp, _ := refineText(t, "paid 100000 consulting fees less withholding tax")
	assert.True(t, interp.WHTAmount.Equal(decimal.NewFromInt(10000)), "wht %s", interp.WHTAmount)

	// Goods/contracts rate.
	interp, _ = refineText(t, "paid 100000 for supplies less withholding tax")
	assert.True(t, interp.WHTAmount.Equal(decimal.NewFromInt(5000)), "wht %s", interp.WHTAmount)
}

func TestRefine_DisposalRaisesQuestion(t *testing.T) {
	interp, _ := refineText(t, "sold the old vehicle for 150000")
	require.Equal(t, model.TypeAssetDisposal, interp.TransactionType)
	assert.NotEmpty(t, interp.QuestionsNeeded)
}

func TestRefine_AssumptionsRecorded(t *testing.T) {
	interp, _ := refineText(t, "paid rent 30000")
	// Defaulted payment channel must be written down.
	assert.Contains(t, interp.Assumptions, "no payment channel stated; assumed bank")
}
