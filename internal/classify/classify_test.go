package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookkeep-dev/bookkeep/internal/extract"
	"github.com/bookkeep-dev/bookkeep/internal/model"
)

func classifyText(t *testing.T, description string) (model.AccountClass, model.TransactionType) {
	t.Helper()
	ex := extract.Extract(description, "")
	nature := Nature(ex)
	return nature, TransactionType(ex, nature)
}

func TestNature_RulePriority(t *testing.T) {
	tests := []struct {
		description string
		nature      model.AccountClass
	}{
		{"sold goods for 50000 cash", model.ClassIncome},
		{"paid rent 30000", model.ClassExpense},
		{"bought a laptop for 200000", model.ClassAsset},
		{"invested 250000 capital into the business", model.ClassEquity},
		{"withdrew 15000 for personal use", model.ClassEquity},
		{"borrowed 500000 from the bank", model.ClassLiability},
		{"repaid 100000 of the loan", model.ClassLiability},
		{"depreciated the generator by 10000", model.ClassExpense},
		// Weak signal falls back to expense.
		{"miscellaneous 5000", model.ClassExpense},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			nature, _ := classifyText(t, tt.description)
			assert.Equal(t, tt.nature, nature)
		})
	}
}

func TestNature_ExplicitHintWins(t *testing.T) {
	ex := extract.Extract("recorded 40000 as other income", "")
	assert.Equal(t, "income", ex.BusinessImpact)
	assert.Equal(t, model.ClassIncome, Nature(ex))
}

func TestTransactionType_Derivation(t *testing.T) {
	tests := []struct {
		description string
		txType      model.TransactionType
	}{
		{"sold goods for 50000 cash", model.TypeSale},
		{"paid rent 30000", model.TypeExpense},
		{"bought a laptop for 200000", model.TypeAssetPurchase},
		{"bought goods for resale 80000", model.TypePurchase},
		{"borrowed 500000 from the bank", model.TypeLoanReceived},
		{"repaid 100000 of the loan", model.TypeLoanRepayment},
		{"invested 250000 capital into the business", model.TypeOwnerInvestment},
		{"withdrew 15000 for personal use", model.TypeOwnerDrawing},
		{"depreciated the generator by 10000", model.TypeDepreciation},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			_, txType := classifyText(t, tt.description)
			assert.Equal(t, tt.txType, txType)
		})
	}
}

func TestTransactionType_SpecialCasesOverrideNature(t *testing.T) {
	// Transfers and returns bypass nature-based rules entirely.
	_, txType := classifyText(t, "transferred 40000 to bank")
	assert.Equal(t, model.TypeTransfer, txType)

	_, txType = classifyText(t, "customer returned goods worth 5000")
	assert.Equal(t, model.TypeSaleReturn, txType)

	_, txType = classifyText(t, "returned damaged stock to supplier 12000")
	assert.Equal(t, model.TypePurchaseReturn, txType)
}
