// Package journal builds and validates balanced journal entries. Each
// transaction type has a fixed recipe of two to four lines; every
// recipe is pre-balanced, so a failed balance check after building
// indicates a defect in the recipe itself.
package journal

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/chart"
	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// Request carries everything a recipe needs to produce its lines.
type Request struct {
	Type         model.TransactionType
	Description  string
	CategoryHint string
	Net          decimal.Decimal
	VAT          decimal.Decimal
	WHT          decimal.Decimal
	Method       model.PaymentMethod
	IsCredit     bool
	Flags        model.ContextFlags
}

// Gross is the total cash value of the transaction including VAT.
func (r Request) Gross() decimal.Decimal {
	return r.Net.Add(r.VAT)
}

// Builder maps transaction types to line recipes against a chart of
// accounts.
type Builder struct {
	chart         *chart.Service
	interestShare decimal.Decimal
	recipes       map[model.TransactionType]func(Request) []model.JournalLine
}

// NewBuilder creates a Builder. interestShare is the fraction of a
// loan repayment treated as interest when no schedule is known.
func NewBuilder(accounts *chart.Service, interestShare decimal.Decimal) *Builder {
	b := &Builder{chart: accounts, interestShare: interestShare}
	b.recipes = map[model.TransactionType]func(Request) []model.JournalLine{
		model.TypeSale:            b.sale,
		model.TypeSaleReturn:      b.saleReturn,
		model.TypePurchase:        b.purchase,
		model.TypePurchaseReturn:  b.purchaseReturn,
		model.TypeExpense:         b.expense,
		model.TypeAssetPurchase:   b.assetPurchase,
		model.TypeAssetDisposal:   b.assetDisposal,
		model.TypeDepreciation:    b.depreciation,
		model.TypeLoanReceived:    b.loanReceived,
		model.TypeLoanRepayment:   b.loanRepayment,
		model.TypeOwnerInvestment: b.ownerInvestment,
		model.TypeOwnerDrawing:    b.ownerDrawing,
		model.TypeReceipt:         b.receipt,
		model.TypePayment:         b.payment,
		model.TypeTransfer:        b.transfer,
	}
	return b
}

// Build produces the journal lines for a request. Types without a
// dedicated recipe (adjustment, closing, other) fall through to the
// generic income/expense heuristic so any usable amount yields some
// balanced entry.
func (b *Builder) Build(req Request) []model.JournalLine {
	if recipe, ok := b.recipes[req.Type]; ok {
		return recipe(req)
	}
	return b.generic(req)
}

// cashCode picks the settlement account for a payment method.
func cashCode(method model.PaymentMethod) string {
	if method == model.MethodCash {
		return chart.CodeCash
	}
	return chart.CodeBank
}

func (b *Builder) line(code string, debit, credit decimal.Decimal, memo string) model.JournalLine {
	name := code
	if a, ok := b.chart.Get(code); ok {
		name = a.Name
	}
	return model.JournalLine{AccountCode: code, AccountName: name, Debit: debit, Credit: credit, Memo: memo}
}

func (b *Builder) debit(code string, amount decimal.Decimal, memo string) model.JournalLine {
	return b.line(code, amount, decimal.Zero, memo)
}

func (b *Builder) credit(code string, amount decimal.Decimal, memo string) model.JournalLine {
	return b.line(code, decimal.Zero, amount, memo)
}

func (b *Builder) sale(req Request) []model.JournalLine {
	revenue := chart.CodeSales
	if containsAny(req.Description, "service", "consult", "fees", "contract work") {
		revenue = chart.CodeServiceRevenue
	}

	var lines []model.JournalLine
	receiving := cashCode(req.Method)
	if req.IsCredit {
		receiving = chart.CodeReceivable
	}

	if req.WHT.IsPositive() && !req.IsCredit {
		// The customer withholds tax at source; we receive the
		// difference and a credit against our tax bill.
		lines = append(lines,
			b.debit(receiving, req.Gross().Sub(req.WHT), ""),
			b.debit(chart.CodeWHTReceivable, req.WHT, "withheld at source"))
	} else {
		lines = append(lines, b.debit(receiving, req.Gross(), ""))
	}

	lines = append(lines, b.credit(revenue, req.Net, ""))
	if req.VAT.IsPositive() {
		lines = append(lines, b.credit(chart.CodeVATPayable, req.VAT, "output VAT"))
	}
	return lines
}

func (b *Builder) saleReturn(req Request) []model.JournalLine {
	refunding := cashCode(req.Method)
	if req.IsCredit {
		refunding = chart.CodeReceivable
	}
	lines := []model.JournalLine{b.debit(chart.CodeSalesReturns, req.Net, "")}
	if req.VAT.IsPositive() {
		lines = append(lines, b.debit(chart.CodeVATPayable, req.VAT, "output VAT reversed"))
	}
	return append(lines, b.credit(refunding, req.Gross(), ""))
}

func (b *Builder) purchase(req Request) []model.JournalLine {
	paying := cashCode(req.Method)
	if req.IsCredit {
		paying = chart.CodePayable
	}

	lines := []model.JournalLine{b.debit(chart.CodePurchases, req.Net, "")}
	if req.VAT.IsPositive() {
		lines = append(lines, b.debit(chart.CodeVATReceivable, req.VAT, "input VAT"))
	}
	if req.WHT.IsPositive() && !req.IsCredit {
		lines = append(lines,
			b.credit(chart.CodeWHTPayable, req.WHT, "withheld from supplier"),
			b.credit(paying, req.Gross().Sub(req.WHT), ""))
	} else {
		lines = append(lines, b.credit(paying, req.Gross(), ""))
	}
	return lines
}

func (b *Builder) purchaseReturn(req Request) []model.JournalLine {
	receiving := cashCode(req.Method)
	if req.IsCredit {
		receiving = chart.CodePayable
	}
	lines := []model.JournalLine{b.debit(receiving, req.Gross(), "")}
	lines = append(lines, b.credit(chart.CodePurchaseReturns, req.Net, ""))
	if req.VAT.IsPositive() {
		lines = append(lines, b.credit(chart.CodeVATReceivable, req.VAT, "input VAT reversed"))
	}
	return lines
}

// expenseAccounts selects the expense account from description
// keywords; the first match wins.
var expenseAccounts = []struct {
	code     string
	keywords []string
}{
	{chart.CodeRentExpense, []string{"rent", "lease"}},
	{chart.CodeSalariesExpense, []string{"salary", "salaries", "wages", "payroll"}},
	{chart.CodeUtilitiesExpense, []string{"electricity", "power", "water", "internet", "utility", "utilities", "fuel", "airtime"}},
	{chart.CodeSuppliesExpense, []string{"supplies", "stationery", "consumables"}},
	{chart.CodeInterestExpense, []string{"interest"}},
	{chart.CodeBankCharges, []string{"bank charge", "bank fee", "commission on turnover"}},
}

func expenseCode(description string) string {
	text := strings.ToLower(description)
	for _, ea := range expenseAccounts {
		for _, kw := range ea.keywords {
			if strings.Contains(text, kw) {
				return ea.code
			}
		}
	}
	return chart.CodeGeneralExpense
}

func (b *Builder) expense(req Request) []model.JournalLine {
	paying := cashCode(req.Method)
	if req.IsCredit {
		paying = chart.CodePayable
	}

	lines := []model.JournalLine{b.debit(expenseCode(req.Description), req.Net, "")}
	if req.VAT.IsPositive() {
		lines = append(lines, b.debit(chart.CodeVATReceivable, req.VAT, "input VAT"))
	}
	if req.WHT.IsPositive() && !req.IsCredit {
		lines = append(lines,
			b.credit(chart.CodeWHTPayable, req.WHT, "withheld from payee"),
			b.credit(paying, req.Gross().Sub(req.WHT), ""))
	} else {
		lines = append(lines, b.credit(paying, req.Gross(), ""))
	}
	return lines
}

// assetAccounts selects the fixed-asset account from description
// keywords; office equipment is the fallback.
var assetAccounts = []struct {
	code     string
	keywords []string
}{
	{chart.CodeVehicles, []string{"vehicle", "car", "truck", "van", "motorcycle"}},
	{chart.CodeFurniture, []string{"furniture", "chair", "desk", "table", "fittings"}},
	{chart.CodePlantMachinery, []string{"plant", "machine", "machinery", "generator"}},
	{chart.CodeBuildings, []string{"building", "premises", "warehouse"}},
	{chart.CodeLand, []string{"land", "plot"}},
}

func assetCode(description string) string {
	text := strings.ToLower(description)
	for _, aa := range assetAccounts {
		for _, kw := range aa.keywords {
			if strings.Contains(text, kw) {
				return aa.code
			}
		}
	}
	return chart.CodeOfficeEquipment
}

func (b *Builder) assetPurchase(req Request) []model.JournalLine {
	paying := cashCode(req.Method)
	if req.IsCredit {
		paying = chart.CodePayable
	}
	lines := []model.JournalLine{b.debit(assetCode(req.Description), req.Net, "capitalized")}
	if req.VAT.IsPositive() {
		lines = append(lines, b.debit(chart.CodeVATReceivable, req.VAT, "input VAT"))
	}
	return append(lines, b.credit(paying, req.Gross(), ""))
}

func (b *Builder) assetDisposal(req Request) []model.JournalLine {
	// Proceeds are posted against the asset's carrying account; any
	// gain or loss needs the acquisition cost, which is raised as an
	// open question upstream.
	return []model.JournalLine{
		b.debit(cashCode(req.Method), req.Gross(), "disposal proceeds"),
		b.credit(assetCode(req.Description), req.Gross(), ""),
	}
}

func (b *Builder) depreciation(req Request) []model.JournalLine {
	return []model.JournalLine{
		b.debit(chart.CodeDepreciationExp, req.Net, ""),
		b.credit(chart.CodeAccumDepreciation, req.Net, ""),
	}
}

func (b *Builder) loanReceived(req Request) []model.JournalLine {
	return []model.JournalLine{
		b.debit(cashCode(req.Method), req.Net, ""),
		b.credit(chart.CodeLoansPayable, req.Net, ""),
	}
}

// loanRepayment splits the payment between interest and principal at
// the configured share. Approximate: no amortization schedule backs
// this split.
func (b *Builder) loanRepayment(req Request) []model.JournalLine {
	interest := req.Net.Mul(b.interestShare).Round(2)
	principal := req.Net.Sub(interest)
	return []model.JournalLine{
		b.debit(chart.CodeInterestExpense, interest, "estimated interest portion"),
		b.debit(chart.CodeLoansPayable, principal, "principal"),
		b.credit(cashCode(req.Method), req.Net, ""),
	}
}

func (b *Builder) ownerInvestment(req Request) []model.JournalLine {
	return []model.JournalLine{
		b.debit(cashCode(req.Method), req.Net, ""),
		b.credit(chart.CodeOwnersCapital, req.Net, ""),
	}
}

func (b *Builder) ownerDrawing(req Request) []model.JournalLine {
	return []model.JournalLine{
		b.debit(chart.CodeOwnersDrawings, req.Net, ""),
		b.credit(cashCode(req.Method), req.Net, ""),
	}
}

func (b *Builder) receipt(req Request) []model.JournalLine {
	receiving := cashCode(req.Method)
	switch {
	case req.Flags.Settlement:
		return []model.JournalLine{
			b.debit(receiving, req.Net, ""),
			b.credit(chart.CodeReceivable, req.Net, "receivable settled"),
		}
	case containsAny(req.Description, "advance", "deposit from", "prepayment"):
		return []model.JournalLine{
			b.debit(receiving, req.Net, ""),
			b.credit(chart.CodeCustomerAdvances, req.Net, "received in advance"),
		}
	default:
		return []model.JournalLine{
			b.debit(receiving, req.Net, ""),
			b.credit(chart.CodeOtherIncome, req.Net, ""),
		}
	}
}

func (b *Builder) payment(req Request) []model.JournalLine {
	paying := cashCode(req.Method)
	if req.Flags.Settlement {
		return []model.JournalLine{
			b.debit(chart.CodePayable, req.Net, "payable settled"),
			b.credit(paying, req.Net, ""),
		}
	}
	return []model.JournalLine{
		b.debit(expenseCode(req.Description), req.Net, ""),
		b.credit(paying, req.Net, ""),
	}
}

func (b *Builder) transfer(req Request) []model.JournalLine {
	if req.Flags.TransferToBank {
		return []model.JournalLine{
			b.debit(chart.CodeBank, req.Net, ""),
			b.credit(chart.CodeCash, req.Net, ""),
		}
	}
	return []model.JournalLine{
		b.debit(chart.CodeCash, req.Net, ""),
		b.credit(chart.CodeBank, req.Net, ""),
	}
}

// generic covers adjustment, closing, other, and any future type
// without a recipe: infer income vs. expense from category and
// description keywords and post against cash.
func (b *Builder) generic(req Request) []model.JournalLine {
	text := strings.ToLower(req.Description + " " + req.CategoryHint)
	if containsAny(text, "income", "revenue", "sale", "earned", "received") {
		return []model.JournalLine{
			b.debit(cashCode(req.Method), req.Net, ""),
			b.credit(chart.CodeOtherIncome, req.Net, ""),
		}
	}
	return []model.JournalLine{
		b.debit(expenseCode(req.Description), req.Net, ""),
		b.credit(cashCode(req.Method), req.Net, ""),
	}
}

func containsAny(text string, keywords ...string) bool {
	text = strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// NewEntry assembles a JournalEntry from built lines, recomputes its
// totals, and stamps it as a draft ready for posting.
func NewEntry(entryID string, date time.Time, narration, reference string, txType model.TransactionType, lines []model.JournalLine) model.JournalEntry {
	entry := model.JournalEntry{
		ID:              entryID,
		Date:            date,
		Narration:       narration,
		Reference:       reference,
		Lines:           lines,
		TransactionType: txType,
		Status:          model.StatusDraft,
	}
	entry.Totals()
	return entry
}
