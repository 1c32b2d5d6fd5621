package extract

// rule pairs a closed-vocabulary tag with the keywords that select it.
// Rules are scanned in order; the first match wins, so more specific
// keyword groups must come before broader ones.
type rule struct {
	tag      string
	keywords []string
}

// actionRules tag the verb of the transaction.
var actionRules = []rule{
	{tag: "transferred", keywords: []string{"transferred", "transfer to", "transfer from", "moved to", "moved from"}},
	{tag: "returned", keywords: []string{"returned", "return of", "refunded", "sent back"}},
	{tag: "depreciated", keywords: []string{"depreciated", "depreciation"}},
	{tag: "written-off", keywords: []string{"wrote off", "written off", "write off", "bad debt"}},
	{tag: "accrued", keywords: []string{"accrued", "accrual", "owing for"}},
	{tag: "invested", keywords: []string{"invested", "capital contribution", "contributed capital", "put into the business"}},
	{tag: "withdrawn", keywords: []string{"withdrew", "withdrawn", "drawing", "drawings", "took out for personal"}},
	{tag: "borrowed", keywords: []string{"borrowed", "took a loan", "obtained a loan", "loan received", "received a loan"}},
	{tag: "repaid", keywords: []string{"repaid", "repayment", "paid back", "loan installment", "loan instalment"}},
	{tag: "sold", keywords: []string{"sold", "sale of", "sales of", "made a sale", "invoiced"}},
	{tag: "bought", keywords: []string{"bought", "purchased", "purchase of", "acquired", "procured"}},
	{tag: "earned", keywords: []string{"earned", "income from", "revenue from", "billed"}},
	{tag: "received", keywords: []string{"received", "receipt of", "collected", "got paid"}},
	{tag: "paid", keywords: []string{"paid", "payment of", "settled", "spent", "disbursed"}},
}

// objectRules tag the subject of the transaction.
var objectRules = []rule{
	{tag: "fixed-asset", keywords: []string{
		"laptop", "computer", "equipment", "machine", "machinery", "vehicle",
		"car", "truck", "furniture", "building", "land", "generator", "printer", "plant",
	}},
	{tag: "loan", keywords: []string{"loan", "borrowing", "facility"}},
	{tag: "rent", keywords: []string{"rent", "lease"}},
	{tag: "salary", keywords: []string{"salary", "salaries", "wages", "payroll", "staff pay"}},
	{tag: "utilities", keywords: []string{"electricity", "power bill", "water bill", "internet", "utility", "utilities", "airtime", "fuel"}},
	{tag: "supplies", keywords: []string{"supplies", "stationery", "consumables"}},
	{tag: "customer-advance", keywords: []string{"advance", "deposit from customer", "prepayment from"}},
	{tag: "services", keywords: []string{"service", "services", "consulting", "consultancy", "contract work", "fees"}},
	{tag: "goods", keywords: []string{"goods", "stock", "inventory", "merchandise", "products", "items"}},
	{tag: "cash", keywords: []string{"cash", "money", "funds"}},
}

// counterpartyRules tag the other party.
var counterpartyRules = []rule{
	{tag: "government", keywords: []string{"government", "tax authority", "firs", "revenue service", "customs"}},
	{tag: "employee", keywords: []string{"employee", "staff", "worker", "personnel"}},
	{tag: "owner", keywords: []string{"owner", "proprietor", "personal use", "myself"}},
	{tag: "bank", keywords: []string{"bank", "lender", "microfinance"}},
	{tag: "supplier", keywords: []string{"supplier", "vendor", "wholesaler", "distributor"}},
	{tag: "customer", keywords: []string{"customer", "client", "buyer", "debtor"}},
}

// actionCounterpartyFallback infers the counterparty from the action
// when no counterparty keyword fires.
var actionCounterpartyFallback = map[string]string{
	"sold":      "customer",
	"earned":    "customer",
	"bought":    "supplier",
	"borrowed":  "bank",
	"repaid":    "bank",
	"invested":  "owner",
	"withdrawn": "owner",
}

// timingRules distinguish immediate settlement from outstanding credit.
var timingRules = []rule{
	{tag: "outstanding", keywords: []string{
		"on credit", "credit sale", "credit purchase", "invoice", "invoiced",
		"payable", "receivable", "owed", "owing", "not yet paid", "to be paid", "unpaid",
	}},
	{tag: "immediate", keywords: []string{
		"cash", "bank", "transfer", "transferred", "pos", "cheque", "check",
		"immediately", "on the spot", "instantly",
	}},
}

// impactRules tag an explicit business-impact hint, which outranks all
// other classification rules downstream.
var impactRules = []rule{
	{tag: "income", keywords: []string{"income", "revenue", "earnings"}},
	{tag: "expense", keywords: []string{"expense", "cost of", "overhead"}},
	{tag: "asset", keywords: []string{"asset", "investment in"}},
	{tag: "liability", keywords: []string{"liability", "debt", "obligation"}},
	{tag: "equity", keywords: []string{"equity", "capital"}},
}
