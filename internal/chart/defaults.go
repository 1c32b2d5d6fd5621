package chart

import "github.com/bookkeep-dev/bookkeep/internal/model"

// BaseChart returns the built-in chart of accounts. Codes follow the
// usual convention: 1xxx assets, 2xxx liabilities, 3xxx equity,
// 4xxx income, 5xxx cost of sales, 6xxx operating expenses.
func BaseChart() []model.ChartAccount {
	accts := []model.ChartAccount{
		{Code: CodeCash, Name: "Cash", Class: model.ClassAsset, SubClass: "current"},
		{Code: CodeBank, Name: "Bank", Class: model.ClassAsset, SubClass: "current"},
		{Code: CodeReceivable, Name: "Accounts Receivable", Class: model.ClassAsset, SubClass: "current"},
		{Code: CodeInventory, Name: "Inventory", Class: model.ClassAsset, SubClass: "current"},
		{Code: CodeVATReceivable, Name: "VAT Receivable", Class: model.ClassAsset, SubClass: "current"},
		{Code: CodeWHTReceivable, Name: "WHT Receivable", Class: model.ClassAsset, SubClass: "current"},
		{Code: CodeOfficeEquipment, Name: "Office Equipment", Class: model.ClassAsset, SubClass: "fixed"},
		{Code: CodeFurniture, Name: "Furniture & Fittings", Class: model.ClassAsset, SubClass: "fixed"},
		{Code: CodeVehicles, Name: "Motor Vehicles", Class: model.ClassAsset, SubClass: "fixed"},
		{Code: CodePlantMachinery, Name: "Plant & Machinery", Class: model.ClassAsset, SubClass: "fixed"},
		{Code: CodeBuildings, Name: "Buildings", Class: model.ClassAsset, SubClass: "fixed"},
		{Code: CodeLand, Name: "Land", Class: model.ClassAsset, SubClass: "fixed"},
		{Code: CodeAccumDepreciation, Name: "Accumulated Depreciation", Class: model.ClassAsset, SubClass: "contra", NormalBalance: model.SideCredit},
		{Code: CodePayable, Name: "Accounts Payable", Class: model.ClassLiability, SubClass: "current"},
		{Code: CodeLoansPayable, Name: "Loans Payable", Class: model.ClassLiability, SubClass: "long-term"},
		{Code: CodeVATPayable, Name: "VAT Payable", Class: model.ClassLiability, SubClass: "current"},
		{Code: CodeWHTPayable, Name: "WHT Payable", Class: model.ClassLiability, SubClass: "current"},
		{Code: CodeCustomerAdvances, Name: "Customer Advances", Class: model.ClassLiability, SubClass: "current"},
		{Code: CodeOwnersCapital, Name: "Owner's Capital", Class: model.ClassEquity},
		{Code: CodeOwnersDrawings, Name: "Owner's Drawings", Class: model.ClassEquity, SubClass: "contra", NormalBalance: model.SideDebit},
		{Code: CodeRetainedEarnings, Name: "Retained Earnings", Class: model.ClassEquity},
		{Code: CodeSales, Name: "Sales Revenue", Class: model.ClassIncome},
		{Code: CodeSalesReturns, Name: "Sales Returns", Class: model.ClassIncome, SubClass: "contra", NormalBalance: model.SideDebit},
		{Code: CodeServiceRevenue, Name: "Service Revenue", Class: model.ClassIncome},
		{Code: CodeOtherIncome, Name: "Other Income", Class: model.ClassIncome},
		{Code: CodeCOGS, Name: "Cost of Goods Sold", Class: model.ClassExpense, SubClass: "cost-of-sales"},
		{Code: CodePurchases, Name: "Purchases", Class: model.ClassExpense, SubClass: "cost-of-sales"},
		{Code: CodePurchaseReturns, Name: "Purchase Returns", Class: model.ClassExpense, SubClass: "contra", NormalBalance: model.SideCredit},
		{Code: CodeRentExpense, Name: "Rent Expense", Class: model.ClassExpense, SubClass: "operating"},
		{Code: CodeSalariesExpense, Name: "Salaries Expense", Class: model.ClassExpense, SubClass: "operating"},
		{Code: CodeUtilitiesExpense, Name: "Utilities Expense", Class: model.ClassExpense, SubClass: "operating"},
		{Code: CodeSuppliesExpense, Name: "Office Supplies Expense", Class: model.ClassExpense, SubClass: "operating"},
		{Code: CodeInterestExpense, Name: "Interest Expense", Class: model.ClassExpense, SubClass: "operating"},
		{Code: CodeDepreciationExp, Name: "Depreciation Expense", Class: model.ClassExpense, SubClass: "operating"},
		{Code: CodeBankCharges, Name: "Bank Charges", Class: model.ClassExpense, SubClass: "operating"},
		{Code: CodeGeneralExpense, Name: "General Expense", Class: model.ClassExpense, SubClass: "operating"},
	}

	for i := range accts {
		if accts[i].NormalBalance == "" {
			accts[i].NormalBalance = accts[i].Class.NormalSide()
		}
	}
	return accts
}
