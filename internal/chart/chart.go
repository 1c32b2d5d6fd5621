// Package chart provides lookup over the chart of accounts, including
// user-defined custom accounts added at runtime.
package chart

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// ErrDuplicateCode is returned when adding an account whose code is
// already present in the chart.
var ErrDuplicateCode = errors.New("account code already exists")

// Well-known account codes used by the journal builder.
const (
	CodeCash              = "1000"
	CodeBank              = "1010"
	CodeReceivable        = "1100"
	CodeInventory         = "1200"
	CodeVATReceivable     = "1310"
	CodeWHTReceivable     = "1320"
	CodeOfficeEquipment   = "1500"
	CodeFurniture         = "1510"
	CodeVehicles          = "1520"
	CodePlantMachinery    = "1530"
	CodeBuildings         = "1540"
	CodeLand              = "1550"
	CodeAccumDepreciation = "1590"
	CodePayable           = "2000"
	CodeLoansPayable      = "2100"
	CodeVATPayable        = "2200"
	CodeWHTPayable        = "2210"
	CodeCustomerAdvances  = "2300"
	CodeOwnersCapital     = "3000"
	CodeOwnersDrawings    = "3100"
	CodeRetainedEarnings  = "3900"
	CodeSales             = "4000"
	CodeSalesReturns      = "4050"
	CodeServiceRevenue    = "4100"
	CodeOtherIncome       = "4900"
	CodeCOGS              = "5000"
	CodePurchases         = "5100"
	CodePurchaseReturns   = "5200"
	CodeRentExpense       = "6000"
	CodeSalariesExpense   = "6010"
	CodeUtilitiesExpense  = "6020"
	CodeSuppliesExpense   = "6030"
	CodeInterestExpense   = "6040"
	CodeDepreciationExp   = "6050"
	CodeBankCharges       = "6060"
	CodeGeneralExpense    = "6900"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.ChartAccount
	byCode   map[string]model.ChartAccount
}

// NewService creates a Service over the base chart plus any custom
// accounts restored from a snapshot.
func NewService(custom []model.ChartAccount) *Service {
	s := &Service{byCode: make(map[string]model.ChartAccount)}
	for _, a := range BaseChart() {
		s.accounts = append(s.accounts, a)
		s.byCode[a.Code] = a
	}
	for _, a := range custom {
		if _, exists := s.byCode[a.Code]; exists {
			continue
		}
		a.Custom = true
		s.accounts = append(s.accounts, a)
		s.byCode[a.Code] = a
	}
	return s
}

// All returns all accounts sorted by code.
func (s *Service) All() []model.ChartAccount {
	out := make([]model.ChartAccount, len(s.accounts))
	copy(out, s.accounts)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Custom returns only the user-added accounts.
func (s *Service) Custom() []model.ChartAccount {
	var out []model.ChartAccount
	for _, a := range s.accounts {
		if a.Custom {
			out = append(out, a)
		}
	}
	return out
}

// Get returns an account by code.
func (s *Service) Get(code string) (model.ChartAccount, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether an account code exists.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// Add registers a custom account. The code must be unique across the
// whole chart.
func (s *Service) Add(code, name string, class model.AccountClass, subClass string) (model.ChartAccount, error) {
	if code == "" || name == "" {
		return model.ChartAccount{}, fmt.Errorf("account code and name are required")
	}
	if s.Exists(code) {
		return model.ChartAccount{}, fmt.Errorf("adding account %s: %w", code, ErrDuplicateCode)
	}

	account := model.ChartAccount{
		Code:          code,
		Name:          name,
		Class:         class,
		SubClass:      subClass,
		NormalBalance: class.NormalSide(),
		Custom:        true,
	}
	s.accounts = append(s.accounts, account)
	s.byCode[code] = account
	return account, nil
}

// ByClass returns all accounts of the given class, sorted by code.
func (s *Service) ByClass(class model.AccountClass) []model.ChartAccount {
	var out []model.ChartAccount
	for _, a := range s.All() {
		if a.Class == class {
			out = append(out, a)
		}
	}
	return out
}
