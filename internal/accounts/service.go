package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/finsim/internal/model"
	"github.com/cleared-dev/finsim/internal/money"
)

// RelPath is the snapshot location relative to a project root.
const RelPath = "accounts/accounts.csv"

// Service provides in-memory lookup and totals over a household snapshot.
type Service struct {
	accounts []model.Account
	byID     map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byID := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Service{accounts: accounts, byID: byID}
}

// Load reads accounts/accounts.csv from a project root and returns a Service.
func Load(root string) (*Service, error) {
	path := filepath.Join(root, RelPath)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id string) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Debts returns every liability with an outstanding balance, in file order,
// ready for the payoff simulator.
func (s *Service) Debts() []model.Debt {
	var debts []model.Debt
	for _, a := range s.accounts {
		if !a.Type.IsLiability() || !a.Balance.IsPositive() {
			continue
		}
		debts = append(debts, model.Debt{
			ID:                a.ID,
			Name:              a.Name,
			Balance:           money.FromDecimal(a.Balance),
			AnnualRatePercent: a.AnnualRatePercent.InexactFloat64(),
			MinimumPayment:    money.FromDecimal(a.MinimumPayment),
		})
	}
	return debts
}

// Balance sums the balances of every account of the given types.
func (s *Service) Balance(types ...model.AccountType) decimal.Decimal {
	want := make(map[model.AccountType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	total := decimal.Zero
	for _, a := range s.accounts {
		if want[a.Type] {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// CreditUtilization returns card balances as a percentage of card limits,
// or zero when no card declares a limit.
func (s *Service) CreditUtilization() float64 {
	used, limit := decimal.Zero, decimal.Zero
	for _, a := range s.ByType(model.AccountTypeCreditCard) {
		if a.CreditLimit.IsZero() {
			continue
		}
		used = used.Add(a.Balance)
		limit = limit.Add(a.CreditLimit)
	}
	if limit.IsZero() {
		return 0
	}
	return used.Div(limit).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}

// HealthInput aggregates the snapshot into health score inputs. Income and
// expenses are monthly figures the snapshot does not record.
func (s *Service) HealthInput(monthlyIncome, monthlyExpenses float64) model.HealthScoreInput {
	var debt, assets decimal.Decimal
	for _, a := range s.accounts {
		if a.Type.IsLiability() {
			debt = debt.Add(a.Balance)
		} else {
			assets = assets.Add(a.Balance)
		}
	}
	return model.HealthScoreInput{
		MonthlyIncome:        monthlyIncome,
		MonthlyExpenses:      monthlyExpenses,
		TotalDebt:            money.FromDecimal(debt),
		TotalAssets:          money.FromDecimal(assets),
		TotalInvestments:     money.FromDecimal(s.Balance(model.AccountTypeInvestment, model.AccountTypeRetirement)),
		EmergencyFundBalance: money.FromDecimal(s.Balance(model.AccountTypeSavings)),
		CreditUtilization:    s.CreditUtilization(),
	}
}

// Save writes the snapshot to accounts/accounts.csv.
func (s *Service) Save(root string) error {
	dir := filepath.Join(root, filepath.Dir(RelPath))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(root, RelPath)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}
	return nil
}
