package model

import "fmt"

// Strategy selects which outstanding debt receives extra payments.
type Strategy string

const (
	StrategyAvalanche Strategy = "avalanche" // highest rate first
	StrategySnowball  Strategy = "snowball"  // lowest balance first
)

// ParseStrategy converts a user-supplied name into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyAvalanche, StrategySnowball:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown strategy %q (want avalanche or snowball)", s)
}

// Debt is one liability fed to the payoff simulator.
type Debt struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Balance           float64 `json:"balance"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	MinimumPayment    float64 `json:"minimum_payment"`
}

// PayoffMonthEntry is a single debt's activity in one simulated month.
type PayoffMonthEntry struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Balance   float64 `json:"balance"` // after this month's payment
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
}

// PayoffMonthSummary aggregates every outstanding debt for one month.
type PayoffMonthSummary struct {
	Month         int                `json:"month"`
	Debts         []PayoffMonthEntry `json:"debts"`
	TotalBalance  float64            `json:"total_balance"`
	TotalPayment  float64            `json:"total_payment"`
	TotalInterest float64            `json:"total_interest"`
}

// PaidOffDebt records the month a debt first reached a zero balance.
type PaidOffDebt struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PayoffMonth int    `json:"payoff_month"`
}

// PayoffResult is the full outcome of one strategy run.
type PayoffResult struct {
	Strategy        Strategy             `json:"strategy"`
	Months          int                  `json:"months"`
	TotalPaid       float64              `json:"total_paid"`
	TotalInterest   float64              `json:"total_interest"`
	Schedule        []PayoffMonthSummary `json:"schedule"`
	DebtPayoffOrder []PaidOffDebt        `json:"debt_payoff_order"`
}

// StrategyComparison holds both strategies side by side.
// Positive savings mean avalanche is cheaper or faster.
type StrategyComparison struct {
	Avalanche     PayoffResult `json:"avalanche"`
	Snowball      PayoffResult `json:"snowball"`
	InterestSaved float64      `json:"interest_saved"`
	MonthsSaved   int          `json:"months_saved"`
}
