package model

// Grade is the letter summary of a health score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// HealthScoreInput carries already-aggregated monthly figures and account totals.
type HealthScoreInput struct {
	MonthlyIncome        float64 `json:"monthly_income"`
	MonthlyExpenses      float64 `json:"monthly_expenses"`
	TotalDebt            float64 `json:"total_debt"`
	TotalAssets          float64 `json:"total_assets"`
	TotalInvestments     float64 `json:"total_investments"`
	EmergencyFundBalance float64 `json:"emergency_fund_balance"`
	CreditUtilization    float64 `json:"credit_utilization"` // percent
}

// HealthComponent is one of the five sub-scores.
type HealthComponent struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"` // 0-20
	Value float64 `json:"value"` // raw metric (percent or months)
	Label string  `json:"label"`
}

// HealthScoreResult is the composite score with its breakdown.
type HealthScoreResult struct {
	Score             int             `json:"score"`
	Grade             Grade           `json:"grade"`
	SavingsRate       HealthComponent `json:"savings_rate"`
	DebtToIncome      HealthComponent `json:"debt_to_income"`
	EmergencyFund     HealthComponent `json:"emergency_fund"`
	InvestmentRate    HealthComponent `json:"investment_rate"`
	CreditUtilization HealthComponent `json:"credit_utilization"`
	Recommendations   []string        `json:"recommendations"`
}

// Components returns the sub-scores in display order.
func (r HealthScoreResult) Components() []HealthComponent {
	return []HealthComponent{r.SavingsRate, r.DebtToIncome, r.EmergencyFund, r.InvestmentRate, r.CreditUtilization}
}
