// Package payoff simulates month-by-month debt repayment under the
// avalanche and snowball strategies.
package payoff

import (
	"sort"

	"github.com/cleared-dev/finsim/internal/model"
	"github.com/cleared-dev/finsim/internal/money"
)

const (
	// MaxMonths caps a simulation at 30 years.
	MaxMonths = 360
	// Tolerance is the balance at or below which a debt counts as paid.
	Tolerance = 0.01
)

// Simulate runs a payoff plan for debts under strategy, adding extraMonthly
// on top of the minimums every month. Callers must pass a non-empty, validated
// debt list and clamp extraMonthly (see package limits).
//
// The attack order is fixed at the start of the run. Each month the extra
// budget (extraMonthly plus minimums freed by debts already paid off) goes to
// the first outstanding debt in that order only; whatever it cannot absorb is
// dropped for the month.
func Simulate(debts []model.Debt, strategy model.Strategy, extraMonthly float64) model.PayoffResult {
	order := attackOrder(debts, strategy)

	balances := make(map[string]float64, len(order))
	for _, d := range order {
		balances[d.ID] = d.Balance
	}

	result := model.PayoffResult{
		Strategy:        strategy,
		Schedule:        []model.PayoffMonthSummary{},
		DebtPayoffOrder: []model.PaidOffDebt{},
	}

	var totalPaid, totalInterest float64
	month := 0
	for month < MaxMonths && anyOutstanding(order, balances) {
		month++

		freedMinimums := 0.0
		for _, d := range order {
			if balances[d.ID] <= Tolerance {
				freedMinimums += d.MinimumPayment
			}
		}
		extraBudget := extraMonthly + freedMinimums
		extraApplied := false

		summary := model.PayoffMonthSummary{Month: month}
		var monthPayment, monthInterest, monthBalance float64

		for _, d := range order {
			balance := balances[d.ID]
			if balance <= Tolerance {
				continue
			}

			interest := balance * (d.AnnualRatePercent / 100 / 12)
			owed := balance + interest
			payment := min(d.MinimumPayment, owed)

			if !extraApplied {
				extraApplied = true
				payment += min(extraBudget, owed-payment+Tolerance)
			}

			newBalance := max(0, owed-payment)
			balances[d.ID] = newBalance
			if newBalance <= Tolerance {
				result.DebtPayoffOrder = append(result.DebtPayoffOrder, model.PaidOffDebt{
					ID:          d.ID,
					Name:        d.Name,
					PayoffMonth: month,
				})
			}

			summary.Debts = append(summary.Debts, model.PayoffMonthEntry{
				ID:        d.ID,
				Name:      d.Name,
				Balance:   money.Round(newBalance),
				Payment:   money.Round(payment),
				Interest:  money.Round(interest),
				Principal: money.Round(payment - interest),
			})
			monthPayment += payment
			monthInterest += interest
		}

		for _, d := range order {
			monthBalance += balances[d.ID]
		}
		summary.TotalBalance = money.Round(monthBalance)
		summary.TotalPayment = money.Round(monthPayment)
		summary.TotalInterest = money.Round(monthInterest)
		result.Schedule = append(result.Schedule, summary)

		totalPaid += monthPayment
		totalInterest += monthInterest
	}

	result.Months = month
	result.TotalPaid = money.Round(totalPaid)
	result.TotalInterest = money.Round(totalInterest)
	return result
}

// CompareStrategies runs both strategies over the same debts.
func CompareStrategies(debts []model.Debt, extraMonthly float64) model.StrategyComparison {
	avalanche := Simulate(debts, model.StrategyAvalanche, extraMonthly)
	snowball := Simulate(debts, model.StrategySnowball, extraMonthly)
	return model.StrategyComparison{
		Avalanche:     avalanche,
		Snowball:      snowball,
		InterestSaved: money.Round(snowball.TotalInterest - avalanche.TotalInterest),
		MonthsSaved:   snowball.Months - avalanche.Months,
	}
}

// attackOrder returns a sorted copy of debts. Ties keep input order.
func attackOrder(debts []model.Debt, strategy model.Strategy) []model.Debt {
	order := make([]model.Debt, len(debts))
	copy(order, debts)

	if strategy == model.StrategySnowball {
		sort.SliceStable(order, func(i, j int) bool {
			return order[i].Balance < order[j].Balance
		})
	} else {
		sort.SliceStable(order, func(i, j int) bool {
			return order[i].AnnualRatePercent > order[j].AnnualRatePercent
		})
	}
	return order
}

func anyOutstanding(debts []model.Debt, balances map[string]float64) bool {
	for _, d := range debts {
		if balances[d.ID] > Tolerance {
			return true
		}
	}
	return false
}
