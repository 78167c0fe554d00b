// Package cashflow projects a daily running balance from recurring income
// and expenses keyed by day of month.
package cashflow

import (
	"math"
	"strings"
	"time"

	"github.com/cleared-dev/finsim/internal/model"
	"github.com/cleared-dev/finsim/internal/money"
)

// Forecast walks days calendar days starting at start (inclusive) and applies
// every flow whose DayOfMonth matches the date. Income amounts are added as
// given; expense amounts are subtracted by absolute value. A flow on day 31
// does not fire in shorter months.
func Forecast(start time.Time, currentBalance float64, income, expenses []model.RecurringFlow, days int) []model.CashFlowDay {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	balance := currentBalance

	out := make([]model.CashFlowDay, 0, max(days, 0))
	for i := 0; i < days; i++ {
		date := day.AddDate(0, 0, i)
		dom := date.Day()

		var dayIncome, dayExpenses float64
		var labels []string
		for _, f := range income {
			if f.DayOfMonth == dom {
				dayIncome += f.Amount
				labels = append(labels, "+"+f.Description)
			}
		}
		for _, f := range expenses {
			if f.DayOfMonth == dom {
				dayExpenses += math.Abs(f.Amount)
				labels = append(labels, "-"+f.Description)
			}
		}

		balance += dayIncome - dayExpenses
		out = append(out, model.CashFlowDay{
			Date:             date,
			ProjectedBalance: money.Round(balance),
			Income:           money.Round(dayIncome),
			Expenses:         money.Round(dayExpenses),
			Label:            strings.Join(labels, ", "),
		})
	}
	return out
}

// Lowest returns the day with the smallest projected balance, or false if days is empty.
// Ties resolve to the earliest day.
func Lowest(days []model.CashFlowDay) (model.CashFlowDay, bool) {
	if len(days) == 0 {
		return model.CashFlowDay{}, false
	}
	low := days[0]
	for _, d := range days[1:] {
		if d.ProjectedBalance < low.ProjectedBalance {
			low = d
		}
	}
	return low, true
}
