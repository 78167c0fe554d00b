// Package growth projects investment balances under compound monthly returns,
// deterministically and as a Monte Carlo band across risk profiles.
package growth

import (
	"github.com/cleared-dev/finsim/internal/model"
	"github.com/cleared-dev/finsim/internal/money"
)

// MonthsPerYear is the compounding frequency.
const MonthsPerYear = 12

// Project compounds initialBalance monthly at annualReturnPercent, adding
// monthlyContribution after each month's return, and snapshots every year end.
// Callers clamp inputs (see package limits).
func Project(years int, annualReturnPercent, monthlyContribution, initialBalance float64) []model.GrowthProjectionEntry {
	monthlyRate := annualReturnPercent / 100 / MonthsPerYear
	balance := initialBalance
	contributions := initialBalance

	entries := make([]model.GrowthProjectionEntry, 0, max(years, 0))
	for year := 1; year <= years; year++ {
		for m := 0; m < MonthsPerYear; m++ {
			balance = balance*(1+monthlyRate) + monthlyContribution
			contributions += monthlyContribution
		}
		entries = append(entries, model.GrowthProjectionEntry{
			Year:          year,
			Balance:       money.Round(balance),
			Contributions: money.Round(contributions),
			Growth:        money.Round(balance - contributions),
		})
	}
	return entries
}
