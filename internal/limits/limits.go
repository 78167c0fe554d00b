// Package limits enforces the input bounds the simulation engine expects
// its callers to apply before invocation.
package limits

import (
	"errors"
	"fmt"
	"math"

	"github.com/cleared-dev/finsim/internal/model"
)

const (
	MaxExtraMonthly        = 100_000.0
	MinYears               = 1
	MaxYears               = 50
	MinAnnualReturn        = -50.0
	MaxAnnualReturn        = 100.0
	MaxInitialBalance      = 1_000_000_000.0
	MaxMonthlyContribution = 1_000_000.0
	MinForecastDays        = 1
	MaxForecastDays        = 365
	MaxAnnualRatePercent   = 100.0
	MaxDebtsPerSimulation  = 50
)

// ErrNoDebts is returned when a payoff is requested with nothing to pay.
var ErrNoDebts = errors.New("no debts")

// ValidationError describes one rejected debt field.
type ValidationError struct {
	DebtID      string
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("debt %q %s: %s", e.DebtID, e.Field, e.Description)
}

// ValidateDebts checks every debt against the simulator's preconditions and
// returns all violations joined, or nil.
func ValidateDebts(debts []model.Debt) error {
	if len(debts) == 0 {
		return ErrNoDebts
	}
	if len(debts) > MaxDebtsPerSimulation {
		return fmt.Errorf("too many debts: %d (max %d)", len(debts), MaxDebtsPerSimulation)
	}

	var errs []error
	seen := make(map[string]bool, len(debts))
	for _, d := range debts {
		if d.ID == "" {
			errs = append(errs, ValidationError{DebtID: d.Name, Field: "id", Description: "must not be empty"})
		} else if seen[d.ID] {
			errs = append(errs, ValidationError{DebtID: d.ID, Field: "id", Description: "duplicate"})
		}
		seen[d.ID] = true

		if !finite(d.Balance) || d.Balance < 0 {
			errs = append(errs, ValidationError{DebtID: d.ID, Field: "balance", Description: fmt.Sprintf("%v must be a non-negative number", d.Balance)})
		}
		if !finite(d.AnnualRatePercent) || d.AnnualRatePercent < 0 || d.AnnualRatePercent > MaxAnnualRatePercent {
			errs = append(errs, ValidationError{DebtID: d.ID, Field: "annual_rate_percent", Description: fmt.Sprintf("%v must be between 0 and %v", d.AnnualRatePercent, MaxAnnualRatePercent)})
		}
		if !finite(d.MinimumPayment) || d.MinimumPayment < 0 {
			errs = append(errs, ValidationError{DebtID: d.ID, Field: "minimum_payment", Description: fmt.Sprintf("%v must be a non-negative number", d.MinimumPayment)})
		}
	}
	return errors.Join(errs...)
}

// ValidateFlows rejects recurring flows the forecaster cannot place.
func ValidateFlows(flows []model.RecurringFlow) error {
	var errs []error
	for i, f := range flows {
		if f.DayOfMonth < 1 || f.DayOfMonth > 31 {
			errs = append(errs, fmt.Errorf("flow %d (%s): day_of_month %d must be between 1 and 31", i, f.Description, f.DayOfMonth))
		}
		if !finite(f.Amount) {
			errs = append(errs, fmt.Errorf("flow %d (%s): amount must be a number", i, f.Description))
		}
	}
	return errors.Join(errs...)
}

// ClampExtraMonthly bounds an extra payment to [0, MaxExtraMonthly].
func ClampExtraMonthly(v float64) float64 { return clamp(v, 0, MaxExtraMonthly) }

// ClampAnnualReturn bounds a return assumption to [MinAnnualReturn, MaxAnnualReturn].
func ClampAnnualReturn(v float64) float64 { return clamp(v, MinAnnualReturn, MaxAnnualReturn) }

// ClampInitialBalance bounds a starting balance to [0, MaxInitialBalance].
func ClampInitialBalance(v float64) float64 { return clamp(v, 0, MaxInitialBalance) }

// ClampMonthlyContribution bounds a contribution to [0, MaxMonthlyContribution].
func ClampMonthlyContribution(v float64) float64 { return clamp(v, 0, MaxMonthlyContribution) }

// ClampYears bounds a projection horizon to [MinYears, MaxYears].
func ClampYears(v int) int { return min(max(v, MinYears), MaxYears) }

// ClampForecastDays bounds a forecast horizon to [MinForecastDays, MaxForecastDays].
func ClampForecastDays(v int) int { return min(max(v, MinForecastDays), MaxForecastDays) }

// clamp bounds v to [lo, hi]; NaN falls back to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
