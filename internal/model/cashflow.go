package model

import "time"

// RecurringFlow is an income or expense that repeats on a day of the month.
type RecurringFlow struct {
	Amount      float64 `json:"amount"`
	DayOfMonth  int     `json:"day_of_month"` // 1-31
	Description string  `json:"description"`
}

// CashFlowDay is the projected state at the end of one calendar day.
type CashFlowDay struct {
	Date             time.Time `json:"date"`
	ProjectedBalance float64   `json:"projected_balance"`
	Income           float64   `json:"income"`
	Expenses         float64   `json:"expenses"`
	Label            string    `json:"label,omitempty"`
}
