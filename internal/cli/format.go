// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"

	"github.com/cleared-dev/finsim/internal/money"
)

// DateFormat is used for every calendar date shown in tables.
const DateFormat = "2006-01-02"

// FormatMoney formats amount in the given ISO currency, e.g. "$1,234.50".
func FormatMoney(amount float64, currency string) string {
	return money.Format(amount, currency)
}

// FormatPercent formats a percentage with one decimal, e.g. "22.9%".
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatMonths formats a month count as years and months.
// e.g., 34 -> "2y 10m", 12 -> "1y", 7 -> "7m"
func FormatMonths(months int) string {
	if months <= 0 {
		return "0m"
	}
	years, rest := months/12, months%12
	switch {
	case years == 0:
		return fmt.Sprintf("%dm", rest)
	case rest == 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dy %dm", years, rest)
	}
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// FormatSigned formats a non-zero amount with an explicit sign and a blank for zero.
func FormatSigned(amount float64, currency string) string {
	switch {
	case amount > 0:
		return "+" + money.Format(amount, currency)
	case amount < 0:
		return "-" + money.Format(-amount, currency)
	default:
		return ""
	}
}
