// Package money rounds engine amounts to cents and formats them for display.
package money

import (
	"math"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a config names an unknown ISO code.
const DefaultCurrency = gomoney.USD

// Round rounds x half away from zero to two decimal places.
// Rounding goes through decimal so values like 1.005 round up as written.
func Round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}

// FromDecimal converts a stored decimal amount to an engine float, rounded to cents.
func FromDecimal(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Currency returns code if it is a known ISO 4217 currency, otherwise DefaultCurrency.
func Currency(code string) string {
	if code == "" || gomoney.GetCurrency(code) == nil {
		return DefaultCurrency
	}
	return code
}

// Format renders amount in the given currency, e.g. "$1,234.56".
func Format(amount float64, code string) string {
	code = Currency(code)
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	// Convert to minor units via decimal; go-money's float constructor truncates.
	fraction := gomoney.GetCurrency(code).Fraction
	minor := decimal.NewFromFloat(amount).Shift(int32(fraction)).Round(0).IntPart()
	return gomoney.New(minor, code).Display()
}
