package recurring

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/finsim/internal/importer"
	"github.com/cleared-dev/finsim/internal/model"
)

func txn(y int, m time.Month, d int, desc, amount string) model.BankTransaction {
	return model.BankTransaction{
		Date:        time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
	}
}

func TestDetect_ThreeMonthExport(t *testing.T) {
	txns, err := importer.DefaultRegistry().ParseFile("../../testdata/generic_three_months.csv", "")
	require.NoError(t, err)

	income, expenses := Detect(txns)

	require.Len(t, income, 1)
	assert.Equal(t, "PAYROLL ACME CORP", income[0].Description)
	assert.Equal(t, 2500.0, income[0].Amount)
	// Paid on the 1st and 15th equally often; the earlier day wins.
	assert.Equal(t, 1, income[0].DayOfMonth)

	require.Len(t, expenses, 2)
	assert.Equal(t, "Rent", expenses[0].Description)
	assert.Equal(t, -1200.0, expenses[0].Amount)
	assert.Equal(t, 5, expenses[0].DayOfMonth)

	assert.Equal(t, "Phone Bill", expenses[1].Description)
	assert.Equal(t, -62.0, expenses[1].Amount)
	assert.Equal(t, 20, expenses[1].DayOfMonth)
}

func TestDetect_SameMonthRepeatsAreNotRecurring(t *testing.T) {
	income, expenses := Detect([]model.BankTransaction{
		txn(2025, time.March, 2, "Coffee", "-4.50"),
		txn(2025, time.March, 9, "Coffee", "-4.50"),
		txn(2025, time.March, 16, "Coffee", "-4.50"),
	})
	assert.Empty(t, income)
	assert.Empty(t, expenses)
}

func TestDetect_NormalizesDescriptions(t *testing.T) {
	_, expenses := Detect([]model.BankTransaction{
		txn(2025, time.January, 8, "NETFLIX.COM 4412", "-15.49"),
		txn(2025, time.February, 8, "Netflix.com", "-15.49"),
	})
	require.Len(t, expenses, 1)
	assert.Equal(t, "NETFLIX.COM 4412", expenses[0].Description)
	assert.Equal(t, 8, expenses[0].DayOfMonth)
}

func TestDetect_MeanRoundsToCents(t *testing.T) {
	_, expenses := Detect([]model.BankTransaction{
		txn(2025, time.January, 12, "Power", "-10.00"),
		txn(2025, time.February, 12, "Power", "-10.01"),
		txn(2025, time.March, 12, "Power", "-10.01"),
	})
	require.Len(t, expenses, 1)
	assert.Equal(t, -10.01, expenses[0].Amount)
}

func TestDetect_SortsByDayThenDescription(t *testing.T) {
	var txns []model.BankTransaction
	for _, m := range []time.Month{time.April, time.May} {
		txns = append(txns,
			txn(2025, m, 20, "Zoo pass", "-9.00"),
			txn(2025, m, 3, "Water", "-30.00"),
			txn(2025, m, 20, "Gym", "-40.00"),
		)
	}
	_, expenses := Detect(txns)
	require.Len(t, expenses, 3)
	assert.Equal(t, "Water", expenses[0].Description)
	assert.Equal(t, "Gym", expenses[1].Description)
	assert.Equal(t, "Zoo pass", expenses[2].Description)
}

func TestDetect_Empty(t *testing.T) {
	income, expenses := Detect(nil)
	assert.Nil(t, income)
	assert.Nil(t, expenses)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"GITHUB *PRO SUBSCRIPTION", "GITHUB PRO SUBSCRIPTION"},
		{"grocery   mart #221", "GROCERY MART"},
		{"  ACME\tCONSULTING INVOICE 1042 ", "ACME CONSULTING INVOICE"},
		{"1234", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}
