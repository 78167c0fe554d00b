package accounts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/finsim/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRoundTrip(t *testing.T) {
	accounts := []model.Account{
		{ID: "checking", Name: "Checking", Type: model.AccountTypeChecking, Balance: dec("1200.50")},
		{ID: "visa", Name: "Visa", Type: model.AccountTypeCreditCard, Balance: dec("800"), AnnualRatePercent: dec("19.99"), MinimumPayment: dec("25"), CreditLimit: dec("5000")},
	}

	var buf bytes.Buffer
	err := WriteAccounts(&buf, accounts)
	require.NoError(t, err)

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "checking", got[0].ID)
	assert.Equal(t, model.AccountTypeChecking, got[0].Type)
	assert.True(t, got[0].Balance.Equal(dec("1200.50")))
	assert.True(t, got[0].AnnualRatePercent.IsZero())

	assert.Equal(t, "Visa", got[1].Name)
	assert.True(t, got[1].AnnualRatePercent.Equal(dec("19.99")))
	assert.True(t, got[1].MinimumPayment.Equal(dec("25")))
	assert.True(t, got[1].CreditLimit.Equal(dec("5000")))
}

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteAccounts(&buf, []model.Account{
		{ID: "car", Name: "Car Loan", Type: model.AccountTypeLoan, Balance: dec("9000"), AnnualRatePercent: dec("6.5"), MinimumPayment: dec("250")},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "car,Car Loan,loan,9000.00,6.5,250.00,", lines[1])
}

func TestUnmarshalAccount_Errors(t *testing.T) {
	tests := []struct {
		name   string
		record []string
		want   string
	}{
		{"short row", []string{"a", "b"}, "expected 7 fields"},
		{"empty id", []string{"", "X", "checking", "1", "", "", ""}, "empty account_id"},
		{"bad type", []string{"x", "X", "brokerage", "1", "", "", ""}, "unknown account type"},
		{"bad balance", []string{"x", "X", "checking", "abc", "", "", ""}, "parsing balance"},
		{"negative balance", []string{"x", "X", "loan", "-10", "", "", ""}, "must not be negative"},
		{"bad rate", []string{"x", "X", "loan", "10", "%", "", ""}, "parsing annual_rate_percent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalAccount(tt.record)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadAccounts_ReportsRow(t *testing.T) {
	data := Header + "\nchecking,Checking,checking,100,,,\nvisa,Visa,credit_card,oops,,,\n"
	_, err := ReadAccounts(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestReadAccounts_Empty(t *testing.T) {
	got, err := ReadAccounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDefaultSnapshot(t *testing.T) {
	snap := DefaultSnapshot()
	require.NotEmpty(t, snap)

	ids := make(map[string]bool)
	for _, a := range snap {
		assert.False(t, ids[a.ID], "duplicate id %s", a.ID)
		ids[a.ID] = true
		assert.True(t, a.Type.Valid(), "account %s", a.ID)
	}
	assert.True(t, ids["checking"])
	assert.True(t, ids["visa"])
}
