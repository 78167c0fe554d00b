package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/finsim/internal/model"
)

// Header is the CSV header for accounts.csv.
const Header = "account_id,name,type,balance,annual_rate_percent,minimum_payment,credit_limit"

const (
	numFields  = 7
	colID      = 0
	colName    = 1
	colType    = 2
	colBalance = 3
	colRate    = 4
	colMinimum = 5
	colLimit   = 6
)

// ReadAccounts reads accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colID] = acct.ID
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	row[colBalance] = acct.Balance.StringFixed(2)
	if !acct.AnnualRatePercent.IsZero() {
		row[colRate] = acct.AnnualRatePercent.String()
	}
	if !acct.MinimumPayment.IsZero() {
		row[colMinimum] = acct.MinimumPayment.StringFixed(2)
	}
	if !acct.CreditLimit.IsZero() {
		row[colLimit] = acct.CreditLimit.StringFixed(2)
	}
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	if record[colID] == "" {
		return model.Account{}, fmt.Errorf("empty account_id")
	}

	acctType := model.AccountType(record[colType])
	if !acctType.Valid() {
		return model.Account{}, fmt.Errorf("unknown account type %q", record[colType])
	}

	balance, err := parseAmount("balance", record[colBalance])
	if err != nil {
		return model.Account{}, err
	}
	rate, err := parseAmount("annual_rate_percent", record[colRate])
	if err != nil {
		return model.Account{}, err
	}
	minimum, err := parseAmount("minimum_payment", record[colMinimum])
	if err != nil {
		return model.Account{}, err
	}
	limit, err := parseAmount("credit_limit", record[colLimit])
	if err != nil {
		return model.Account{}, err
	}

	return model.Account{
		ID:                record[colID],
		Name:              record[colName],
		Type:              acctType,
		Balance:           balance,
		AnnualRatePercent: rate,
		MinimumPayment:    minimum,
		CreditLimit:       limit,
	}, nil
}

// parseAmount parses an optional non-negative decimal column; empty means zero.
func parseAmount(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s %q must not be negative", field, s)
	}
	return d, nil
}
