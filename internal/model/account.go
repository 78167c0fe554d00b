package model

import "github.com/shopspring/decimal"

// AccountType classifies accounts in the household snapshot.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeRetirement AccountType = "retirement"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeMortgage   AccountType = "mortgage"
)

// IsLiability reports whether balances of this type are owed rather than held.
func (t AccountType) IsLiability() bool {
	switch t {
	case AccountTypeCreditCard, AccountTypeLoan, AccountTypeMortgage:
		return true
	}
	return false
}

// IsInvestment reports whether the account counts toward invested assets.
func (t AccountType) IsInvestment() bool {
	return t == AccountTypeInvestment || t == AccountTypeRetirement
}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeInvestment, AccountTypeRetirement,
		AccountTypeCreditCard, AccountTypeLoan, AccountTypeMortgage:
		return true
	}
	return false
}

// Account represents a row in accounts.csv.
type Account struct {
	ID                string
	Name              string
	Type              AccountType
	Balance           decimal.Decimal // always non-negative; liabilities are owed amounts
	AnnualRatePercent decimal.Decimal
	MinimumPayment    decimal.Decimal
	CreditLimit       decimal.Decimal // zero if not a revolving account
}
