package accounts

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/finsim/internal/model"
)

// DefaultSnapshot returns the sample household written by init.
func DefaultSnapshot() []model.Account {
	d := decimal.RequireFromString
	return []model.Account{
		{ID: "checking", Name: "Everyday Checking", Type: model.AccountTypeChecking, Balance: d("2400.00")},
		{ID: "savings", Name: "High-Yield Savings", Type: model.AccountTypeSavings, Balance: d("9000.00")},
		{ID: "brokerage", Name: "Brokerage", Type: model.AccountTypeInvestment, Balance: d("15000.00")},
		{ID: "401k", Name: "401(k)", Type: model.AccountTypeRetirement, Balance: d("42000.00")},
		{ID: "visa", Name: "Visa Card", Type: model.AccountTypeCreditCard, Balance: d("3200.00"), AnnualRatePercent: d("22.9"), MinimumPayment: d("95.00"), CreditLimit: d("10000.00")},
		{ID: "store-card", Name: "Store Card", Type: model.AccountTypeCreditCard, Balance: d("650.00"), AnnualRatePercent: d("27.0"), MinimumPayment: d("35.00"), CreditLimit: d("2000.00")},
		{ID: "car", Name: "Car Loan", Type: model.AccountTypeLoan, Balance: d("11500.00"), AnnualRatePercent: d("6.5"), MinimumPayment: d("310.00")},
	}
}
