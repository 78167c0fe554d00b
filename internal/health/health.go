// Package health computes a 0-100 financial health score from five
// equally weighted components.
package health

import (
	"fmt"
	"math"

	"github.com/cleared-dev/finsim/internal/model"
	"github.com/cleared-dev/finsim/internal/money"
)

// ComponentMax is the best score a single component can earn.
const ComponentMax = 20

// fullyCoveredMonths is reported as emergency coverage when there are no
// expenses to cover but the fund holds money.
const fullyCoveredMonths = 12

// Recommendation thresholds.
const (
	targetSavingsRate     = 20
	maxHealthyDTI         = 36
	minEmergencyMonths    = 3
	targetEmergencyMonths = 6
	maxHealthyUtilization = 30
)

const healthyMessage = "Your finances look healthy. Keep saving consistently and review your plan every few months."

// Score rates in. Callers supply already-aggregated figures and must guard
// against negative income; zero income or expenses produce sentinel values
// rather than NaN.
func Score(in model.HealthScoreInput) model.HealthScoreResult {
	savingsRate := 0.0
	dti := 100.0
	investmentRate := 0.0
	if in.MonthlyIncome > 0 {
		annualIncome := in.MonthlyIncome * 12
		savingsRate = (in.MonthlyIncome - in.MonthlyExpenses) / in.MonthlyIncome * 100
		dti = in.TotalDebt / annualIncome * 100
		investmentRate = in.TotalInvestments / annualIncome * 100
	}

	emergencyMonths := 0.0
	switch {
	case in.MonthlyExpenses > 0:
		emergencyMonths = in.EmergencyFundBalance / in.MonthlyExpenses
	case in.EmergencyFundBalance > 0:
		emergencyMonths = fullyCoveredMonths
	}

	res := model.HealthScoreResult{
		SavingsRate: model.HealthComponent{
			Name:  "Savings rate",
			Score: savingsScore(savingsRate),
			Value: money.Round(savingsRate),
			Label: fmt.Sprintf("%.1f%%", savingsRate),
		},
		DebtToIncome: model.HealthComponent{
			Name:  "Debt-to-income",
			Score: dtiScore(dti),
			Value: money.Round(dti),
			Label: fmt.Sprintf("%.1f%%", dti),
		},
		EmergencyFund: model.HealthComponent{
			Name:  "Emergency fund",
			Score: emergencyScore(emergencyMonths),
			Value: money.Round(emergencyMonths),
			Label: fmt.Sprintf("%.1f months", emergencyMonths),
		},
		InvestmentRate: model.HealthComponent{
			Name:  "Investments",
			Score: investmentScore(investmentRate),
			Value: money.Round(investmentRate),
			Label: fmt.Sprintf("%.1f%% of annual income", investmentRate),
		},
		CreditUtilization: model.HealthComponent{
			Name:  "Credit utilization",
			Score: utilizationScore(in.CreditUtilization),
			Value: money.Round(in.CreditUtilization),
			Label: fmt.Sprintf("%.1f%%", in.CreditUtilization),
		},
	}

	total := 0.0
	for _, c := range res.Components() {
		total += c.Score
	}
	res.Score = int(math.Round(total))
	res.Grade = grade(res.Score)
	res.Recommendations = recommendations(savingsRate, dti, emergencyMonths, in.CreditUtilization)
	return res
}

// savingsScore is linear: one point per percent saved, capped at 20.
func savingsScore(rate float64) float64 {
	return min(max(rate, 0), ComponentMax)
}

func dtiScore(dti float64) float64 {
	switch {
	case dti <= 0:
		return 20
	case dti <= 20:
		return 18
	case dti <= 36:
		return 14
	case dti <= 50:
		return 8
	default:
		return 2
	}
}

func emergencyScore(months float64) float64 {
	switch {
	case months >= 6:
		return 20
	case months >= 3:
		return 14
	case months >= 1:
		return 8
	default:
		return 2
	}
}

func investmentScore(rate float64) float64 {
	switch {
	case rate >= 100:
		return 20
	case rate >= 50:
		return 16
	case rate >= 25:
		return 12
	case rate >= 10:
		return 8
	default:
		return 4
	}
}

func utilizationScore(pct float64) float64 {
	switch {
	case pct <= 10:
		return 20
	case pct <= 30:
		return 16
	case pct <= 50:
		return 10
	case pct <= 75:
		return 5
	default:
		return 1
	}
}

func grade(score int) model.Grade {
	switch {
	case score >= 90:
		return model.GradeA
	case score >= 80:
		return model.GradeB
	case score >= 65:
		return model.GradeC
	case score >= 50:
		return model.GradeD
	default:
		return model.GradeF
	}
}

// recommendations checks, in order: savings, DTI, emergency fund under three
// months, emergency fund between three and six months, credit utilization.
func recommendations(savingsRate, dti, emergencyMonths, utilization float64) []string {
	var recs []string
	if savingsRate < targetSavingsRate {
		recs = append(recs, fmt.Sprintf("Aim to save at least %d%% of your income; you are saving %.1f%%.", targetSavingsRate, savingsRate))
	}
	if dti > maxHealthyDTI {
		recs = append(recs, fmt.Sprintf("Your debt is %.1f%% of annual income. Bring it under %d%% by paying down high-interest balances first.", dti, maxHealthyDTI))
	}
	if emergencyMonths < minEmergencyMonths {
		recs = append(recs, fmt.Sprintf("Build an emergency fund covering at least %d months of expenses; you have %.1f.", minEmergencyMonths, emergencyMonths))
	} else if emergencyMonths < targetEmergencyMonths {
		recs = append(recs, fmt.Sprintf("Your emergency fund covers %.1f months. Growing it to %d months adds a stronger cushion.", emergencyMonths, targetEmergencyMonths))
	}
	if utilization > maxHealthyUtilization {
		recs = append(recs, fmt.Sprintf("Credit utilization is %.1f%%. Keep it below %d%% to protect your credit score.", utilization, maxHealthyUtilization))
	}
	if len(recs) == 0 {
		recs = append(recs, healthyMessage)
	}
	return recs
}
