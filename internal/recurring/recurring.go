// Package recurring finds income and expenses that repeat month over month
// in imported bank transactions.
package recurring

import (
	"sort"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/finsim/internal/model"
)

// MinMonths is how many distinct calendar months a description must appear
// in before it is treated as recurring.
const MinMonths = 2

type group struct {
	description string
	amounts     []decimal.Decimal
	months      map[int]bool
	days        map[int]int
}

// Detect groups txns by normalized description and returns the groups that
// recur across at least MinMonths months, split by sign. Each flow carries
// the mean amount and the most common day of month.
func Detect(txns []model.BankTransaction) (income, expenses []model.RecurringFlow) {
	groups := make(map[string]*group)
	var keys []string
	for _, txn := range txns {
		key := Normalize(txn.Description)
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &group{description: txn.Description, months: make(map[int]bool), days: make(map[int]int)}
			groups[key] = g
			keys = append(keys, key)
		}
		g.amounts = append(g.amounts, txn.Amount)
		g.months[txn.Date.Year()*12+int(txn.Date.Month())] = true
		g.days[txn.Date.Day()]++
	}

	for _, key := range keys {
		g := groups[key]
		if len(g.months) < MinMonths {
			continue
		}
		mean := decimal.Avg(g.amounts[0], g.amounts[1:]...).Round(2)
		if mean.IsZero() {
			continue
		}
		flow := model.RecurringFlow{
			Amount:      mean.InexactFloat64(),
			DayOfMonth:  commonDay(g.days),
			Description: g.description,
		}
		if mean.IsPositive() {
			income = append(income, flow)
		} else {
			expenses = append(expenses, flow)
		}
	}
	sortFlows(income)
	sortFlows(expenses)
	return income, expenses
}

// Normalize upper-cases s, drops digits and punctuation, and collapses
// whitespace so "NETFLIX.COM 4412" and "Netflix.com" group together.
func Normalize(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r):
			return unicode.ToUpper(r)
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, s)
	return strings.Join(strings.Fields(cleaned), " ")
}

// commonDay returns the most frequent day, preferring the earliest on ties.
func commonDay(days map[int]int) int {
	best, bestCount := 0, 0
	for day, count := range days {
		if count > bestCount || count == bestCount && day < best {
			best, bestCount = day, count
		}
	}
	return best
}

func sortFlows(flows []model.RecurringFlow) {
	sort.SliceStable(flows, func(i, j int) bool {
		if flows[i].DayOfMonth != flows[j].DayOfMonth {
			return flows[i].DayOfMonth < flows[j].DayOfMonth
		}
		return flows[i].Description < flows[j].Description
	})
}
