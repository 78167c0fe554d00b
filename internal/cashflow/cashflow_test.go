package cashflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/finsim/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestForecast_PayAndRent(t *testing.T) {
	income := []model.RecurringFlow{{Amount: 2000, DayOfMonth: 1, Description: "Pay"}}
	expenses := []model.RecurringFlow{{Amount: -500, DayOfMonth: 15, Description: "Rent"}}

	days := Forecast(date(2025, 3, 1), 1000, income, expenses, 31)
	require.Len(t, days, 31)

	prev := 1000.0
	for _, d := range days {
		switch d.Date.Day() {
		case 1:
			assert.Equal(t, prev+2000, d.ProjectedBalance)
			assert.Equal(t, 2000.0, d.Income)
			assert.Equal(t, "+Pay", d.Label)
		case 15:
			assert.Equal(t, prev-500, d.ProjectedBalance)
			assert.Equal(t, 500.0, d.Expenses)
			assert.Equal(t, "-Rent", d.Label)
		default:
			assert.Equal(t, prev, d.ProjectedBalance, "day %s", d.Date.Format("2006-01-02"))
			assert.Empty(t, d.Label)
			assert.Zero(t, d.Income)
			assert.Zero(t, d.Expenses)
		}
		prev = d.ProjectedBalance
	}
	assert.Equal(t, 2500.0, days[30].ProjectedBalance)
}

func TestForecast_StartsMidMonthAndWraps(t *testing.T) {
	income := []model.RecurringFlow{{Amount: 100, DayOfMonth: 2, Description: "Refund"}}
	days := Forecast(time.Date(2025, 1, 30, 17, 45, 0, 0, time.UTC), 0, income, nil, 5)

	require.Len(t, days, 5)
	assert.Equal(t, date(2025, 1, 30), days[0].Date)
	assert.Equal(t, date(2025, 2, 3), days[4].Date)
	assert.Equal(t, 0.0, days[2].ProjectedBalance)
	assert.Equal(t, 100.0, days[3].ProjectedBalance)
}

func TestForecast_Day31SkipsShortMonths(t *testing.T) {
	expenses := []model.RecurringFlow{{Amount: 50, DayOfMonth: 31, Description: "Gym"}}
	// Feb and Apr 2025 have no 31st; Mar does.
	days := Forecast(date(2025, 2, 1), 1000, nil, expenses, 89)

	fired := 0
	for _, d := range days {
		if d.Expenses > 0 {
			fired++
			assert.Equal(t, date(2025, 3, 31), d.Date)
		}
	}
	assert.Equal(t, 1, fired)
	assert.Equal(t, 950.0, days[len(days)-1].ProjectedBalance)
}

func TestForecast_MultipleFlowsSameDay(t *testing.T) {
	income := []model.RecurringFlow{
		{Amount: 1500, DayOfMonth: 5, Description: "Salary"},
		{Amount: 200.25, DayOfMonth: 5, Description: "Side gig"},
	}
	expenses := []model.RecurringFlow{
		{Amount: 120, DayOfMonth: 5, Description: "Phone"},
		{Amount: -80, DayOfMonth: 5, Description: "Internet"},
	}
	days := Forecast(date(2025, 6, 5), 0, income, expenses, 1)

	require.Len(t, days, 1)
	assert.Equal(t, "+Salary, +Side gig, -Phone, -Internet", days[0].Label)
	assert.Equal(t, 1700.25, days[0].Income)
	assert.Equal(t, 200.0, days[0].Expenses)
	assert.Equal(t, 1500.25, days[0].ProjectedBalance)
}

func TestForecast_NoDays(t *testing.T) {
	assert.Empty(t, Forecast(date(2025, 1, 1), 10, nil, nil, 0))
}

func TestLowest(t *testing.T) {
	expenses := []model.RecurringFlow{{Amount: 900, DayOfMonth: 10, Description: "Rent"}}
	income := []model.RecurringFlow{{Amount: 1000, DayOfMonth: 20, Description: "Pay"}}
	days := Forecast(date(2025, 5, 1), 500, income, expenses, 30)

	low, ok := Lowest(days)
	require.True(t, ok)
	assert.Equal(t, date(2025, 5, 10), low.Date)
	assert.Equal(t, -400.0, low.ProjectedBalance)

	_, ok = Lowest(nil)
	assert.False(t, ok)
}
