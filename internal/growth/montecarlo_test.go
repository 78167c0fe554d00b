package growth

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/finsim/internal/model"
)

func TestMonteCarlo_BandsAreOrdered(t *testing.T) {
	entries := MonteCarlo(20, 10000, 500, WithSeed(42))
	require.Len(t, entries, 20)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Year)
		for name, b := range map[string]model.Band{
			"conservative": e.Conservative,
			"moderate":     e.Moderate,
			"aggressive":   e.Aggressive,
		} {
			assert.LessOrEqual(t, b.Low, b.Mid, "%s year %d", name, e.Year)
			assert.LessOrEqual(t, b.Mid, b.High, "%s year %d", name, e.Year)
		}
	}
}

func TestMonteCarlo_ReproducibleWithSameSource(t *testing.T) {
	a := MonteCarlo(15, 2500, 300, WithSource(rand.NewPCG(7, 11)))
	b := MonteCarlo(15, 2500, 300, WithSource(rand.NewPCG(7, 11)))
	assert.Equal(t, a, b)

	c := MonteCarlo(15, 2500, 300, WithSource(rand.NewPCG(8, 11)))
	assert.NotEqual(t, a, c)
}

func TestMonteCarlo_ZeroSpreadMatchesProjection(t *testing.T) {
	flat := RiskProfile{Name: "flat", AveragePercent: 6}
	entries := MonteCarlo(5, 1000, 100, WithSeed(1), WithProfiles(Profiles{
		Conservative: flat,
		Moderate:     flat,
		Aggressive:   flat,
	}))
	projected := Project(5, 6, 100, 1000)

	require.Len(t, entries, 5)
	for i, e := range entries {
		want := projected[i].Balance
		for _, b := range []model.Band{e.Conservative, e.Moderate, e.Aggressive} {
			assert.InDelta(t, want, b.Low, 0.01)
			assert.InDelta(t, want, b.Mid, 0.01)
			assert.InDelta(t, want, b.High, 0.01)
		}
	}
}

func TestMonteCarlo_SingleTrialCollapsesBand(t *testing.T) {
	entries := MonteCarlo(3, 5000, 0, WithSeed(3), WithTrials(1))
	for _, e := range entries {
		assert.Equal(t, e.Moderate.Low, e.Moderate.Mid)
		assert.Equal(t, e.Moderate.Mid, e.Moderate.High)
	}
}

func TestMonteCarlo_NoYears(t *testing.T) {
	assert.Empty(t, MonteCarlo(0, 1000, 100, WithSeed(1)))
}

func TestMonteCarlo_AggressiveWidensSpread(t *testing.T) {
	entries := MonteCarlo(30, 10000, 0, WithSeed(99), WithTrials(400))
	last := entries[len(entries)-1]
	conservativeWidth := last.Conservative.High - last.Conservative.Low
	aggressiveWidth := last.Aggressive.High - last.Aggressive.Low
	assert.Greater(t, aggressiveWidth, conservativeWidth)
}

func TestPercentile_NearestRank(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	assert.Equal(t, 1.0, percentile(values, 10))
	assert.Equal(t, 5.0, percentile(values, 50))
	assert.Equal(t, 9.0, percentile(values, 90))
	assert.Equal(t, 10.0, percentile(values, 100))
	assert.Equal(t, 1.0, percentile(values, 0))
	assert.Equal(t, 0.0, percentile(nil, 50))
}

func TestBand_SortsInput(t *testing.T) {
	b := band([]float64{30, 10, 20})
	assert.Equal(t, 10.0, b.Low)
	assert.Equal(t, 20.0, b.Mid)
	assert.Equal(t, 30.0, b.High)
}
