package growth

import (
	"math"
	"math/rand/v2"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/finsim/internal/model"
	"github.com/cleared-dev/finsim/internal/money"
)

// DefaultTrials is the number of simulated paths per risk profile.
const DefaultTrials = 50

// Percentiles extracted from the trial balances of each year.
const (
	LowPercentile  = 10
	MidPercentile  = 50
	HighPercentile = 90
)

// RiskProfile describes a return distribution. Monthly returns are drawn
// uniformly from avg/12 ± spread/12; this is a deliberate simplification of
// a normal model and changing it changes the bands materially.
type RiskProfile struct {
	Name           string
	AveragePercent float64
	SpreadPercent  float64
}

// Profiles is the fixed set of three bands reported per year.
type Profiles struct {
	Conservative RiskProfile
	Moderate     RiskProfile
	Aggressive   RiskProfile
}

// DefaultProfiles returns the stock conservative/moderate/aggressive mix.
func DefaultProfiles() Profiles {
	return Profiles{
		Conservative: RiskProfile{Name: "conservative", AveragePercent: 5, SpreadPercent: 8},
		Moderate:     RiskProfile{Name: "moderate", AveragePercent: 7, SpreadPercent: 12},
		Aggressive:   RiskProfile{Name: "aggressive", AveragePercent: 10, SpreadPercent: 18},
	}
}

func (p Profiles) list() []RiskProfile {
	return []RiskProfile{p.Conservative, p.Moderate, p.Aggressive}
}

type options struct {
	src      rand.Source
	trials   int
	profiles Profiles
}

// Option configures MonteCarlo.
type Option func(*options)

// WithSource sets the entropy source. Seeds for every trial are drawn from it
// before any trial runs, so a deterministic source yields identical output.
func WithSource(src rand.Source) Option {
	return func(o *options) { o.src = src }
}

// WithSeed is shorthand for WithSource over a PCG seeded with seed.
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// WithTrials overrides the number of trials per profile. Values below 1 are ignored.
func WithTrials(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.trials = n
		}
	}
}

// WithProfiles replaces the default risk profiles.
func WithProfiles(p Profiles) Option {
	return func(o *options) { o.profiles = p }
}

// MonteCarlo simulates independent return paths for each risk profile and
// reports, per year, the 10th/50th/90th percentile balances.
func MonteCarlo(years int, initialBalance, monthlyContribution float64, opts ...Option) []model.MonteCarloYearEntry {
	o := options{trials: DefaultTrials, profiles: DefaultProfiles()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	if years < 1 {
		return []model.MonteCarloYearEntry{}
	}

	profiles := o.profiles.list()

	// balances[profile][trial][year-1]
	balances := make([][][]float64, len(profiles))
	type task struct {
		profile, trial int
		seed1, seed2   uint64
	}
	tasks := make([]task, 0, len(profiles)*o.trials)
	for p := range profiles {
		balances[p] = make([][]float64, o.trials)
		for trial := 0; trial < o.trials; trial++ {
			tasks = append(tasks, task{profile: p, trial: trial, seed1: o.src.Uint64(), seed2: o.src.Uint64()})
		}
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, t := range tasks {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(t.seed1, t.seed2))
			balances[t.profile][t.trial] = runTrial(rng, profiles[t.profile], years, initialBalance, monthlyContribution)
			return nil
		})
	}
	_ = g.Wait()

	entries := make([]model.MonteCarloYearEntry, years)
	column := make([]float64, o.trials)
	for y := 0; y < years; y++ {
		bands := make([]model.Band, len(profiles))
		for p := range profiles {
			for trial := range column {
				column[trial] = balances[p][trial][y]
			}
			bands[p] = band(column)
		}
		entries[y] = model.MonteCarloYearEntry{
			Year:         y + 1,
			Conservative: bands[0],
			Moderate:     bands[1],
			Aggressive:   bands[2],
		}
	}
	return entries
}

// runTrial returns the year-end balances of one randomized path.
func runTrial(rng *rand.Rand, p RiskProfile, years int, initialBalance, monthlyContribution float64) []float64 {
	avg := p.AveragePercent / 100 / MonthsPerYear
	spread := p.SpreadPercent / 100 / MonthsPerYear

	out := make([]float64, years)
	balance := initialBalance
	for y := 0; y < years; y++ {
		for m := 0; m < MonthsPerYear; m++ {
			r := avg + spread*(2*rng.Float64()-1)
			balance = balance*(1+r) + monthlyContribution
		}
		out[y] = balance
	}
	return out
}

// band sorts values in place and picks the configured percentiles.
func band(values []float64) model.Band {
	sort.Float64s(values)
	return model.Band{
		Low:  money.Round(percentile(values, LowPercentile)),
		Mid:  money.Round(percentile(values, MidPercentile)),
		High: money.Round(percentile(values, HighPercentile)),
	}
}

// percentile returns the nearest-rank percentile of sorted values.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(p / 100 * float64(len(sorted))))
	idx := min(max(rank-1, 0), len(sorted)-1)
	return sorted[idx]
}
