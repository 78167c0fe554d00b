package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up at the project root.
const FileName = "finsim.yaml"

// Config represents the top-level finsim.yaml configuration.
type Config struct {
	Currency  string          `yaml:"currency"`
	Household HouseholdConfig `yaml:"household"`
	Payoff    PayoffConfig    `yaml:"payoff"`
	Growth    GrowthConfig    `yaml:"growth"`
	Store     StoreConfig     `yaml:"store"`
}

// HouseholdConfig holds the monthly cash figures the health score needs.
type HouseholdConfig struct {
	MonthlyIncome   float64 `yaml:"monthly_income"`
	MonthlyExpenses float64 `yaml:"monthly_expenses"`
}

// PayoffConfig sets defaults for the payoff command.
type PayoffConfig struct {
	Strategy     string  `yaml:"strategy"` // avalanche, snowball or compare
	ExtraMonthly float64 `yaml:"extra_monthly"`
}

// GrowthConfig sets defaults for the grow command.
type GrowthConfig struct {
	AnnualReturnPercent float64          `yaml:"annual_return_percent"`
	MonteCarlo          MonteCarloConfig `yaml:"monte_carlo"`
}

// MonteCarloConfig controls randomized projections.
type MonteCarloConfig struct {
	Trials   int             `yaml:"trials"`
	Seed     uint64          `yaml:"seed"` // 0 seeds from entropy on every run
	Profiles []ProfileConfig `yaml:"profiles"`
}

// ProfileConfig is one risk profile's return distribution.
type ProfileConfig struct {
	Name           string  `yaml:"name"`
	AveragePercent float64 `yaml:"average_percent"`
	SpreadPercent  float64 `yaml:"spread_percent"`
}

// StoreConfig locates the saved-scenario database.
type StoreConfig struct {
	Path string `yaml:"path"` // relative to the project root
}

// ProfileNames are the risk profiles every config must define, in report order.
var ProfileNames = []string{"conservative", "moderate", "aggressive"}

// Profile returns the profile called name.
func (m MonteCarloConfig) Profile(name string) (ProfileConfig, bool) {
	for _, p := range m.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return ProfileConfig{}, false
}

// Validate reports every problem in cfg.
func (c *Config) Validate() error {
	var errs []error
	if c.Currency == "" {
		errs = append(errs, errors.New("currency is required"))
	}
	switch c.Payoff.Strategy {
	case "avalanche", "snowball", "compare":
	default:
		errs = append(errs, fmt.Errorf("payoff.strategy %q: want avalanche, snowball or compare", c.Payoff.Strategy))
	}
	if c.Growth.MonteCarlo.Trials < 1 {
		errs = append(errs, fmt.Errorf("growth.monte_carlo.trials must be at least 1, got %d", c.Growth.MonteCarlo.Trials))
	}
	for _, name := range ProfileNames {
		p, ok := c.Growth.MonteCarlo.Profile(name)
		if !ok {
			errs = append(errs, fmt.Errorf("growth.monte_carlo.profiles: missing %q", name))
			continue
		}
		if p.SpreadPercent < 0 {
			errs = append(errs, fmt.Errorf("growth.monte_carlo.profiles: %s spread_percent is negative", name))
		}
	}
	if c.Store.Path == "" {
		errs = append(errs, errors.New("store.path is required"))
	}
	return errors.Join(errs...)
}

// Load reads a finsim.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Currency: "USD",
		Household: HouseholdConfig{
			MonthlyIncome:   5000,
			MonthlyExpenses: 4000,
		},
		Payoff: PayoffConfig{
			Strategy: "avalanche",
		},
		Growth: GrowthConfig{
			AnnualReturnPercent: 7,
			MonteCarlo: MonteCarloConfig{
				Trials: 50,
				Profiles: []ProfileConfig{
					{Name: "conservative", AveragePercent: 5, SpreadPercent: 8},
					{Name: "moderate", AveragePercent: 7, SpreadPercent: 12},
					{Name: "aggressive", AveragePercent: 10, SpreadPercent: 18},
				},
			},
		},
		Store: StoreConfig{
			Path: "data/scenarios.db",
		},
	}
}
