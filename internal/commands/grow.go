package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/finsim/internal/cli"
	"github.com/cleared-dev/finsim/internal/config"
	"github.com/cleared-dev/finsim/internal/growth"
	"github.com/cleared-dev/finsim/internal/limits"
	"github.com/cleared-dev/finsim/internal/model"
	"github.com/cleared-dev/finsim/internal/money"
)

// growInput is what a saved growth scenario was run with.
type growInput struct {
	Years               int     `json:"years"`
	AnnualReturnPercent float64 `json:"annual_return_percent,omitempty"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	InitialBalance      float64 `json:"initial_balance"`
	MonteCarlo          bool    `json:"monte_carlo"`
	Trials              int     `json:"trials,omitempty"`
	Seed                uint64  `json:"seed,omitempty"`
}

func newGrowCommand(opts *globalOptions) *cobra.Command {
	var (
		in     growInput
		saveAs string
	)

	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Project investment growth, deterministically or with Monte Carlo bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(opts.repo)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("return") {
				in.AnnualReturnPercent = p.cfg.Growth.AnnualReturnPercent
			}
			if !cmd.Flags().Changed("initial") {
				in.InitialBalance = money.FromDecimal(p.accounts.Balance(model.AccountTypeInvestment, model.AccountTypeRetirement))
			}
			if !cmd.Flags().Changed("seed") {
				in.Seed = p.cfg.Growth.MonteCarlo.Seed
			}
			return runGrow(cmd, p, opts, in, saveAs)
		},
	}

	cmd.Flags().IntVar(&in.Years, "years", 20, "years to project")
	cmd.Flags().Float64Var(&in.AnnualReturnPercent, "return", 7, "expected annual return in percent")
	cmd.Flags().Float64Var(&in.MonthlyContribution, "contribution", 500, "monthly contribution")
	cmd.Flags().Float64Var(&in.InitialBalance, "initial", 0, "starting balance (default: investment and retirement accounts)")
	cmd.Flags().BoolVar(&in.MonteCarlo, "monte-carlo", false, "simulate randomized returns per risk profile")
	cmd.Flags().Uint64Var(&in.Seed, "seed", 0, "Monte Carlo seed; 0 picks a random one")
	cmd.Flags().StringVar(&saveAs, "save", "", "save the run as a named scenario")

	return cmd
}

func runGrow(cmd *cobra.Command, p *project, opts *globalOptions, in growInput, saveAs string) error {
	in.Years = limits.ClampYears(in.Years)
	in.AnnualReturnPercent = limits.ClampAnnualReturn(in.AnnualReturnPercent)
	in.MonthlyContribution = limits.ClampMonthlyContribution(in.MonthlyContribution)
	in.InitialBalance = limits.ClampInitialBalance(in.InitialBalance)
	out := cmd.OutOrStdout()
	currency := p.cfg.Currency

	if !in.MonteCarlo {
		in.Seed = 0
		entries := growth.Project(in.Years, in.AnnualReturnPercent, in.MonthlyContribution, in.InitialBalance)
		if err := p.saveScenario(cmd, model.ScenarioGrowth, saveAs, in, entries); err != nil {
			return err
		}
		if opts.json {
			return writeJSON(out, entries)
		}
		printProjection(out, in, entries, currency)
		return nil
	}

	in.AnnualReturnPercent = 0
	in.Trials = p.cfg.Growth.MonteCarlo.Trials
	mcOpts := []growth.Option{
		growth.WithTrials(in.Trials),
		growth.WithProfiles(profilesFromConfig(p.cfg.Growth.MonteCarlo)),
	}
	if in.Seed != 0 {
		mcOpts = append(mcOpts, growth.WithSeed(in.Seed))
	}
	entries := growth.MonteCarlo(in.Years, in.InitialBalance, in.MonthlyContribution, mcOpts...)
	if err := p.saveScenario(cmd, model.ScenarioMonteCarlo, saveAs, in, entries); err != nil {
		return err
	}
	if opts.json {
		return writeJSON(out, entries)
	}
	printMonteCarlo(out, in, entries, currency)
	return nil
}

// profilesFromConfig maps the configured profiles onto the three reported bands.
// Load has already checked that all three are present.
func profilesFromConfig(mc config.MonteCarloConfig) growth.Profiles {
	get := func(name string) growth.RiskProfile {
		pc, _ := mc.Profile(name)
		return growth.RiskProfile{Name: pc.Name, AveragePercent: pc.AveragePercent, SpreadPercent: pc.SpreadPercent}
	}
	return growth.Profiles{
		Conservative: get("conservative"),
		Moderate:     get("moderate"),
		Aggressive:   get("aggressive"),
	}
}

func printProjection(w io.Writer, in growInput, entries []model.GrowthProjectionEntry, currency string) {
	fmt.Fprintln(w, cli.RenderTitle(fmt.Sprintf("Growth at %s over %d years", cli.FormatPercent(in.AnnualReturnPercent), in.Years)))

	t := cli.Table{Headers: []string{"Year", "Balance", "Contributions", "Growth"}}
	balances := make([]float64, 0, len(entries))
	for _, e := range entries {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(e.Year),
			cli.FormatMoney(e.Balance, currency),
			cli.FormatMoney(e.Contributions, currency),
			cli.FormatMoney(e.Growth, currency),
		})
		balances = append(balances, e.Balance)
	}
	fmt.Fprint(w, cli.RenderTable(t))
	fmt.Fprintf(w, "  %s\n", cli.RenderSparkline(balances))
}

func printMonteCarlo(w io.Writer, in growInput, entries []model.MonteCarloYearEntry, currency string) {
	fmt.Fprintln(w, cli.RenderTitle(fmt.Sprintf("Monte Carlo median balance over %d years", in.Years)))

	t := cli.Table{Headers: []string{"Year", "Conservative", "Moderate", "Aggressive"}}
	for _, e := range entries {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(e.Year),
			cli.FormatMoney(e.Conservative.Mid, currency),
			cli.FormatMoney(e.Moderate.Mid, currency),
			cli.FormatMoney(e.Aggressive.Mid, currency),
		})
	}
	fmt.Fprint(w, cli.RenderTable(t))

	if len(entries) == 0 {
		return
	}
	last := entries[len(entries)-1]
	spread := cli.Table{
		Title:   fmt.Sprintf("Year %d range", last.Year),
		Headers: []string{"Profile", "10th", "50th", "90th"},
	}
	for _, row := range []struct {
		name string
		band model.Band
	}{
		{"Conservative", last.Conservative},
		{"Moderate", last.Moderate},
		{"Aggressive", last.Aggressive},
	} {
		spread.Rows = append(spread.Rows, []string{
			row.name,
			cli.FormatMoney(row.band.Low, currency),
			cli.FormatMoney(row.band.Mid, currency),
			cli.FormatMoney(row.band.High, currency),
		})
	}
	fmt.Fprint(w, cli.RenderTable(spread))
}
