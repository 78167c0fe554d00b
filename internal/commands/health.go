package commands

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/finsim/internal/cli"
	"github.com/cleared-dev/finsim/internal/health"
	"github.com/cleared-dev/finsim/internal/model"
)

func newHealthCommand(opts *globalOptions) *cobra.Command {
	var (
		income, expenses float64
		saveAs           string
	)

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Score the household's financial health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(opts.repo)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("income") {
				income = p.cfg.Household.MonthlyIncome
			}
			if !cmd.Flags().Changed("expenses") {
				expenses = p.cfg.Household.MonthlyExpenses
			}
			return runHealth(cmd, p, opts, income, expenses, saveAs)
		},
	}

	cmd.Flags().Float64Var(&income, "income", 0, "monthly take-home income (default from finsim.yaml)")
	cmd.Flags().Float64Var(&expenses, "expenses", 0, "monthly expenses (default from finsim.yaml)")
	cmd.Flags().StringVar(&saveAs, "save", "", "save the run as a named scenario")

	return cmd
}

func runHealth(cmd *cobra.Command, p *project, opts *globalOptions, income, expenses float64, saveAs string) error {
	if err := checkHousehold(income, expenses); err != nil {
		return err
	}

	in := p.accounts.HealthInput(income, expenses)
	res := health.Score(in)
	if err := p.saveScenario(cmd, model.ScenarioHealth, saveAs, in, res); err != nil {
		return err
	}
	if opts.json {
		return writeJSON(cmd.OutOrStdout(), res)
	}
	printHealth(cmd.OutOrStdout(), res)
	return nil
}

func checkHousehold(income, expenses float64) error {
	var errs []error
	if math.IsNaN(income) || math.IsInf(income, 0) || income < 0 {
		errs = append(errs, fmt.Errorf("monthly income %v must be a non-negative number", income))
	}
	if math.IsNaN(expenses) || math.IsInf(expenses, 0) || expenses < 0 {
		errs = append(errs, fmt.Errorf("monthly expenses %v must be a non-negative number", expenses))
	}
	return errors.Join(errs...)
}

func printHealth(w io.Writer, res model.HealthScoreResult) {
	fmt.Fprintln(w, cli.RenderTitle(fmt.Sprintf("Financial health: %d/100", res.Score)))
	fmt.Fprintf(w, "  Grade %s\n\n", cli.RenderGrade(string(res.Grade)))

	t := cli.Table{Headers: []string{"Component", "Value", "Score"}}
	for _, c := range res.Components() {
		t.Rows = append(t.Rows, []string{c.Name, c.Label, fmt.Sprintf("%.1f / %d", c.Score, health.ComponentMax)})
	}
	fmt.Fprint(w, cli.RenderTable(t))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Recommendations")
	for _, r := range res.Recommendations {
		fmt.Fprintf(w, "  - %s\n", r)
	}
}
