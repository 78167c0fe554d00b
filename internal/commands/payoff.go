package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/finsim/internal/accounts"
	"github.com/cleared-dev/finsim/internal/cli"
	"github.com/cleared-dev/finsim/internal/limits"
	"github.com/cleared-dev/finsim/internal/model"
	"github.com/cleared-dev/finsim/internal/payoff"
)

const strategyCompare = "compare"

// payoffInput is what a saved payoff scenario was run with.
type payoffInput struct {
	Strategy     string       `json:"strategy"`
	ExtraMonthly float64      `json:"extra_monthly"`
	Debts        []model.Debt `json:"debts"`
}

func newPayoffCommand(opts *globalOptions) *cobra.Command {
	var (
		strategy string
		extra    float64
		schedule bool
		saveAs   string
	)

	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Simulate paying off every debt in the snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(opts.repo)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("strategy") {
				strategy = p.cfg.Payoff.Strategy
			}
			if !cmd.Flags().Changed("extra") {
				extra = p.cfg.Payoff.ExtraMonthly
			}
			return runPayoff(cmd, p, opts, strategy, extra, schedule, saveAs)
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "avalanche", "avalanche, snowball or compare")
	cmd.Flags().Float64Var(&extra, "extra", 0, "extra monthly payment on top of minimums")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "print the month-by-month schedule")
	cmd.Flags().StringVar(&saveAs, "save", "", "save the run as a named scenario")

	return cmd
}

func runPayoff(cmd *cobra.Command, p *project, opts *globalOptions, strategy string, extra float64, schedule bool, saveAs string) error {
	debts := p.accounts.Debts()
	if err := limits.ValidateDebts(debts); err != nil {
		return fmt.Errorf("invalid debts in %s: %w", accounts.RelPath, err)
	}
	clamped := limits.ClampExtraMonthly(extra)
	if clamped != extra {
		fmt.Fprintf(cmd.ErrOrStderr(), "extra payment clamped to %s\n", cli.FormatMoney(clamped, p.cfg.Currency))
	}
	input := payoffInput{Strategy: strategy, ExtraMonthly: clamped, Debts: debts}
	out := cmd.OutOrStdout()

	if strategy == strategyCompare {
		cmp := payoff.CompareStrategies(debts, clamped)
		if err := p.saveScenario(cmd, model.ScenarioPayoff, saveAs, input, cmp); err != nil {
			return err
		}
		if opts.json {
			return writeJSON(out, cmp)
		}
		printComparison(out, cmp, p.cfg.Currency)
		return nil
	}

	s, err := model.ParseStrategy(strategy)
	if err != nil {
		return err
	}
	res := payoff.Simulate(debts, s, clamped)
	if len(res.DebtPayoffOrder) < len(debts) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d of %d debts are not paid off within %d months\n",
			len(debts)-len(res.DebtPayoffOrder), len(debts), payoff.MaxMonths)
	}
	if err := p.saveScenario(cmd, model.ScenarioPayoff, saveAs, input, res); err != nil {
		return err
	}
	if opts.json {
		return writeJSON(out, res)
	}
	printPayoff(out, res, schedule, p.cfg.Currency)
	return nil
}

func printPayoff(w io.Writer, res model.PayoffResult, schedule bool, currency string) {
	fmt.Fprintln(w, cli.RenderTitle("Debt payoff: "+string(res.Strategy)))
	fmt.Fprint(w, cli.RenderKeyValues([][2]string{
		{"Debt-free in", fmt.Sprintf("%d months (%s)", res.Months, cli.FormatMonths(res.Months))},
		{"Total paid", cli.FormatMoney(res.TotalPaid, currency)},
		{"Total interest", cli.FormatMoney(res.TotalInterest, currency)},
	}))
	fmt.Fprintln(w)

	order := cli.Table{Title: "Payoff order", Headers: []string{"Debt", "Month", "After"}}
	for _, d := range res.DebtPayoffOrder {
		order.Rows = append(order.Rows, []string{d.Name, strconv.Itoa(d.PayoffMonth), cli.FormatMonths(d.PayoffMonth)})
	}
	fmt.Fprint(w, cli.RenderTable(order))

	if !schedule {
		return
	}
	sched := cli.Table{Title: "Schedule", Headers: []string{"Month", "Payment", "Interest", "Balance"}}
	for _, m := range res.Schedule {
		sched.Rows = append(sched.Rows, []string{
			strconv.Itoa(m.Month),
			cli.FormatMoney(m.TotalPayment, currency),
			cli.FormatMoney(m.TotalInterest, currency),
			cli.FormatMoney(m.TotalBalance, currency),
		})
	}
	fmt.Fprint(w, cli.RenderTable(sched))
}

func printComparison(w io.Writer, cmp model.StrategyComparison, currency string) {
	fmt.Fprintln(w, cli.RenderTitle("Avalanche vs snowball"))
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"", "Avalanche", "Snowball"},
		Rows: [][]string{
			{"Months", strconv.Itoa(cmp.Avalanche.Months), strconv.Itoa(cmp.Snowball.Months)},
			{"Total paid", cli.FormatMoney(cmp.Avalanche.TotalPaid, currency), cli.FormatMoney(cmp.Snowball.TotalPaid, currency)},
			{"Total interest", cli.FormatMoney(cmp.Avalanche.TotalInterest, currency), cli.FormatMoney(cmp.Snowball.TotalInterest, currency)},
			{"First paid off", firstPaidOff(cmp.Avalanche), firstPaidOff(cmp.Snowball)},
		},
	}))

	switch {
	case cmp.InterestSaved > 0:
		fmt.Fprintf(w, "Avalanche saves %s in interest and %d months.\n", cli.FormatMoney(cmp.InterestSaved, currency), cmp.MonthsSaved)
	case cmp.InterestSaved < 0:
		fmt.Fprintf(w, "Snowball saves %s in interest and %d months.\n", cli.FormatMoney(-cmp.InterestSaved, currency), -cmp.MonthsSaved)
	default:
		fmt.Fprintln(w, "Both strategies cost the same.")
	}
}

func firstPaidOff(res model.PayoffResult) string {
	if len(res.DebtPayoffOrder) == 0 {
		return "-"
	}
	return res.DebtPayoffOrder[0].Name
}
