package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/finsim/internal/cashflow"
	"github.com/cleared-dev/finsim/internal/cli"
	"github.com/cleared-dev/finsim/internal/importer"
	"github.com/cleared-dev/finsim/internal/limits"
	"github.com/cleared-dev/finsim/internal/model"
	"github.com/cleared-dev/finsim/internal/money"
	"github.com/cleared-dev/finsim/internal/recurring"
)

// now is the forecast start clock.
var now = time.Now

// forecastInput is what a saved forecast scenario was run with.
type forecastInput struct {
	Start          time.Time             `json:"start"`
	Days           int                   `json:"days"`
	CurrentBalance float64               `json:"current_balance"`
	Income         []model.RecurringFlow `json:"income"`
	Expenses       []model.RecurringFlow `json:"expenses"`
}

func newForecastCommand(opts *globalOptions) *cobra.Command {
	var (
		days    int
		balance float64
		format  string
		all     bool
		saveAs  string
	)

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project the daily balance from recurring flows found in import/*.csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(opts.repo)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("balance") {
				balance = money.FromDecimal(p.accounts.Balance(model.AccountTypeChecking))
			}
			return runForecast(cmd, p, opts, days, balance, format, all, saveAs)
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "days to forecast")
	cmd.Flags().Float64Var(&balance, "balance", 0, "starting balance (default: checking accounts)")
	cmd.Flags().StringVar(&format, "format", "", "import CSV format (default: detect from header)")
	cmd.Flags().BoolVar(&all, "all", false, "print every day, not only days with activity")
	cmd.Flags().StringVar(&saveAs, "save", "", "save the run as a named scenario")

	return cmd
}

func runForecast(cmd *cobra.Command, p *project, opts *globalOptions, days int, balance float64, format string, all bool, saveAs string) error {
	txns, err := importer.DefaultRegistry().ParseAll(p.root, format)
	if err != nil {
		return fmt.Errorf("reading imports: %w", err)
	}
	income, expenses := recurring.Detect(txns)
	if err := limits.ValidateFlows(append(append([]model.RecurringFlow(nil), income...), expenses...)); err != nil {
		return err
	}
	if len(income)+len(expenses) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "no recurring flows found in %d imported transactions\n", len(txns))
	}

	in := forecastInput{
		Start:          now(),
		Days:           limits.ClampForecastDays(days),
		CurrentBalance: balance,
		Income:         orEmpty(income),
		Expenses:       orEmpty(expenses),
	}
	res := cashflow.Forecast(in.Start, in.CurrentBalance, in.Income, in.Expenses, in.Days)
	if err := p.saveScenario(cmd, model.ScenarioForecast, saveAs, in, res); err != nil {
		return err
	}
	if opts.json {
		return writeJSON(cmd.OutOrStdout(), res)
	}
	printForecast(cmd.OutOrStdout(), in, res, all, p.cfg.Currency)
	return nil
}

func orEmpty(flows []model.RecurringFlow) []model.RecurringFlow {
	if flows == nil {
		return []model.RecurringFlow{}
	}
	return flows
}

func printForecast(w io.Writer, in forecastInput, res []model.CashFlowDay, all bool, currency string) {
	fmt.Fprintln(w, cli.RenderTitle(fmt.Sprintf("Cash flow, next %d days", in.Days)))

	flows := cli.Table{Title: "Recurring flows", Headers: []string{"Description", "Day", "Amount"}}
	for _, f := range append(append([]model.RecurringFlow(nil), in.Income...), in.Expenses...) {
		flows.Rows = append(flows.Rows, []string{f.Description, fmt.Sprint(f.DayOfMonth), cli.FormatSigned(f.Amount, currency)})
	}
	fmt.Fprint(w, cli.RenderTable(flows))

	t := cli.Table{Title: "Projected balance", Headers: []string{"Date", "Income", "Expenses", "Balance", "Activity"}}
	for _, d := range res {
		if !all && d.Label == "" {
			continue
		}
		t.Rows = append(t.Rows, []string{
			cli.FormatDate(d.Date),
			cli.FormatSigned(d.Income, currency),
			cli.FormatSigned(-d.Expenses, currency),
			cli.FormatMoney(d.ProjectedBalance, currency),
			d.Label,
		})
	}
	fmt.Fprint(w, cli.RenderTable(t))

	if low, ok := cashflow.Lowest(res); ok {
		line := fmt.Sprintf("Lowest balance %s on %s", cli.FormatMoney(low.ProjectedBalance, currency), cli.FormatDate(low.Date))
		if low.ProjectedBalance < 0 {
			fmt.Fprintln(w, cli.RenderWarning(line))
		} else {
			fmt.Fprintln(w, "  "+line)
		}
	}
}
