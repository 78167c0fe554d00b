package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/finsim/internal/buildinfo"
)

// RepoEnv names the environment variable that sets the default --repo.
const RepoEnv = "FINSIM_REPO"

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	repo string
	json bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "finsim",
		Short:   "Household debt payoff, growth, health and cash-flow simulations",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	defaultRepo := os.Getenv(RepoEnv)
	if defaultRepo == "" {
		defaultRepo = "."
	}
	rootCmd.PersistentFlags().StringVar(&opts.repo, "repo", defaultRepo, "project directory (env "+RepoEnv+")")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "print results as JSON")

	rootCmd.AddCommand(
		newInitCommand(),
		newPayoffCommand(opts),
		newGrowCommand(opts),
		newHealthCommand(opts),
		newForecastCommand(opts),
		newScenariosCommand(opts),
	)

	return rootCmd
}
