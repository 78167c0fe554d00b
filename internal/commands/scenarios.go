package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/finsim/internal/cli"
	"github.com/cleared-dev/finsim/internal/model"
	"github.com/cleared-dev/finsim/internal/store"
)

// shortIDLen is how many ID characters list prints and show accepts as a prefix.
const shortIDLen = 8

func newScenariosCommand(opts *globalOptions) *cobra.Command {
	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Saved simulation runs",
	}
	scenariosCmd.AddCommand(newScenariosListCommand(opts), newScenariosShowCommand(opts))
	return scenariosCmd
}

func newScenariosListCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved scenarios, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(s *store.Store) error {
				list, err := s.List()
				if err != nil {
					return err
				}
				if opts.json {
					return writeJSON(cmd.OutOrStdout(), orEmptyScenarios(list))
				}
				printScenarioList(cmd.OutOrStdout(), list)
				return nil
			})
		},
	}
}

func newScenariosShowCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved scenario's inputs and result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(s *store.Store) error {
				sc, err := resolveScenario(s, args[0])
				if err != nil {
					return err
				}
				if opts.json {
					return writeJSON(cmd.OutOrStdout(), sc)
				}
				return printScenario(cmd.OutOrStdout(), sc)
			})
		},
	}
}

func withStore(opts *globalOptions, fn func(*store.Store) error) error {
	p, err := loadProject(opts.repo)
	if err != nil {
		return err
	}
	s, err := p.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	return fn(s)
}

// resolveScenario accepts a full ID or a unique prefix of one.
func resolveScenario(s *store.Store, id string) (model.Scenario, error) {
	sc, err := s.Get(id)
	if err == nil || !errors.Is(err, store.ErrNotFound) {
		return sc, err
	}

	list, err := s.List()
	if err != nil {
		return model.Scenario{}, err
	}
	var matches []model.Scenario
	for _, c := range list {
		if strings.HasPrefix(c.ID, id) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return model.Scenario{}, fmt.Errorf("%w: %s", store.ErrNotFound, id)
	case 1:
		return matches[0], nil
	default:
		return model.Scenario{}, fmt.Errorf("scenario prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}

func orEmptyScenarios(list []model.Scenario) []model.Scenario {
	if list == nil {
		return []model.Scenario{}
	}
	return list
}

func printScenarioList(w io.Writer, list []model.Scenario) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No saved scenarios. Add --save NAME to payoff, grow, health or forecast.")
		return
	}
	t := cli.Table{Headers: []string{"ID", "Kind", "Name", "Created"}}
	for _, sc := range list {
		t.Rows = append(t.Rows, []string{
			sc.ID[:min(shortIDLen, len(sc.ID))],
			string(sc.Kind),
			sc.Name,
			sc.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	fmt.Fprint(w, cli.RenderTable(t))
}

func printScenario(w io.Writer, sc model.Scenario) error {
	fmt.Fprintln(w, cli.RenderTitle(fmt.Sprintf("%s: %s", sc.Kind, sc.Name)))
	fmt.Fprint(w, cli.RenderKeyValues([][2]string{
		{"ID", sc.ID},
		{"Created", sc.CreatedAt.Local().Format("2006-01-02 15:04:05")},
	}))
	for _, part := range []struct {
		title string
		raw   json.RawMessage
	}{
		{"Input", sc.Input},
		{"Result", sc.Result},
	} {
		var buf bytes.Buffer
		if err := json.Indent(&buf, part.raw, "  ", "  "); err != nil {
			return fmt.Errorf("formatting %s: %w", strings.ToLower(part.title), err)
		}
		fmt.Fprintf(w, "\n  %s\n  %s\n", part.title, buf.String())
	}
	return nil
}
