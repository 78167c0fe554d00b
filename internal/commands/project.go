package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/finsim/internal/accounts"
	"github.com/cleared-dev/finsim/internal/config"
	"github.com/cleared-dev/finsim/internal/model"
	"github.com/cleared-dev/finsim/internal/store"
)

// project is an initialized finsim directory with its config and snapshot loaded.
type project struct {
	root     string
	cfg      *config.Config
	accounts *accounts.Service
}

func loadProject(repo string) (*project, error) {
	root, err := filepath.Abs(repo)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no %s in %s (run finsim init first): %w", config.FileName, root, err)
		}
		return nil, err
	}

	svc, err := accounts.Load(root)
	if err != nil {
		return nil, err
	}
	return &project{root: root, cfg: cfg, accounts: svc}, nil
}

func (p *project) openStore() (*store.Store, error) {
	path := p.cfg.Store.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.root, path)
	}
	return store.Open(path)
}

// saveScenario records a run when name is non-empty and reports the new ID on stderr.
func (p *project) saveScenario(cmd *cobra.Command, kind model.ScenarioKind, name string, input, result any) error {
	if name == "" {
		return nil
	}
	s, err := p.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	sc, err := s.Save(kind, name, input, result)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s scenario %q as %s\n", kind, name, sc.ID)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
