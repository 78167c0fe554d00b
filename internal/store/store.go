// Package store keeps saved simulation runs in a SQLite database.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/cleared-dev/finsim/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned by Get for an unknown scenario ID.
var ErrNotFound = errors.New("scenario not found")

// timeLayout sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store provides SQLite-backed scenario persistence.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the scenario database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening scenario db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the scenario database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records one engine run. input and result are stored as JSON.
func (s *Store) Save(kind model.ScenarioKind, name string, input, result any) (model.Scenario, error) {
	in, err := json.Marshal(input)
	if err != nil {
		return model.Scenario{}, fmt.Errorf("encoding scenario input: %w", err)
	}
	out, err := json.Marshal(result)
	if err != nil {
		return model.Scenario{}, fmt.Errorf("encoding scenario result: %w", err)
	}

	sc := model.Scenario{
		ID:        uuid.NewString(),
		Kind:      kind,
		Name:      name,
		CreatedAt: s.now().UTC(),
		Input:     in,
		Result:    out,
	}
	_, err = s.db.Exec(`INSERT INTO scenarios (id, kind, name, created_at, input_json, result_json)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sc.ID, string(sc.Kind), sc.Name, sc.CreatedAt.Format(timeLayout), string(in), string(out),
	)
	if err != nil {
		return model.Scenario{}, fmt.Errorf("saving scenario %q: %w", name, err)
	}
	return sc, nil
}

// List returns every saved scenario, newest first.
func (s *Store) List() ([]model.Scenario, error) {
	rows, err := s.db.Query(`SELECT id, kind, name, created_at, input_json, result_json
		FROM scenarios ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Scenario
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// Get returns the scenario with id, or ErrNotFound.
func (s *Store) Get(id string) (model.Scenario, error) {
	row := s.db.QueryRow(`SELECT id, kind, name, created_at, input_json, result_json
		FROM scenarios WHERE id = ?`, id)
	sc, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Scenario{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sc, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScenario(r scanner) (model.Scenario, error) {
	var (
		sc            model.Scenario
		kind, created string
		input, result string
	)
	if err := r.Scan(&sc.ID, &kind, &sc.Name, &created, &input, &result); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Scenario{}, err
		}
		return model.Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return model.Scenario{}, fmt.Errorf("parsing created_at %q: %w", created, err)
	}
	sc.Kind = model.ScenarioKind(kind)
	sc.CreatedAt = t
	sc.Input = json.RawMessage(input)
	sc.Result = json.RawMessage(result)
	return sc, nil
}
