// Package store persists simulation run history in a SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dicebar-xyz/go-dicebar/results"
)

// ErrNotFound reports a run ID with no stored row.
var ErrNotFound = errors.New("run not found")

// Store handles SQLite database operations for run history.
type Store struct {
	db *sql.DB
}

// Run is one stored run record. Summary fields are denormalized for cheap
// listing; the full results document rides along as JSON.
type Run struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Faces        int       `json:"faces"`
	Retries      int       `json:"retries"`
	Trials       int       `json:"trials"`
	Seed         uint64    `json:"seed"`
	Mean         float64   `json:"mean"`
	Std          float64   `json:"std"`
	ExactMean    float64   `json:"exact_mean"`
	ExpectedCost float64   `json:"expected_cost"`
	ResultsJSON  string    `json:"-"`
}

// Results decodes the stored results document.
func (r *Run) Results() (*results.Results, error) {
	return results.FromJSON(r.ResultsJSON)
}

// New creates a new Store backed by the database at dbPath.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		faces INTEGER NOT NULL,
		retries INTEGER NOT NULL,
		trials INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		mean REAL NOT NULL,
		std REAL NOT NULL,
		exact_mean REAL NOT NULL,
		expected_cost REAL NOT NULL,
		results_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	CREATE INDEX IF NOT EXISTS idx_runs_game ON runs(faces, retries);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a completed run, keyed by its run ID.
func (s *Store) Save(res *results.Results) error {
	doc, err := results.ToJSON(res)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	var exactMean, cost float64
	if res.Analysis != nil {
		exactMean = res.Analysis.ExactMean
		if res.Analysis.Cost != nil {
			cost = res.Analysis.Cost.Total
		}
	}

	_, err = s.db.Exec(`
		INSERT INTO runs (id, created_at, faces, retries, trials, seed, mean, std, exact_mean, expected_cost, results_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.Metadata.RunID,
		res.Metadata.Timestamp,
		res.Game.Faces,
		res.Game.Retries,
		res.Simulation.Trials,
		res.Simulation.Seed,
		res.Results.Summary.Mean,
		res.Results.Summary.Std,
		exactMean,
		cost,
		doc,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	return nil
}

// Get retrieves a stored run by ID.
func (s *Store) Get(id string) (*Run, error) {
	row := s.db.QueryRow(`
		SELECT id, created_at, faces, retries, trials, seed, mean, std, exact_mean, expected_cost, results_json
		FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}

	return run, nil
}

// List returns the most recent runs, newest first, up to limit.
func (s *Store) List(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, created_at, faces, retries, trials, seed, mean, std, exact_mean, expected_cost, results_json
		FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Best returns the stored run with the lowest simulated mean for a game.
func (s *Store) Best(faces, retries int) (*Run, error) {
	row := s.db.QueryRow(`
		SELECT id, created_at, faces, retries, trials, seed, mean, std, exact_mean, expected_cost, results_json
		FROM runs WHERE faces = ? AND retries = ? ORDER BY mean LIMIT 1`, faces, retries)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no runs for %d faces, %d retries", ErrNotFound, faces, retries)
	}
	if err != nil {
		return nil, fmt.Errorf("query best run: %w", err)
	}

	return run, nil
}

// Delete removes a stored run by ID.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var run Run
	err := sc.Scan(
		&run.ID,
		&run.CreatedAt,
		&run.Faces,
		&run.Retries,
		&run.Trials,
		&run.Seed,
		&run.Mean,
		&run.Std,
		&run.ExactMean,
		&run.ExpectedCost,
		&run.ResultsJSON,
	)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
