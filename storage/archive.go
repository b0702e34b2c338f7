package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/stepdoku/stepdoku/puzzle"
)

/*

Run archive

Finished runs go to Postgres: the starting grid, the outcome, and
the full move list as JSONB so individual runs can be replayed or
queried by strategy.

*/

// Outcomes of a run.
const (
	OutcomeSolved       = "solved"
	OutcomeStalled      = "stalled"
	OutcomeContradicted = "contradicted"
)

// A Run is one archived solve.
type Run struct {
	ID        uuid.UUID
	Puzzle    string // start or checkpoint text the run began from
	Outcome   string
	Moves     []puzzle.Move
	CreatedAt time.Time
}

//go:embed migrations/*.sql
var migrationFiles embed.FS

// migrateSchema brings the archive schema up to date.  It uses a
// short-lived database/sql connection through the pgx stdlib
// adapter; the store's own pool is opened afterwards.
func migrateSchema(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}

// ArchiveRun records a finished run.
func (s *Store) ArchiveRun(ctx context.Context, run *Run) error {
	if s.db == nil {
		return ErrDisabled
	}
	moves, err := json.Marshal(run.Moves)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx,
		`INSERT INTO runs (id, puzzle, outcome, moves, move_count)
		 VALUES ($1, $2, $3, $4, $5)`,
		run.ID.String(), run.Puzzle, run.Outcome, string(moves), len(run.Moves))
	if err != nil {
		return fmt.Errorf("archiving run %s: %w", run.ID, err)
	}
	return nil
}

// ListRuns returns the most recent archived runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if s.db == nil {
		return nil, ErrDisabled
	}
	rows, err := s.db.Query(ctx,
		`SELECT id::text, puzzle, outcome, moves, created_at
		 FROM runs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var runs []Run
	for rows.Next() {
		var (
			run   Run
			id    string
			moves []byte
		)
		if err := rows.Scan(&id, &run.Puzzle, &run.Outcome, &moves, &run.CreatedAt); err != nil {
			return nil, err
		}
		if run.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("archived run has bad id %q: %w", id, err)
		}
		if err := json.Unmarshal(moves, &run.Moves); err != nil {
			return nil, fmt.Errorf("archived run %s has bad moves: %w", id, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun fetches one archived run by id.
func (s *Store) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	if s.db == nil {
		return nil, ErrDisabled
	}
	var (
		run   Run
		moves []byte
	)
	run.ID = runID
	err := s.db.QueryRow(ctx,
		`SELECT puzzle, outcome, moves, created_at FROM runs WHERE id = $1`,
		runID.String()).Scan(&run.Puzzle, &run.Outcome, &moves, &run.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(moves, &run.Moves); err != nil {
		return nil, fmt.Errorf("archived run %s has bad moves: %w", runID, err)
	}
	return &run, nil
}
