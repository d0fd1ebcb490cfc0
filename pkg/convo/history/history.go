// Package history archives completed runs in a SQLite database so past
// reports can be compared across exports. Only final results are stored;
// intermediate vectors and matrices never touch disk.
package history

import (
	"context"
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// Run is one archived invocation.
type Run struct {
	ID        string
	CreatedAt time.Time
	InputPath string
	Options   string // JSON snapshot of the effective options
	Report    string // JSON-rendered report
}

// Store wraps the run archive database.
type Store struct {
	db      *sql.DB
	entropy *ulid.MonotonicEntropy
}

// Open opens (creating if needed) the archive at path with WAL mode
// enabled and the schema initialized.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	input_path TEXT NOT NULL,
	options TEXT,
	report TEXT
);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun appends one run record and returns it with its generated ID.
func (s *Store) SaveRun(ctx context.Context, inputPath, options, report string) (Run, error) {
	run := Run{
		ID:        ulid.MustNew(ulid.Now(), s.entropy).String(),
		CreatedAt: time.Now().UTC(),
		InputPath: inputPath,
		Options:   options,
		Report:    report,
	}

	const stmt = `INSERT INTO runs (id, created_at, input_path, options, report) VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, stmt,
		run.ID,
		run.CreatedAt.Format(time.RFC3339Nano),
		run.InputPath,
		run.Options,
		run.Report,
	)
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

// Recent returns up to limit runs, newest first. ULIDs sort
// lexicographically by creation time, so the ID is the sort key.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, input_path, options, report FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var created string
		if err := rows.Scan(&run.ID, &created, &run.InputPath, &run.Options, &run.Report); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			run.CreatedAt = ts
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
