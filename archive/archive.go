// Package archive persists completed runs to SQLite: the level, the
// completion time, and the full recorded sequences of the clones that
// solved it. Winning recordings can be dumped later for analysis.
package archive

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hollowmoor/echoes/loop"
)

// Store manages the run archive database.
type Store struct {
	db *sql.DB
}

// Run is one completed level attempt.
type Run struct {
	ID          int64
	Level       string
	Seconds     float64
	CloneCount  int
	CompletedAt time.Time
}

// New opens (or creates) the archive database and initializes the schema.
func New(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open archive db: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		level        TEXT NOT NULL,
		seconds      REAL NOT NULL,
		clone_count  INTEGER NOT NULL,
		completed_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS recordings (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id   INTEGER NOT NULL REFERENCES runs(id),
		identity INTEGER NOT NULL,
		samples  TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level, seconds);
	CREATE INDEX IF NOT EXISTS idx_recordings_run ON recordings(run_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun stores a completed run and the sequences of its clones, keyed by
// clone identity. Returns the new run's ID.
func (s *Store) SaveRun(level string, seconds float64, sequences map[int]loop.Sequence) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (level, seconds, clone_count, completed_at) VALUES (?, ?, ?, ?)`,
		level, seconds, len(sequences), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	for identity, seq := range sequences {
		samples, err := json.Marshal(seq)
		if err != nil {
			return 0, fmt.Errorf("marshal sequence %d: %w", identity, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO recordings (run_id, identity, samples) VALUES (?, ?, ?)`,
			runID, identity, string(samples),
		); err != nil {
			return 0, fmt.Errorf("insert recording %d: %w", identity, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return runID, nil
}

// BestRuns returns the fastest runs for a level, quickest first.
func (s *Store) BestRuns(level string, limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, level, seconds, clone_count, completed_at
		 FROM runs WHERE level = ? ORDER BY seconds ASC LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var completedAt string
		if err := rows.Scan(&r.ID, &r.Level, &r.Seconds, &r.CloneCount, &completedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CompletedAt, _ = time.Parse(time.RFC3339, completedAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Recordings returns the stored sequences of a run keyed by clone identity.
func (s *Store) Recordings(runID int64) (map[int]loop.Sequence, error) {
	rows, err := s.db.Query(
		`SELECT identity, samples FROM recordings WHERE run_id = ? ORDER BY identity`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query recordings: %w", err)
	}
	defer rows.Close()

	out := map[int]loop.Sequence{}
	for rows.Next() {
		var identity int
		var samples string
		if err := rows.Scan(&identity, &samples); err != nil {
			return nil, fmt.Errorf("scan recording: %w", err)
		}
		var seq loop.Sequence
		if err := json.Unmarshal([]byte(samples), &seq); err != nil {
			return nil, fmt.Errorf("unmarshal sequence %d: %w", identity, err)
		}
		out[identity] = seq
	}
	return out, rows.Err()
}
