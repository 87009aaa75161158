// Package storage provides SQLite-based persistence for computed test
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/neuroedu/tui-statlab/internal/core"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry represents a single saved test result.
type ResultEntry struct {
	ID        int64
	TestID    string
	Statistic float64
	PValue    float64
	DF        int
	CreatedAt time.Time
}

// TestSummary aggregates saved results for one test.
type TestSummary struct {
	TestID    string
	Runs      int
	MinPValue float64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			test_id TEXT NOT NULL,
			statistic REAL NOT NULL,
			p_value REAL NOT NULL,
			df INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_test_id ON results(test_id);
		CREATE INDEX IF NOT EXISTS idx_results_recent ON results(test_id, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a computed result snapshot.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(snap core.ResultSnapshot) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO results (test_id, statistic, p_value, df) VALUES (?, ?, ?, ?)",
		snap.TestID, snap.Statistic, snap.PValue, snap.DF,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent N results for the given test.
// Results are ordered newest first.
func (s *Store) RecentResults(testID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, test_id, statistic, p_value, df, created_at
		 FROM results
		 WHERE test_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		testID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// AllRecent retrieves the most recent N results across all tests.
func (s *Store) AllRecent(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, test_id, statistic, p_value, df, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]ResultEntry, error) {
	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.TestID, &e.Statistic, &e.PValue, &e.DF, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Summaries returns per-test aggregates for all tests with saved results.
func (s *Store) Summaries() ([]TestSummary, error) {
	rows, err := s.db.Query(
		`SELECT test_id, COUNT(*), MIN(p_value)
		 FROM results
		 GROUP BY test_id
		 ORDER BY test_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query summaries: %w", err)
	}
	defer rows.Close()

	var summaries []TestSummary
	for rows.Next() {
		var ts TestSummary
		if err := rows.Scan(&ts.TestID, &ts.Runs, &ts.MinPValue); err != nil {
			return nil, fmt.Errorf("storage: cannot scan summary: %w", err)
		}
		summaries = append(summaries, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return summaries, nil
}

// ClearResults deletes all results for the given test.
func (s *Store) ClearResults(testID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE test_id = ?", testID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
