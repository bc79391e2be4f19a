// Package storage provides SQLite-based persistence for the leaderboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Run is a single finished game session on the leaderboard.
type Run struct {
	ID        int64
	Player    string
	ScoreMS   int64 // Survival time in milliseconds
	Tokens    int   // Tokens collected during the run
	CreatedAt time.Time
}

// Stats contains aggregate leaderboard statistics.
type Stats struct {
	Runs      int
	Players   int
	BestMS    int64
	AvgMS     float64
	AllTokens int64
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score_ms INTEGER NOT NULL,
			tokens INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score_ms DESC);
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

// SaveRun records a finished session. Rows are append-only; duplicate
// reconciliation happens on the read side (BestPerPlayer).
// Returns the ID of the inserted record.
func (s *Store) SaveRun(player string, scoreMS int64, tokens int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (player, score_ms, tokens) VALUES (?, ?, ?)",
		player, scoreMS, tokens,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs ordered by score descending.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score_ms, tokens, created_at
		 FROM runs
		 ORDER BY score_ms DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// BestPerPlayer retrieves each player's single best run, ordered by score
// descending. This is the deduplicated leaderboard view.
func (s *Store) BestPerPlayer(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score_ms, tokens, created_at
		 FROM runs
		 WHERE id IN (
			SELECT id FROM runs r
			WHERE score_ms = (SELECT MAX(score_ms) FROM runs WHERE player = r.player)
			GROUP BY player
		 )
		 ORDER BY score_ms DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// PersonalBest returns the highest score in milliseconds for the given
// player, or 0 if the player has no recorded runs.
func (s *Store) PersonalBest(player string) (int64, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score_ms) FROM runs WHERE player = ?",
		player,
	).Scan(&best)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query personal best: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return best.Int64, nil
}

// Stats returns aggregate statistics over the whole leaderboard.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player),
		        COALESCE(MAX(score_ms), 0), COALESCE(AVG(score_ms), 0),
		        COALESCE(SUM(tokens), 0)
		 FROM runs`,
	).Scan(&st.Runs, &st.Players, &st.BestMS, &st.AvgMS, &st.AllTokens)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

// ClearRuns deletes every recorded run.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// scanRuns reads Run rows from a query result.
func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.ScoreMS, &r.Tokens, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
