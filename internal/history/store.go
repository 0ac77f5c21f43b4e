// internal/history/store.go
//
// Local game history persisted in SQLite.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout,
//     foreign keys) and applying the idempotent schema.
//   - Recording finished games (mode, word, guesses, outcome, timing).
//   - Aggregate stats: games played, wins, current win streak.
//   - Daily-mode bookkeeping: one recorded result per date.

package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	mode        TEXT    NOT NULL,
	word        TEXT    NOT NULL,
	guesses     INTEGER NOT NULL,
	won         INTEGER NOT NULL,
	elapsed_ms  INTEGER NOT NULL,
	date        TEXT    NOT NULL,
	created_at  TEXT    NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);
CREATE INDEX IF NOT EXISTS idx_games_mode_date ON games(mode, date);
`

// Result is one finished game.
type Result struct {
	Mode      string // "play" | "daily"
	Word      string // the secret, disclosed once the game is over
	Guesses   int    // guesses consumed
	Won       bool
	ElapsedMs int64
	Date      string // YYYY-MM-DD (UTC)
}

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) the history database.
//
//   - Ensures the parent directory exists for relative paths
//     (e.g. ./data/wordle.db).
//   - Configures busy timeout and WAL journaling.
//   - Enforces foreign keys.
//   - Applies the schema; safe to call on every start.
func Open(dsn string) (*Store, error) {
	if dir := filepath.Dir(dsn); dir != "." && dir != "" && dsn != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying handle.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts one finished game.
func (s *Store) Record(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games(mode, word, guesses, won, elapsed_ms, date)
		 VALUES(?,?,?,?,?,?)`,
		r.Mode, r.Word, r.Guesses, boolToInt(r.Won), r.ElapsedMs, r.Date,
	)
	return err
}

// AlreadyPlayedDaily reports whether a daily result exists for date.
func (s *Store) AlreadyPlayedDaily(ctx context.Context, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM games WHERE mode='daily' AND date=?`, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// Recent returns up to limit finished games, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT mode, word, guesses, won, elapsed_ms, date
		 FROM games ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		var won int
		if err := rows.Scan(&r.Mode, &r.Word, &r.Guesses, &won, &r.ElapsedMs, &r.Date); err != nil {
			return nil, err
		}
		r.Won = won != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

// Summary aggregates the whole history.
type Summary struct {
	Played int
	Wins   int
	Streak int // consecutive wins counted back from the latest game
}

// Summarize computes played/wins totals and the current win streak.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	var sum Summary
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1), COALESCE(SUM(won), 0) FROM games`,
	).Scan(&sum.Played, &sum.Wins)
	if err != nil {
		return Summary{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT won FROM games ORDER BY id DESC`)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var won int
		if err := rows.Scan(&won); err != nil {
			return Summary{}, err
		}
		if won == 0 {
			break
		}
		sum.Streak++
	}
	return sum, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
