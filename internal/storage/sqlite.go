// Package storage provides SQLite-based persistence for credits, trophies
// and finished sessions. It is the default ledger.Store.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/arcade-hub/internal/ledger"
)

// Store manages the SQLite database connection.
type Store struct {
	db       *sql.DB
	starting int
}

var _ ledger.Store = (*Store)(nil)

// GameStats is the aggregate of every finished session of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// Users seen for the first time get startingCredits.
func Open(dbPath string, startingCredits int) (*Store, error) {
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
	// One writer; SSH sessions share the handle.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, starting: startingCredits}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS credits (
			user_id TEXT PRIMARY KEY,
			balance INTEGER NOT NULL CHECK (balance >= 0)
		);

		CREATE TABLE IF NOT EXISTS credit_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			delta INTEGER NOT NULL,
			reason TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_credit_events_user ON credit_events(user_id);

		CREATE TABLE IF NOT EXISTS trophies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			amount INTEGER NOT NULL,
			source_id TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_trophies_user ON trophies(user_id);

		CREATE TABLE IF NOT EXISTS games_played (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			result TEXT NOT NULL,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			ended_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_played_user ON games_played(user_id, id DESC);
		CREATE INDEX IF NOT EXISTS idx_games_played_top ON games_played(game_id, score DESC);
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

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

// seed gives a first-seen user the starting balance.
func (s *Store) seed(ctx context.Context, q interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
}, userID string) error {
	_, err := q.ExecContext(ctx,
		"INSERT OR IGNORE INTO credits (user_id, balance) VALUES (?, ?)",
		userID, s.starting,
	)
	return err
}

// Credits returns the user's balance, seeding it on first sight.
func (s *Store) Credits(ctx context.Context, userID string) (int, error) {
	if err := s.seed(ctx, s.db, userID); err != nil {
		return 0, fmt.Errorf("storage: cannot seed credits: %w", err)
	}
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT balance FROM credits WHERE user_id = ?", userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read credits: %w", err)
	}
	return n, nil
}

func (s *Store) HasCredits(ctx context.Context, userID string) (bool, error) {
	n, err := s.Credits(ctx, userID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DebitCredit removes one credit in a single transaction.
func (s *Store) DebitCredit(ctx context.Context, userID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.seed(ctx, tx, userID); err != nil {
			return fmt.Errorf("storage: cannot seed credits: %w", err)
		}
		res, err := tx.ExecContext(ctx,
			"UPDATE credits SET balance = balance - 1 WHERE user_id = ? AND balance > 0",
			userID,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot debit: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("storage: cannot debit: %w", err)
		}
		if n == 0 {
			return ledger.ErrInsufficientCredits
		}
		return s.creditEvent(ctx, tx, userID, -1, "session")
	})
}

// GrantCredits tops up a balance and returns the new value.
func (s *Store) GrantCredits(ctx context.Context, userID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("storage: grant amount must be positive, got %d", amount)
	}
	var balance int
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.seed(ctx, tx, userID); err != nil {
			return fmt.Errorf("storage: cannot seed credits: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"UPDATE credits SET balance = balance + ? WHERE user_id = ?",
			amount, userID,
		); err != nil {
			return fmt.Errorf("storage: cannot grant: %w", err)
		}
		if err := s.creditEvent(ctx, tx, userID, amount, "grant"); err != nil {
			return err
		}
		return tx.QueryRowContext(ctx, "SELECT balance FROM credits WHERE user_id = ?", userID).Scan(&balance)
	})
	return balance, err
}

func (s *Store) creditEvent(ctx context.Context, tx *sql.Tx, userID string, delta int, reason string) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO credit_events (user_id, delta, reason, created_at) VALUES (?, ?, ?, ?)",
		userID, delta, reason, now(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record credit event: %w", err)
	}
	return nil
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// ReportTrophies records a trophy award.
func (s *Store) ReportTrophies(ctx context.Context, userID string, amount int, sourceID string) error {
	if amount <= 0 {
		return fmt.Errorf("storage: trophies from %s: amount must be positive, got %d", sourceID, amount)
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO trophies (user_id, amount, source_id, created_at) VALUES (?, ?, ?, ?)",
		userID, amount, sourceID, now(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save trophies: %w", err)
	}
	return nil
}

// ReportSessionResult records a finished session.
func (s *Store) ReportSessionResult(ctx context.Context, res ledger.SessionResult) error {
	if res.UserID == "" || res.GameID == "" {
		return errors.New("storage: session result needs a user and a game")
	}
	ended := res.EndedAt
	if ended.IsZero() {
		ended = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games_played (session_id, user_id, game_id, score, result, elapsed_ms, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		res.SessionID, res.UserID, res.GameID, res.Score, string(res.Result),
		res.Elapsed.Milliseconds(), ended.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session: %w", err)
	}
	return nil
}

// Trophies returns the user's total.
func (s *Store) Trophies(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM trophies WHERE user_id = ?", userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot sum trophies: %w", err)
	}
	return n, nil
}

// Leaderboard ranks users by summed trophies.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]ledger.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, SUM(amount) AS total
		 FROM trophies
		 GROUP BY user_id
		 ORDER BY total DESC, user_id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var out []ledger.LeaderboardEntry
	for rows.Next() {
		e := ledger.LeaderboardEntry{Rank: len(out) + 1}
		if err := rows.Scan(&e.UserID, &e.Trophies); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// History returns a user's sessions, newest first.
func (s *Store) History(ctx context.Context, userID string, limit int) ([]ledger.SessionResult, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, user_id, game_id, score, result, elapsed_ms, ended_at
		 FROM games_played
		 WHERE user_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query history: %w", err)
	}
	defer rows.Close()

	var out []ledger.SessionResult
	for rows.Next() {
		var r ledger.SessionResult
		var result, ended string
		var ms int64
		if err := rows.Scan(&r.SessionID, &r.UserID, &r.GameID, &r.Score, &result, &ms, &ended); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Result = ledger.Result(result)
		r.Elapsed = time.Duration(ms) * time.Millisecond
		r.EndedAt = parseTime(ended)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// TopScores retrieves the top N sessions for the given game.
// Results are ordered by score descending, earlier sessions first on ties.
func (s *Store) TopScores(ctx context.Context, gameID string, limit int) ([]ledger.ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, game_id, score, ended_at
		 FROM games_played
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ledger.ScoreEntry
	for rows.Next() {
		var e ledger.ScoreEntry
		var ended string
		if err := rows.Scan(&e.UserID, &e.GameID, &e.Score, &ended); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.EndedAt = parseTime(ended)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearScores deletes every finished session of a game.
func (s *Store) ClearScores(ctx context.Context, gameID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM games_played WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats aggregates the finished sessions of one game.
func (s *Store) GameStats(ctx context.Context, gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var last sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(ended_at)
		 FROM games_played WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	if last.Valid {
		stats.LastPlayed = parseTime(last.String)
	}
	return stats, nil
}
