// Package ledger defines the contracts the session layer needs from the
// reward economy: a credit balance to start games and a reporter for
// trophies and finished sessions. Implementations live here (memory, Redis)
// and in the storage package (SQLite).
package ledger

import (
	"context"
	"errors"
	"time"
)

// ErrInsufficientCredits is returned by DebitCredit when the balance is zero.
var ErrInsufficientCredits = errors.New("ledger: insufficient credits")

// DefaultStartingCredits is the balance a user gets the first time a ledger sees them.
const DefaultStartingCredits = 5

// Result is how a session ended.
type Result string

const (
	ResultWin     Result = "win"
	ResultLose    Result = "lose"
	ResultTimeout Result = "timeout"
	ResultFault   Result = "fault"
)

// SessionResult is reported once when a session reaches Over.
type SessionResult struct {
	SessionID string        `json:"session_id"`
	UserID    string        `json:"user_id"`
	GameID    string        `json:"game_id"`
	Score     int           `json:"score"`
	Result    Result        `json:"result"`
	Elapsed   time.Duration `json:"elapsed"`
	EndedAt   time.Time     `json:"ended_at"`
}

// LeaderboardEntry is a user's trophy total.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Trophies int    `json:"trophies"`
}

// ScoreEntry is one finished session on a game's score table.
type ScoreEntry struct {
	UserID  string    `json:"user_id"`
	GameID  string    `json:"game_id"`
	Score   int       `json:"score"`
	EndedAt time.Time `json:"ended_at"`
}

// CreditLedger holds the consumable balance used to start sessions.
type CreditLedger interface {
	HasCredits(ctx context.Context, userID string) (bool, error)
	// DebitCredit removes one credit or fails with ErrInsufficientCredits.
	DebitCredit(ctx context.Context, userID string) error
	Credits(ctx context.Context, userID string) (int, error)
}

// Reporter receives trophies and session results. Callers treat it as best effort.
type Reporter interface {
	ReportTrophies(ctx context.Context, userID string, amount int, sourceID string) error
	ReportSessionResult(ctx context.Context, res SessionResult) error
}

// Store is a complete backend: the session contracts plus the read side
// used by the menu, the CLI and the HTTP API.
type Store interface {
	CreditLedger
	Reporter

	GrantCredits(ctx context.Context, userID string, amount int) (int, error)
	Trophies(ctx context.Context, userID string) (int, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	History(ctx context.Context, userID string, limit int) ([]SessionResult, error)
	TopScores(ctx context.Context, gameID string, limit int) ([]ScoreEntry, error)
	Close() error
}
