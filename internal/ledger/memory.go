package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Memory is an in-process Store. It is safe for concurrent use, which
// matters when several SSH sessions share one ledger.
type Memory struct {
	mu       sync.Mutex
	starting int
	credits  map[string]int
	trophies map[string]int
	results  []SessionResult
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty ledger that seeds unseen users with starting credits.
func NewMemory(starting int) *Memory {
	if starting < 0 {
		starting = 0
	}
	return &Memory{
		starting: starting,
		credits:  make(map[string]int),
		trophies: make(map[string]int),
	}
}

func (m *Memory) balance(userID string) int {
	n, ok := m.credits[userID]
	if !ok {
		n = m.starting
		m.credits[userID] = n
	}
	return n
}

// HasCredits reports whether the user can pay for a session.
func (m *Memory) HasCredits(_ context.Context, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balance(userID) > 0, nil
}

// DebitCredit removes one credit or returns ErrInsufficientCredits.
func (m *Memory) DebitCredit(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.balance(userID) <= 0 {
		return ErrInsufficientCredits
	}
	m.credits[userID]--
	return nil
}

// Credits returns the user's balance, seeding it on first sight.
func (m *Memory) Credits(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balance(userID), nil
}

// GrantCredits adds amount to the balance and returns the new balance.
func (m *Memory) GrantCredits(_ context.Context, userID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("ledger: grant: amount must be positive, got %d", amount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credits[userID] = m.balance(userID) + amount
	return m.credits[userID], nil
}

// ReportTrophies adds amount to the user's trophy total.
func (m *Memory) ReportTrophies(_ context.Context, userID string, amount int, sourceID string) error {
	if amount <= 0 {
		return fmt.Errorf("ledger: trophies from %s: amount must be positive, got %d", sourceID, amount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trophies[userID] += amount
	return nil
}

// ReportSessionResult records a finished session.
func (m *Memory) ReportSessionResult(_ context.Context, res SessionResult) error {
	if res.UserID == "" || res.GameID == "" {
		return errors.New("ledger: session result needs a user and a game")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
	return nil
}

// Trophies returns the user's total.
func (m *Memory) Trophies(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trophies[userID], nil
}

// Leaderboard orders users by trophies, ties broken by user id.
func (m *Memory) Leaderboard(_ context.Context, limit int) ([]LeaderboardEntry, error) {
	m.mu.Lock()
	out := make([]LeaderboardEntry, 0, len(m.trophies))
	for id, n := range m.trophies {
		out = append(out, LeaderboardEntry{UserID: id, Trophies: n})
	}
	m.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Trophies != out[j].Trophies {
			return out[i].Trophies > out[j].Trophies
		}
		return out[i].UserID < out[j].UserID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}

// History returns the user's sessions, newest first.
func (m *Memory) History(_ context.Context, userID string, limit int) ([]SessionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []SessionResult
	for i := len(m.results) - 1; i >= 0; i-- {
		if m.results[i].UserID != userID {
			continue
		}
		out = append(out, m.results[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// TopScores returns the best finished sessions of a game, earliest first on ties.
func (m *Memory) TopScores(_ context.Context, gameID string, limit int) ([]ScoreEntry, error) {
	m.mu.Lock()
	var out []ScoreEntry
	for _, r := range m.results {
		if r.GameID == gameID {
			out = append(out, ScoreEntry{UserID: r.UserID, GameID: r.GameID, Score: r.Score, EndedAt: r.EndedAt})
		}
	}
	m.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) Close() error { return nil }
