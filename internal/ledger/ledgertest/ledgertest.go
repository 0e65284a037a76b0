// Package ledgertest runs the same behavioral checks against every
// ledger.Store implementation.
package ledgertest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/arcade-hub/internal/ledger"
)

// Factory returns a fresh, empty store that seeds new users with `starting` credits.
type Factory func(t *testing.T, starting int) ledger.Store

// Run exercises a Store implementation.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("SeedsStartingCredits", func(t *testing.T) {
		s := newStore(t, 5)
		ctx := context.Background()

		n, err := s.Credits(ctx, "ada")
		if err != nil {
			t.Fatalf("Credits: %v", err)
		}
		if n != 5 {
			t.Errorf("Credits = %d, want 5", n)
		}
		ok, err := s.HasCredits(ctx, "ada")
		if err != nil || !ok {
			t.Errorf("HasCredits = %v, %v; want true, nil", ok, err)
		}
	})

	t.Run("DebitUntilEmpty", func(t *testing.T) {
		s := newStore(t, 2)
		ctx := context.Background()

		for i := 0; i < 2; i++ {
			if err := s.DebitCredit(ctx, "bob"); err != nil {
				t.Fatalf("debit %d: %v", i, err)
			}
		}
		if err := s.DebitCredit(ctx, "bob"); !errors.Is(err, ledger.ErrInsufficientCredits) {
			t.Fatalf("third debit error = %v, want ErrInsufficientCredits", err)
		}
		n, _ := s.Credits(ctx, "bob")
		if n != 0 {
			t.Errorf("Credits = %d, want 0", n)
		}
		ok, _ := s.HasCredits(ctx, "bob")
		if ok {
			t.Error("HasCredits = true at zero balance")
		}
	})

	t.Run("GrantCredits", func(t *testing.T) {
		s := newStore(t, 1)
		ctx := context.Background()

		n, err := s.GrantCredits(ctx, "cy", 4)
		if err != nil {
			t.Fatalf("GrantCredits: %v", err)
		}
		if n != 5 {
			t.Errorf("balance after grant = %d, want 5", n)
		}
		if _, err := s.GrantCredits(ctx, "cy", 0); err == nil {
			t.Error("zero grant accepted")
		}
	})

	t.Run("LeaderboardOrdersByTrophies", func(t *testing.T) {
		s := newStore(t, 5)
		ctx := context.Background()

		reports := []struct {
			user   string
			amount int
		}{
			{"ada", 3}, {"bob", 10}, {"ada", 3}, {"cy", 1},
		}
		for _, r := range reports {
			if err := s.ReportTrophies(ctx, r.user, r.amount, "game:snake:time"); err != nil {
				t.Fatalf("ReportTrophies: %v", err)
			}
		}

		board, err := s.Leaderboard(ctx, 2)
		if err != nil {
			t.Fatalf("Leaderboard: %v", err)
		}
		if len(board) != 2 {
			t.Fatalf("len = %d, want 2", len(board))
		}
		if board[0].UserID != "bob" || board[0].Trophies != 10 || board[0].Rank != 1 {
			t.Errorf("first = %+v, want bob with 10", board[0])
		}
		if board[1].UserID != "ada" || board[1].Trophies != 6 || board[1].Rank != 2 {
			t.Errorf("second = %+v, want ada with 6", board[1])
		}
		n, _ := s.Trophies(ctx, "ada")
		if n != 6 {
			t.Errorf("Trophies(ada) = %d, want 6", n)
		}
		n, _ = s.Trophies(ctx, "nobody")
		if n != 0 {
			t.Errorf("Trophies(nobody) = %d, want 0", n)
		}
	})

	t.Run("HistoryAndTopScores", func(t *testing.T) {
		s := newStore(t, 5)
		ctx := context.Background()
		base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		results := []ledger.SessionResult{
			{SessionID: "s1", UserID: "ada", GameID: "snake", Score: 30, Result: ledger.ResultLose, Elapsed: 40 * time.Second, EndedAt: base},
			{SessionID: "s2", UserID: "bob", GameID: "snake", Score: 90, Result: ledger.ResultLose, Elapsed: 80 * time.Second, EndedAt: base.Add(time.Minute)},
			{SessionID: "s3", UserID: "ada", GameID: "tetris", Score: 400, Result: ledger.ResultTimeout, Elapsed: 300 * time.Second, EndedAt: base.Add(2 * time.Minute)},
			{SessionID: "s4", UserID: "ada", GameID: "snake", Score: 50, Result: ledger.ResultLose, Elapsed: 55 * time.Second, EndedAt: base.Add(3 * time.Minute)},
		}
		for _, r := range results {
			if err := s.ReportSessionResult(ctx, r); err != nil {
				t.Fatalf("ReportSessionResult: %v", err)
			}
		}

		hist, err := s.History(ctx, "ada", 2)
		if err != nil {
			t.Fatalf("History: %v", err)
		}
		if len(hist) != 2 {
			t.Fatalf("history len = %d, want 2", len(hist))
		}
		if hist[0].SessionID != "s4" || hist[1].SessionID != "s3" {
			t.Errorf("history order = %s, %s; want s4, s3", hist[0].SessionID, hist[1].SessionID)
		}
		if hist[1].Result != ledger.ResultTimeout || hist[1].Elapsed != 300*time.Second {
			t.Errorf("history entry = %+v", hist[1])
		}

		top, err := s.TopScores(ctx, "snake", 10)
		if err != nil {
			t.Fatalf("TopScores: %v", err)
		}
		want := []int{90, 50, 30}
		if len(top) != len(want) {
			t.Fatalf("top len = %d, want %d", len(top), len(want))
		}
		for i, w := range want {
			if top[i].Score != w {
				t.Errorf("top[%d] = %d, want %d", i, top[i].Score, w)
			}
		}
		if top[0].UserID != "bob" {
			t.Errorf("best snake player = %s, want bob", top[0].UserID)
		}
	})

	t.Run("RejectsIncompleteResult", func(t *testing.T) {
		s := newStore(t, 5)
		err := s.ReportSessionResult(context.Background(), ledger.SessionResult{GameID: "snake"})
		if err == nil {
			t.Error("result without a user accepted")
		}
	})
}
