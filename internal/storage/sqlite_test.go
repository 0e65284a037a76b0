package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/arcade-hub/internal/ledger"
	"github.com/vovakirdan/arcade-hub/internal/ledger/ledgertest"
)

func openTemp(t *testing.T, starting int) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"), starting)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreContract(t *testing.T) {
	ledgertest.Run(t, func(t *testing.T, starting int) ledger.Store {
		return openTemp(t, starting)
	})
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath, 5)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath, 5)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := Open(dbPath, 3)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.DebitCredit(ctx, "ada"); err != nil {
		t.Fatalf("DebitCredit: %v", err)
	}
	if err := store.ReportTrophies(ctx, "ada", 3, "game:snake:time"); err != nil {
		t.Fatalf("ReportTrophies: %v", err)
	}
	store.Close()

	store, err = Open(dbPath, 3)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	n, _ := store.Credits(ctx, "ada")
	if n != 2 {
		t.Errorf("Credits after reopen = %d, want 2", n)
	}
	tr, _ := store.Trophies(ctx, "ada")
	if tr != 3 {
		t.Errorf("Trophies after reopen = %d, want 3", tr)
	}
}

func TestStoreGameStatsAndClear(t *testing.T) {
	store := openTemp(t, 5)
	ctx := context.Background()
	ended := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	for i, score := range []int{10, 40, 100} {
		err := store.ReportSessionResult(ctx, ledger.SessionResult{
			SessionID: "s" + string(rune('a'+i)),
			UserID:    "ada",
			GameID:    "snake",
			Score:     score,
			Result:    ledger.ResultLose,
			EndedAt:   ended.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("ReportSessionResult: %v", err)
		}
	}

	stats, err := store.GameStats(ctx, "snake")
	if err != nil {
		t.Fatalf("GameStats: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 100 || stats.TotalScore != 150 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 50 {
		t.Errorf("AvgScore = %v, want 50", stats.AvgScore)
	}
	if !stats.LastPlayed.Equal(ended.Add(2 * time.Minute)) {
		t.Errorf("LastPlayed = %v", stats.LastPlayed)
	}

	if err := store.ClearScores(ctx, "snake"); err != nil {
		t.Fatalf("ClearScores: %v", err)
	}
	top, err := store.TopScores(ctx, "snake", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("TopScores after clear = %d entries, want 0", len(top))
	}

	empty, err := store.GameStats(ctx, "pong")
	if err != nil {
		t.Fatalf("GameStats(empty): %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreHistoryKeepsElapsed(t *testing.T) {
	store := openTemp(t, 5)
	ctx := context.Background()

	err := store.ReportSessionResult(ctx, ledger.SessionResult{
		SessionID: "one", UserID: "ada", GameID: "racer", Score: 70,
		Result: ledger.ResultTimeout, Elapsed: 5 * time.Minute,
	})
	if err != nil {
		t.Fatalf("ReportSessionResult: %v", err)
	}

	hist, err := store.History(ctx, "ada", 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != 1 {
		t.Fatalf("history len = %d, want 1", len(hist))
	}
	h := hist[0]
	if h.Elapsed != 5*time.Minute || h.Result != ledger.ResultTimeout || h.EndedAt.IsZero() {
		t.Errorf("history entry = %+v", h)
	}
}

func TestStoreTrophySourceRepeats(t *testing.T) {
	ctx := context.Background()
	store := openTemp(t, 5)

	// Every session of a game reports under the same source; each award counts.
	for i := 0; i < 2; i++ {
		if err := store.ReportTrophies(ctx, "ana", 3, "game:snake:time"); err != nil {
			t.Fatalf("ReportTrophies #%d: %v", i+1, err)
		}
	}
	got, err := store.Trophies(ctx, "ana")
	if err != nil {
		t.Fatalf("Trophies: %v", err)
	}
	if got != 6 {
		t.Errorf("trophies = %d, expected 6", got)
	}
}
