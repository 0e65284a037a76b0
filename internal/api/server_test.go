package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/arcade-hub/internal/ledger"
)

func newTestServer(t *testing.T, token string) (*Server, *ledger.Memory) {
	t.Helper()
	store := ledger.NewMemory(3)
	return New(Options{Store: store, Token: token}), store
}

func do(t *testing.T, s *Server, method, path, body, auth string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", "Bearer "+auth)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealthAndGames(t *testing.T) {
	s, _ := newTestServer(t, "")

	rec := do(t, s, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type = %q", ct)
	}

	rec = do(t, s, http.MethodGet, "/games", "", "")
	games := decode[[]map[string]any](t, rec)
	if len(games) != 11 {
		t.Errorf("games = %d, want 11", len(games))
	}
	if games[0]["id"] != "snake" {
		t.Errorf("first game = %v", games[0]["id"])
	}
}

func TestLeaderboardAndScores(t *testing.T) {
	s, store := newTestServer(t, "")
	ctx := context.Background()
	_ = store.ReportTrophies(ctx, "ana", 10, "game:snake:time")
	_ = store.ReportTrophies(ctx, "bo", 4, "game:tetris:win")
	_ = store.ReportSessionResult(ctx, ledger.SessionResult{
		SessionID: "s1", UserID: "ana", GameID: "snake", Score: 40,
		Result: ledger.ResultLose, Elapsed: time.Minute, EndedAt: time.Now(),
	})

	board := decode[[]ledger.LeaderboardEntry](t, do(t, s, http.MethodGet, "/leaderboard?limit=1", "", ""))
	if len(board) != 1 || board[0].UserID != "ana" || board[0].Rank != 1 {
		t.Errorf("leaderboard = %+v", board)
	}

	scores := decode[[]ledger.ScoreEntry](t, do(t, s, http.MethodGet, "/games/snake/scores", "", ""))
	if len(scores) != 1 || scores[0].Score != 40 {
		t.Errorf("scores = %+v", scores)
	}

	if rec := do(t, s, http.MethodGet, "/games/asteroids/scores", "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown game = %d, want 404", rec.Code)
	}

	hist := decode[[]ledger.SessionResult](t, do(t, s, http.MethodGet, "/users/ana/history", "", ""))
	if len(hist) != 1 || hist[0].SessionID != "s1" {
		t.Errorf("history = %+v", hist)
	}
}

func TestCredits(t *testing.T) {
	s, _ := newTestServer(t, "secret")

	got := decode[balance](t, do(t, s, http.MethodGet, "/users/cy/credits", "", ""))
	if got.Credits != 3 || got.UserID != "cy" {
		t.Errorf("balance = %+v", got)
	}

	tests := []struct {
		name string
		body string
		auth string
		code int
	}{
		{"no token", `{"amount":2}`, "", http.StatusUnauthorized},
		{"wrong token", `{"amount":2}`, "nope", http.StatusUnauthorized},
		{"bad json", `{"amount":`, "secret", http.StatusBadRequest},
		{"zero amount", `{"amount":0}`, "secret", http.StatusBadRequest},
		{"ok", `{"amount":2}`, "secret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/users/cy/credits", tt.body, tt.auth)
			if rec.Code != tt.code {
				t.Errorf("code = %d, want %d (%s)", rec.Code, tt.code, rec.Body.String())
			}
		})
	}

	got = decode[balance](t, do(t, s, http.MethodGet, "/users/cy/credits", "", ""))
	if got.Credits != 5 {
		t.Errorf("credits after grant = %d, want 5", got.Credits)
	}
}

func TestGrantsDisabledWithoutToken(t *testing.T) {
	s, _ := newTestServer(t, "")
	if rec := do(t, s, http.MethodPost, "/users/cy/credits", `{"amount":1}`, "anything"); rec.Code != http.StatusForbidden {
		t.Errorf("code = %d, want 403", rec.Code)
	}
}

func TestNotFound(t *testing.T) {
	s, _ := newTestServer(t, "")
	rec := do(t, s, http.MethodGet, "/nope", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code = %d", rec.Code)
	}
	if body := decode[map[string]string](t, rec); body["error"] != "not_found" {
		t.Errorf("body = %v", body)
	}
}
