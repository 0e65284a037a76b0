// Package api exposes the ledger read side and credit grants over HTTP.
// It is an operator surface: games are only played through the terminal.
package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/arcade-hub/internal/catalog"
	"github.com/vovakirdan/arcade-hub/internal/ledger"
	"github.com/vovakirdan/arcade-hub/internal/logging"
)

// Default and maximum page sizes.
const (
	defaultLeaderboard = 100
	defaultHistory     = 50
	defaultScores      = 10
	maxLimit           = 500
)

// Options configure a Server.
type Options struct {
	Store   ledger.Store
	Catalog *catalog.Catalog
	Logger  *log.Logger
	// Token guards credit grants. Empty disables grants entirely.
	Token   string
	Timeout time.Duration
}

// Server bundles the router and its dependencies.
type Server struct {
	r      *chi.Mux
	store  ledger.Store
	cat    *catalog.Catalog
	logger *log.Logger
	token  string
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	s := &Server{
		r:      chi.NewRouter(),
		store:  opts.Store,
		cat:    opts.Catalog,
		logger: opts.Logger.WithPrefix("api"),
		token:  opts.Token,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(s.requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(opts.Timeout))
	s.r.Use(jsonContentType)

	s.r.Get("/health", s.handleHealth)
	s.r.Get("/games", s.handleGames)
	s.r.Get("/games/{id}/scores", s.handleScores)
	s.r.Get("/leaderboard", s.handleLeaderboard)
	s.r.Route("/users/{id}", func(r chi.Router) {
		r.Get("/history", s.handleHistory)
		r.Get("/credits", s.handleCredits)
		r.With(s.requireToken).Post("/credits", s.handleGrant)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Router exposes the router (useful for tests and for mounting).
func (s *Server) Router() chi.Router { return s.r }

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleGames(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cat.All())
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.cat.Get(id); err != nil {
		writeError(w, http.StatusNotFound, "unknown_game")
		return
	}
	scores, err := s.store.TopScores(r.Context(), id, limit(r, defaultScores))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scores)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.Leaderboard(r.Context(), limit(r, defaultLeaderboard))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	hist, err := s.store.History(r.Context(), chi.URLParam(r, "id"), limit(r, defaultHistory))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hist)
}

type balance struct {
	UserID   string `json:"user_id"`
	Credits  int    `json:"credits"`
	Trophies int    `json:"trophies"`
}

func (s *Server) handleCredits(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "id")
	credits, err := s.store.Credits(r.Context(), user)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	trophies, err := s.store.Trophies(r.Context(), user)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balance{UserID: user, Credits: credits, Trophies: trophies})
}

type grantRequest struct {
	Amount int `json:"amount"`
}

func (s *Server) handleGrant(w http.ResponseWriter, r *http.Request) {
	var req grantRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<10)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount_must_be_positive")
		return
	}

	user := chi.URLParam(r, "id")
	credits, err := s.store.GrantCredits(r.Context(), user, req.Amount)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	trophies, _ := s.store.Trophies(r.Context(), user)
	s.logger.Info("credits granted", "user", user, "amount", req.Amount, "balance", credits)
	writeJSON(w, http.StatusOK, balance{UserID: user, Credits: credits, Trophies: trophies})
}

// ----------------------------- middleware ----------------------------------

// requireToken checks the bearer token on mutating routes.
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token == "" {
			writeError(w, http.StatusForbidden, "grants_disabled")
			return
		}
		got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(s.token)) != 1 {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"took", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- helpers ------------------------------------

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal")
}

// limit reads ?limit=, falling back to def and capping at maxLimit.
func limit(r *http.Request, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n <= 0 {
		return def
	}
	return min(n, maxLimit)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
