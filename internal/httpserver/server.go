// internal/httpserver/server.go
//
// Local diagnostics server for the console game.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs, access log).
//   - "/" and "/health".
//   - "/debug/words": dictionary size.
//   - "/debug/journal": recent journal events, optionally for one session.
//
// Notes:
//   - Read-only. Nothing here can submit guesses or reveal an answer.
//   - Never touches a game.Session, so it runs beside the console loop
//     without locking.
//   - Bound to a loopback address (see config.Validate).

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/wordle-ru/internal/journal"
)

// WordCounter reports the dictionary size. *words.Dictionary satisfies it.
type WordCounter interface {
	Len() int
}

// Journal is the read side of the event journal. *journal.Store satisfies it.
type Journal interface {
	Events(ctx context.Context, sessionID string, limit int) ([]journal.Entry, error)
	Ping(ctx context.Context) error
}

// Server bundles the router and its read-only data sources.
type Server struct {
	r       *chi.Mux
	words   WordCounter
	journal Journal // nil when journaling is disabled
	log     zerolog.Logger
}

// New constructs a Server, installs middleware, and registers routes.
// j may be nil.
func New(wc WordCounter, j Journal, log zerolog.Logger) *Server {
	s := &Server{r: chi.NewRouter(), words: wc, journal: j, log: log}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(s.accessLog)
	s.r.Use(jsonContentType)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-ru","endpoints":["/health","/debug/words","/debug/journal"]}`))
	})
	s.r.Get("/health", s.handleHealth)
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": s.words.Len()})
	})
	s.r.Get("/debug/journal", s.handleJournal)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// handleHealth reports ok, and journal reachability when enabled.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	res := map[string]any{"ok": true, "journal": "disabled"}
	if s.journal != nil {
		if err := s.journal.Ping(r.Context()); err != nil {
			s.log.Warn().Err(err).Msg("journal ping")
			res["ok"] = false
			res["journal"] = "unavailable"
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(res)
			return
		}
		res["journal"] = "ok"
	}
	_ = json.NewEncoder(w).Encode(res)
}

// journalRes is returned by /debug/journal.
type journalRes struct {
	Session string          `json:"session,omitempty"`
	Events  []journal.Entry `json:"events"`
}

// handleJournal lists journal events. Query: session (optional), limit (1..500).
func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	if s.journal == nil {
		writeError(w, http.StatusNotFound, "journal_disabled")
		return
	}
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = n
	}
	session := r.URL.Query().Get("session")
	events, err := s.journal.Events(r.Context(), session, limit)
	if err != nil {
		s.log.Error().Err(err).Msg("journal events")
		writeError(w, http.StatusInternalServerError, "journal_error")
		return
	}
	_ = json.NewEncoder(w).Encode(journalRes{Session: session, Events: events})
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one debug line per request.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("http request")
	})
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
