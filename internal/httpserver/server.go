// internal/httpserver/server.go
//
// HTTP server wiring for the solver backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     zerolog access log).
//   - Public endpoints: "/", "/health", "/debug/words", "/words/check".
//   - Solver endpoints (optional auth): stateless filter/rank and sessions,
//     mounted under /solver.
//   - Daily autoplay endpoints: mounted under /daily.
//   - Auth + profile/stat endpoints (require auth): /auth/*, /stats/me, /solves/mine.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with user context when a valid token is present;
//     routes still run for guests, who get an anonymous cookie.

package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/config"
	"github.com/robalobadob/wordle-solver/internal/daily"
	"github.com/robalobadob/wordle-solver/internal/solves"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Server bundles router, word lists, session store, and DB handle.
type Server struct {
	r        *chi.Mux
	cfg      config.Config
	lists    *words.Lists
	store    store.Store
	db       *sql.DB
	solves   *solves.Store
	daily    *daily.Store
	validate *validator.Validate
	now      func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, lists *words.Lists, st store.Store, db *sql.DB) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		cfg:      cfg,
		lists:    lists,
		store:    st,
		db:       db,
		solves:   solves.NewStore(db),
		daily:    daily.NewStore(db),
		validate: newValidator(),
		now:      time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped logger
	s.r.Use(accessLog)                       // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /solver/filter","POST /solver/rank","POST /solver/sessions","/daily/*","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		sol, valid := s.lists.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"solutions": sol, "valid": valid, "sessions": s.store.Len()})
	})
	s.r.Get("/words/check", s.handleWordCheck)

	// Solver: OPTIONAL AUTH (guests can solve; finished solves are recorded)
	s.mountSolver(s.r.With(s.withOptionalAuth()))

	// Daily autoplay benchmark
	s.mountDaily(s.r)

	// Auth + profile/stats (require auth)
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler { return s.r }

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- hs.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info().Msg("shutting down http server")
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one zerolog line per request.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("req_id", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
})

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- words -------------------------------------

type wordCheckRes struct {
	Word     string `json:"word"`
	Valid    bool   `json:"valid"`
	Solution bool   `json:"solution"`
	Closest  string `json:"closest,omitempty"`
	Distance int    `json:"distance"`
}

// handleWordCheck reports vocabulary membership and the nearest known word.
func (s *Server) handleWordCheck(w http.ResponseWriter, r *http.Request) {
	word := words.Normalize(r.URL.Query().Get("word"))
	if word == "" {
		http.Error(w, `{"error":"missing_word"}`, http.StatusBadRequest)
		return
	}
	closest, dist := s.lists.Closest(word)
	writeJSON(w, http.StatusOK, wordCheckRes{
		Word:     word,
		Valid:    s.lists.IsValid(word),
		Solution: s.lists.IsSolution(word),
		Closest:  closest,
		Distance: dist,
	})
}

// ------------------------------- small util --------------------------------

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newValidator returns a validator with the payload tags used by this package.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("alphanumunderscore", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
				return false
			}
		}
		return true
	})
	return v
}

// validationError flattens validator errors into a short message.
func validationError(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		parts := make([]string, 0, len(ve))
		for _, fe := range ve {
			parts = append(parts, strings.ToLower(fe.Field())+":"+fe.Tag())
		}
		return strings.Join(parts, ",")
	}
	return err.Error()
}
