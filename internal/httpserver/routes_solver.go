// internal/httpserver/routes_solver.go
//
// HTTP routes for the solver.
// Exposes under /solver:
//   - POST   /solver/filter                → one-shot filter of the solutions list
//   - POST   /solver/rank                  → one-shot ranking of a caller's pool
//   - POST   /solver/sessions              → start a session (first suggestion included)
//   - GET    /solver/sessions/{id}         → session snapshot
//   - POST   /solver/sessions/{id}/advance → set the active round and advance
//   - POST   /solver/sessions/{id}/reset   → clear all rounds
//   - DELETE /solver/sessions/{id}         → drop a session
//
// Rounds are accepted either as three cell arrays (guess/correct/present)
// or as a word plus a g/y/. pattern. Finished sessions are recorded against
// the caller (user or anonymous cookie).

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle-solver/internal/session"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/solves"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// roundReq is one round of feedback on the wire.
type roundReq struct {
	Word    string   `json:"word,omitempty" validate:"required_without=Guess,omitempty,len=5,alpha"`
	Pattern string   `json:"pattern,omitempty" validate:"required_with=Word,omitempty,len=5"`
	Guess   []string `json:"guess,omitempty" validate:"required_without=Word,omitempty,len=5"`
	Correct []string `json:"correct,omitempty" validate:"omitempty,len=5"`
	Present []string `json:"present,omitempty" validate:"omitempty,len=5"`
}

// toRound converts the payload into a validated solver.Round.
func (p roundReq) toRound() (solver.Round, error) {
	if p.Word != "" {
		return solver.ParsePattern(p.Word, p.Pattern)
	}
	r := solver.Round{Guess: p.Guess, Correct: p.Correct, Present: p.Present}
	if r.Correct == nil {
		r.Correct = make([]string, solver.WordLen)
	}
	if r.Present == nil {
		r.Present = make([]string, solver.WordLen)
	}
	if err := session.Validate(r); err != nil {
		return solver.Round{}, err
	}
	return r, nil
}

type filterReq struct {
	Rounds []roundReq `json:"rounds" validate:"dive"`
	Top    int        `json:"top" validate:"gte=0,lte=100"`
}

type filterRes struct {
	Candidates   []string `json:"candidates"`
	Remaining    int      `json:"remaining"`
	Suggestion   string   `json:"suggestion"`
	Shortlist    []string `json:"shortlist"`
	UsedFallback bool     `json:"usedFallback"`
}

type rankReq struct {
	Words []string `json:"words" validate:"required,dive,len=5,alpha"`
	Top   int      `json:"top" validate:"gte=0,lte=100"`
}

type createReq struct {
	Top int `json:"top" validate:"gte=0,lte=100"`
}

// mountSolver registers all /solver routes.
func (s *Server) mountSolver(r chi.Router) {
	r.Route("/solver", func(r chi.Router) {
		r.Post("/filter", s.handleFilter)
		r.Post("/rank", s.handleRank)

		r.Post("/sessions", s.handleCreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Post("/advance", s.handleAdvance)
			r.Post("/reset", s.handleReset)
		})
	})
}

// handleFilter applies every round to the solutions list and falls back to
// the valid-words list when nothing survives.
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var body filterReq
	if !s.decode(w, r, &body, false) {
		return
	}
	rounds, ok := s.toRounds(w, body.Rounds)
	if !ok {
		return
	}

	res := filterRes{Candidates: solver.FilterAll(s.lists.Solutions, rounds)}
	if len(res.Candidates) == 0 {
		res.UsedFallback = true
		res.Candidates = solver.FilterAll(s.lists.Valid, rounds)
	}
	res.Remaining = len(res.Candidates)
	res.Suggestion = solver.Best(res.Candidates)
	res.Shortlist = solver.TopK(res.Candidates, s.topK(body.Top))
	writeJSON(w, http.StatusOK, res)
}

// handleRank scores the caller's pool; Top bounds the result when positive.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var body rankReq
	if !s.decode(w, r, &body, false) {
		return
	}
	pool := make([]string, len(body.Words))
	for i, wd := range body.Words {
		pool[i] = words.Normalize(wd)
	}
	scored := solver.Scores(pool)
	best := ""
	if len(scored) > 0 {
		best = scored[0].Word
	}
	if body.Top > 0 && body.Top < len(scored) {
		scored = scored[:body.Top]
	}
	writeJSON(w, http.StatusOK, map[string]any{"ranked": scored, "best": best})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var body createReq
	if !s.decode(w, r, &body, true) {
		return
	}
	topK := s.topK(body.Top)
	snap, err := s.store.Create(r.Context(), func(id string) *session.Session {
		return session.New(id, s.lists, topK)
	})
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("create session")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	hlog.FromRequest(r).Debug().Str("sessionId", snap.ID).Msg("session created")
	writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeSessionError(w, r, snap, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeSessionError(w, r, session.Snapshot{}, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAdvance optionally replaces the active round with the request body,
// then advances. A fully green round finishes the session instead and is
// recorded once.
func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	var body *roundReq
	var p roundReq
	err := json.NewDecoder(r.Body).Decode(&p)
	switch {
	case errors.Is(err, io.EOF):
	case err != nil:
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	default:
		if err := s.validate.Struct(p); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": validationError(err)})
			return
		}
		body = &p
	}

	var active solver.Round
	if body != nil {
		if active, err = body.toRound(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}

	solvedNow := false
	snap, err := s.store.Update(r.Context(), chi.URLParam(r, "id"), func(sess *session.Session) error {
		if body != nil {
			if sess.Solved() {
				return session.ErrSolved
			}
			if err := sess.SetActive(active); err != nil {
				return err
			}
			if sess.Solved() {
				solvedNow = true
				return nil
			}
		}
		return sess.Advance()
	})
	if err != nil {
		s.writeSessionError(w, r, snap, err)
		return
	}
	if solvedNow {
		s.recordSolve(w, r, snap)
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Update(r.Context(), chi.URLParam(r, "id"), func(sess *session.Session) error {
		sess.Reset()
		return nil
	})
	if err != nil {
		s.writeSessionError(w, r, snap, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// recordSolve persists a finished session. Failures are logged, not surfaced.
func (s *Server) recordSolve(w http.ResponseWriter, r *http.Request, snap session.Snapshot) {
	userID, anonID := s.ownerOf(w, r)
	rec := solves.Record{
		SessionID:    snap.ID,
		UserID:       userID,
		AnonymousID:  anonID,
		Solution:     snap.Active.Word(),
		Rounds:       len(snap.Rounds) + 1,
		UsedFallback: snap.UsedFallback,
	}
	if err := s.solves.Insert(r.Context(), rec); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("sessionId", snap.ID).Msg("record solve")
	}
}

// writeSessionError maps driver and store errors onto HTTP statuses.
// ErrNoCandidates still returns the adopted snapshot.
func (s *Server) writeSessionError(w http.ResponseWriter, r *http.Request, snap session.Snapshot, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)
	case errors.Is(err, session.ErrInvalidRound):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, session.ErrSolved):
		http.Error(w, `{"error":"already_solved"}`, http.StatusConflict)
	case errors.Is(err, session.ErrNoCandidates):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": "no_candidates", "session": snap})
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("session update")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
	}
}

// decode reads a JSON body into v and validates it. optional allows an empty body.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !(optional && errors.Is(err, io.EOF)) {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": validationError(err)})
		return false
	}
	return true
}

func (s *Server) toRounds(w http.ResponseWriter, in []roundReq) ([]solver.Round, bool) {
	out := make([]solver.Round, 0, len(in))
	for _, p := range in {
		rd, err := p.toRound()
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return nil, false
		}
		out = append(out, rd)
	}
	return out, true
}

// topK picks the request's shortlist size, else the configured one.
func (s *Server) topK(req int) int {
	if req > 0 {
		return req
	}
	if s.cfg.TopK > 0 {
		return s.cfg.TopK
	}
	return session.DefaultTopK
}
