// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily solver benchmark.
// Exposes two endpoints under /daily:
//   - GET /daily/autoplay → play the solver against the day's puzzle
//   - GET /daily/history  → recorded runs, newest first
//
// DailyLoop records each day's run in the background when serving.
//
// The day's answer is chosen deterministically from date + salt. The first
// run per date is persisted; later calls replay the same deterministic game.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/daily"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/session"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/autoplay", s.handleDailyAutoplay)
		r.Get("/history", s.handleDailyHistory)
	})
}

// autoplayRes is returned by /daily/autoplay.
type autoplayRes struct {
	Run   daily.Run  `json:"run"`
	Trace game.Trace `json:"trace"`
}

// handleDailyAutoplay plays today's puzzle, or the one for ?date=YYYY-MM-DD.
func (s *Server) handleDailyAutoplay(w http.ResponseWriter, r *http.Request) {
	day := s.now().UTC()
	if q := r.URL.Query().Get("date"); q != "" {
		t, err := time.Parse("2006-01-02", q)
		if err != nil {
			http.Error(w, `{"error":"bad_date"}`, http.StatusBadRequest)
			return
		}
		day = t
	}

	run, tr, err := s.PlayDaily(r.Context(), day)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("date", daily.DateKey(day)).Msg("daily autoplay")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, autoplayRes{Run: run, Trace: tr})
}

// PlayDaily autoplays the puzzle for day and records the run. A failed
// insert is logged; the run is still returned.
func (s *Server) PlayDaily(ctx context.Context, day time.Time) (daily.Run, game.Trace, error) {
	p := daily.PuzzleFor(day, s.cfg.DailySalt, s.lists.Solutions)
	g := game.New(p.Answer, s.lists.IsValid)
	tr, err := game.Autoplay(g, session.New(uuid.NewString(), s.lists, s.topK(0)))
	if err != nil {
		return daily.Run{}, tr, err
	}

	run := daily.Run{
		Date:         p.Date,
		WordIndex:    p.WordIndex,
		Answer:       p.Answer,
		Rounds:       len(tr.Steps),
		Won:          tr.Won,
		UsedFallback: tr.UsedFallback,
	}
	if err := s.daily.Insert(ctx, run); err != nil {
		log.Warn().Err(err).Str("date", p.Date).Msg("record daily run")
	}
	return run, tr, nil
}

// DailyLoop records the day's run now and then every interval until ctx ends.
func (s *Server) DailyLoop(ctx context.Context, every time.Duration) error {
	if every <= 0 {
		every = time.Hour
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		if _, err := s.daily.Get(ctx, daily.DateKey(s.now())); errors.Is(err, daily.ErrNoRun) {
			run, _, err := s.PlayDaily(ctx, s.now())
			if err != nil {
				log.Error().Err(err).Msg("daily autoplay")
			} else {
				log.Info().Str("date", run.Date).Int("rounds", run.Rounds).Bool("won", run.Won).Msg("daily run recorded")
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

// handleDailyHistory lists recorded runs; ?limit caps the count (default 30).
func (s *Server) handleDailyHistory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := s.daily.History(r.Context(), limit)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("daily history")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, runs)
}
