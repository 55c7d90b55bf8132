package daily

import (
	"context"
	"database/sql"
	"errors"
)

// Run is the solver's autoplay result for one day.
type Run struct {
	Date         string `json:"date"`
	WordIndex    int    `json:"wordIndex"`
	Answer       string `json:"answer"`
	Rounds       int    `json:"rounds"`
	Won          bool   `json:"won"`
	UsedFallback bool   `json:"usedFallback"`
}

// ErrNoRun is returned when no run is recorded for a date.
var ErrNoRun = errors.New("no daily run recorded")

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Get returns the recorded run for date.
func (s *Store) Get(ctx context.Context, date string) (Run, error) {
	var r Run
	err := s.db.QueryRowContext(ctx,
		`SELECT date, word_index, answer, rounds, won, used_fallback FROM daily_runs WHERE date=?`, date,
	).Scan(&r.Date, &r.WordIndex, &r.Answer, &r.Rounds, &r.Won, &r.UsedFallback)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNoRun
	}
	return r, err
}

// Insert records r; the first run per date wins.
func (s *Store) Insert(ctx context.Context, r Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_runs(date, word_index, answer, rounds, won, used_fallback)
		 VALUES(?,?,?,?,?,?)`, r.Date, r.WordIndex, r.Answer, r.Rounds, r.Won, r.UsedFallback,
	)
	return err
}

// History lists recorded runs, newest date first.
func (s *Store) History(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 30
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, word_index, answer, rounds, won, used_fallback
		 FROM daily_runs ORDER BY date DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Run{}
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.Date, &r.WordIndex, &r.Answer, &r.Rounds, &r.Won, &r.UsedFallback); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
