// Package solves records finished solver sessions and summarises them per owner.
package solves

import (
	"context"
	"database/sql"
	"time"
)

// Record is one finished session.
type Record struct {
	SessionID    string    `json:"sessionId"`
	UserID       string    `json:"userId,omitempty"`
	AnonymousID  string    `json:"-"`
	Solution     string    `json:"solution"`
	Rounds       int       `json:"rounds"`
	UsedFallback bool      `json:"usedFallback"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Stats summarises an owner's solves.
type Stats struct {
	Solves       int     `json:"solves"`
	AvgRounds    float64 `json:"avgRounds"`
	BestRounds   int     `json:"bestRounds"`
	FallbackUsed int     `json:"fallbackUsed"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert stores r. A session is recorded at most once.
func (s *Store) Insert(ctx context.Context, r Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO solves(session_id, user_id, anonymous_id, solution, rounds, used_fallback)
		 VALUES(?,?,?,?,?,?)`,
		r.SessionID, nullable(r.UserID), nullable(r.AnonymousID), r.Solution, r.Rounds, r.UsedFallback,
	)
	return err
}

// StatsForUser aggregates a user's solves.
func (s *Store) StatsForUser(ctx context.Context, userID string) (Stats, error) {
	var st Stats
	var avg sql.NullFloat64
	var best sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1), AVG(rounds), MIN(rounds), COALESCE(SUM(used_fallback), 0)
		 FROM solves WHERE user_id=?`, userID,
	).Scan(&st.Solves, &avg, &best, &st.FallbackUsed)
	if err != nil {
		return Stats{}, err
	}
	st.AvgRounds = avg.Float64
	st.BestRounds = int(best.Int64)
	return st, nil
}

// RecentForUser lists a user's latest solves, newest first.
func (s *Store) RecentForUser(ctx context.Context, userID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, COALESCE(user_id,''), solution, rounds, used_fallback, created_at
		 FROM solves WHERE user_id=? ORDER BY created_at DESC, rowid DESC LIMIT ?`, userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var r Record
		var created string
		if err := rows.Scan(&r.SessionID, &r.UserID, &r.Solution, &r.Rounds, &r.UsedFallback, &created); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, r)
	}
	return out, rows.Err()
}

// ClaimAnonymous moves anonymous solves to a user account.
func (s *Store) ClaimAnonymous(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE solves SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`, userID, anonID)
	return err
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
