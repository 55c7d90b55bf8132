// internal/store/memory.go
//
// In-memory session store for solver sessions.
//
// Characteristics:
//   - Stores *session.Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex; Update runs its callback under the write
//     lock so a session is never mutated by two requests at once.
//   - IDs are random UUIDs.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle-solver/internal/session"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the persistence interface for solver sessions.
type Store interface {
	// Create builds a session with a fresh ID via newFn and stores it.
	Create(ctx context.Context, newFn func(id string) *session.Session) (session.Snapshot, error)

	// Get returns a snapshot of the session.
	Get(ctx context.Context, id string) (session.Snapshot, error)

	// Update runs fn against the live session under the store lock.
	Update(ctx context.Context, id string, fn func(*session.Session) error) (session.Snapshot, error)

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Len reports the number of live sessions.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex                // guards sessions map and contents
	sessions map[string]*session.Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*session.Session)}
}

func (m *memory) Create(ctx context.Context, newFn func(id string) *session.Session) (session.Snapshot, error) {
	s := newFn(uuid.NewString())
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s.Snapshot(), nil
}

func (m *memory) Get(ctx context.Context, id string) (session.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s.Snapshot(), nil
	}
	return session.Snapshot{}, ErrNotFound
}

// Update returns the post-update snapshot together with fn's error, so
// callers can report state even when the driver signals ErrNoCandidates.
func (m *memory) Update(ctx context.Context, id string, fn func(*session.Session) error) (session.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return session.Snapshot{}, ErrNotFound
	}
	err := fn(s)
	return s.Snapshot(), err
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
