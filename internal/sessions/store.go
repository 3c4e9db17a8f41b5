package sessions

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lk16/reversi/internal/othello"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrFull     = errors.New("too many sessions")
)

// Settings are the parameters a session is created with.
type Settings struct {
	Mode       othello.GameMode
	Difficulty othello.Difficulty

	// Seed makes the computer opponent reproducible. Zero means unseeded.
	Seed int64
}

// session wraps a controller. The controller is not safe for concurrent use,
// so all access goes through mutex.
type session struct {
	mutex      sync.Mutex
	controller *othello.Controller

	// lastActive is protected by Store.sessionsMutex
	lastActive time.Time
}

// Store keeps all sessions in memory.
type Store struct {
	// sessions maps session ID to session
	sessions map[string]*session

	// sessionsMutex protects sessions
	sessionsMutex sync.Mutex

	ttl         time.Duration
	maxSessions int

	// now is replaced in tests
	now func() time.Time

	// afterLookup runs between finding a session and locking it, set in tests
	afterLookup func()
}

// NewStore creates a store that drops sessions idle for longer than ttl.
func NewStore(ttl time.Duration, maxSessions int) *Store {
	return &Store{
		sessions:    make(map[string]*session),
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// Create starts a new session and returns its ID.
func (s *Store) Create(settings Settings) (string, error) {
	opts := []othello.SessionOption{othello.WithDifficulty(settings.Difficulty)}
	if settings.Seed != 0 {
		opts = append(opts, othello.WithSeed(settings.Seed))
	}

	controller := othello.NewSession(settings.Mode, opts...)
	id := uuid.New().String()

	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()

	if len(s.sessions) >= s.maxSessions {
		return "", ErrFull
	}

	s.sessions[id] = &session{
		controller: controller,
		lastActive: s.now(),
	}

	slog.Debug("created session", "id", id, "mode", settings.Mode.String())
	return id, nil
}

// With runs f with exclusive access to the controller of a session.
func (s *Store) With(id string, f func(c *othello.Controller) error) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	s.sessionsMutex.Lock()
	sess, ok := s.sessions[id]
	if ok {
		// Refreshed under sessionsMutex: Prune keeps a session between lookup and lock.
		sess.lastActive = s.now()
	}
	s.sessionsMutex.Unlock()

	if !ok {
		return ErrNotFound
	}

	if s.afterLookup != nil {
		s.afterLookup()
	}

	sess.mutex.Lock()
	defer sess.mutex.Unlock()

	return f(sess.controller)
}

// Delete removes a session.
func (s *Store) Delete(id string) error {
	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}

	delete(s.sessions, id)
	return nil
}

// Len returns the number of sessions.
func (s *Store) Len() int {
	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()

	return len(s.sessions)
}

// Prune removes sessions that were idle for longer than the TTL and returns how many were removed.
func (s *Store) Prune() int {
	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()

	deadline := s.now().Add(-s.ttl)
	pruned := 0

	for id, sess := range s.sessions {
		// Sessions in use are skipped, they just became active.
		if !sess.mutex.TryLock() {
			continue
		}

		if sess.lastActive.Before(deadline) {
			delete(s.sessions, id)
			pruned++
		}
		sess.mutex.Unlock()
	}

	return pruned
}

// RunPruner calls Prune every interval until ctx is done.
func (s *Store) RunPruner(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if pruned := s.Prune(); pruned > 0 {
				slog.Info("pruned idle sessions", "count", pruned, "remaining", s.Len())
			}
		}
	}
}
