package http

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
	"github.com/flight-search/offer-exploration-engine/internal/infrastructure/timeutil"
	"github.com/flight-search/offer-exploration-engine/internal/usecase"
)

// Registry owns the live exploration sessions. Sessions are keyed by a
// server-generated UUID and expire after a period of inactivity; every
// successful lookup refreshes the deadline.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry

	pageSize int
	ttl      time.Duration
	clock    timeutil.Clock
	log      zerolog.Logger
}

// sessionEntry pairs a session with its last-activity timestamp.
type sessionEntry struct {
	session  *usecase.Session
	lastSeen time.Time
}

// NewRegistry creates a registry whose sessions use the given page size
// and expire after ttl of inactivity.
func NewRegistry(pageSize int, ttl time.Duration, log zerolog.Logger) *Registry {
	return NewRegistryWithClock(pageSize, ttl, log, timeutil.NewRealClock())
}

// NewRegistryWithClock creates a registry with an injectable clock.
func NewRegistryWithClock(pageSize int, ttl time.Duration, log zerolog.Logger, clock timeutil.Clock) *Registry {
	return &Registry{
		sessions: make(map[string]*sessionEntry),
		pageSize: pageSize,
		ttl:      ttl,
		clock:    clock,
		log:      log,
	}
}

// Create starts a new exploration session and returns it.
func (r *Registry) Create() *usecase.Session {
	id := uuid.New().String()
	session := usecase.NewSession(id, r.pageSize, r.log)

	r.mu.Lock()
	r.sessions[id] = &sessionEntry{
		session:  session,
		lastSeen: r.clock.Now(),
	}
	r.mu.Unlock()

	r.log.Info().Str("session_id", id).Msg("session created")
	return session
}

// Get returns the session with the given id and refreshes its expiry.
func (r *Registry) Get(id string) (*usecase.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrSessionNotFound, id)
	}
	entry.lastSeen = r.clock.Now()
	return entry.session, nil
}

// Delete removes the session with the given id. It reports whether a
// session was actually removed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	r.log.Info().Str("session_id", id).Msg("session deleted")
	return true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// PruneExpired removes sessions idle for longer than the TTL and returns
// how many were removed. A non-positive TTL disables expiry.
func (r *Registry) PruneExpired() int {
	if r.ttl <= 0 {
		return 0
	}

	deadline := r.clock.Now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	pruned := 0
	for id, entry := range r.sessions {
		if entry.lastSeen.Before(deadline) {
			delete(r.sessions, id)
			pruned++
		}
	}
	if pruned > 0 {
		r.log.Info().Int("pruned", pruned).Int("remaining", len(r.sessions)).Msg("expired sessions pruned")
	}
	return pruned
}
