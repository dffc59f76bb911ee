package view

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry holds the live sessions of the API server.
type Registry struct {
	roster *RosterHolder
	loader Loader
	sizes  Sizes
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry(roster *RosterHolder, l Loader, sizes Sizes, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		roster:   roster,
		loader:   l,
		sizes:    sizes,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Create starts a session and, like the web client on start-up, selects the
// first roster player into the primary slot.
func (r *Registry) Create() (*Session, *Ticket, error) {
	players, ok := r.roster.Players()
	if !ok || len(players) == 0 {
		return nil, nil, ErrRosterLoading
	}

	s := NewSession(uuid.NewString(), players, r.loader, r.sizes, r.logger)
	ticket, err := s.SelectPlayer(string(players[0].ID))
	if err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("initial selection: %w", err)
	}

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	r.logger.Info("Session created", "session", s.ID(), "player_id", ticket.PlayerID)
	return s, ticket, nil
}

// Get looks up a session.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Delete closes and removes a session.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.Close()
	return nil
}

// Len is the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Reap closes sessions idle for longer than idle and returns how many were
// removed.
func (r *Registry) Reap(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)

	r.mu.Lock()
	var stale []*Session
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			stale = append(stale, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range stale {
		s.Close()
	}
	return len(stale)
}

// CloseAll closes every session. Used on shutdown.
func (r *Registry) CloseAll(ctx context.Context) {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		for _, s := range all {
			s.Close()
		}
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		r.logger.Warn("Sessions still closing at shutdown deadline", "count", len(all))
	}
}
