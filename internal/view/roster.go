package view

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/albapepper/pitchzone/internal/provider"
)

const (
	rosterBackoff    = 5 * time.Second
	rosterMaxBackoff = 5 * time.Minute
)

// RosterLoader fetches the roster. *loader.Orchestrator implements it.
type RosterLoader interface {
	Roster(ctx context.Context) ([]provider.Player, error)
}

// RosterHolder holds the roster once it has loaded. Until then every reader
// sees "not loaded" and the API reports a loading state.
type RosterHolder struct {
	mu      sync.RWMutex
	players []provider.Player
	ready   chan struct{}
}

// NewRosterHolder returns an empty holder.
func NewRosterHolder() *RosterHolder {
	return &RosterHolder{ready: make(chan struct{})}
}

// StaticRoster returns a holder that is already loaded.
func StaticRoster(players []provider.Player) *RosterHolder {
	h := NewRosterHolder()
	h.set(players)
	return h
}

// Players returns the roster and whether it has loaded.
func (h *RosterHolder) Players() ([]provider.Player, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.players, h.players != nil
}

// Ready is closed once the roster is available.
func (h *RosterHolder) Ready() <-chan struct{} {
	return h.ready
}

func (h *RosterHolder) set(players []provider.Player) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.players != nil {
		return
	}
	h.players = players
	close(h.ready)
}

// Load fetches the roster, retrying with exponential backoff until it
// succeeds or ctx is cancelled. Intended to be called with `go`.
func (h *RosterHolder) Load(ctx context.Context, src RosterLoader, logger *slog.Logger) {
	backoff := rosterBackoff
	for {
		players, err := src.Roster(ctx)
		if err == nil {
			h.set(players)
			logger.Info("Roster loaded", "players", len(players))
			return
		}
		if ctx.Err() != nil {
			return
		}

		logger.Error("Roster unavailable, retrying", "error", err, "backoff", backoff)
		select {
		case <-time.After(backoff):
			backoff = min(backoff*2, rosterMaxBackoff)
		case <-ctx.Done():
			return
		}
	}
}
