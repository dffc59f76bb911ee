package view

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/pitchzone/internal/provider"
)

func TestRegistryCreateSelectsFirstPlayer(t *testing.T) {
	r := NewRegistry(StaticRoster(testRoster), sampleLoader(), DefaultSizes(), nil)

	s, tk, err := r.Create()
	require.NoError(t, err)
	assert.Equal(t, "pA", tk.PlayerID)
	assert.Equal(t, OutcomeApplied, waitTicket(t, tk))
	assert.Equal(t, 1, r.Len())

	got, err := r.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	p, err := got.Panel(Primary)
	require.NoError(t, err)
	assert.Equal(t, StatusReady, p.Status)
	assert.Equal(t, ModeDashboard, got.State().Mode)

	require.NoError(t, r.Delete(s.ID()))
	_, err = r.Get(s.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, r.Delete(s.ID()), ErrSessionNotFound)
}

func TestRegistrySessionsAreIndependent(t *testing.T) {
	r := NewRegistry(StaticRoster(testRoster), sampleLoader(), DefaultSizes(), nil)
	a, _, err := r.Create()
	require.NoError(t, err)
	b, _, err := r.Create()
	require.NoError(t, err)
	defer r.CloseAll(context.Background())

	assert.NotEqual(t, a.ID(), b.ID())
	require.NoError(t, a.SetMode(ModeComparison))
	assert.Equal(t, ModeDashboard, b.State().Mode)
}

func TestRegistryRosterNotLoaded(t *testing.T) {
	r := NewRegistry(NewRosterHolder(), sampleLoader(), DefaultSizes(), nil)
	_, _, err := r.Create()
	assert.ErrorIs(t, err, ErrRosterLoading)

	r = NewRegistry(StaticRoster([]provider.Player{}), sampleLoader(), DefaultSizes(), nil)
	_, _, err = r.Create()
	assert.ErrorIs(t, err, ErrRosterLoading)
}

func TestRegistryReap(t *testing.T) {
	r := NewRegistry(StaticRoster(testRoster), sampleLoader(), DefaultSizes(), nil)
	idle, tk, err := r.Create()
	require.NoError(t, err)
	waitTicket(t, tk)
	active, tk, err := r.Create()
	require.NoError(t, err)
	waitTicket(t, tk)

	idle.mu.Lock()
	idle.lastSeen = time.Now().Add(-2 * time.Hour)
	idle.mu.Unlock()

	assert.Equal(t, 1, r.Reap(time.Hour))
	assert.Equal(t, 1, r.Len())
	_, err = r.Get(active.ID())
	assert.NoError(t, err)

	_, err = idle.SelectPlayer("pB")
	assert.ErrorIs(t, err, ErrSessionClosed)
}

type flakyRoster struct {
	failures int32
	calls    atomic.Int32
}

func (f *flakyRoster) Roster(context.Context) ([]provider.Player, error) {
	if f.calls.Add(1) <= f.failures {
		return nil, errors.New("connection refused")
	}
	return testRoster, nil
}

func TestRosterHolderLoad(t *testing.T) {
	h := NewRosterHolder()
	_, ok := h.Players()
	assert.False(t, ok)

	src := &flakyRoster{}
	h.Load(context.Background(), src, slog.New(slog.NewTextHandler(io.Discard, nil)))

	select {
	case <-h.Ready():
	default:
		t.Fatal("roster should be ready")
	}
	players, ok := h.Players()
	require.True(t, ok)
	assert.Len(t, players, 3)
}

func TestRosterHolderStopsOnCancel(t *testing.T) {
	h := NewRosterHolder()
	ctx, cancel := context.WithCancel(context.Background())
	src := &flakyRoster{failures: 1000}

	done := make(chan struct{})
	go func() {
		h.Load(ctx, src, slog.New(slog.NewTextHandler(io.Discard, nil)))
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Load did not return after cancel")
	}
	_, ok := h.Players()
	assert.False(t, ok)
}
