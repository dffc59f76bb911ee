package maintenance

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeSessions struct {
	reaped atomic.Int32
	idle   atomic.Int64
	live   int
}

func (f *fakeSessions) Reap(idle time.Duration) int {
	f.idle.Store(int64(idle))
	f.reaped.Add(1)
	return 2
}

func (f *fakeSessions) Len() int { return f.live }

type fakeCache map[string]interface{}

func (f fakeCache) Stats() map[string]interface{} { return f }

func TestReapSessions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := &fakeSessions{live: 3}

	assert.Equal(t, 2, reapSessions(s, time.Hour, logger))
	assert.Equal(t, int64(time.Hour), s.idle.Load())
	assert.Contains(t, buf.String(), "Reaped idle sessions")
	assert.Contains(t, buf.String(), "remaining=3")
}

func TestLogStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logStatus(&fakeSessions{live: 4}, fakeCache{"active_keys": 7, "expired_keys": 1}, logger)
	assert.Contains(t, buf.String(), "sessions=4")
	assert.Contains(t, buf.String(), "cache_active=7")
}

func TestStartRunsReaperUntilCancelled(t *testing.T) {
	s := &fakeSessions{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Start(ctx, s, nil, Config{ReapInterval: 5 * time.Millisecond, SessionIdle: time.Minute}, quiet)
		close(done)
	}()

	require.Eventually(t, func() bool { return s.reaped.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestAnalyzeTables(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("ANALYZE players").WillReturnResult(pgxmock.NewResult("ANALYZE", 0))
	mock.ExpectExec("ANALYZE pitches").WillReturnResult(pgxmock.NewResult("ANALYZE", 0))
	mock.ExpectExec("ANALYZE player_season_stats").WillReturnResult(pgxmock.NewResult("ANALYZE", 0))

	require.NoError(t, AnalyzeTables(context.Background(), mock, quiet))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyzeTablesStopsOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("ANALYZE players").WillReturnError(errors.New("permission denied"))

	err = AnalyzeTables(context.Background(), mock, quiet)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analyze players")
}
