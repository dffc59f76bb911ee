package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/pitchzone/internal/cache"
	"github.com/albapepper/pitchzone/internal/provider"
)

func newTestServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/players.json", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Write([]byte(`[{"id":"p1","name":"One","team":"PIT","number":30,"img":""}]`))
	})
	mux.HandleFunc("/p1_2024.csv", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if r.Header.Get("If-None-Match") == `"log-v1"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"log-v1"`)
		w.Write([]byte("plate_x,plate_z,description\n0.1,2.0,ball\n,2.0,ball\n"))
	})
	mux.HandleFunc("/p1_2024_stats.csv", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("W,L,ERA,IP,WAR\n11,3,1.96,133.0,5.9\n"))
	})
	mux.HandleFunc("/broken_2024.csv", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientFetches(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	c := NewClient(srv.URL+"/", 6000, nil, nil)
	ctx := context.Background()

	roster, err := c.Roster(ctx)
	require.NoError(t, err)
	assert.Equal(t, "One", roster[0].Name)

	rows, err := c.PitchLog(ctx, "p1", 2024)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	line, err := c.SeasonStats(ctx, "p1", 2024)
	require.NoError(t, err)
	assert.Equal(t, "5.9", line.WAR)
	assert.Equal(t, "p1", line.PlayerID)
}

func TestClientErrors(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	c := NewClient(srv.URL, 6000, nil, nil)
	ctx := context.Background()

	_, err := c.PitchLog(ctx, "missing", 2024)
	assert.ErrorIs(t, err, provider.ErrNotFound)

	_, err = c.PitchLog(ctx, "broken", 2024)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClientCachesAndRevalidates(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	appCache := cache.New(true)
	c := NewClient(srv.URL, 6000, appCache, nil)
	ctx := context.Background()

	_, err := c.Roster(ctx)
	require.NoError(t, err)
	_, err = c.Roster(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "second roster read is served from cache")

	_, err = c.PitchLog(ctx, "p1", 2024)
	require.NoError(t, err)

	// Expire the entry but keep it around for revalidation.
	data, etag, ok := appCache.Peek("remote:/p1_2024.csv")
	require.True(t, ok)
	appCache.SetWithETag("remote:/p1_2024.csv", data, etag, -time.Second)

	rows, err := c.PitchLog(ctx, "p1", 2024)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "304 reuses the stale body")
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}
