package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/pitchzone/internal/api/handler"
	"github.com/albapepper/pitchzone/internal/api/respond"
	"github.com/albapepper/pitchzone/internal/cache"
	"github.com/albapepper/pitchzone/internal/config"
	"github.com/albapepper/pitchzone/internal/loader"
	"github.com/albapepper/pitchzone/internal/provider"
	"github.com/albapepper/pitchzone/internal/provider/file"
	"github.com/albapepper/pitchzone/internal/view"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

var dataFS = fstest.MapFS{
	file.RosterFile: {Data: []byte(`[
		{"id": "p1", "name": "Ace", "team": "PIT", "number": 30},
		{"id": "p2", "name": "Deuce", "team": "NYY", "number": 45}
	]`)},
	file.PitchLogName("p1", 2024): {Data: []byte(
		"plate_x,plate_z,description,events,pitch_type,inning,game_date,batter\n" +
			"0.1,2.0,ball,,FF,1,2024-04-01,100\n" +
			"-2.0,2.0,ball,,SL,1,2024-04-01,100\n" +
			",2.0,ball,,FF,2,2024-04-01,101\n" +
			"0.3,2.5,called_strike,,CH,2,2024-04-01,101\n")},
	file.StatsName("p1", 2024): {Data: []byte("W,L,ERA,IP,WAR\n10,5,2.25,180.1,4.1\n")},
	file.PitchLogName("p2", 2024): {Data: []byte(
		"plate_x,plate_z,description,events\n" +
			"0.0,2.5,hit_into_play,single\n")},
}

type env struct {
	srv      *httptest.Server
	sessions *view.Registry
}

func newEnv(t *testing.T, roster *view.RosterHolder, db handler.HealthChecker) *env {
	t.Helper()
	cfg := &config.Config{
		DataSource:       config.SourceFile,
		Season:           2024,
		LoadTimeout:      2 * time.Second,
		CORSAllowOrigins: []string{"http://localhost:5173"},
	}
	orch := loader.New(file.NewFS(dataFS), cfg.Season, cfg.LoadTimeout, quiet)
	if roster == nil {
		players, err := orch.Roster(context.Background())
		require.NoError(t, err)
		roster = view.StaticRoster(players)
	}
	sessions := view.NewRegistry(roster, orch, view.DefaultSizes(), quiet)
	deps := handler.Deps{
		Sessions: sessions,
		Roster:   roster,
		Loader:   orch,
		Cache:    cache.New(true),
		DB:       db,
		Config:   cfg,
	}
	srv := httptest.NewServer(NewRouter(deps, cfg))
	t.Cleanup(func() {
		srv.Close()
		sessions.CloseAll(context.Background())
	})
	return &env{srv: srv, sessions: sessions}
}

func (e *env) do(t *testing.T, method, path, body string, headers ...string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, rd)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	return decode[respond.ErrorResponse](t, resp).Error.Code
}

func createSession(t *testing.T, e *env) handler.SessionResponse {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/v1/sessions?wait=true", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[handler.SessionResponse](t, resp)
}

func TestHealth(t *testing.T) {
	e := newEnv(t, nil, nil)

	resp := e.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Process-Time"))
	body := decode[map[string]interface{}](t, resp)
	assert.Equal(t, true, body["roster_ready"])

	resp = e.do(t, http.MethodGet, "/health/db", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NO_DATABASE", errorCode(t, resp))

	resp = e.do(t, http.MethodGet, "/health/cache", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

type failingDB struct{}

func (failingDB) HealthCheck(context.Context) error { return errors.New("connection refused") }

func TestHealthDBUnavailable(t *testing.T) {
	e := newEnv(t, nil, failingDB{})
	resp := e.do(t, http.MethodGet, "/health/db", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestListPlayersETag(t *testing.T) {
	e := newEnv(t, nil, nil)

	resp := e.do(t, http.MethodGet, "/api/v1/players", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)
	players := decode[[]provider.Player](t, resp)
	require.Len(t, players, 2)
	assert.Equal(t, provider.FlexString("30"), players[0].Number)

	resp = e.do(t, http.MethodGet, "/api/v1/players", "", "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
}

func TestRosterLoading(t *testing.T) {
	e := newEnv(t, view.NewRosterHolder(), nil)

	resp := e.do(t, http.MethodGet, "/api/v1/players", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "ROSTER_LOADING", errorCode(t, resp))

	resp = e.do(t, http.MethodPost, "/api/v1/sessions", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestPitchTypes(t *testing.T) {
	e := newEnv(t, nil, nil)

	resp := e.do(t, http.MethodGet, "/api/v1/players/p1/pitch-types", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[handler.PitchTypesResponse](t, resp)
	assert.Equal(t, []string{"FF", "SL", "CH"}, body.PitchTypes)

	resp = e.do(t, http.MethodGet, "/api/v1/players/p2/pitch-types", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[handler.PitchTypesResponse](t, resp).PitchTypes)

	resp = e.do(t, http.MethodGet, "/api/v1/players/p9/pitch-types", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionLifecycle(t *testing.T) {
	e := newEnv(t, nil, nil)

	created := createSession(t, e)
	id := created.Session.ID
	require.NotNil(t, created.Load)
	assert.Equal(t, view.OutcomeApplied, created.Load.Outcome)
	assert.Equal(t, "p1", created.Session.Slots[view.Primary].PlayerID)
	assert.Equal(t, view.ModeDashboard, created.Session.Mode)

	base := "/api/v1/sessions/" + id

	resp := e.do(t, http.MethodGet, base+"/slots/primary/panel", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	panel := decode[view.Panel](t, resp)
	assert.Equal(t, view.StatusReady, panel.Status)
	assert.Equal(t, 3, panel.Total)
	assert.Len(t, panel.Points, 3)
	assert.Equal(t, 300.0, panel.Geometry.BoxSize)
	require.NotNil(t, panel.Stats)
	assert.Equal(t, "2.25", panel.Stats.ERA)
	assert.Equal(t, []string{"All", "FF", "SL", "CH"}, panel.PitchTypes)

	resp = e.do(t, http.MethodPut, base+"/slots/primary/filter", `{"field":"outcome","value":"Ball"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ball", decode[handler.FilterResponse](t, resp).Filter.OutcomeType)

	resp = e.do(t, http.MethodGet, base+"/slots/primary/panel", "")
	panel = decode[view.Panel](t, resp)
	require.Len(t, panel.Points, 2)
	assert.Equal(t, "blue", panel.Points[0].Color)

	// The multi-view panels share primary's data but keep their own filter.
	resp = e.do(t, http.MethodGet, base+"/slots/multi2/panel", "")
	panel = decode[view.Panel](t, resp)
	assert.Len(t, panel.Points, 3)
	assert.Equal(t, 200.0, panel.Geometry.BoxSize)

	resp = e.do(t, http.MethodPut, base+"/pitch", `{"slot":"primary","index":1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inspected := decode[view.InspectedDetail](t, resp)
	assert.InDelta(t, -2.0, inspected.Detail.PlateX, 1e-9)

	resp = e.do(t, http.MethodPut, base+"/mode", `{"mode":"comparison"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := decode[handler.SessionResponse](t, resp).Session
	assert.Equal(t, view.ModeComparison, state.Mode)
	require.NotNil(t, state.Inspected, "inspected pitch survives a mode switch")

	resp = e.do(t, http.MethodPut, base+"/slots/right/player?wait=true", `{"player_id":"p2"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sel := decode[handler.SessionResponse](t, resp)
	assert.Equal(t, view.OutcomeApplied, sel.Load.Outcome)
	assert.Equal(t, "p1", sel.Session.Slots[view.Primary].DataPlayerID)
	assert.Equal(t, "p2", sel.Session.Slots[view.Right].DataPlayerID)

	resp = e.do(t, http.MethodGet, base+"/slots/right/panel", "")
	panel = decode[view.Panel](t, resp)
	require.Len(t, panel.Points, 1)
	assert.Equal(t, "green", panel.Points[0].Color)
	assert.Nil(t, panel.Stats, "missing stat line still shows pitches")

	resp = e.do(t, http.MethodDelete, base+"/pitch", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = e.do(t, http.MethodGet, base, "")
	assert.Nil(t, decode[handler.SessionResponse](t, resp).Session.Inspected)

	resp = e.do(t, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = e.do(t, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 0, e.sessions.Len())
}

func TestSessionErrors(t *testing.T) {
	e := newEnv(t, nil, nil)
	base := "/api/v1/sessions/" + createSession(t, e).Session.ID

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"unknown session", http.MethodGet, "/api/v1/sessions/nope", "", http.StatusNotFound, "SESSION_NOT_FOUND"},
		{"bad mode", http.MethodPut, base + "/mode", `{"mode":"split"}`, http.StatusBadRequest, "INVALID_MODE"},
		{"bad layout", http.MethodPut, base + "/layout", `{"layout":"grid"}`, http.StatusBadRequest, "INVALID_LAYOUT"},
		{"unknown slot", http.MethodGet, base + "/slots/bench/panel", "", http.StatusBadRequest, "INVALID_SLOT"},
		{"player into multi panel", http.MethodPut, base + "/slots/multi0/player", `{"player_id":"p1"}`, http.StatusBadRequest, "SLOT_NOT_LOADABLE"},
		{"unknown player", http.MethodPut, base + "/slots/left/player", `{"player_id":"p9"}`, http.StatusNotFound, "PLAYER_NOT_FOUND"},
		{"bad filter field", http.MethodPut, base + "/slots/left/filter", `{"field":"speed","value":"90"}`, http.StatusBadRequest, "INVALID_FILTER_FIELD"},
		{"bad filter value", http.MethodPut, base + "/slots/left/filter", `{"field":"inning","value":"zero"}`, http.StatusBadRequest, "INVALID_FILTER_VALUE"},
		{"unknown body field", http.MethodPut, base + "/mode", `{"mode":"dashboard","extra":1}`, http.StatusBadRequest, "INVALID_BODY"},
		{"no such pitch", http.MethodPut, base + "/pitch", `{"slot":"primary","index":42}`, http.StatusNotFound, "PITCH_NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := e.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, errorCode(t, resp))
		})
	}
}

func TestRateLimit(t *testing.T) {
	h := RateLimitMiddleware(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}
