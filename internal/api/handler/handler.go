// Package handler provides HTTP handlers for all API endpoints.
// Session handlers are thin: they decode the request, call one operation on
// the session and encode the result. All state lives in internal/view.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/albapepper/pitchzone/internal/api/respond"
	"github.com/albapepper/pitchzone/internal/cache"
	"github.com/albapepper/pitchzone/internal/config"
	"github.com/albapepper/pitchzone/internal/loader"
	"github.com/albapepper/pitchzone/internal/pitch"
	"github.com/albapepper/pitchzone/internal/view"
)

const maxBodyBytes = 1 << 16

// DatasetLoader loads player seasons outside any session.
// *loader.Orchestrator implements it.
type DatasetLoader interface {
	Load(ctx context.Context, playerID string) (*loader.Dataset, error)
	Season() int
}

// HealthChecker is implemented by *db.Pool.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Deps are the handler dependencies. DB is nil unless the postgres source is
// active.
type Deps struct {
	Sessions *view.Registry
	Roster   *view.RosterHolder
	Loader   DatasetLoader
	Cache    *cache.Cache
	DB       HealthChecker
	Config   *config.Config
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	sessions *view.Registry
	roster   *view.RosterHolder
	loader   DatasetLoader
	cache    *cache.Cache
	db       HealthChecker
	cfg      *config.Config
}

// New creates a Handler with shared dependencies.
func New(d Deps) *Handler {
	return &Handler{
		sessions: d.Sessions,
		roster:   d.Roster,
		loader:   d.Loader,
		cache:    d.Cache,
		db:       d.DB,
		cfg:      d.Config,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, data source and season.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":        "Pitch Zone API",
		"version":     "1.0.0",
		"status":      "running",
		"docs":        "/docs",
		"data_source": h.cfg.DataSource,
		"season":      h.loader.Season(),
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status, roster readiness and live session count.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	_, ready := h.roster.Players()
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":       "healthy",
		"roster_ready": ready,
		"sessions":     h.sessions.Len(),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Description Verifies Postgres connectivity. 404 when the API does not read from Postgres.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respond.WriteError(w, http.StatusNotFound, "NO_DATABASE",
			fmt.Sprintf("data source is %q", h.cfg.DataSource))
		return
	}
	if err := h.db.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

// decodeBody reads a small JSON body into v, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be a JSON object", err.Error())
		return false
	}
	return true
}

// writeError maps domain errors to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status, code, msg := classifyError(err)
	respond.WriteErrorDetail(w, status, code, msg, err.Error())
}

func classifyError(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, view.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "Session not found"
	case errors.Is(err, view.ErrSessionClosed):
		return http.StatusGone, "SESSION_CLOSED", "Session has been closed"
	case errors.Is(err, view.ErrUnknownSlot):
		return http.StatusBadRequest, "INVALID_SLOT", "Unknown slot"
	case errors.Is(err, view.ErrNotLoadable):
		return http.StatusBadRequest, "SLOT_NOT_LOADABLE", "Players can only be selected into primary, left or right"
	case errors.Is(err, view.ErrUnknownPlayer):
		return http.StatusNotFound, "PLAYER_NOT_FOUND", "Player is not on the roster"
	case errors.Is(err, view.ErrInvalidMode):
		return http.StatusBadRequest, "INVALID_MODE", "Mode must be 'dashboard' or 'comparison'"
	case errors.Is(err, view.ErrInvalidLayout):
		return http.StatusBadRequest, "INVALID_LAYOUT", "Layout must be 'single' or 'multi'"
	case errors.Is(err, pitch.ErrUnknownField):
		return http.StatusBadRequest, "INVALID_FILTER_FIELD", "Field must be outcome, detail, pitch_type or inning"
	case errors.Is(err, pitch.ErrInvalidValue):
		return http.StatusBadRequest, "INVALID_FILTER_VALUE", "Filter value not allowed for this field"
	case errors.Is(err, view.ErrNoPitch):
		return http.StatusNotFound, "PITCH_NOT_FOUND", "No visible pitch at that index"
	case errors.Is(err, view.ErrRosterLoading):
		return http.StatusServiceUnavailable, "ROSTER_LOADING", "Roster is still loading"
	case errors.Is(err, loader.ErrUnavailable):
		return http.StatusServiceUnavailable, "DATA_UNAVAILABLE", "Player data unavailable"
	}
	return http.StatusInternalServerError, "INTERNAL", "Internal server error"
}
