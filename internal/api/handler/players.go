package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/pitchzone/internal/api/respond"
	"github.com/albapepper/pitchzone/internal/cache"
	"github.com/albapepper/pitchzone/internal/provider"
	"github.com/albapepper/pitchzone/internal/view"
)

// ListPlayers returns the roster.
// @Summary List players
// @Description Returns the shared roster in source order. 503 while it is still loading.
// @Tags players
// @Produce json
// @Success 200 {array} provider.Player
// @Success 304 "Not modified"
// @Failure 503 {object} respond.ErrorResponse
// @Router /api/v1/players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ttl := cache.TTLRoster

	if data, etag, ok := h.cache.Get(cache.RosterKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	players, ok := h.roster.Players()
	if !ok {
		writeError(w, view.ErrRosterLoading)
		return
	}
	raw, err := json.Marshal(players)
	if err != nil {
		writeError(w, err)
		return
	}

	etag := h.cache.Set(cache.RosterKey, raw, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, raw, etag, ttl, false)
}

// PitchTypesResponse lists the pitch-type filter options for one player.
type PitchTypesResponse struct {
	PlayerID   string   `json:"player_id"`
	Season     int      `json:"season"`
	PitchTypes []string `json:"pitch_types"`
}

// GetPitchTypes returns the distinct pitch types in a player's season log.
// @Summary Player pitch types
// @Description Distinct non-empty pitch_type codes in first-seen order.
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} PitchTypesResponse
// @Success 304 "Not modified"
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /api/v1/players/{playerID}/pitch-types [get]
func (h *Handler) GetPitchTypes(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	players, ok := h.roster.Players()
	if !ok {
		writeError(w, view.ErrRosterLoading)
		return
	}
	if _, ok := provider.FindPlayer(players, playerID); !ok {
		writeError(w, fmt.Errorf("%w: %q", view.ErrUnknownPlayer, playerID))
		return
	}

	season := h.loader.Season()
	cacheKey := cache.PitchTypesKey(season, playerID)
	ttl := cache.TTLPitchLog

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	ds, err := h.loader.Load(r.Context(), playerID)
	if err != nil {
		writeError(w, err)
		return
	}
	types := ds.PitchTypes
	if types == nil {
		types = []string{}
	}
	raw, err := json.Marshal(PitchTypesResponse{PlayerID: playerID, Season: season, PitchTypes: types})
	if err != nil {
		writeError(w, err)
		return
	}

	etag := h.cache.Set(cacheKey, raw, ttl)
	respond.WriteJSON(w, raw, etag, ttl, false)
}
