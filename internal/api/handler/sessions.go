package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/pitchzone/internal/api/respond"
	"github.com/albapepper/pitchzone/internal/view"
)

// LoadResponse reports a player selection. Outcome is empty while the load
// is still in flight.
type LoadResponse struct {
	Slot     view.Slot    `json:"slot"`
	PlayerID string       `json:"player_id"`
	Seq      uint64       `json:"seq"`
	Outcome  view.Outcome `json:"outcome,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// SessionResponse is a session snapshot plus the selection that produced it.
type SessionResponse struct {
	Session view.State    `json:"session"`
	Load    *LoadResponse `json:"load,omitempty"`
}

type modeRequest struct {
	Mode string `json:"mode"`
}

type layoutRequest struct {
	Layout string `json:"layout"`
}

type playerRequest struct {
	PlayerID string `json:"player_id"`
}

// CreateSession starts a session.
// @Summary Create session
// @Description Starts a viewer session in dashboard mode and selects the first roster player into the primary slot. With wait=true the response is sent after that load settles.
// @Tags sessions
// @Produce json
// @Param wait query bool false "Wait for the initial load"
// @Success 201 {object} SessionResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /api/v1/sessions [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess, ticket, err := h.sessions.Create()
	if err != nil {
		writeError(w, err)
		return
	}
	load := h.settle(r, ticket)
	respond.WriteJSONObject(w, http.StatusCreated, SessionResponse{Session: sess.State(), Load: load})
}

// GetSession returns a session snapshot.
// @Summary Get session
// @Description Mode, layout, per-slot player, load status and filter, and the inspected pitch.
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/sessions/{sessionID} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, SessionResponse{Session: sess.State()})
}

// DeleteSession closes a session.
// @Summary Delete session
// @Tags sessions
// @Param sessionID path string true "Session ID"
// @Success 204
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/sessions/{sessionID} [delete]
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(chi.URLParam(r, "sessionID")); err != nil {
		writeError(w, err)
		return
	}
	respond.WriteNoContent(w)
}

// SetMode switches the presentation mode.
// @Summary Set mode
// @Description Switches between dashboard and comparison. State owned by the other mode is kept.
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body modeRequest true "Mode"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/sessions/{sessionID}/mode [put]
func (h *Handler) SetMode(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req modeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := sess.SetMode(view.Mode(req.Mode)); err != nil {
		writeError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, SessionResponse{Session: sess.State()})
}

// SetLayout switches the dashboard layout.
// @Summary Set layout
// @Description Switches the dashboard between single view and four-panel multi-view.
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body layoutRequest true "Layout"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/sessions/{sessionID}/layout [put]
func (h *Handler) SetLayout(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req layoutRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := sess.SetLayout(view.Layout(req.Layout)); err != nil {
		writeError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, SessionResponse{Session: sess.State()})
}

// SelectPlayer selects a player into a loadable slot.
// @Summary Select player
// @Description Selects a roster player into primary, left or right. The player switches at once; the previous data stays visible until the new season arrives. 202 while the load is in flight.
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param slot path string true "Slot" Enums(primary, left, right)
// @Param wait query bool false "Wait for the load to settle"
// @Param body body playerRequest true "Player"
// @Success 200 {object} SessionResponse
// @Success 202 {object} SessionResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/sessions/{sessionID}/slots/{slot}/player [put]
func (h *Handler) SelectPlayer(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	slot, err := view.ParseSlot(chi.URLParam(r, "slot"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req playerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ticket, err := sess.SelectSlotPlayer(slot, req.PlayerID)
	if err != nil {
		writeError(w, err)
		return
	}
	load := h.settle(r, ticket)
	status := http.StatusOK
	if load.Outcome == "" {
		status = http.StatusAccepted
	}
	respond.WriteJSONObject(w, status, SessionResponse{Session: sess.State(), Load: load})
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*view.Session, bool) {
	sess, err := h.sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return sess, true
}

// settle reports a ticket's state, first waiting for it when the request
// asks to.
func (h *Handler) settle(r *http.Request, t *view.Ticket) *LoadResponse {
	if wait, _ := strconv.ParseBool(r.URL.Query().Get("wait")); wait {
		ctx, cancel := context.WithTimeout(r.Context(), h.cfg.LoadTimeout)
		defer cancel()
		t.Wait(ctx)
	}

	resp := &LoadResponse{Slot: t.Slot, PlayerID: t.PlayerID, Seq: t.Seq}
	select {
	case <-t.Done():
		outcome, err := t.Wait(context.Background())
		resp.Outcome = outcome
		if err != nil {
			resp.Error = err.Error()
		}
	default:
	}
	return resp
}
