package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/pitchzone/internal/api/respond"
	"github.com/albapepper/pitchzone/internal/pitch"
	"github.com/albapepper/pitchzone/internal/view"
)

type filterRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// FilterResponse is a slot's filter after an update.
type FilterResponse struct {
	Slot   view.Slot        `json:"slot"`
	Filter pitch.FilterSpec `json:"filter"`
}

type pitchRequest struct {
	Slot  string `json:"slot"`
	Index int    `json:"index"`
}

// UpdateFilter sets one field of one slot's filter.
// @Summary Update filter
// @Description Sets outcome, detail, pitch_type or inning on one slot. An empty value means All. No other slot changes.
// @Tags panels
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param slot path string true "Slot" Enums(primary, left, right, multi0, multi1, multi2, multi3)
// @Param body body filterRequest true "Field and value"
// @Success 200 {object} FilterResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/sessions/{sessionID}/slots/{slot}/filter [put]
func (h *Handler) UpdateFilter(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	slot, err := view.ParseSlot(chi.URLParam(r, "slot"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req filterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	spec, err := sess.UpdateFilter(slot, pitch.Field(req.Field), req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, FilterResponse{Slot: slot, Filter: spec})
}

// GetPanel returns a slot's plot.
// @Summary Get panel
// @Description Filtered, classified and projected pitches of a slot with zone geometry, gridlines, stat line and filter options. Multi-view panels show the primary slot's data through their own filter.
// @Tags panels
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param slot path string true "Slot" Enums(primary, left, right, multi0, multi1, multi2, multi3)
// @Success 200 {object} view.Panel
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/sessions/{sessionID}/slots/{slot}/panel [get]
func (h *Handler) GetPanel(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	panel, err := sess.Panel(view.Slot(chi.URLParam(r, "slot")))
	if err != nil {
		writeError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, panel)
}

// InspectPitch selects a visible pitch as the inspected pitch.
// @Summary Inspect pitch
// @Description Selects the index-th visible pitch of a slot. It replaces any previous selection and survives mode, filter and player changes.
// @Tags panels
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body pitchRequest true "Slot and index"
// @Success 200 {object} view.InspectedDetail
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/sessions/{sessionID}/pitch [put]
func (h *Handler) InspectPitch(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req pitchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	slot, err := view.ParseSlot(req.Slot)
	if err != nil {
		writeError(w, err)
		return
	}

	rec, err := sess.SelectVisiblePitch(slot, req.Index)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, view.InspectedDetail{Slot: slot, Detail: rec.Detail()})
}

// ClearPitch removes the inspected pitch.
// @Summary Clear inspected pitch
// @Tags panels
// @Param sessionID path string true "Session ID"
// @Success 204
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/sessions/{sessionID}/pitch [delete]
func (h *Handler) ClearPitch(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.ClearPitch()
	respond.WriteNoContent(w)
}
