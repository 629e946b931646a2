package handlers

import (
	"net/http"

	"github.com/a2sh3r/stablex/internal/middleware"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/go-chi/chi/v5"
)

// CheckRestriction is advisory; Create operations enforce restrictions on their own.
func (h *Handler) CheckRestriction(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	rs, err := h.restrictionService.Check(r.Context(), userID, models.RestrictionType(chi.URLParam(r, "type")))
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := models.RestrictionStatus{}
	if rs != nil {
		status = models.RestrictionStatus{Restricted: true, Message: rs.Message, RedirectTo: rs.RedirectTo}
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) ListRestrictions(w http.ResponseWriter, r *http.Request) {
	list, err := h.restrictionService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if list == nil {
		list = []models.SellRestriction{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) UpsertRestriction(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.RestrictionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rs, err := h.restrictionService.Upsert(r.Context(), operatorID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rs)
}

func (h *Handler) DeleteRestriction(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.restrictionService.Delete(r.Context(), operatorID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
