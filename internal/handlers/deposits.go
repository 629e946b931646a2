package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/a2sh3r/stablex/internal/middleware"
	"github.com/a2sh3r/stablex/internal/models"
)

func (h *Handler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.DepositRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.depositService.Create(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, d)
}

func (h *Handler) ListMyDeposits(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	deposits, err := h.depositService.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(deposits) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, deposits)
}

func (h *Handler) AdminListDeposits(w http.ResponseWriter, r *http.Request) {
	status := models.RequestStatus(r.URL.Query().Get("status"))

	deposits, err := h.depositService.List(r.Context(), status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if deposits == nil {
		deposits = []models.Deposit{}
	}
	writeJSON(w, http.StatusOK, deposits)
}

func (h *Handler) ApproveDeposit(w http.ResponseWriter, r *http.Request) {
	operatorID, id, req, ok := reviewInput(w, r)
	if !ok {
		return
	}

	d, err := h.depositService.Approve(r.Context(), operatorID, id, req.Remarks)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handler) RejectDeposit(w http.ResponseWriter, r *http.Request) {
	operatorID, id, req, ok := reviewInput(w, r)
	if !ok {
		return
	}

	d, err := h.depositService.Reject(r.Context(), operatorID, id, req.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handler) DeleteDeposit(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.depositService.Delete(r.Context(), operatorID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DepositBonusAudit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	audit, err := h.depositService.BonusAudit(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, audit)
}

// reviewInput reads the operator, the path id and an optional review body.
func reviewInput(w http.ResponseWriter, r *http.Request) (int64, int64, models.ReviewRequest, bool) {
	var req models.ReviewRequest

	operatorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return 0, 0, req, false
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return 0, 0, req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return 0, 0, req, false
	}
	return operatorID, id, req, true
}
