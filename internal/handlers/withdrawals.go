package handlers

import (
	"net/http"

	"github.com/a2sh3r/stablex/internal/middleware"
	"github.com/a2sh3r/stablex/internal/models"
)

func (h *Handler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.WithdrawalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	wd, err := h.withdrawalService.Create(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, wd)
}

func (h *Handler) ListMyWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	withdrawals, err := h.withdrawalService.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(withdrawals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, withdrawals)
}

func (h *Handler) AdminListWithdrawals(w http.ResponseWriter, r *http.Request) {
	status := models.RequestStatus(r.URL.Query().Get("status"))

	withdrawals, err := h.withdrawalService.List(r.Context(), status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if withdrawals == nil {
		withdrawals = []models.Withdrawal{}
	}
	writeJSON(w, http.StatusOK, withdrawals)
}

func (h *Handler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	operatorID, id, req, ok := reviewInput(w, r)
	if !ok {
		return
	}

	wd, err := h.withdrawalService.Approve(r.Context(), operatorID, id, req.Remarks)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wd)
}

func (h *Handler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	operatorID, id, req, ok := reviewInput(w, r)
	if !ok {
		return
	}

	wd, err := h.withdrawalService.Reject(r.Context(), operatorID, id, req.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wd)
}

func (h *Handler) DeleteWithdrawal(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.withdrawalService.Delete(r.Context(), operatorID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
