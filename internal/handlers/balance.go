package handlers

import (
	"net/http"
	"strconv"

	"github.com/a2sh3r/stablex/internal/middleware"
	"github.com/a2sh3r/stablex/internal/models"
)

const defaultHistoryLimit = 100

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	balance, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.Balance{Balance: balance})
}

func (h *Handler) GetBalanceHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	h.writeHistory(w, r, userID)
}

func (h *Handler) AdminBalanceHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.writeHistory(w, r, userID)
}

func (h *Handler) writeHistory(w http.ResponseWriter, r *http.Request, userID int64) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := h.walletService.History(r.Context(), userID, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if len(entries) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) SetBalance(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.SetBalanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	wallet, err := h.walletService.SetBalance(r.Context(), operatorID, userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wallet)
}
