package handlers

import (
	"errors"
	"net/http"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/middleware"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/shopspring/decimal"
)

type settingsResponse struct {
	*models.SettingsSnapshot
	ReferralReward decimal.Decimal `json:"referral_reward"`
}

type referralRewardRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	snap, err := h.settingsService.Current(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	reward, err := h.settingsService.CurrentReferralReward(r.Context())
	if err != nil && !errors.Is(err, apperrors.ErrRewardNotFound) {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, settingsResponse{SettingsSnapshot: snap, ReferralReward: reward})
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var patch models.SettingsPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	snap, err := h.settingsService.Update(r.Context(), operatorID, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) SetReferralReward(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req referralRewardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rw, err := h.settingsService.SetReferralReward(r.Context(), operatorID, req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rw)
}

func (h *Handler) RefreshReferencePrice(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	snap, err := h.settingsService.RefreshReferencePrice(r.Context(), operatorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
