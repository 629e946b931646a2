package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/middleware"
	"github.com/a2sh3r/stablex/internal/models"
	"go.uber.org/zap"
)

type authRequest struct {
	Login        string `json:"login"`
	Password     string `json:"password"`
	ReferralCode string `json:"referral_code,omitempty"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" || req.Password == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Register(r.Context(), req.Login, req.Password, req.ReferralCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			http.Error(w, "user already exists", http.StatusConflict)
			return
		}
		writeError(w, r, err)
		return
	}

	h.writeToken(w, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" || req.Password == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	h.writeToken(w, user)
}

func (h *Handler) writeToken(w http.ResponseWriter, user *models.User) {
	tokenString, err := middleware.NewToken(h.secretKey, user.ID, user.Role, tokenTTL)
	if err != nil {
		logger.Log.Error("could not create token", zap.Int64("user_id", user.ID), zap.Error(err))
		http.Error(w, "could not create token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+tokenString)
	writeJSON(w, http.StatusOK, authResponse{Token: tokenString})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	user.Password = ""
	writeJSON(w, http.StatusOK, user)
}
