package handlers

import (
	"net/http"

	"github.com/a2sh3r/stablex/internal/middleware"
)

func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if h.sockets == nil {
		http.Error(w, "realtime unavailable", http.StatusServiceUnavailable)
		return
	}
	h.sockets.Serve(w, r, userID)
}
