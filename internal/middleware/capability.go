package middleware

import (
	"net/http"

	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"go.uber.org/zap"
)

// RequireCapability must run after JWTMiddleware.
func RequireCapability(c models.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := GetActor(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !actor.Role.Can(c) {
				logger.Log.Warn("capability denied",
					zap.Int64("user_id", actor.UserID),
					zap.String("role", string(actor.Role)),
					zap.Int("capability", int(c)),
					zap.String("path", r.URL.Path),
				)
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
