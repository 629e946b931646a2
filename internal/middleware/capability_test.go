package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a2sh3r/stablex/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRequireCapability(t *testing.T) {
	tests := []struct {
		name       string
		role       models.Role
		anonymous  bool
		capability models.Capability
		wantStatus int
	}{
		{name: "user creates requests", role: models.RoleUser, capability: models.CapCreateRequests, wantStatus: http.StatusOK},
		{name: "user cannot approve", role: models.RoleUser, capability: models.CapApproveRequests, wantStatus: http.StatusForbidden},
		{name: "admin approves", role: models.RoleAdmin, capability: models.CapApproveRequests, wantStatus: http.StatusOK},
		{name: "admin cannot override balances", role: models.RoleAdmin, capability: models.CapManageBalances, wantStatus: http.StatusForbidden},
		{name: "superadmin deletes", role: models.RoleSuperAdmin, capability: models.CapDeleteRequests, wantStatus: http.StatusOK},
		{name: "anonymous", anonymous: true, capability: models.CapViewOwn, wantStatus: http.StatusUnauthorized},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if !tt.anonymous {
				ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
				ctx = context.WithValue(ctx, RoleKey, tt.role)
				req = req.WithContext(ctx)
			}
			w := httptest.NewRecorder()
			RequireCapability(tt.capability)(next).ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
