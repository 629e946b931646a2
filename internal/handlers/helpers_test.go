package handlers

import (
	"context"
	"net/http"

	"github.com/a2sh3r/stablex/internal/middleware"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/go-chi/chi/v5"
)

func withUser(req *http.Request, userID int64, role models.Role) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.RoleKey, role)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(req.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func int64Ptr(v int64) *int64 {
	return &v
}
