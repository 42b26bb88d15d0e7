package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"go-workout-tracker/internal/middleware"
	"go-workout-tracker/pkg/apierror"
)

// userIDFromRequest returns the authenticated user's id. Routes behind RequireAuth always
// carry claims, so a miss here is a wiring error surfaced as 401.
func userIDFromRequest(r *http.Request) (string, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.UserID == "" {
		return "", apierror.Unauthorized("Access token is required")
	}
	return claims.UserID, nil
}

func pathID(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		return "", apierror.Invalid("id is required", "id")
	}
	return id, nil
}
