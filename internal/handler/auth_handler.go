package handler

import (
	"log/slog"
	"net/http"

	"go-workout-tracker/internal/middleware"
	"go-workout-tracker/internal/model"
	"go-workout-tracker/internal/service"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var payload model.GoogleLoginRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.service.GoogleLogin(r.Context(), payload.IDToken, w)
	if err != nil {
		slog.Info("google login failed", "client_ip", middleware.ClientIP(r))
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, user)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Refresh(r.Context(), refreshCookie(r), w)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Logout(r.Context(), refreshCookie(r), w)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, resp)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.service.Me(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, user)
}

// refreshCookie returns "" when the cookie is absent; the token checks reject that.
func refreshCookie(r *http.Request) string {
	cookie, err := r.Cookie(service.RefreshTokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
