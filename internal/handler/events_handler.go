package handler

import (
	"log/slog"
	"net/http"

	"go-workout-tracker/internal/websocket"
)

type EventsHandler struct {
	hub     *websocket.Hub
	origins []string
}

func NewEventsHandler(hub *websocket.Hub, origins []string) *EventsHandler {
	return &EventsHandler{hub: hub, origins: origins}
}

// Stream upgrades to a websocket carrying the caller's workout and sign-in events.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	// On failure the upgrader has already written the HTTP error.
	if err := h.hub.Serve(w, r, userID, h.origins); err != nil {
		slog.Warn("websocket upgrade failed", "user_id", userID, "error", err)
	}
}
