package handler

import (
	"net/http"
	"strings"

	"go-workout-tracker/internal/model"
	"go-workout-tracker/internal/service"
	"go-workout-tracker/pkg/apierror"
)

type ExerciseLogHandler struct {
	service *service.ExerciseLogService
}

func NewExerciseLogHandler(service *service.ExerciseLogService) *ExerciseLogHandler {
	return &ExerciseLogHandler{service: service}
}

func (h *ExerciseLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	sessionID := strings.TrimSpace(r.URL.Query().Get("workout_session_id"))
	if sessionID == "" {
		writeError(w, apierror.Invalid("workout_session_id is required", "workout_session_id"))
		return
	}

	logs, err := h.service.ListBySession(r.Context(), userID, sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.ExerciseLogList{ExerciseLogs: logs})
}

func (h *ExerciseLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.CreateExerciseLogRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	log, err := h.service.Create(r.Context(), userID, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, log)
}

func (h *ExerciseLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	log, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, log)
}

func (h *ExerciseLogHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.UpdateExerciseLogRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	log, err := h.service.Update(r.Context(), userID, id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, log)
}

func (h *ExerciseLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.service.Delete(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, resp)
}
