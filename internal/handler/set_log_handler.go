package handler

import (
	"net/http"
	"strings"

	"go-workout-tracker/internal/model"
	"go-workout-tracker/internal/service"
	"go-workout-tracker/pkg/apierror"
)

type SetLogHandler struct {
	service *service.SetLogService
}

func NewSetLogHandler(service *service.SetLogService) *SetLogHandler {
	return &SetLogHandler{service: service}
}

func (h *SetLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	exerciseLogID := strings.TrimSpace(r.URL.Query().Get("exercise_log_id"))
	if exerciseLogID == "" {
		writeError(w, apierror.Invalid("exercise_log_id is required", "exercise_log_id"))
		return
	}

	sets, err := h.service.ListByExerciseLog(r.Context(), userID, exerciseLogID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.SetLogList{SetLogs: sets})
}

func (h *SetLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.CreateSetLogRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	set, err := h.service.Create(r.Context(), userID, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, set)
}

func (h *SetLogHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	set, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, set)
}

func (h *SetLogHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var payload model.UpdateSetLogRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	set, err := h.service.Update(r.Context(), userID, id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, set)
}

func (h *SetLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
