package model

import (
	"strings"
	"time"
)

type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "InProgress"
	SessionStatusCompleted  SessionStatus = "Completed"
	SessionStatusCancelled  SessionStatus = "Cancelled"
)

func ParseSessionStatus(raw string) (SessionStatus, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, s := range []SessionStatus{SessionStatusInProgress, SessionStatusCompleted, SessionStatusCancelled} {
		if strings.EqualFold(string(s), trimmed) {
			return s, true
		}
	}
	return "", false
}

type WorkoutSession struct {
	ID                string        `json:"id"`
	UserID            string        `json:"user_id"`
	WorkoutTemplateID string        `json:"workout_template_id"`
	Duration          int           `json:"duration"`
	AverageRestTime   int           `json:"average_rest_time"`
	Status            SessionStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

type CreateWorkoutSessionRequest struct {
	WorkoutTemplateID string `json:"workout_template_id"`
}

type UpdateWorkoutSessionRequest struct {
	Duration        *int    `json:"duration"`
	AverageRestTime *int    `json:"average_rest_time"`
	Status          *string `json:"status"`
}

type WorkoutSessionResponse struct {
	ID                string             `json:"id"`
	WorkoutTemplateID string             `json:"workout_template_id"`
	Duration          int                `json:"duration"`
	AverageRestTime   int                `json:"average_rest_time"`
	Status            SessionStatus      `json:"status"`
	ExerciseLogs      []ExerciseLogLight `json:"exercise_logs"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

type WorkoutSessionLight struct {
	ID                string        `json:"id"`
	WorkoutTemplateID string        `json:"workout_template_id"`
	Duration          int           `json:"duration"`
	Status            SessionStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
}

type WorkoutSessionList struct {
	WorkoutSessions []WorkoutSessionLight `json:"workout_sessions"`
}

func (s WorkoutSession) Response(logs []ExerciseLog) WorkoutSessionResponse {
	return WorkoutSessionResponse{
		ID:                s.ID,
		WorkoutTemplateID: s.WorkoutTemplateID,
		Duration:          s.Duration,
		AverageRestTime:   s.AverageRestTime,
		Status:            s.Status,
		ExerciseLogs:      ExerciseLogLights(logs),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (s WorkoutSession) Light() WorkoutSessionLight {
	return WorkoutSessionLight{
		ID:                s.ID,
		WorkoutTemplateID: s.WorkoutTemplateID,
		Duration:          s.Duration,
		Status:            s.Status,
		CreatedAt:         s.CreatedAt,
	}
}
