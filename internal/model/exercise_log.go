package model

import "time"

type ExerciseLog struct {
	ID               string    `json:"id"`
	WorkoutSessionID string    `json:"workout_session_id"`
	ExerciseID       string    `json:"exercise_id"`
	Order            int       `json:"order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CreateExerciseLogRequest struct {
	ExerciseID       string `json:"exercise_id"`
	WorkoutSessionID string `json:"workout_session_id"`
}

type UpdateExerciseLogRequest struct {
	ExerciseID *string `json:"exercise_id"`
	Order      *int    `json:"order"`
}

type ExerciseLogLight struct {
	ID               string `json:"id"`
	WorkoutSessionID string `json:"workout_session_id"`
	ExerciseID       string `json:"exercise_id"`
	Order            int    `json:"order"`
}

type ExerciseLogList struct {
	ExerciseLogs []ExerciseLogLight `json:"exercise_logs"`
}

func (l ExerciseLog) Light() ExerciseLogLight {
	return ExerciseLogLight{ID: l.ID, WorkoutSessionID: l.WorkoutSessionID, ExerciseID: l.ExerciseID, Order: l.Order}
}

func ExerciseLogLights(logs []ExerciseLog) []ExerciseLogLight {
	out := make([]ExerciseLogLight, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.Light())
	}
	return out
}
