package model

import "time"

type WorkoutTemplate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateWorkoutTemplateRequest struct {
	Name        string   `json:"name"`
	ExerciseIDs []string `json:"exercise_ids"`
}

// UpdateWorkoutTemplateRequest replaces the exercise list only when ExerciseIDs is present.
type UpdateWorkoutTemplateRequest struct {
	Name        *string   `json:"name"`
	ExerciseIDs *[]string `json:"exercise_ids"`
}

type WorkoutTemplateResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WorkoutTemplateWithExercises struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Exercises []ExerciseLight `json:"exercises"`
}

type WorkoutTemplateList struct {
	WorkoutTemplates []WorkoutTemplateResponse `json:"workout_templates"`
}

func (t WorkoutTemplate) Response() WorkoutTemplateResponse {
	return WorkoutTemplateResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

func (t WorkoutTemplate) WithExercises(exercises []Exercise) WorkoutTemplateWithExercises {
	return WorkoutTemplateWithExercises{ID: t.ID, Name: t.Name, Exercises: ExerciseLights(exercises)}
}
