package model

import (
	"strings"
	"time"
)

type MuscleGroup string

const (
	MuscleGroupChest     MuscleGroup = "Chest"
	MuscleGroupBack      MuscleGroup = "Back"
	MuscleGroupShoulders MuscleGroup = "Shoulders"
	MuscleGroupBiceps    MuscleGroup = "Biceps"
	MuscleGroupTriceps   MuscleGroup = "Triceps"
	MuscleGroupLegs      MuscleGroup = "Legs"
	MuscleGroupGlutes    MuscleGroup = "Glutes"
	MuscleGroupCore      MuscleGroup = "Core"
	MuscleGroupFullBody  MuscleGroup = "FullBody"
	MuscleGroupCardio    MuscleGroup = "Cardio"
)

var muscleGroups = []MuscleGroup{
	MuscleGroupChest,
	MuscleGroupBack,
	MuscleGroupShoulders,
	MuscleGroupBiceps,
	MuscleGroupTriceps,
	MuscleGroupLegs,
	MuscleGroupGlutes,
	MuscleGroupCore,
	MuscleGroupFullBody,
	MuscleGroupCardio,
}

// ParseMuscleGroup matches case-insensitively and returns the canonical spelling.
func ParseMuscleGroup(raw string) (MuscleGroup, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, g := range muscleGroups {
		if strings.EqualFold(string(g), trimmed) {
			return g, true
		}
	}
	return "", false
}

type Exercise struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	MuscleGroup MuscleGroup `json:"muscle_group"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type CreateExerciseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MuscleGroup string `json:"muscle_group"`
}

type UpdateExerciseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	MuscleGroup *string `json:"muscle_group"`
}

type ExerciseResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	MuscleGroup MuscleGroup `json:"muscle_group"`
}

type ExerciseLight struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	MuscleGroup MuscleGroup `json:"muscle_group"`
}

type ExerciseList struct {
	Exercises []ExerciseLight `json:"exercises"`
}

func (e Exercise) Response() ExerciseResponse {
	return ExerciseResponse{ID: e.ID, Name: e.Name, Description: e.Description, MuscleGroup: e.MuscleGroup}
}

func (e Exercise) Light() ExerciseLight {
	return ExerciseLight{ID: e.ID, Name: e.Name, MuscleGroup: e.MuscleGroup}
}

func ExerciseLights(exercises []Exercise) []ExerciseLight {
	out := make([]ExerciseLight, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, e.Light())
	}
	return out
}
