package service

import (
	"context"

	"go-workout-tracker/internal/model"
)

// UserStore is the user directory the auth flows depend on.
type UserStore interface {
	GetByID(ctx context.Context, id string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByRefreshToken(ctx context.Context, token string) (model.User, error)
	Create(ctx context.Context, user model.User) error
	Update(ctx context.Context, user model.User) error
}

type ExerciseStore interface {
	GetByID(ctx context.Context, id string) (model.Exercise, error)
	List(ctx context.Context) ([]model.Exercise, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.Exercise, error)
	Create(ctx context.Context, exercise model.Exercise) error
	Update(ctx context.Context, exercise model.Exercise) error
	Delete(ctx context.Context, id string) (bool, error)
}

type WorkoutTemplateStore interface {
	GetByID(ctx context.Context, id string) (model.WorkoutTemplate, error)
	ListByUser(ctx context.Context, userID string) ([]model.WorkoutTemplate, error)
	CreateWithExercises(ctx context.Context, template model.WorkoutTemplate, exerciseIDs []string) error
	UpdateWithExercises(ctx context.Context, template model.WorkoutTemplate, exerciseIDs *[]string) error
	Exercises(ctx context.Context, templateID string) ([]model.Exercise, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type WorkoutSessionStore interface {
	GetByID(ctx context.Context, id string) (model.WorkoutSession, error)
	ListByUser(ctx context.Context, userID string) ([]model.WorkoutSession, error)
	Create(ctx context.Context, session model.WorkoutSession) error
	Update(ctx context.Context, session model.WorkoutSession) error
	Delete(ctx context.Context, id string) (bool, error)
}

type ExerciseLogStore interface {
	GetByID(ctx context.Context, id string) (model.ExerciseLog, error)
	ListByWorkoutSession(ctx context.Context, sessionID string) ([]model.ExerciseLog, error)
	CountByWorkoutSession(ctx context.Context, sessionID string) (int, error)
	Create(ctx context.Context, log model.ExerciseLog) error
	Update(ctx context.Context, log model.ExerciseLog) error
	Delete(ctx context.Context, id string) (bool, error)
}

type SetLogStore interface {
	GetByID(ctx context.Context, id string) (model.SetLog, error)
	ListByExerciseLog(ctx context.Context, exerciseLogID string) ([]model.SetLog, error)
	CountByExerciseLog(ctx context.Context, exerciseLogID string) (int, error)
	AverageRestTimeBySession(ctx context.Context, sessionID string) (int, error)
	Create(ctx context.Context, set model.SetLog) error
	Update(ctx context.Context, set model.SetLog) error
	Delete(ctx context.Context, id string) (bool, error)
}
