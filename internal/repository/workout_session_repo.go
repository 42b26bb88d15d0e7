package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-workout-tracker/internal/model"
)

var workoutSessionTable = table[model.WorkoutSession]{
	entity:  "workout session",
	name:    "workout_sessions",
	columns: []string{"id", "user_id", "workout_template_id", "duration", "average_rest_time", "status", "created_at", "updated_at"},
	orderBy: "created_at DESC",
	scan: func(row pgx.Row) (model.WorkoutSession, error) {
		var s model.WorkoutSession
		var status string
		err := row.Scan(&s.ID, &s.UserID, &s.WorkoutTemplateID, &s.Duration, &s.AverageRestTime, &status, &s.CreatedAt, &s.UpdatedAt)
		s.Status = model.SessionStatus(status)
		return s, err
	},
	values: func(s model.WorkoutSession) []any {
		return []any{s.ID, s.UserID, s.WorkoutTemplateID, s.Duration, s.AverageRestTime, string(s.Status), s.CreatedAt, s.UpdatedAt}
	},
}

type WorkoutSessionRepository struct {
	Repository[model.WorkoutSession]
}

func NewWorkoutSessionRepository(pool *pgxpool.Pool) *WorkoutSessionRepository {
	return &WorkoutSessionRepository{Repository[model.WorkoutSession]{pool: pool, table: workoutSessionTable}}
}

func (r *WorkoutSessionRepository) ListByUser(ctx context.Context, userID string) ([]model.WorkoutSession, error) {
	if !validID(userID) {
		return []model.WorkoutSession{}, nil
	}
	return r.table.list(ctx, r.pool, "user_id = $1", userID)
}
