package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-workout-tracker/internal/model"
)

var exerciseLogTable = table[model.ExerciseLog]{
	entity:  "exercise log",
	name:    "exercise_logs",
	columns: []string{"id", "workout_session_id", "exercise_id", "sort_order", "created_at", "updated_at"},
	orderBy: "sort_order",
	scan: func(row pgx.Row) (model.ExerciseLog, error) {
		var l model.ExerciseLog
		err := row.Scan(&l.ID, &l.WorkoutSessionID, &l.ExerciseID, &l.Order, &l.CreatedAt, &l.UpdatedAt)
		return l, err
	},
	values: func(l model.ExerciseLog) []any {
		return []any{l.ID, l.WorkoutSessionID, l.ExerciseID, l.Order, l.CreatedAt, l.UpdatedAt}
	},
}

type ExerciseLogRepository struct {
	Repository[model.ExerciseLog]
}

func NewExerciseLogRepository(pool *pgxpool.Pool) *ExerciseLogRepository {
	return &ExerciseLogRepository{Repository[model.ExerciseLog]{pool: pool, table: exerciseLogTable}}
}

func (r *ExerciseLogRepository) ListByWorkoutSession(ctx context.Context, sessionID string) ([]model.ExerciseLog, error) {
	if !validID(sessionID) {
		return []model.ExerciseLog{}, nil
	}
	return r.table.list(ctx, r.pool, "workout_session_id = $1", sessionID)
}

func (r *ExerciseLogRepository) CountByWorkoutSession(ctx context.Context, sessionID string) (int, error) {
	if !validID(sessionID) {
		return 0, nil
	}
	return r.table.count(ctx, r.pool, "workout_session_id = $1", sessionID)
}
