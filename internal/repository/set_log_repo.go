package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-workout-tracker/internal/model"
)

var setLogTable = table[model.SetLog]{
	entity:  "set log",
	name:    "set_logs",
	columns: []string{"id", "exercise_log_id", "sort_order", "reps", "weight", "rest_time", "created_at", "updated_at"},
	orderBy: "sort_order",
	scan: func(row pgx.Row) (model.SetLog, error) {
		var s model.SetLog
		err := row.Scan(&s.ID, &s.ExerciseLogID, &s.Order, &s.Reps, &s.Weight, &s.RestTime, &s.CreatedAt, &s.UpdatedAt)
		return s, err
	},
	values: func(s model.SetLog) []any {
		return []any{s.ID, s.ExerciseLogID, s.Order, s.Reps, s.Weight, s.RestTime, s.CreatedAt, s.UpdatedAt}
	},
}

type SetLogRepository struct {
	Repository[model.SetLog]
}

func NewSetLogRepository(pool *pgxpool.Pool) *SetLogRepository {
	return &SetLogRepository{Repository[model.SetLog]{pool: pool, table: setLogTable}}
}

func (r *SetLogRepository) ListByExerciseLog(ctx context.Context, exerciseLogID string) ([]model.SetLog, error) {
	if !validID(exerciseLogID) {
		return []model.SetLog{}, nil
	}
	return r.table.list(ctx, r.pool, "exercise_log_id = $1", exerciseLogID)
}

func (r *SetLogRepository) CountByExerciseLog(ctx context.Context, exerciseLogID string) (int, error) {
	if !validID(exerciseLogID) {
		return 0, nil
	}
	return r.table.count(ctx, r.pool, "exercise_log_id = $1", exerciseLogID)
}

// AverageRestTimeBySession is the mean rest time in seconds over every set of the session,
// or zero when it has none.
func (r *SetLogRepository) AverageRestTimeBySession(ctx context.Context, sessionID string) (int, error) {
	var avg int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(ROUND(AVG(s.rest_time)), 0)::int
		 FROM set_logs s
		 JOIN exercise_logs l ON l.id = s.exercise_log_id
		 WHERE l.workout_session_id = $1`, sessionID).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("average rest time: %w", err)
	}
	return avg, nil
}
