package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-workout-tracker/internal/database"
	"go-workout-tracker/internal/model"
)

var workoutTemplateTable = table[model.WorkoutTemplate]{
	entity:  "workout template",
	name:    "workout_templates",
	columns: []string{"id", "name", "user_id", "created_at", "updated_at"},
	orderBy: "created_at DESC",
	scan: func(row pgx.Row) (model.WorkoutTemplate, error) {
		var t model.WorkoutTemplate
		err := row.Scan(&t.ID, &t.Name, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
		return t, err
	},
	values: func(t model.WorkoutTemplate) []any {
		return []any{t.ID, t.Name, t.UserID, t.CreatedAt, t.UpdatedAt}
	},
}

type WorkoutTemplateRepository struct {
	Repository[model.WorkoutTemplate]
}

func NewWorkoutTemplateRepository(pool *pgxpool.Pool) *WorkoutTemplateRepository {
	return &WorkoutTemplateRepository{Repository[model.WorkoutTemplate]{pool: pool, table: workoutTemplateTable}}
}

func (r *WorkoutTemplateRepository) ListByUser(ctx context.Context, userID string) ([]model.WorkoutTemplate, error) {
	if !validID(userID) {
		return []model.WorkoutTemplate{}, nil
	}
	return r.table.list(ctx, r.pool, "user_id = $1", userID)
}

// CreateWithExercises inserts the template and its exercise links atomically.
func (r *WorkoutTemplateRepository) CreateWithExercises(ctx context.Context, t model.WorkoutTemplate, exerciseIDs []string) error {
	return database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if err := r.table.insert(ctx, tx, t); err != nil {
			return err
		}
		return insertTemplateExercises(ctx, tx, t.ID, exerciseIDs)
	})
}

// UpdateWithExercises rewrites the template row and, when exerciseIDs is non-nil,
// replaces its exercise links.
func (r *WorkoutTemplateRepository) UpdateWithExercises(ctx context.Context, t model.WorkoutTemplate, exerciseIDs *[]string) error {
	return database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if err := r.table.update(ctx, tx, t); err != nil {
			return err
		}
		if exerciseIDs == nil {
			return nil
		}
		if _, err := tx.Exec(ctx, `DELETE FROM workout_template_exercises WHERE workout_template_id = $1`, t.ID); err != nil {
			return fmt.Errorf("clear template exercises: %w", err)
		}
		return insertTemplateExercises(ctx, tx, t.ID, *exerciseIDs)
	})
}

// Exercises returns the template's exercises in the order they were given.
func (r *WorkoutTemplateRepository) Exercises(ctx context.Context, templateID string) ([]model.Exercise, error) {
	cols := make([]string, len(exerciseColumns))
	for i, c := range exerciseColumns {
		cols[i] = "e." + c
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+strings.Join(cols, ", ")+`
		 FROM exercises e
		 JOIN workout_template_exercises wte ON wte.exercise_id = e.id
		 WHERE wte.workout_template_id = $1
		 ORDER BY wte.position`, templateID)
	if err != nil {
		return nil, fmt.Errorf("list template exercises: %w", err)
	}
	defer rows.Close()

	out := make([]model.Exercise, 0)
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template exercise: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func insertTemplateExercises(ctx context.Context, db DBTX, templateID string, exerciseIDs []string) error {
	for i, id := range exerciseIDs {
		if _, err := db.Exec(ctx,
			`INSERT INTO workout_template_exercises (workout_template_id, exercise_id, position)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (workout_template_id, exercise_id) DO NOTHING`,
			templateID, id, i); err != nil {
			return fmt.Errorf("link template exercise: %w", err)
		}
	}
	return nil
}
