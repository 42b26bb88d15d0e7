package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-workout-tracker/internal/model"
)

var exerciseColumns = []string{"id", "name", "description", "muscle_group", "created_at", "updated_at"}

func scanExercise(row pgx.Row) (model.Exercise, error) {
	var e model.Exercise
	var group string
	err := row.Scan(&e.ID, &e.Name, &e.Description, &group, &e.CreatedAt, &e.UpdatedAt)
	e.MuscleGroup = model.MuscleGroup(group)
	return e, err
}

var exerciseTable = table[model.Exercise]{
	entity:  "exercise",
	name:    "exercises",
	columns: exerciseColumns,
	orderBy: "name",
	scan:    scanExercise,
	values: func(e model.Exercise) []any {
		return []any{e.ID, e.Name, e.Description, string(e.MuscleGroup), e.CreatedAt, e.UpdatedAt}
	},
}

type ExerciseRepository struct {
	Repository[model.Exercise]
}

func NewExerciseRepository(pool *pgxpool.Pool) *ExerciseRepository {
	return &ExerciseRepository{Repository[model.Exercise]{pool: pool, table: exerciseTable}}
}

// ListByIDs returns the exercises that exist among ids. Unknown ids are skipped.
func (r *ExerciseRepository) ListByIDs(ctx context.Context, ids []string) ([]model.Exercise, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return []model.Exercise{}, nil
	}
	return r.table.list(ctx, r.pool, "id = ANY($1)", ids)
}
