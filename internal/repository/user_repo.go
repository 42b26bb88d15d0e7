package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-workout-tracker/internal/model"
)

var userTable = table[model.User]{
	entity:  "user",
	name:    "users",
	columns: []string{"id", "email", "refresh_token", "created_at", "updated_at"},
	orderBy: "created_at",
	scan: func(row pgx.Row) (model.User, error) {
		var u model.User
		err := row.Scan(&u.ID, &u.Email, &u.RefreshToken, &u.CreatedAt, &u.UpdatedAt)
		return u, err
	},
	values: func(u model.User) []any {
		return []any{u.ID, u.Email, u.RefreshToken, u.CreatedAt, u.UpdatedAt}
	},
}

type UserRepository struct {
	Repository[model.User]
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{Repository[model.User]{pool: pool, table: userTable}}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return model.User{}, model.ErrNotFound
	}
	return r.table.first(ctx, r.pool, "lower(email) = lower($1)", email)
}

// FindByRefreshToken never matches the empty string, which marks a signed-out user.
func (r *UserRepository) FindByRefreshToken(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, model.ErrNotFound
	}
	return r.table.first(ctx, r.pool, "refresh_token = $1", token)
}
