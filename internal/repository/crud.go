package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-workout-tracker/internal/model"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// table describes how one entity maps onto a Postgres table.
// columns[0] is the primary key and values must return arguments in column order.
type table[T any] struct {
	entity  string
	name    string
	columns []string
	orderBy string
	scan    func(row pgx.Row) (T, error)
	values  func(v T) []any
}

func (t table[T]) selectSQL() string {
	return "SELECT " + strings.Join(t.columns, ", ") + " FROM " + t.name
}

func (t table[T]) selectWhereSQL(where string) string {
	q := t.selectSQL()
	if where != "" {
		q += " WHERE " + where
	}
	if t.orderBy != "" {
		q += " ORDER BY " + t.orderBy
	}
	return q
}

func (t table[T]) insertSQL() string {
	placeholders := make([]string, len(t.columns))
	for i := range t.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.name, strings.Join(t.columns, ", "), strings.Join(placeholders, ", "))
}

// updateSQL rewrites every column except the key and created_at.
// The returned indexes select the matching arguments out of values().
func (t table[T]) updateSQL() (string, []int) {
	sets := make([]string, 0, len(t.columns))
	indexes := []int{0}
	for i, col := range t.columns[1:] {
		if col == "created_at" {
			continue
		}
		indexes = append(indexes, i+1)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(indexes)))
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1",
		t.name, strings.Join(sets, ", "), t.columns[0]), indexes
}

func (t table[T]) deleteSQL() string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.name, t.columns[0])
}

func (t table[T]) get(ctx context.Context, db DBTX, id string) (T, error) {
	var zero T
	if !validID(id) {
		return zero, model.ErrNotFound
	}
	v, err := t.scan(db.QueryRow(ctx, t.selectSQL()+" WHERE "+t.columns[0]+" = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, model.ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("get %s: %w", t.entity, err)
	}
	return v, nil
}

func (t table[T]) first(ctx context.Context, db DBTX, where string, args ...any) (T, error) {
	var zero T
	v, err := t.scan(db.QueryRow(ctx, t.selectWhereSQL(where)+" LIMIT 1", args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, model.ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("find %s: %w", t.entity, err)
	}
	return v, nil
}

func (t table[T]) list(ctx context.Context, db DBTX, where string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, t.selectWhereSQL(where), args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.entity, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.entity, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (t table[T]) count(ctx context.Context, db DBTX, where string, args ...any) (int, error) {
	q := "SELECT COUNT(*) FROM " + t.name
	if where != "" {
		q += " WHERE " + where
	}
	var n int
	if err := db.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", t.entity, err)
	}
	return n, nil
}

func (t table[T]) insert(ctx context.Context, db DBTX, v T) error {
	if _, err := db.Exec(ctx, t.insertSQL(), t.values(v)...); err != nil {
		return fmt.Errorf("create %s: %w", t.entity, err)
	}
	return nil
}

func (t table[T]) update(ctx context.Context, db DBTX, v T) error {
	q, indexes := t.updateSQL()
	all := t.values(v)
	args := make([]any, len(indexes))
	for i, idx := range indexes {
		args[i] = all[idx]
	}

	tag, err := db.Exec(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", t.entity, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (t table[T]) delete(ctx context.Context, db DBTX, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	tag, err := db.Exec(ctx, t.deleteSQL(), id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", t.entity, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Repository is the CRUD capability shared by every entity repository.
type Repository[T any] struct {
	pool  *pgxpool.Pool
	table table[T]
}

func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, error) {
	return r.table.get(ctx, r.pool, id)
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	return r.table.list(ctx, r.pool, "")
}

func (r *Repository[T]) Create(ctx context.Context, v T) error {
	return r.table.insert(ctx, r.pool, v)
}

func (r *Repository[T]) Update(ctx context.Context, v T) error {
	return r.table.update(ctx, r.pool, v)
}

// Delete reports whether a row was removed.
func (r *Repository[T]) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.delete(ctx, r.pool, id)
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// validIDs drops anything that cannot be a primary key.
func validIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if validID(id) {
			out = append(out, id)
		}
	}
	return out
}
