package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/fritter-engagement/internal/datasources"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

// Repository implements every relational store on top of MySQL or SQLite.
// Queries are built with the flavor of the configured driver.
type Repository struct {
	db     *sql.DB
	flavor sqlbuilder.Flavor
}

func New(db *sql.DB, driver Driver) *Repository {
	return &Repository{db: db, flavor: driver.Flavor()}
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

func queryAll[T any](
	ctx context.Context,
	q queryer,
	b sqlbuilder.Builder,
	scan func(scanner) (T, error),
) ([]T, error) {
	query, args := b.Build()
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	results := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return results, nil
}

func queryOne[T any](
	ctx context.Context,
	q queryer,
	b sqlbuilder.Builder,
	scan func(scanner) (T, error),
) (T, error) {
	query, args := b.Build()
	return scan(q.QueryRowContext(ctx, query, args...))
}

func execAffected(ctx context.Context, q queryer, b sqlbuilder.Builder) (int64, error) {
	query, args := b.Build()
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *Repository) rowExists(ctx context.Context, q queryer, table, column, value string) (bool, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("1").From(table).Where(sb.Equal(column, value)).Limit(1)

	query, args := sb.Build()
	var one int
	err := q.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func toArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	u := t.Time.UTC()
	return &u
}
