package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type cascadeStep struct {
	name  string
	count *int64
	run   func(ctx context.Context, tx *sql.Tx) (int64, error)
}

func (r *Repository) runCascade(
	ctx context.Context,
	subject, id string,
	steps []cascadeStep,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &domain.CascadeError{Subject: subject, ID: id, Step: "begin", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	for _, step := range steps {
		n, err := step.run(ctx, tx)
		if err != nil {
			return &domain.CascadeError{Subject: subject, ID: id, Step: step.name, Err: err}
		}
		if step.count != nil {
			*step.count = n
		}
	}

	if err := tx.Commit(); err != nil {
		return &domain.CascadeError{Subject: subject, ID: id, Step: "commit", Err: err}
	}
	return nil
}

// CascadeUser removes the user's reactions, bookmarks, statuses, API tokens and
// freets, every reaction and bookmark on those freets, and finally the user.
func (r *Repository) CascadeUser(ctx context.Context, userID string) (domain.CascadeResult, error) {
	var res domain.CascadeResult

	byUserOrOnAuthoredFreet := func(table string) func(context.Context, *sql.Tx) (int64, error) {
		return func(ctx context.Context, tx *sql.Tx) (int64, error) {
			authored := r.flavor.NewSelectBuilder()
			authored.Select("id").From("freets").Where(authored.Equal("author_id", userID))

			db := r.flavor.NewDeleteBuilder()
			db.DeleteFrom(table).Where(db.Or(
				db.Equal("user_id", userID),
				db.In("freet_id", authored),
			))
			return execAffected(ctx, tx, db)
		}
	}
	equal := func(table, column string) func(context.Context, *sql.Tx) (int64, error) {
		return func(ctx context.Context, tx *sql.Tx) (int64, error) {
			return r.deleteWhereEqual(ctx, tx, table, column, userID)
		}
	}

	err := r.runCascade(ctx, "user", userID, []cascadeStep{
		{name: "reactions", count: &res.Reactions, run: byUserOrOnAuthoredFreet("reactions")},
		{name: "bookmarks", count: &res.Bookmarks, run: byUserOrOnAuthoredFreet("bookmarks")},
		{name: "statuses", count: &res.Statuses, run: equal("statuses", "author_id")},
		{name: "freets", count: &res.Freets, run: equal("freets", "author_id")},
		{name: "api_tokens", run: equal("api_tokens", "user_id")},
		{name: "user", run: equal("users", "id")},
	})
	if err != nil {
		return domain.CascadeResult{}, err
	}
	return res, nil
}

// CascadeFreet removes every reaction and bookmark on the freet, then the freet.
func (r *Repository) CascadeFreet(ctx context.Context, freetID string) (domain.CascadeResult, error) {
	var res domain.CascadeResult

	equal := func(table, column string) func(context.Context, *sql.Tx) (int64, error) {
		return func(ctx context.Context, tx *sql.Tx) (int64, error) {
			return r.deleteWhereEqual(ctx, tx, table, column, freetID)
		}
	}

	err := r.runCascade(ctx, "freet", freetID, []cascadeStep{
		{name: "reactions", count: &res.Reactions, run: equal("reactions", "freet_id")},
		{name: "bookmarks", count: &res.Bookmarks, run: equal("bookmarks", "freet_id")},
		{name: "freet", count: &res.Freets, run: equal("freets", "id")},
	})
	if err != nil {
		return domain.CascadeResult{}, err
	}
	return res, nil
}

// SweepDanglingEngagement removes reactions and bookmarks on freets that no
// longer exist, plus statuses that expired at or before now. Rows left by
// users who were never registered are not touched, since user records are
// optional for engagement.
func (r *Repository) SweepDanglingEngagement(ctx context.Context, now time.Time) (domain.CascadeResult, error) {
	var res domain.CascadeResult

	onMissingFreet := func(table string) func(context.Context, *sql.Tx) (int64, error) {
		return func(ctx context.Context, tx *sql.Tx) (int64, error) {
			freets := r.flavor.NewSelectBuilder()
			freets.Select("id").From("freets")

			db := r.flavor.NewDeleteBuilder()
			db.DeleteFrom(table).Where(db.NotIn("freet_id", freets))
			return execAffected(ctx, tx, db)
		}
	}

	err := r.runCascade(ctx, "sweep", now.UTC().Format(time.RFC3339), []cascadeStep{
		{name: "reactions", count: &res.Reactions, run: onMissingFreet("reactions")},
		{name: "bookmarks", count: &res.Bookmarks, run: onMissingFreet("bookmarks")},
		{name: "statuses", count: &res.Statuses, run: func(ctx context.Context, tx *sql.Tx) (int64, error) {
			db := r.flavor.NewDeleteBuilder()
			db.DeleteFrom("statuses").Where(db.LessEqualThan("expires_at", now.UTC()))
			return execAffected(ctx, tx, db)
		}},
	})
	if err != nil {
		return domain.CascadeResult{}, fmt.Errorf("sweeping dangling engagement: %w", err)
	}
	return res, nil
}
