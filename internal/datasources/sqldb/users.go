package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

func (r *Repository) userSelect() *sqlbuilder.SelectBuilder {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("id", "username", "created_at").From("users")
	return sb
}

func scanUser(s scanner) (domain.User, error) {
	var u domain.User
	if err := s.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
		return domain.User{}, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

func (r *Repository) ResolveUsername(ctx context.Context, username string) (domain.User, error) {
	sb := r.userSelect()
	sb.Where(sb.Equal("username_key", domain.UsernameKey(username)))

	u, err := queryOne(ctx, r.db, sb, scanUser)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("username %q: %w", username, domain.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("resolving username %q: %w", username, err)
	}
	return u, nil
}

func (r *Repository) GetUser(ctx context.Context, userID string) (domain.User, error) {
	sb := r.userSelect()
	sb.Where(sb.Equal("id", userID))

	u, err := queryOne(ctx, r.db, sb, scanUser)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("user [%s]: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user [%s]: %w", userID, err)
	}
	return u, nil
}

func (r *Repository) RegisterUser(ctx context.Context, user domain.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	key := domain.UsernameKey(user.Username)

	sb := r.flavor.NewSelectBuilder()
	sb.Select("id").From("users").Where(sb.Equal("username_key", key))
	query, args := sb.Build()

	var holder string
	err = tx.QueryRowContext(ctx, query, args...).Scan(&holder)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return fmt.Errorf("checking username %q: %w", user.Username, err)
	case holder != user.ID:
		return fmt.Errorf("username %q is taken: %w", user.Username, domain.ErrInvalidState)
	}

	exists, err := r.rowExists(ctx, tx, "users", "id", user.ID)
	if err != nil {
		return fmt.Errorf("checking user [%s]: %w", user.ID, err)
	}

	if exists {
		ub := r.flavor.NewUpdateBuilder()
		ub.Update("users").
			Set(ub.Assign("username", user.Username), ub.Assign("username_key", key)).
			Where(ub.Equal("id", user.ID))
		if _, err := execAffected(ctx, tx, ub); err != nil {
			return fmt.Errorf("renaming user [%s]: %w", user.ID, err)
		}
	} else {
		ib := r.flavor.NewInsertBuilder()
		ib.InsertInto("users").
			Cols("id", "username", "username_key", "created_at").
			Values(user.ID, user.Username, key, user.CreatedAt.UTC())
		if _, err := execAffected(ctx, tx, ib); err != nil {
			return fmt.Errorf("inserting user [%s]: %w", user.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
