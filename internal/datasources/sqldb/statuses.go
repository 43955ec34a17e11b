package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

func (r *Repository) statusSelect() *sqlbuilder.SelectBuilder {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("s.id", "s.author_id", "COALESCE(u.username, '')", "s.content", "s.created_at", "s.expires_at").
		From("statuses s").
		JoinWithOption(sqlbuilder.LeftJoin, "users u", "u.id = s.author_id").
		OrderBy("s.created_at DESC", "s.id DESC")
	return sb
}

func scanStatus(s scanner) (domain.Status, error) {
	var st domain.Status
	if err := s.Scan(&st.ID, &st.AuthorID, &st.Author, &st.Content, &st.CreatedAt, &st.ExpiresAt); err != nil {
		return domain.Status{}, err
	}
	st.CreatedAt = st.CreatedAt.UTC()
	st.ExpiresAt = st.ExpiresAt.UTC()
	return st, nil
}

func (r *Repository) ReplaceStatus(ctx context.Context, status domain.Status) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := r.deleteWhereEqual(ctx, tx, "statuses", "author_id", status.AuthorID); err != nil {
		return err
	}

	ib := r.flavor.NewInsertBuilder()
	ib.InsertInto("statuses").
		Cols("id", "author_id", "content", "created_at", "expires_at").
		Values(status.ID, status.AuthorID, status.Content, status.CreatedAt.UTC(), status.ExpiresAt.UTC())
	if _, err := execAffected(ctx, tx, ib); err != nil {
		return fmt.Errorf("inserting status [%s]: %w", status.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) GetStatus(ctx context.Context, statusID string) (domain.Status, error) {
	sb := r.statusSelect()
	sb.Where(sb.Equal("s.id", statusID))

	status, err := queryOne(ctx, r.db, sb, scanStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Status{}, fmt.Errorf("status [%s]: %w", statusID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Status{}, fmt.Errorf("fetching status [%s]: %w", statusID, err)
	}
	return status, nil
}

func (r *Repository) DeleteStatus(ctx context.Context, statusID string) error {
	n, err := r.deleteWhereEqual(ctx, r.db, "statuses", "id", statusID)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("status [%s]: %w", statusID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) ListLiveStatuses(ctx context.Context, userID string, now time.Time) ([]domain.Status, error) {
	sb := r.statusSelect()
	conds := []string{sb.GreaterThan("s.expires_at", now.UTC())}
	if userID != "" {
		conds = append(conds, sb.Equal("s.author_id", userID))
	}
	sb.Where(conds...)

	statuses, err := queryAll(ctx, r.db, sb, scanStatus)
	if err != nil {
		return nil, fmt.Errorf("listing live statuses: %w", err)
	}
	return statuses, nil
}
