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

func (r *Repository) apiTokenSelect() *sqlbuilder.SelectBuilder {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(
		"id", "user_id", "token_hash", "token_prefix", "name",
		"created_at", "last_used_at", "expires_at", "revoked_at",
	).From("api_tokens")
	return sb
}

func scanAPIToken(s scanner) (domain.APIToken, error) {
	var (
		t                            domain.APIToken
		name                         sql.NullString
		lastUsed, expires, revokedAt sql.NullTime
	)
	if err := s.Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.Prefix, &name,
		&t.CreatedAt, &lastUsed, &expires, &revokedAt,
	); err != nil {
		return domain.APIToken{}, err
	}

	if name.Valid {
		t.Name = &name.String
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.LastUsedAt = nullTimePtr(lastUsed)
	t.ExpiresAt = nullTimePtr(expires)
	t.RevokedAt = nullTimePtr(revokedAt)
	return t, nil
}

func (r *Repository) CreateAPIToken(ctx context.Context, token domain.APIToken) error {
	ib := r.flavor.NewInsertBuilder()
	ib.InsertInto("api_tokens").
		Cols("id", "user_id", "token_hash", "token_prefix", "name", "created_at", "expires_at").
		Values(
			token.ID,
			token.UserID,
			token.TokenHash,
			token.Prefix,
			token.Name,
			token.CreatedAt.UTC(),
			utcPtr(token.ExpiresAt),
		)

	if _, err := execAffected(ctx, r.db, ib); err != nil {
		return fmt.Errorf("inserting API token [%s]: %w", token.ID, err)
	}
	return nil
}

func (r *Repository) GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error) {
	sb := r.apiTokenSelect()
	sb.Where(sb.Equal("token_hash", tokenHash))

	token, err := queryOne(ctx, r.db, sb, scanAPIToken)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.APIToken{}, fmt.Errorf("API token: %w", domain.ErrNotFound)
	}
	if err != nil {
		return domain.APIToken{}, fmt.Errorf("fetching API token by hash: %w", err)
	}
	return token, nil
}

func (r *Repository) UpdateAPITokenLastUsed(ctx context.Context, tokenID string, usedAt time.Time) error {
	ub := r.flavor.NewUpdateBuilder()
	ub.Update("api_tokens").
		Set(ub.Assign("last_used_at", usedAt.UTC())).
		Where(ub.Equal("id", tokenID))

	if _, err := execAffected(ctx, r.db, ub); err != nil {
		return fmt.Errorf("updating last use of API token [%s]: %w", tokenID, err)
	}
	return nil
}

func (r *Repository) ListUserAPITokens(ctx context.Context, userID string) ([]domain.APIToken, error) {
	sb := r.apiTokenSelect()
	sb.Where(sb.Equal("user_id", userID), sb.IsNull("revoked_at")).
		OrderBy("created_at DESC", "id DESC")

	tokens, err := queryAll(ctx, r.db, sb, scanAPIToken)
	if err != nil {
		return nil, fmt.Errorf("listing API tokens of user [%s]: %w", userID, err)
	}
	return tokens, nil
}

func (r *Repository) CountUserActiveAPITokens(ctx context.Context, userID string, now time.Time) (int64, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("COUNT(*)").From("api_tokens").Where(
		sb.Equal("user_id", userID),
		sb.IsNull("revoked_at"),
		sb.Or(sb.IsNull("expires_at"), sb.GreaterThan("expires_at", now.UTC())),
	)

	count, err := queryOne(ctx, r.db, sb, func(s scanner) (int64, error) {
		var n int64
		err := s.Scan(&n)
		return n, err
	})
	if err != nil {
		return 0, fmt.Errorf("counting API tokens of user [%s]: %w", userID, err)
	}
	return count, nil
}

func (r *Repository) RevokeAPIToken(ctx context.Context, tokenID, userID string, revokedAt time.Time) error {
	ub := r.flavor.NewUpdateBuilder()
	ub.Update("api_tokens").
		Set(ub.Assign("revoked_at", revokedAt.UTC())).
		Where(ub.Equal("id", tokenID), ub.Equal("user_id", userID), ub.IsNull("revoked_at"))

	n, err := execAffected(ctx, r.db, ub)
	if err != nil {
		return fmt.Errorf("revoking API token [%s]: %w", tokenID, err)
	}
	if n == 0 {
		return fmt.Errorf("API token [%s]: %w", tokenID, domain.ErrNotFound)
	}
	return nil
}
