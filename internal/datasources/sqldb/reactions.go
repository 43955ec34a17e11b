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

func (r *Repository) reactionSelect() *sqlbuilder.SelectBuilder {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(
		"r.id", "r.user_id", "COALESCE(u.username, '')", "r.freet_id",
		"r.kind", "r.recommended", "r.created_at", "r.updated_at",
	).
		From("reactions r").
		JoinWithOption(sqlbuilder.LeftJoin, "users u", "u.id = r.user_id").
		OrderBy("r.updated_at DESC", "r.id DESC")
	return sb
}

func scanReaction(s scanner) (domain.Reaction, error) {
	var (
		r           domain.Reaction
		kind        string
		recommended int
	)
	if err := s.Scan(
		&r.ID, &r.UserID, &r.Username, &r.FreetID,
		&kind, &recommended, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return domain.Reaction{}, err
	}

	r.Kind = domain.ReactionKind(kind)
	rec, err := domain.RecommendationFromScore(recommended)
	if err != nil {
		return domain.Reaction{}, fmt.Errorf("reaction [%s]: %w", r.ID, err)
	}
	r.Recommendation = rec
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()
	return r, nil
}

func (r *Repository) CreateReaction(ctx context.Context, reaction domain.Reaction) error {
	ib := r.flavor.NewInsertBuilder()
	ib.InsertInto("reactions").
		Cols("id", "user_id", "freet_id", "kind", "recommended", "created_at", "updated_at").
		Values(
			reaction.ID,
			reaction.UserID,
			reaction.FreetID,
			string(reaction.Kind),
			reaction.Recommendation.Score(),
			reaction.CreatedAt.UTC(),
			reaction.UpdatedAt.UTC(),
		)

	if _, err := execAffected(ctx, r.db, ib); err != nil {
		return fmt.Errorf("inserting reaction [%s]: %w", reaction.ID, err)
	}
	return nil
}

func (r *Repository) GetReaction(ctx context.Context, reactionID string) (domain.Reaction, error) {
	sb := r.reactionSelect()
	sb.Where(sb.Equal("r.id", reactionID))

	reaction, err := queryOne(ctx, r.db, sb, scanReaction)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Reaction{}, fmt.Errorf("reaction [%s]: %w", reactionID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Reaction{}, fmt.Errorf("fetching reaction [%s]: %w", reactionID, err)
	}
	return reaction, nil
}

func (r *Repository) DeleteReaction(ctx context.Context, reactionID string) error {
	db := r.flavor.NewDeleteBuilder()
	db.DeleteFrom("reactions").Where(db.Equal("id", reactionID))

	n, err := execAffected(ctx, r.db, db)
	if err != nil {
		return fmt.Errorf("deleting reaction [%s]: %w", reactionID, err)
	}
	if n == 0 {
		return fmt.Errorf("reaction [%s]: %w", reactionID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) ListReactions(ctx context.Context) ([]domain.Reaction, error) {
	reactions, err := queryAll(ctx, r.db, r.reactionSelect(), scanReaction)
	if err != nil {
		return nil, fmt.Errorf("listing reactions: %w", err)
	}
	return reactions, nil
}

func (r *Repository) ListUserReactions(ctx context.Context, userID string) ([]domain.Reaction, error) {
	sb := r.reactionSelect()
	sb.Where(sb.Equal("r.user_id", userID))

	reactions, err := queryAll(ctx, r.db, sb, scanReaction)
	if err != nil {
		return nil, fmt.Errorf("listing reactions by user [%s]: %w", userID, err)
	}
	return reactions, nil
}

func (r *Repository) ListFreetReactions(ctx context.Context, freetID string) ([]domain.Reaction, error) {
	sb := r.reactionSelect()
	sb.Where(sb.Equal("r.freet_id", freetID))

	reactions, err := queryAll(ctx, r.db, sb, scanReaction)
	if err != nil {
		return nil, fmt.Errorf("listing reactions on freet [%s]: %w", freetID, err)
	}
	return reactions, nil
}

func (r *Repository) SetReactionRecommendation(
	ctx context.Context,
	reactionID string,
	recommendation domain.Recommendation,
	updatedAt time.Time,
) error {
	ub := r.flavor.NewUpdateBuilder()
	ub.Update("reactions").
		Set(
			ub.Assign("recommended", recommendation.Score()),
			ub.Assign("updated_at", updatedAt.UTC()),
		).
		Where(ub.Equal("id", reactionID))

	if _, err := execAffected(ctx, r.db, ub); err != nil {
		return fmt.Errorf("updating recommendation of reaction [%s]: %w", reactionID, err)
	}
	return nil
}

// DeleteReactionsByUser removes every reaction the user authored.
func (r *Repository) DeleteReactionsByUser(ctx context.Context, userID string) (int64, error) {
	return r.deleteWhereEqual(ctx, r.db, "reactions", "user_id", userID)
}

// DeleteReactionsByFreet removes every reaction on the freet.
func (r *Repository) DeleteReactionsByFreet(ctx context.Context, freetID string) (int64, error) {
	return r.deleteWhereEqual(ctx, r.db, "reactions", "freet_id", freetID)
}

func (r *Repository) deleteWhereEqual(ctx context.Context, q queryer, table, column, value string) (int64, error) {
	db := r.flavor.NewDeleteBuilder()
	db.DeleteFrom(table).Where(db.Equal(column, value))

	n, err := execAffected(ctx, q, db)
	if err != nil {
		return 0, fmt.Errorf("deleting from %s where %s = %q: %w", table, column, value, err)
	}
	return n, nil
}
