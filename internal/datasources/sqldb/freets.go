package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

func (r *Repository) freetSelect() *sqlbuilder.SelectBuilder {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("f.id", "f.author_id", "COALESCE(u.username, '')", "f.content", "f.created_at").
		From("freets f").
		JoinWithOption(sqlbuilder.LeftJoin, "users u", "u.id = f.author_id")
	return sb
}

func scanFreet(s scanner) (domain.Freet, error) {
	var f domain.Freet
	if err := s.Scan(&f.ID, &f.AuthorID, &f.Author, &f.Content, &f.CreatedAt); err != nil {
		return domain.Freet{}, err
	}
	f.CreatedAt = f.CreatedAt.UTC()
	return f, nil
}

func (r *Repository) FreetExists(ctx context.Context, freetID string) (bool, error) {
	exists, err := r.rowExists(ctx, r.db, "freets", "id", freetID)
	if err != nil {
		return false, fmt.Errorf("checking freet [%s] exists: %w", freetID, err)
	}
	return exists, nil
}

func (r *Repository) FetchFreet(ctx context.Context, freetID string) (domain.Freet, error) {
	sb := r.freetSelect()
	sb.Where(sb.Equal("f.id", freetID))

	f, err := queryOne(ctx, r.db, sb, scanFreet)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Freet{}, fmt.Errorf("freet [%s]: %w", freetID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Freet{}, fmt.Errorf("fetching freet [%s]: %w", freetID, err)
	}
	return f, nil
}

// fetchBatchSize bounds the placeholders in one IN clause, well under the
// SQLite and MySQL variable limits.
var fetchBatchSize = 500

func (r *Repository) FetchFreetsByID(ctx context.Context, freetIDs []string) ([]domain.Freet, error) {
	if len(freetIDs) == 0 {
		return []domain.Freet{}, nil
	}

	freetMap := make(map[string]domain.Freet, len(freetIDs))
	for batch := range slices.Chunk(freetIDs, fetchBatchSize) {
		sb := r.freetSelect()
		sb.Where(sb.In("f.id", toArgs(batch)...))

		dbFreets, err := queryAll(ctx, r.db, sb, scanFreet)
		if err != nil {
			return nil, fmt.Errorf("fetching freets by ID: %w", err)
		}
		for _, f := range dbFreets {
			freetMap[f.ID] = f
		}
	}

	freets := make([]domain.Freet, 0, len(freetIDs))
	for _, id := range freetIDs {
		if f, exists := freetMap[id]; exists {
			freets = append(freets, f)
		}
	}
	return freets, nil
}

func (r *Repository) ListFreetIDs(ctx context.Context) ([]string, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("id").From("freets").OrderBy("created_at ASC", "id ASC")

	ids, err := queryAll(ctx, r.db, sb, func(s scanner) (string, error) {
		var id string
		err := s.Scan(&id)
		return id, err
	})
	if err != nil {
		return nil, fmt.Errorf("listing freet IDs: %w", err)
	}
	return ids, nil
}

func (r *Repository) CreateFreet(ctx context.Context, freet domain.Freet) error {
	ib := r.flavor.NewInsertBuilder()
	ib.InsertInto("freets").
		Cols("id", "author_id", "content", "created_at").
		Values(freet.ID, freet.AuthorID, freet.Content, freet.CreatedAt.UTC())

	if _, err := execAffected(ctx, r.db, ib); err != nil {
		return fmt.Errorf("inserting freet [%s]: %w", freet.ID, err)
	}
	return nil
}
