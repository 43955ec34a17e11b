package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

func (r *Repository) bookmarkSelect() *sqlbuilder.SelectBuilder {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("b.id", "b.user_id", "COALESCE(u.username, '')", "b.freet_id", "b.created_at").
		From("bookmarks b").
		JoinWithOption(sqlbuilder.LeftJoin, "users u", "u.id = b.user_id").
		OrderBy("b.created_at DESC", "b.id DESC")
	return sb
}

func scanBookmark(s scanner) (domain.Bookmark, error) {
	var b domain.Bookmark
	if err := s.Scan(&b.ID, &b.UserID, &b.Username, &b.FreetID, &b.CreatedAt); err != nil {
		return domain.Bookmark{}, err
	}
	b.CreatedAt = b.CreatedAt.UTC()
	return b, nil
}

// CreateBookmark relies on the (user_id, freet_id) unique key: a second insert
// for the same pair is ignored and the stored bookmark is read back.
func (r *Repository) CreateBookmark(ctx context.Context, bookmark domain.Bookmark) (domain.Bookmark, error) {
	ib := r.flavor.NewInsertBuilder()
	ib.InsertIgnoreInto("bookmarks").
		Cols("id", "user_id", "freet_id", "created_at").
		Values(bookmark.ID, bookmark.UserID, bookmark.FreetID, bookmark.CreatedAt.UTC())

	if _, err := execAffected(ctx, r.db, ib); err != nil {
		return domain.Bookmark{}, fmt.Errorf("inserting bookmark of freet [%s] by user [%s]: %w",
			bookmark.FreetID, bookmark.UserID, err)
	}

	stored, err := r.GetBookmark(ctx, bookmark.UserID, bookmark.FreetID)
	if err != nil {
		return domain.Bookmark{}, fmt.Errorf("reading back bookmark: %w", err)
	}
	return stored, nil
}

func (r *Repository) GetBookmark(ctx context.Context, userID, freetID string) (domain.Bookmark, error) {
	sb := r.bookmarkSelect()
	sb.Where(sb.Equal("b.user_id", userID), sb.Equal("b.freet_id", freetID))

	b, err := queryOne(ctx, r.db, sb, scanBookmark)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Bookmark{}, fmt.Errorf("bookmark of freet [%s] by user [%s]: %w", freetID, userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Bookmark{}, fmt.Errorf("fetching bookmark of freet [%s] by user [%s]: %w", freetID, userID, err)
	}
	return b, nil
}

func (r *Repository) ListBookmarks(ctx context.Context) ([]domain.Bookmark, error) {
	bookmarks, err := queryAll(ctx, r.db, r.bookmarkSelect(), scanBookmark)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (r *Repository) DeleteBookmark(ctx context.Context, userID, freetID string) (bool, error) {
	db := r.flavor.NewDeleteBuilder()
	db.DeleteFrom("bookmarks").Where(db.Equal("user_id", userID), db.Equal("freet_id", freetID))

	n, err := execAffected(ctx, r.db, db)
	if err != nil {
		return false, fmt.Errorf("deleting bookmark of freet [%s] by user [%s]: %w", freetID, userID, err)
	}
	return n > 0, nil
}

func (r *Repository) ListUserBookmarks(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	sb := r.bookmarkSelect()
	sb.Where(sb.Equal("b.user_id", userID))

	bookmarks, err := queryAll(ctx, r.db, sb, scanBookmark)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks by user [%s]: %w", userID, err)
	}
	return bookmarks, nil
}

// DeleteBookmarksByUser removes every bookmark the user made.
func (r *Repository) DeleteBookmarksByUser(ctx context.Context, userID string) (int64, error) {
	return r.deleteWhereEqual(ctx, r.db, "bookmarks", "user_id", userID)
}

// DeleteBookmarksByFreet removes every bookmark of the freet.
func (r *Repository) DeleteBookmarksByFreet(ctx context.Context, freetID string) (int64, error) {
	return r.deleteWhereEqual(ctx, r.db, "bookmarks", "freet_id", freetID)
}
