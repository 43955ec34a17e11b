package datasources

import (
	"context"

	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// BookmarkCreator stores a bookmark. If the user has already bookmarked the
// freet, the existing bookmark is returned unchanged.
type BookmarkCreator interface {
	CreateBookmark(ctx context.Context, bookmark domain.Bookmark) (domain.Bookmark, error)
}

// BookmarkDeleter reports whether a bookmark was removed.
type BookmarkDeleter interface {
	DeleteBookmark(ctx context.Context, userID, freetID string) (bool, error)
}

// BookmarkGetter returns domain.ErrNotFound when the user has not bookmarked the freet.
type BookmarkGetter interface {
	GetBookmark(ctx context.Context, userID, freetID string) (domain.Bookmark, error)
}

// BookmarkLister lists every bookmark, most recent first.
type BookmarkLister interface {
	ListBookmarks(ctx context.Context) ([]domain.Bookmark, error)
}

type UserBookmarkLister interface {
	ListUserBookmarks(ctx context.Context, userID string) ([]domain.Bookmark, error)
}

type BookmarkRepository interface {
	BookmarkCreator
	BookmarkDeleter
	BookmarkGetter
	BookmarkLister
	UserBookmarkLister
}
