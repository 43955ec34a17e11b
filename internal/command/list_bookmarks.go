package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// ListBookmarksRequest narrows the listing to one author's bookmarks. Without
// an author every bookmark is listed.
type ListBookmarksRequest struct {
	Author string
}

// ListBookmarks returns raw bookmark records, most recent first.
type ListBookmarks struct {
	UsernameResolver   datasources.UsernameResolver
	BookmarkLister     datasources.BookmarkLister
	UserBookmarkLister datasources.UserBookmarkLister
}

func NewListBookmarks(
	usernameResolver datasources.UsernameResolver,
	bookmarkLister datasources.BookmarkLister,
	userBookmarkLister datasources.UserBookmarkLister,
) *ListBookmarks {
	return &ListBookmarks{
		UsernameResolver:   usernameResolver,
		BookmarkLister:     bookmarkLister,
		UserBookmarkLister: userBookmarkLister,
	}
}

func (c *ListBookmarks) Execute(ctx context.Context, req ListBookmarksRequest) ([]domain.Bookmark, error) {
	if req.Author == "" {
		bookmarks, err := c.BookmarkLister.ListBookmarks(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing bookmarks: %w", err)
		}
		return bookmarks, nil
	}

	user, err := c.UsernameResolver.ResolveUsername(ctx, req.Author)
	if err != nil {
		return nil, fmt.Errorf("resolving author: %w", err)
	}

	bookmarks, err := c.UserBookmarkLister.ListUserBookmarks(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks by author: %w", err)
	}
	return bookmarks, nil
}
