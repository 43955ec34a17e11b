package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// ListBookmarkedFreetsRequest identifies the user either by username or by ID.
// Username wins when both are set.
type ListBookmarkedFreetsRequest struct {
	Username string
	UserID   string
}

// ListBookmarkedFreets returns the freets a user has bookmarked, most recently
// bookmarked first. Bookmarks of freets that no longer exist are skipped.
type ListBookmarkedFreets struct {
	UsernameResolver   datasources.UsernameResolver
	UserBookmarkLister datasources.UserBookmarkLister
	FreetsByIDFetcher  datasources.FreetsByIDFetcher
}

func NewListBookmarkedFreets(
	usernameResolver datasources.UsernameResolver,
	userBookmarkLister datasources.UserBookmarkLister,
	freetsByIDFetcher datasources.FreetsByIDFetcher,
) *ListBookmarkedFreets {
	return &ListBookmarkedFreets{
		UsernameResolver:   usernameResolver,
		UserBookmarkLister: userBookmarkLister,
		FreetsByIDFetcher:  freetsByIDFetcher,
	}
}

func (c *ListBookmarkedFreets) Execute(ctx context.Context, req ListBookmarkedFreetsRequest) ([]domain.Freet, error) {
	userID := req.UserID
	if req.Username != "" {
		user, err := c.UsernameResolver.ResolveUsername(ctx, req.Username)
		if err != nil {
			return nil, fmt.Errorf("resolving username: %w", err)
		}
		userID = user.ID
	}

	bookmarks, err := c.UserBookmarkLister.ListUserBookmarks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	if len(bookmarks) == 0 {
		return []domain.Freet{}, nil
	}

	freetIDs := make([]string, len(bookmarks))
	for i, b := range bookmarks {
		freetIDs[i] = b.FreetID
	}

	freets, err := c.FreetsByIDFetcher.FetchFreetsByID(ctx, freetIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching bookmarked freets: %w", err)
	}
	return freets, nil
}
