package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type GetBookmarkRequest struct {
	UserID  string
	FreetID string
}

type GetBookmark struct {
	BookmarkGetter datasources.BookmarkGetter
}

func NewGetBookmark(bookmarkGetter datasources.BookmarkGetter) *GetBookmark {
	return &GetBookmark{
		BookmarkGetter: bookmarkGetter,
	}
}

func (c *GetBookmark) Execute(ctx context.Context, req GetBookmarkRequest) (domain.Bookmark, error) {
	bookmark, err := c.BookmarkGetter.GetBookmark(ctx, req.UserID, req.FreetID)
	if err != nil {
		return domain.Bookmark{}, fmt.Errorf("getting bookmark of freet [%s]: %w", req.FreetID, err)
	}
	return bookmark, nil
}
