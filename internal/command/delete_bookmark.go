package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type DeleteBookmarkRequest struct {
	UserID  string
	FreetID string
}

// DeleteBookmark removes the acting user's bookmark of a freet.
type DeleteBookmark struct {
	BookmarkDeleter datasources.BookmarkDeleter
	Events          datasources.EventPublisher
	Clock           Clock
}

func NewDeleteBookmark(bookmarkDeleter datasources.BookmarkDeleter, events datasources.EventPublisher) *DeleteBookmark {
	return &DeleteBookmark{
		BookmarkDeleter: bookmarkDeleter,
		Events:          events,
	}
}

func (c *DeleteBookmark) Execute(ctx context.Context, req DeleteBookmarkRequest) (Empty, error) {
	removed, err := c.BookmarkDeleter.DeleteBookmark(ctx, req.UserID, req.FreetID)
	if err != nil {
		return Empty{}, fmt.Errorf("deleting bookmark: %w", err)
	}
	if !removed {
		return Empty{}, fmt.Errorf("bookmark of freet [%s]: %w", req.FreetID, domain.ErrNotFound)
	}

	publishEvent(ctx, c.Events, domain.BookmarkEvent(domain.EventBookmarkDeleted, domain.Bookmark{
		UserID:  req.UserID,
		FreetID: req.FreetID,
	}, c.Clock.now()))
	return Empty{}, nil
}
