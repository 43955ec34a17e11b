package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type CreateBookmarkRequest struct {
	UserID  string
	FreetID string
}

// CreateBookmark saves a freet for a user. Bookmarking the same freet again
// returns the existing bookmark.
type CreateBookmark struct {
	FreetFetcher    datasources.FreetFetcher
	BookmarkCreator datasources.BookmarkCreator
	Events          datasources.EventPublisher
	Notifications   datasources.NotificationPublisher
	NotificationTTL time.Duration
	Clock           Clock
}

func NewCreateBookmark(
	freetFetcher datasources.FreetFetcher,
	bookmarkCreator datasources.BookmarkCreator,
	events datasources.EventPublisher,
	notifications datasources.NotificationPublisher,
	notificationTTL time.Duration,
) *CreateBookmark {
	if notificationTTL <= 0 {
		notificationTTL = DefaultNotificationTTL
	}
	return &CreateBookmark{
		FreetFetcher:    freetFetcher,
		BookmarkCreator: bookmarkCreator,
		Events:          events,
		Notifications:   notifications,
		NotificationTTL: notificationTTL,
	}
}

func (c *CreateBookmark) Execute(ctx context.Context, req CreateBookmarkRequest) (domain.Bookmark, error) {
	freet, err := c.FreetFetcher.FetchFreet(ctx, req.FreetID)
	if err != nil {
		return domain.Bookmark{}, fmt.Errorf("fetching freet [%s]: %w", req.FreetID, err)
	}

	now := c.Clock.now()
	candidate := domain.Bookmark{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		FreetID:   req.FreetID,
		CreatedAt: now,
	}

	bookmark, err := c.BookmarkCreator.CreateBookmark(ctx, candidate)
	if err != nil {
		return domain.Bookmark{}, fmt.Errorf("creating bookmark: %w", err)
	}

	// An existing bookmark comes back with its original ID.
	if bookmark.ID != candidate.ID {
		return bookmark, nil
	}

	publishEvent(ctx, c.Events, domain.BookmarkEvent(domain.EventBookmarkCreated, bookmark, now))

	if c.Notifications != nil && freet.AuthorID != req.UserID {
		n := domain.NewBookmarkNotification(uuid.New().String(), freet.AuthorID, bookmark.Username, bookmark, now, c.NotificationTTL)
		if err := c.Notifications.PublishNotification(ctx, n); err != nil {
			domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to notify freet author",
				"error", err, "freet_id", freet.ID)
		}
	}
	return bookmark, nil
}
