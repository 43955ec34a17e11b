package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// DefaultNotificationTTL is how long a reaction alert stays visible to the freet's author.
const DefaultNotificationTTL = 3 * time.Second

type CreateReactionRequest struct {
	UserID  string
	FreetID string
	Kind    domain.ReactionKind
}

// CreateReaction records a user's reaction to a freet. Like and happy
// reactions boost the freet immediately; sad reactions start undecided.
type CreateReaction struct {
	FreetFetcher    datasources.FreetFetcher
	UserGetter      datasources.UserGetter
	ReactionCreator datasources.ReactionCreator
	Events          datasources.EventPublisher
	Notifications   datasources.NotificationPublisher
	NotificationTTL time.Duration
	Clock           Clock
}

func NewCreateReaction(
	freetFetcher datasources.FreetFetcher,
	userGetter datasources.UserGetter,
	reactionCreator datasources.ReactionCreator,
	events datasources.EventPublisher,
	notifications datasources.NotificationPublisher,
	notificationTTL time.Duration,
) *CreateReaction {
	if notificationTTL <= 0 {
		notificationTTL = DefaultNotificationTTL
	}
	return &CreateReaction{
		FreetFetcher:    freetFetcher,
		UserGetter:      userGetter,
		ReactionCreator: reactionCreator,
		Events:          events,
		Notifications:   notifications,
		NotificationTTL: notificationTTL,
	}
}

func (c *CreateReaction) Execute(ctx context.Context, req CreateReactionRequest) (domain.Reaction, error) {
	logger := domain.LoggerFromContext(ctx)

	freet, err := c.FreetFetcher.FetchFreet(ctx, req.FreetID)
	if err != nil {
		return domain.Reaction{}, fmt.Errorf("fetching freet [%s]: %w", req.FreetID, err)
	}

	now := c.Clock.now()
	reaction := domain.NewReaction(uuid.New().String(), req.UserID, req.FreetID, req.Kind, now)

	user, err := c.UserGetter.GetUser(ctx, req.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.DebugContext(ctx, "reacting user has no registered username", "user_id", req.UserID)
	case err != nil:
		return domain.Reaction{}, fmt.Errorf("fetching user [%s]: %w", req.UserID, err)
	default:
		reaction.Username = user.Username
	}

	if err := c.ReactionCreator.CreateReaction(ctx, reaction); err != nil {
		return domain.Reaction{}, fmt.Errorf("creating reaction: %w", err)
	}

	logger.DebugContext(ctx, "created reaction",
		"reaction_id", reaction.ID, "freet_id", reaction.FreetID, "kind", reaction.Kind)

	publishEvent(ctx, c.Events, domain.ReactionEvent(domain.EventReactionCreated, reaction, now))

	if c.Notifications != nil && freet.AuthorID != req.UserID {
		n := domain.NewReactionNotification(uuid.New().String(), freet.AuthorID, reaction, now, c.NotificationTTL)
		if err := c.Notifications.PublishNotification(ctx, n); err != nil {
			logger.WarnContext(ctx, "failed to notify freet author", "error", err, "freet_id", freet.ID)
		}
	}

	return reaction, nil
}
