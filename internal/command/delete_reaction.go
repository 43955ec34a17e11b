package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type DeleteReactionRequest struct {
	UserID     string
	ReactionID string
}

// DeleteReaction removes a reaction. Only the reactor may delete it.
type DeleteReaction struct {
	ReactionGetter  datasources.ReactionGetter
	ReactionDeleter datasources.ReactionDeleter
	Events          datasources.EventPublisher
	Clock           Clock
}

func NewDeleteReaction(
	reactionGetter datasources.ReactionGetter,
	reactionDeleter datasources.ReactionDeleter,
	events datasources.EventPublisher,
) *DeleteReaction {
	return &DeleteReaction{
		ReactionGetter:  reactionGetter,
		ReactionDeleter: reactionDeleter,
		Events:          events,
	}
}

func (c *DeleteReaction) Execute(ctx context.Context, req DeleteReactionRequest) (Empty, error) {
	reaction, err := c.ReactionGetter.GetReaction(ctx, req.ReactionID)
	if err != nil {
		return Empty{}, fmt.Errorf("fetching reaction [%s]: %w", req.ReactionID, err)
	}

	if reaction.UserID != req.UserID {
		return Empty{}, fmt.Errorf("reaction [%s] belongs to another user: %w", req.ReactionID, domain.ErrForbidden)
	}

	if err := c.ReactionDeleter.DeleteReaction(ctx, req.ReactionID); err != nil {
		return Empty{}, fmt.Errorf("deleting reaction [%s]: %w", req.ReactionID, err)
	}

	publishEvent(ctx, c.Events, domain.ReactionEvent(domain.EventReactionDeleted, reaction, c.Clock.now()))
	return Empty{}, nil
}
