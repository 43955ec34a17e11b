package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type ResolveReactionRequest struct {
	UserID     string
	ReactionID string
	Decision   domain.Decision
}

// ResolveReaction records whether a sad reaction should boost its freet.
// Only the reactor may resolve, and only sad reactions can be resolved.
type ResolveReaction struct {
	ReactionGetter    datasources.ReactionGetter
	RecommendationSet datasources.ReactionRecommendationSetter
	Events            datasources.EventPublisher
	Clock             Clock
}

func NewResolveReaction(
	reactionGetter datasources.ReactionGetter,
	recommendationSet datasources.ReactionRecommendationSetter,
	events datasources.EventPublisher,
) *ResolveReaction {
	return &ResolveReaction{
		ReactionGetter:    reactionGetter,
		RecommendationSet: recommendationSet,
		Events:            events,
	}
}

func (c *ResolveReaction) Execute(ctx context.Context, req ResolveReactionRequest) (domain.Reaction, error) {
	reaction, err := c.ReactionGetter.GetReaction(ctx, req.ReactionID)
	if err != nil {
		return domain.Reaction{}, fmt.Errorf("fetching reaction [%s]: %w", req.ReactionID, err)
	}

	if reaction.UserID != req.UserID {
		return domain.Reaction{}, fmt.Errorf("reaction [%s] belongs to another user: %w",
			req.ReactionID, domain.ErrForbidden)
	}

	now := c.Clock.now()
	resolved, changed, err := reaction.Resolve(req.Decision, now)
	if err != nil {
		return domain.Reaction{}, fmt.Errorf("resolving reaction [%s]: %w", req.ReactionID, err)
	}
	if !changed {
		return resolved, nil
	}

	if err := c.RecommendationSet.SetReactionRecommendation(
		ctx, resolved.ID, resolved.Recommendation, resolved.UpdatedAt,
	); err != nil {
		return domain.Reaction{}, fmt.Errorf("storing recommendation of reaction [%s]: %w", req.ReactionID, err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "resolved reaction",
		"reaction_id", resolved.ID, "recommendation", resolved.Recommendation.String())

	publishEvent(ctx, c.Events, domain.ReactionEvent(domain.EventReactionResolved, resolved, now))
	return resolved, nil
}
