package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type ReactionCreator interface {
	CreateReaction(ctx context.Context, reaction domain.Reaction) error
}

// ReactionGetter returns domain.ErrNotFound for an unknown reaction.
type ReactionGetter interface {
	GetReaction(ctx context.Context, reactionID string) (domain.Reaction, error)
}

type ReactionDeleter interface {
	DeleteReaction(ctx context.Context, reactionID string) error
}

// ReactionLister lists every reaction, most recently modified first.
type ReactionLister interface {
	ListReactions(ctx context.Context) ([]domain.Reaction, error)
}

type UserReactionLister interface {
	ListUserReactions(ctx context.Context, userID string) ([]domain.Reaction, error)
}

type FreetReactionLister interface {
	ListFreetReactions(ctx context.Context, freetID string) ([]domain.Reaction, error)
}

type ReactionRecommendationSetter interface {
	SetReactionRecommendation(
		ctx context.Context,
		reactionID string,
		recommendation domain.Recommendation,
		updatedAt time.Time,
	) error
}

type ReactionRepository interface {
	ReactionCreator
	ReactionGetter
	ReactionDeleter
	ReactionLister
	UserReactionLister
	FreetReactionLister
	ReactionRecommendationSetter
}
