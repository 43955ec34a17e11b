package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// ListReactionsRequest narrows the listing. With neither field set every
// reaction is listed.
type ListReactionsRequest struct {
	Author  string
	FreetID string
}

type ListReactions struct {
	UsernameResolver    datasources.UsernameResolver
	ReactionLister      datasources.ReactionLister
	UserReactionLister  datasources.UserReactionLister
	FreetReactionLister datasources.FreetReactionLister
}

func NewListReactions(
	usernameResolver datasources.UsernameResolver,
	reactionLister datasources.ReactionLister,
	userReactionLister datasources.UserReactionLister,
	freetReactionLister datasources.FreetReactionLister,
) *ListReactions {
	return &ListReactions{
		UsernameResolver:    usernameResolver,
		ReactionLister:      reactionLister,
		UserReactionLister:  userReactionLister,
		FreetReactionLister: freetReactionLister,
	}
}

// Execute returns matching reactions, most recently modified first.
// An unknown author yields domain.ErrNotFound.
func (c *ListReactions) Execute(ctx context.Context, req ListReactionsRequest) ([]domain.Reaction, error) {
	switch {
	case req.Author != "":
		user, err := c.UsernameResolver.ResolveUsername(ctx, req.Author)
		if err != nil {
			return nil, fmt.Errorf("resolving author: %w", err)
		}

		reactions, err := c.UserReactionLister.ListUserReactions(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("listing reactions by author: %w", err)
		}
		if req.FreetID == "" {
			return reactions, nil
		}

		filtered := make([]domain.Reaction, 0, len(reactions))
		for _, r := range reactions {
			if r.FreetID == req.FreetID {
				filtered = append(filtered, r)
			}
		}
		return filtered, nil

	case req.FreetID != "":
		reactions, err := c.FreetReactionLister.ListFreetReactions(ctx, req.FreetID)
		if err != nil {
			return nil, fmt.Errorf("listing reactions on freet: %w", err)
		}
		return reactions, nil

	default:
		reactions, err := c.ReactionLister.ListReactions(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing reactions: %w", err)
		}
		return reactions, nil
	}
}
