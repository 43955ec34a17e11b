package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// RankFreets orders every freet by the sum of its reactions' recommendations.
type RankFreets struct {
	FreetIDLister     datasources.FreetIDLister
	ReactionLister    datasources.ReactionLister
	FreetsByIDFetcher datasources.FreetsByIDFetcher
}

func NewRankFreets(
	freetIDLister datasources.FreetIDLister,
	reactionLister datasources.ReactionLister,
	freetsByIDFetcher datasources.FreetsByIDFetcher,
) *RankFreets {
	return &RankFreets{
		FreetIDLister:     freetIDLister,
		ReactionLister:    reactionLister,
		FreetsByIDFetcher: freetsByIDFetcher,
	}
}

// Execute ranks freets by score, highest first. Unreacted freets score zero and
// ties keep the freet store's enumeration order. Freets removed while ranking
// are left out.
func (c *RankFreets) Execute(ctx context.Context, _ Empty) ([]domain.RankedFreet, error) {
	freetIDs, err := c.FreetIDLister.ListFreetIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing freets: %w", err)
	}

	reactions, err := c.ReactionLister.ListReactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing reactions: %w", err)
	}

	scores := domain.RankFreets(freetIDs, reactions)
	if len(scores) == 0 {
		return []domain.RankedFreet{}, nil
	}

	rankedIDs := make([]string, len(scores))
	scoreByID := make(map[string]int, len(scores))
	for i, s := range scores {
		rankedIDs[i] = s.FreetID
		scoreByID[s.FreetID] = s.Score
	}

	freets, err := c.FreetsByIDFetcher.FetchFreetsByID(ctx, rankedIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching ranked freets: %w", err)
	}

	ranked := make([]domain.RankedFreet, len(freets))
	for i, f := range freets {
		ranked[i] = domain.RankedFreet{Freet: f, Score: scoreByID[f.ID]}
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "ranked freets",
		"freets", len(freetIDs), "reactions", len(reactions), "returned", len(ranked))

	return ranked, nil
}
