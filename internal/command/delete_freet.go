package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// DeleteFreetRequest names the freet to remove. An empty ActingUserID skips
// the ownership check, for operator tooling and lifecycle events.
type DeleteFreetRequest struct {
	ActingUserID string
	FreetID      string
}

// DeleteFreet cascades a freet's removal through its reactions and bookmarks.
type DeleteFreet struct {
	FreetFetcher  datasources.FreetFetcher
	FreetCascader datasources.FreetCascader
	Events        datasources.EventPublisher
	Clock         Clock
}

func NewDeleteFreet(
	freetFetcher datasources.FreetFetcher,
	freetCascader datasources.FreetCascader,
	events datasources.EventPublisher,
) *DeleteFreet {
	return &DeleteFreet{
		FreetFetcher:  freetFetcher,
		FreetCascader: freetCascader,
		Events:        events,
	}
}

func (c *DeleteFreet) Execute(ctx context.Context, req DeleteFreetRequest) (domain.CascadeResult, error) {
	if req.ActingUserID != "" {
		freet, err := c.FreetFetcher.FetchFreet(ctx, req.FreetID)
		if err != nil {
			return domain.CascadeResult{}, fmt.Errorf("fetching freet [%s]: %w", req.FreetID, err)
		}
		if freet.AuthorID != req.ActingUserID {
			return domain.CascadeResult{}, fmt.Errorf("freet [%s] belongs to another user: %w",
				req.FreetID, domain.ErrForbidden)
		}
	}

	res, err := c.FreetCascader.CascadeFreet(ctx, req.FreetID)
	if err != nil {
		return domain.CascadeResult{}, fmt.Errorf("deleting freet [%s]: %w", req.FreetID, err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "cascaded freet deletion",
		"freet_id", req.FreetID,
		"reactions", res.Reactions,
		"bookmarks", res.Bookmarks,
	)

	publishEvent(ctx, c.Events, domain.EngagementEvent{
		Type:       domain.EventFreetCascaded,
		FreetID:    req.FreetID,
		Cascade:    &res,
		OccurredAt: c.Clock.now(),
	})
	return res, nil
}
