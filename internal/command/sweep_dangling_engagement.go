package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// SweepDanglingEngagement removes engagement rows left behind when a
// lifecycle event was lost, along with expired statuses.
type SweepDanglingEngagement struct {
	Sweeper datasources.DanglingEngagementSweeper
	Clock   Clock
}

func NewSweepDanglingEngagement(sweeper datasources.DanglingEngagementSweeper) *SweepDanglingEngagement {
	return &SweepDanglingEngagement{Sweeper: sweeper}
}

func (c *SweepDanglingEngagement) Execute(ctx context.Context, _ Empty) (domain.CascadeResult, error) {
	res, err := c.Sweeper.SweepDanglingEngagement(ctx, c.Clock.now())
	if err != nil {
		return domain.CascadeResult{}, fmt.Errorf("sweeping: %w", err)
	}

	if res.Total() > 0 {
		domain.LoggerFromContext(ctx).InfoContext(ctx, "swept dangling engagement",
			"reactions", res.Reactions, "bookmarks", res.Bookmarks, "statuses", res.Statuses)
	}
	return res, nil
}
