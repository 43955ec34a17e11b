package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// ListStatusesRequest filters by author username; empty lists every live status.
type ListStatusesRequest struct {
	Author string
}

type ListStatuses struct {
	UsernameResolver datasources.UsernameResolver
	StatusLister     datasources.LiveStatusLister
	Clock            Clock
}

func NewListStatuses(
	usernameResolver datasources.UsernameResolver,
	statusLister datasources.LiveStatusLister,
) *ListStatuses {
	return &ListStatuses{
		UsernameResolver: usernameResolver,
		StatusLister:     statusLister,
	}
}

func (c *ListStatuses) Execute(ctx context.Context, req ListStatusesRequest) ([]domain.Status, error) {
	var userID string
	if req.Author != "" {
		user, err := c.UsernameResolver.ResolveUsername(ctx, req.Author)
		if err != nil {
			return nil, fmt.Errorf("resolving author: %w", err)
		}
		userID = user.ID
	}

	statuses, err := c.StatusLister.ListLiveStatuses(ctx, userID, c.Clock.now())
	if err != nil {
		return nil, fmt.Errorf("listing statuses: %w", err)
	}
	return statuses, nil
}
