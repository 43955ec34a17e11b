package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type DeleteUserRequest struct {
	UserID string
}

// DeleteUser cascades a user's removal through every engagement record that
// references them. Deleting an already-deleted user succeeds with zero counts.
type DeleteUser struct {
	UserCascader datasources.UserCascader
	Events       datasources.EventPublisher
	Clock        Clock
}

func NewDeleteUser(userCascader datasources.UserCascader, events datasources.EventPublisher) *DeleteUser {
	return &DeleteUser{
		UserCascader: userCascader,
		Events:       events,
	}
}

func (c *DeleteUser) Execute(ctx context.Context, req DeleteUserRequest) (domain.CascadeResult, error) {
	res, err := c.UserCascader.CascadeUser(ctx, req.UserID)
	if err != nil {
		return domain.CascadeResult{}, fmt.Errorf("deleting user [%s]: %w", req.UserID, err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "cascaded user deletion",
		"user_id", req.UserID,
		"reactions", res.Reactions,
		"bookmarks", res.Bookmarks,
		"statuses", res.Statuses,
		"freets", res.Freets,
	)

	publishEvent(ctx, c.Events, domain.EngagementEvent{
		Type:       domain.EventUserCascaded,
		UserID:     req.UserID,
		Cascade:    &res,
		OccurredAt: c.Clock.now(),
	})
	return res, nil
}
