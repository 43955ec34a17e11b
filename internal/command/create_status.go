package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type CreateStatusRequest struct {
	UserID  string
	Content string
}

// CreateStatus posts a status for a day, replacing the user's current one.
type CreateStatus struct {
	UserGetter     datasources.UserGetter
	StatusReplacer datasources.StatusReplacer
	Clock          Clock
}

func NewCreateStatus(userGetter datasources.UserGetter, statusReplacer datasources.StatusReplacer) *CreateStatus {
	return &CreateStatus{
		UserGetter:     userGetter,
		StatusReplacer: statusReplacer,
	}
}

func (c *CreateStatus) Execute(ctx context.Context, req CreateStatusRequest) (domain.Status, error) {
	content, err := domain.NormalizeStatusContent(req.Content)
	if err != nil {
		return domain.Status{}, err
	}

	status := domain.NewStatus(uuid.New().String(), req.UserID, content, c.Clock.now())

	user, err := c.UserGetter.GetUser(ctx, req.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return domain.Status{}, fmt.Errorf("fetching user [%s]: %w", req.UserID, err)
	default:
		status.Author = user.Username
	}

	if err := c.StatusReplacer.ReplaceStatus(ctx, status); err != nil {
		return domain.Status{}, fmt.Errorf("storing status: %w", err)
	}
	return status, nil
}
