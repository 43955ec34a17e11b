package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type DeleteStatusRequest struct {
	UserID   string
	StatusID string
}

type DeleteStatus struct {
	StatusGetter  datasources.StatusGetter
	StatusDeleter datasources.StatusDeleter
}

func NewDeleteStatus(statusGetter datasources.StatusGetter, statusDeleter datasources.StatusDeleter) *DeleteStatus {
	return &DeleteStatus{
		StatusGetter:  statusGetter,
		StatusDeleter: statusDeleter,
	}
}

func (c *DeleteStatus) Execute(ctx context.Context, req DeleteStatusRequest) (Empty, error) {
	status, err := c.StatusGetter.GetStatus(ctx, req.StatusID)
	if err != nil {
		return Empty{}, fmt.Errorf("fetching status [%s]: %w", req.StatusID, err)
	}
	if status.AuthorID != req.UserID {
		return Empty{}, fmt.Errorf("status [%s] belongs to another user: %w", req.StatusID, domain.ErrForbidden)
	}

	if err := c.StatusDeleter.DeleteStatus(ctx, req.StatusID); err != nil {
		return Empty{}, fmt.Errorf("deleting status [%s]: %w", req.StatusID, err)
	}
	return Empty{}, nil
}
