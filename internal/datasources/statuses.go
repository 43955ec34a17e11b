package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// StatusReplacer stores a status, removing any status the author already has.
type StatusReplacer interface {
	ReplaceStatus(ctx context.Context, status domain.Status) error
}

type StatusGetter interface {
	GetStatus(ctx context.Context, statusID string) (domain.Status, error)
}

type StatusDeleter interface {
	DeleteStatus(ctx context.Context, statusID string) error
}

// LiveStatusLister lists statuses that have not expired at now, newest first.
// An empty userID lists every author.
type LiveStatusLister interface {
	ListLiveStatuses(ctx context.Context, userID string, now time.Time) ([]domain.Status, error)
}

type StatusRepository interface {
	StatusReplacer
	StatusGetter
	StatusDeleter
	LiveStatusLister
}
