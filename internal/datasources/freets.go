package datasources

import (
	"context"

	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type FreetExistenceChecker interface {
	FreetExists(ctx context.Context, freetID string) (bool, error)
}

// FreetFetcher returns domain.ErrNotFound for an unknown freet.
type FreetFetcher interface {
	FetchFreet(ctx context.Context, freetID string) (domain.Freet, error)
}

// FreetsByIDFetcher returns freets in the order of freetIDs, skipping any that no longer exist.
type FreetsByIDFetcher interface {
	FetchFreetsByID(ctx context.Context, freetIDs []string) ([]domain.Freet, error)
}

// FreetIDLister enumerates every freet, oldest first.
type FreetIDLister interface {
	ListFreetIDs(ctx context.Context) ([]string, error)
}

type FreetCreator interface {
	CreateFreet(ctx context.Context, freet domain.Freet) error
}

type FreetRepository interface {
	FreetExistenceChecker
	FreetFetcher
	FreetsByIDFetcher
	FreetIDLister
	FreetCreator
}
