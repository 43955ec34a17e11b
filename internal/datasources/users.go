package datasources

import (
	"context"

	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// UsernameResolver looks a user up by username, ignoring case.
// Returns domain.ErrNotFound when no user has that name.
type UsernameResolver interface {
	ResolveUsername(ctx context.Context, username string) (domain.User, error)
}

type UserGetter interface {
	GetUser(ctx context.Context, userID string) (domain.User, error)
}

// UserRegistrar records a username for a user ID. Registering a name already
// held by another user returns domain.ErrInvalidState.
type UserRegistrar interface {
	RegisterUser(ctx context.Context, user domain.User) error
}

type UserRepository interface {
	UsernameResolver
	UserGetter
	UserRegistrar
}
