package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type RegisterUserRequest struct {
	UserID   string
	Username string
}

// RegisterUser claims a username for the acting user, or renames them.
// Usernames are unique ignoring case.
type RegisterUser struct {
	UserRegistrar datasources.UserRegistrar
	UserGetter    datasources.UserGetter
	Clock         Clock
}

func NewRegisterUser(userRegistrar datasources.UserRegistrar, userGetter datasources.UserGetter) *RegisterUser {
	return &RegisterUser{
		UserRegistrar: userRegistrar,
		UserGetter:    userGetter,
	}
}

func (c *RegisterUser) Execute(ctx context.Context, req RegisterUserRequest) (domain.User, error) {
	if err := domain.ValidateUsername(req.Username); err != nil {
		return domain.User{}, err
	}

	if err := c.UserRegistrar.RegisterUser(ctx, domain.User{
		ID:        req.UserID,
		Username:  req.Username,
		CreatedAt: c.Clock.now(),
	}); err != nil {
		return domain.User{}, fmt.Errorf("registering username %q: %w", req.Username, err)
	}

	user, err := c.UserGetter.GetUser(ctx, req.UserID)
	if err != nil {
		return domain.User{}, fmt.Errorf("reading back user [%s]: %w", req.UserID, err)
	}
	return user, nil
}
