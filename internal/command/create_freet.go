package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// ErrEmptyFreet is returned when a freet has no content.
var ErrEmptyFreet = errors.New("freet content must not be empty")

type CreateFreetRequest struct {
	UserID  string
	Content string
}

// CreateFreet stores a freet in the local freet store. In deployments where
// freets live in a separate service this is only used for seeding.
type CreateFreet struct {
	UserGetter   datasources.UserGetter
	FreetCreator datasources.FreetCreator
	Clock        Clock
}

func NewCreateFreet(userGetter datasources.UserGetter, freetCreator datasources.FreetCreator) *CreateFreet {
	return &CreateFreet{
		UserGetter:   userGetter,
		FreetCreator: freetCreator,
	}
}

func (c *CreateFreet) Execute(ctx context.Context, req CreateFreetRequest) (domain.Freet, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return domain.Freet{}, ErrEmptyFreet
	}

	freet := domain.Freet{
		ID:        uuid.New().String(),
		AuthorID:  req.UserID,
		Content:   content,
		CreatedAt: c.Clock.now(),
	}

	user, err := c.UserGetter.GetUser(ctx, req.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return domain.Freet{}, fmt.Errorf("fetching user [%s]: %w", req.UserID, err)
	default:
		freet.Author = user.Username
	}

	if err := c.FreetCreator.CreateFreet(ctx, freet); err != nil {
		return domain.Freet{}, fmt.Errorf("creating freet: %w", err)
	}
	return freet, nil
}
