package command

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// MaxAPITokensPerUser bounds a user's unrevoked, unexpired tokens.
const MaxAPITokensPerUser = 10

var ErrTokenLimitExceeded = errors.New("user has reached maximum number of active tokens")

// APITokenPrefix starts every issued token, so they are recognisable in an Authorization header.
const APITokenPrefix = "freet_api|"

type CreateAPITokenRequest struct {
	UserID   string
	Name     *string
	Lifetime time.Duration
}

type CreateAPITokenResponse struct {
	Token     domain.APIToken
	FullToken string
}

type CreateAPIToken struct {
	TokenCounter datasources.UserAPITokenCounter
	TokenCreator datasources.APITokenCreator
	Clock        Clock
}

func NewCreateAPIToken(
	tokenCounter datasources.UserAPITokenCounter,
	tokenCreator datasources.APITokenCreator,
) *CreateAPIToken {
	return &CreateAPIToken{
		TokenCounter: tokenCounter,
		TokenCreator: tokenCreator,
	}
}

// HashAPIToken is the stored form of a full token.
func HashAPIToken(fullToken string) string {
	hash := sha256.Sum256([]byte(fullToken))
	return hex.EncodeToString(hash[:])
}

// Execute issues a token. The full token is only ever returned here.
func (c *CreateAPIToken) Execute(ctx context.Context, req CreateAPITokenRequest) (CreateAPITokenResponse, error) {
	now := c.Clock.now()

	count, err := c.TokenCounter.CountUserActiveAPITokens(ctx, req.UserID, now)
	if err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("counting user tokens: %w", err)
	}
	if count >= MaxAPITokensPerUser {
		return CreateAPITokenResponse{}, ErrTokenLimitExceeded
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("generating random token: %w", err)
	}
	secretHex := hex.EncodeToString(secret)
	fullToken := APITokenPrefix + secretHex

	token := domain.APIToken{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		TokenHash: HashAPIToken(fullToken),
		Prefix:    secretHex[:8],
		Name:      req.Name,
		CreatedAt: now,
	}
	if req.Lifetime > 0 {
		expires := now.Add(req.Lifetime)
		token.ExpiresAt = &expires
	}

	if err := c.TokenCreator.CreateAPIToken(ctx, token); err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("creating token: %w", err)
	}

	return CreateAPITokenResponse{Token: token, FullToken: fullToken}, nil
}
