package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// APITokenCreateRequest is the JSON request body for creating a token.
// ExpiresIn is a Go duration such as "720h"; empty means the token never expires.
type APITokenCreateRequest struct {
	Name      string `json:"name,omitempty"`
	ExpiresIn string `json:"expires_in,omitempty"`
}

// APITokenCreateResponse is the JSON response for a created token.
type APITokenCreateResponse struct {
	ID        string     `json:"id"`
	Token     string     `json:"token"`
	Prefix    string     `json:"prefix"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// APITokenCreate handles POST /v1/tokens to create a new API token.
type APITokenCreate struct {
	CreateCmd command.Command[command.CreateAPITokenRequest, command.CreateAPITokenResponse]
}

func (c APITokenCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var reqBody APITokenCreateRequest
	if err := decodeBody(r, &reqBody); err != nil {
		respondError(ctx, w, "unable to parse request body", err)
		return
	}

	req := command.CreateAPITokenRequest{
		UserID: domain.UserIDFromContext(ctx),
	}
	if reqBody.Name != "" {
		req.Name = &reqBody.Name
	}
	if reqBody.ExpiresIn != "" {
		lifetime, err := time.ParseDuration(reqBody.ExpiresIn)
		if err != nil || lifetime <= 0 {
			respondError(ctx, w, "invalid token lifetime",
				fmt.Errorf("%w: expires_in %q", errInvalidBody, reqBody.ExpiresIn))
			return
		}
		req.Lifetime = lifetime
	}

	result, err := c.CreateCmd.Execute(ctx, req)
	if err != nil {
		respondError(ctx, w, "unable to create API token", err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, APITokenCreateResponse{
		ID:        result.Token.ID,
		Token:     result.FullToken,
		Prefix:    result.Token.Prefix,
		ExpiresAt: result.Token.ExpiresAt,
	})
}
