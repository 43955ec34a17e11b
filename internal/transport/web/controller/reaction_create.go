package controller

import (
	"net/http"

	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type ReactionCreateRequest struct {
	FreetID      string `json:"freet_id"`
	ReactionType string `json:"reaction_type"`
}

// ReactionCreate handles POST /v1/reactions.
type ReactionCreate struct {
	CreateCmd command.Command[command.CreateReactionRequest, domain.Reaction]
}

func (c ReactionCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body ReactionCreateRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(ctx, w, "unable to parse request body", err)
		return
	}

	kind, err := domain.ParseReactionKind(body.ReactionType)
	if err != nil {
		respondError(ctx, w, "invalid reaction type", err)
		return
	}

	reaction, err := c.CreateCmd.Execute(ctx, command.CreateReactionRequest{
		UserID:  domain.UserIDFromContext(ctx),
		FreetID: body.FreetID,
		Kind:    kind,
	})
	if err != nil {
		respondError(ctx, w, "unable to create reaction", err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, reaction)
}
