package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// ReactionResolve handles PUT /v1/reactions/{reaction_id}?recommended=yes|no,
// deciding whether a sad reaction boosts its freet.
type ReactionResolve struct {
	ResolveCmd command.Command[command.ResolveReactionRequest, domain.Reaction]
}

func (c ReactionResolve) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reactionID := mux.Vars(r)["reaction_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("reaction_id", reactionID))

	decision, err := domain.ParseDecision(r.URL.Query().Get("recommended"))
	if err != nil {
		respondError(ctx, w, "invalid recommendation decision", err)
		return
	}

	reaction, err := c.ResolveCmd.Execute(ctx, command.ResolveReactionRequest{
		UserID:     domain.UserIDFromContext(ctx),
		ReactionID: reactionID,
		Decision:   decision,
	})
	if err != nil {
		respondError(ctx, w, "unable to resolve reaction", err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, reaction)
}
