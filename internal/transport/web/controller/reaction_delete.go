package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// ReactionDelete handles DELETE /v1/reactions/{reaction_id}.
type ReactionDelete struct {
	DeleteCmd command.Command[command.DeleteReactionRequest, command.Empty]
}

func (c ReactionDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reactionID := mux.Vars(r)["reaction_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("reaction_id", reactionID))

	if _, err := c.DeleteCmd.Execute(ctx, command.DeleteReactionRequest{
		UserID:     domain.UserIDFromContext(ctx),
		ReactionID: reactionID,
	}); err != nil {
		respondError(ctx, w, "unable to delete reaction", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
