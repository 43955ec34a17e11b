package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// BookmarkDelete handles DELETE /v1/bookmarks/{freet_id}.
type BookmarkDelete struct {
	DeleteCmd command.Command[command.DeleteBookmarkRequest, command.Empty]
}

func (c BookmarkDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	freetID := mux.Vars(r)["freet_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("freet_id", freetID))

	if _, err := c.DeleteCmd.Execute(ctx, command.DeleteBookmarkRequest{
		UserID:  domain.UserIDFromContext(ctx),
		FreetID: freetID,
	}); err != nil {
		respondError(ctx, w, "unable to delete bookmark", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
