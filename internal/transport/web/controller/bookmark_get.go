package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// BookmarkGet handles GET /v1/bookmarks/{freet_id}, returning the acting
// user's bookmark of the freet.
type BookmarkGet struct {
	GetCmd command.Command[command.GetBookmarkRequest, domain.Bookmark]
}

func (c BookmarkGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	freetID := mux.Vars(r)["freet_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("freet_id", freetID))

	bookmark, err := c.GetCmd.Execute(ctx, command.GetBookmarkRequest{
		UserID:  domain.UserIDFromContext(ctx),
		FreetID: freetID,
	})
	if err != nil {
		respondError(ctx, w, "unable to get bookmark", err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, bookmark)
}
