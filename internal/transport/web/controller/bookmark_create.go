package controller

import (
	"net/http"

	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type BookmarkCreateRequest struct {
	FreetID string `json:"freet_id"`
}

// BookmarkCreate handles POST /v1/bookmarks.
type BookmarkCreate struct {
	CreateCmd command.Command[command.CreateBookmarkRequest, domain.Bookmark]
}

func (c BookmarkCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body BookmarkCreateRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(ctx, w, "unable to parse request body", err)
		return
	}

	bookmark, err := c.CreateCmd.Execute(ctx, command.CreateBookmarkRequest{
		UserID:  domain.UserIDFromContext(ctx),
		FreetID: body.FreetID,
	})
	if err != nil {
		respondError(ctx, w, "unable to create bookmark", err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, bookmark)
}
