package controller

import (
	"net/http"

	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// BookmarksList handles GET /v1/bookmarks, returning the bookmarked freets of
// ?author= or, without it, of the acting user.
type BookmarksList struct {
	ListCmd command.Command[command.ListBookmarkedFreetsRequest, []domain.Freet]
}

func (c BookmarksList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := command.ListBookmarkedFreetsRequest{
		Username: r.URL.Query().Get("author"),
		UserID:   domain.UserIDFromContext(ctx),
	}
	if req.Username == "" && req.UserID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	freets, err := c.ListCmd.Execute(ctx, req)
	if err != nil {
		respondError(ctx, w, "unable to list bookmarks", err)
		return
	}
	if freets == nil {
		freets = []domain.Freet{}
	}

	respondJSON(ctx, w, http.StatusOK, ListResponse[domain.Freet]{Data: freets})
}
