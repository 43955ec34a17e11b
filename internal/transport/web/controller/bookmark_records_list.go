package controller

import (
	"net/http"

	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// BookmarkRecordsList handles GET /v1/bookmarks/records, returning bookmark
// records rather than the freets they point at.
type BookmarkRecordsList struct {
	ListCmd command.Command[command.ListBookmarksRequest, []domain.Bookmark]
}

func (c BookmarkRecordsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bookmarks, err := c.ListCmd.Execute(ctx, command.ListBookmarksRequest{
		Author: r.URL.Query().Get("author"),
	})
	if err != nil {
		respondError(ctx, w, "unable to list bookmarks", err)
		return
	}
	if bookmarks == nil {
		bookmarks = []domain.Bookmark{}
	}

	respondJSON(ctx, w, http.StatusOK, ListResponse[domain.Bookmark]{Data: bookmarks})
}
