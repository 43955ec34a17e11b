package controller

import (
	"net/http"

	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// ReactionsList handles GET /v1/reactions, optionally filtered by ?author= or ?freet_id=.
type ReactionsList struct {
	ListCmd command.Command[command.ListReactionsRequest, []domain.Reaction]
}

func (c ReactionsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	reactions, err := c.ListCmd.Execute(ctx, command.ListReactionsRequest{
		Author:  q.Get("author"),
		FreetID: q.Get("freet_id"),
	})
	if err != nil {
		respondError(ctx, w, "unable to list reactions", err)
		return
	}
	if reactions == nil {
		reactions = []domain.Reaction{}
	}

	respondJSON(ctx, w, http.StatusOK, ListResponse[domain.Reaction]{Data: reactions})
}
