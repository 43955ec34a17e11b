package controller

import (
	"net/http"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// RankedFreetsList handles GET /v1/reactions/freets: every freet, highest
// aggregate recommendation score first. ?page and ?page_size select a window
// of the ranking; without either the whole ranking is returned.
type RankedFreetsList struct {
	RankCmd     command.Command[command.Empty, []domain.RankedFreet]
	CacheMaxAge time.Duration
}

func (c RankedFreetsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	page, pageSize, err := parsePagination(q)
	if err != nil {
		respondError(ctx, w, "unable to rank freets", err)
		return
	}

	freets, err := c.RankCmd.Execute(ctx, command.Empty{})
	if err != nil {
		respondError(ctx, w, "unable to rank freets", err)
		return
	}
	if wantsPagination(q) {
		freets = pageOf(freets, page, pageSize)
	}

	respondCacheable(w, r, c.CacheMaxAge)
	respondJSON(ctx, w, http.StatusOK, ListResponse[domain.RankedFreet]{Data: freets})
}
