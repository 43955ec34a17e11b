package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type FreetCreateRequest struct {
	Content string `json:"content"`
}

// FreetCreate handles POST /v1/freets.
type FreetCreate struct {
	CreateCmd command.Command[command.CreateFreetRequest, domain.Freet]
}

func (c FreetCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body FreetCreateRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(ctx, w, "unable to parse request body", err)
		return
	}

	freet, err := c.CreateCmd.Execute(ctx, command.CreateFreetRequest{
		UserID:  domain.UserIDFromContext(ctx),
		Content: body.Content,
	})
	if err != nil {
		respondError(ctx, w, "unable to create freet", err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, freet)
}

// FreetGet handles GET /v1/freets/{freet_id}.
type FreetGet struct {
	Fetcher     datasources.FreetFetcher
	CacheMaxAge time.Duration
}

func (c FreetGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	freetID := mux.Vars(r)["freet_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("freet_id", freetID))

	freet, err := c.Fetcher.FetchFreet(ctx, freetID)
	if err != nil {
		respondError(ctx, w, "unable to fetch freet", err)
		return
	}

	respondCacheable(w, r, c.CacheMaxAge)
	respondJSON(ctx, w, http.StatusOK, freet)
}

// FreetDelete handles DELETE /v1/freets/{freet_id}. Only the author may delete a freet.
type FreetDelete struct {
	DeleteCmd command.Command[command.DeleteFreetRequest, domain.CascadeResult]
}

func (c FreetDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	freetID := mux.Vars(r)["freet_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("freet_id", freetID))

	res, err := c.DeleteCmd.Execute(ctx, command.DeleteFreetRequest{
		ActingUserID: domain.UserIDFromContext(ctx),
		FreetID:      freetID,
	})
	if err != nil {
		respondError(ctx, w, "unable to delete freet", err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, res)
}
