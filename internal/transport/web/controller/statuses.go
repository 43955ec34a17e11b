package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// StatusesList handles GET /v1/statuses, optionally filtered by ?author=.
type StatusesList struct {
	ListCmd command.Command[command.ListStatusesRequest, []domain.Status]
}

func (c StatusesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	statuses, err := c.ListCmd.Execute(ctx, command.ListStatusesRequest{Author: r.URL.Query().Get("author")})
	if err != nil {
		respondError(ctx, w, "unable to list statuses", err)
		return
	}
	if statuses == nil {
		statuses = []domain.Status{}
	}

	respondJSON(ctx, w, http.StatusOK, ListResponse[domain.Status]{Data: statuses})
}

type StatusCreateRequest struct {
	Content string `json:"content"`
}

// StatusCreate handles POST /v1/statuses.
type StatusCreate struct {
	CreateCmd command.Command[command.CreateStatusRequest, domain.Status]
}

func (c StatusCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body StatusCreateRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(ctx, w, "unable to parse request body", err)
		return
	}

	status, err := c.CreateCmd.Execute(ctx, command.CreateStatusRequest{
		UserID:  domain.UserIDFromContext(ctx),
		Content: body.Content,
	})
	if err != nil {
		respondError(ctx, w, "unable to create status", err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, status)
}

// StatusDelete handles DELETE /v1/statuses/{status_id}.
type StatusDelete struct {
	DeleteCmd command.Command[command.DeleteStatusRequest, command.Empty]
}

func (c StatusDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := c.DeleteCmd.Execute(ctx, command.DeleteStatusRequest{
		UserID:   domain.UserIDFromContext(ctx),
		StatusID: mux.Vars(r)["status_id"],
	}); err != nil {
		respondError(ctx, w, "unable to delete status", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
