package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// APITokenRevoke handles DELETE /v1/tokens/{token_id} to revoke a token.
type APITokenRevoke struct {
	TokenRevoker datasources.APITokenRevoker
}

func (c APITokenRevoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tokenID := mux.Vars(r)["token_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("token_id", tokenID))

	if tokenID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err := c.TokenRevoker.RevokeAPIToken(ctx, tokenID, domain.UserIDFromContext(ctx), time.Now().UTC())
	if err != nil {
		respondError(ctx, w, "unable to revoke API token", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
