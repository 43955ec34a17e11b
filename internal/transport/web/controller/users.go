package controller

import (
	"net/http"

	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

type UserRegisterRequest struct {
	Username string `json:"username"`
}

// UserRegister handles PUT /v1/users/me, claiming or changing the acting user's username.
type UserRegister struct {
	RegisterCmd command.Command[command.RegisterUserRequest, domain.User]
}

func (c UserRegister) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body UserRegisterRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(ctx, w, "unable to parse request body", err)
		return
	}

	user, err := c.RegisterCmd.Execute(ctx, command.RegisterUserRequest{
		UserID:   domain.UserIDFromContext(ctx),
		Username: body.Username,
	})
	if err != nil {
		respondError(ctx, w, "unable to register username", err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, user)
}

// UserDelete handles DELETE /v1/users/me, cascading through everything the user owns.
type UserDelete struct {
	DeleteCmd command.Command[command.DeleteUserRequest, domain.CascadeResult]
}

func (c UserDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := c.DeleteCmd.Execute(ctx, command.DeleteUserRequest{UserID: domain.UserIDFromContext(ctx)})
	if err != nil {
		respondError(ctx, w, "unable to delete user", err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, res)
}
