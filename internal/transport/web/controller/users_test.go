package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jbeshir/fritter-engagement/internal/command"
	cmdmocks "github.com/jbeshir/fritter-engagement/internal/command/mocks"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserRegister_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		username   string
		cmdErr     error
		wantStatus int
	}{
		{name: "registered", username: "alice", wantStatus: http.StatusOK},
		{name: "taken", username: "bob", cmdErr: domain.ErrInvalidState, wantStatus: http.StatusConflict},
		{name: "invalid", username: "no spaces", cmdErr: domain.ErrInvalidUsername, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			registerCmd := cmdmocks.NewMockCommand[command.RegisterUserRequest, domain.User](t)
			registerCmd.EXPECT().
				Execute(mock.Anything, command.RegisterUserRequest{UserID: "user456", Username: tc.username}).
				Return(domain.User{ID: "user456", Username: tc.username}, tc.cmdErr)

			req := httptest.NewRequest(http.MethodPut, "/v1/users/me", strings.NewReader(`{"username":"`+tc.username+`"}`))
			req = testContextWithUserID("user456")(req)
			rec := httptest.NewRecorder()
			UserRegister{RegisterCmd: registerCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestUserDelete_ServeHTTP(t *testing.T) {
	deleteCmd := cmdmocks.NewMockCommand[command.DeleteUserRequest, domain.CascadeResult](t)
	deleteCmd.EXPECT().
		Execute(mock.Anything, command.DeleteUserRequest{UserID: "user456"}).
		Return(domain.CascadeResult{Reactions: 2, Bookmarks: 1}, nil)

	req := testContextWithUserID("user456")(httptest.NewRequest(http.MethodDelete, "/v1/users/me", nil))
	rec := httptest.NewRecorder()
	UserDelete{DeleteCmd: deleteCmd}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reactions":2,"bookmarks":1,"statuses":0,"freets":0}`, rec.Body.String())
}
