package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/fritter-engagement/internal/command"
	cmdmocks "github.com/jbeshir/fritter-engagement/internal/command/mocks"
	"github.com/jbeshir/fritter-engagement/internal/datasources/mocks"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFreetCreate_ServeHTTP(t *testing.T) {
	createCmd := cmdmocks.NewMockCommand[command.CreateFreetRequest, domain.Freet](t)
	createCmd.EXPECT().
		Execute(mock.Anything, command.CreateFreetRequest{UserID: "user456", Content: ""}).
		Return(domain.Freet{}, command.ErrEmptyFreet)

	req := httptest.NewRequest(http.MethodPost, "/v1/freets", strings.NewReader(`{"content":""}`))
	req = testContextWithUserID("user456")(req)
	rec := httptest.NewRecorder()
	FreetCreate{CreateCmd: createCmd}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"freet content must not be empty"}`, rec.Body.String())
}

func TestFreetGet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name          string
		freet         domain.Freet
		fetchErr      error
		wantStatus    int
		wantCacheCtrl string
	}{
		{
			name:          "found",
			freet:         domain.Freet{ID: "f1", AuthorID: "u1", Author: "alice", Content: "hi", CreatedAt: testTime},
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=3600",
		},
		{name: "missing", fetchErr: domain.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockFreetFetcher(t)
			fetcher.EXPECT().FetchFreet(mock.Anything, "f1").Return(tc.freet, tc.fetchErr)

			req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/freets/f1", nil))
			req = mux.SetURLVars(req, map[string]string{"freet_id": "f1"})
			rec := httptest.NewRecorder()
			FreetGet{Fetcher: fetcher, CacheMaxAge: time.Hour}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCacheCtrl, rec.Header().Get("Cache-Control"))
			if tc.wantStatus == http.StatusOK {
				assert.JSONEq(t,
					`{"id":"f1","author":"alice","content":"hi","created_at":"2024-04-27T12:00:00Z"}`,
					rec.Body.String())
			}
		})
	}
}

func TestFreetDelete_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		cmdErr     error
		wantStatus int
	}{
		{name: "author_deletes", wantStatus: http.StatusOK},
		{name: "not_author", cmdErr: domain.ErrForbidden, wantStatus: http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deleteCmd := cmdmocks.NewMockCommand[command.DeleteFreetRequest, domain.CascadeResult](t)
			deleteCmd.EXPECT().
				Execute(mock.Anything, command.DeleteFreetRequest{ActingUserID: "user456", FreetID: "f1"}).
				Return(domain.CascadeResult{Freets: 1}, tc.cmdErr)

			req := httptest.NewRequest(http.MethodDelete, "/v1/freets/f1", nil)
			req = testContextWithUserID("user456")(req)
			req = mux.SetURLVars(req, map[string]string{"freet_id": "f1"})
			rec := httptest.NewRecorder()
			FreetDelete{DeleteCmd: deleteCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
