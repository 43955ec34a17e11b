package router

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/command"
	cmdmocks "github.com/jbeshir/fritter-engagement/internal/command/mocks"
	"github.com/jbeshir/fritter-engagement/internal/datasources/mocks"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/jbeshir/fritter-engagement/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "0123456789abcdef0123456789abcdef"

type mockStore struct {
	*mocks.MockFreetFetcher
	*mocks.MockUserAPITokenLister
	*mocks.MockAPITokenRevoker
}

type testRouter struct {
	handler     http.Handler
	rankCmd     *cmdmocks.MockCommand[command.Empty, []domain.RankedFreet]
	bookmarkCmd *cmdmocks.MockCommand[command.CreateBookmarkRequest, domain.Bookmark]
	recordsCmd  *cmdmocks.MockCommand[command.ListBookmarksRequest, []domain.Bookmark]
	tokenGetter *mocks.MockAPITokenByHashGetter
	signer      *session.Signer
}

func newTestRouter(t *testing.T) testRouter {
	ctx := domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))

	tr := testRouter{
		rankCmd:     cmdmocks.NewMockCommand[command.Empty, []domain.RankedFreet](t),
		bookmarkCmd: cmdmocks.NewMockCommand[command.CreateBookmarkRequest, domain.Bookmark](t),
		recordsCmd:  cmdmocks.NewMockCommand[command.ListBookmarksRequest, []domain.Bookmark](t),
		tokenGetter: mocks.NewMockAPITokenByHashGetter(t),
	}

	signer, err := session.NewSigner(testSessionSecret)
	require.NoError(t, err)
	tr.signer = signer

	lastUsed := mocks.NewMockAPITokenLastUsedUpdater(t)
	lastUsed.EXPECT().UpdateAPITokenLastUsed(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	authMiddleware := NewAuthMiddleware([]AuthValidator{
		NewAPITokenValidator(ctx, tr.tokenGetter, lastUsed),
		NewSessionValidator(signer),
	})

	handler, err := MakeRouter(
		Config{
			RSSFeedBaseURL:        "https://fritter.example",
			RankedFeedCacheMaxAge: time.Minute,
			CORSAllowedOrigins:    []string{"https://app.fritter.example"},
		},
		Commands{
			RankFreets:     tr.rankCmd,
			CreateBookmark: tr.bookmarkCmd,
			ListBookmarks:  tr.recordsCmd,
		},
		mockStore{
			MockFreetFetcher:       mocks.NewMockFreetFetcher(t),
			MockUserAPITokenLister: mocks.NewMockUserAPITokenLister(t),
			MockAPITokenRevoker:    mocks.NewMockAPITokenRevoker(t),
		},
		mocks.NewMockNotificationLister(t),
		authMiddleware,
	)
	require.NoError(t, err)
	tr.handler = handler
	return tr
}

func serve(tr testRouter, req *http.Request) *httptest.ResponseRecorder {
	ctx := domain.ContextWithLogger(req.Context(), slog.New(slog.DiscardHandler))
	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, req.WithContext(ctx))
	return rec
}

func TestMakeRouter_RankedFeedIsPublic(t *testing.T) {
	tr := newTestRouter(t)
	tr.rankCmd.EXPECT().Execute(mock.Anything, command.Empty{}).Return([]domain.RankedFreet{}, nil)

	rec := serve(tr, httptest.NewRequest(http.MethodGet, "/v1/reactions/freets", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestMakeRouter_BookmarkRecordsNotTreatedAsFreetID(t *testing.T) {
	tr := newTestRouter(t)
	tr.recordsCmd.EXPECT().Execute(mock.Anything, command.ListBookmarksRequest{Author: "alice"}).
		Return([]domain.Bookmark{}, nil)

	rec := serve(tr, httptest.NewRequest(http.MethodGet, "/v1/bookmarks/records?author=alice", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestMakeRouter_MutationsRequireAuth(t *testing.T) {
	tr := newTestRouter(t)

	rec := serve(tr, httptest.NewRequest(http.MethodPost, "/v1/bookmarks", strings.NewReader(`{"freet_id":"f1"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMakeRouter_APITokenAuth(t *testing.T) {
	tr := newTestRouter(t)
	fullToken := command.APITokenPrefix + strings.Repeat("ab", 32)

	tr.tokenGetter.EXPECT().GetAPITokenByHash(mock.Anything, command.HashAPIToken(fullToken)).
		Return(domain.APIToken{ID: "t1", UserID: "u1"}, nil)
	tr.bookmarkCmd.EXPECT().
		Execute(mock.Anything, command.CreateBookmarkRequest{UserID: "u1", FreetID: "f1"}).
		Return(domain.Bookmark{ID: "b1", FreetID: "f1"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/bookmarks", strings.NewReader(`{"freet_id":"f1"}`))
	req.Header.Set("Authorization", "Bearer "+fullToken)
	rec := serve(tr, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestMakeRouter_RevokedAPIToken(t *testing.T) {
	tr := newTestRouter(t)
	fullToken := command.APITokenPrefix + strings.Repeat("cd", 32)
	revokedAt := time.Now().Add(-time.Hour)

	tr.tokenGetter.EXPECT().GetAPITokenByHash(mock.Anything, mock.Anything).
		Return(domain.APIToken{ID: "t1", UserID: "u1", RevokedAt: &revokedAt}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reactions/freets", nil)
	req.Header.Set("Authorization", "Bearer "+fullToken)
	rec := serve(tr, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"API token is revoked or expired"}`, rec.Body.String())
}

func TestMakeRouter_SessionAuth(t *testing.T) {
	tr := newTestRouter(t)

	token, err := tr.signer.Sign("u2", time.Now(), time.Hour)
	require.NoError(t, err)

	tr.bookmarkCmd.EXPECT().
		Execute(mock.Anything, command.CreateBookmarkRequest{UserID: "u2", FreetID: "f1"}).
		Return(domain.Bookmark{ID: "b1", FreetID: "f1"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/bookmarks", strings.NewReader(`{"freet_id":"f1"}`))
	req.Header.Set("Authorization", "Bearer session|"+token)
	rec := serve(tr, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/bookmarks", strings.NewReader(`{"freet_id":"f1"}`))
	req.Header.Set("Authorization", "Bearer session|not-a-token")
	rec = serve(tr, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMakeRouter_CORSPreflight(t *testing.T) {
	tr := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/reactions", nil)
	req.Header.Set("Origin", "https://app.fritter.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization")
	rec := serve(tr, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.fritter.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
