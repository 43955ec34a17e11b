package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/command"
	cmdmocks "github.com/jbeshir/fritter-engagement/internal/command/mocks"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func rankedFixture() []domain.RankedFreet {
	return []domain.RankedFreet{
		{Freet: domain.Freet{ID: "f2", Author: "bob", Content: "second", CreatedAt: testTime}, Score: 2},
		{Freet: domain.Freet{ID: "f1", Author: "alice", Content: "first", CreatedAt: testTime}, Score: 0},
	}
}

func TestRankedFreetsList_ServeHTTP(t *testing.T) {
	cases := []struct {
		name          string
		setupContext  func(r *http.Request) *http.Request
		freets        []domain.RankedFreet
		rankErr       error
		wantStatus    int
		wantCacheCtrl string
	}{
		{
			name:          "anonymous_is_cacheable",
			setupContext:  testContext(),
			freets:        rankedFixture(),
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=60",
		},
		{
			name:         "authenticated_not_cached",
			setupContext: testContextWithUserID("user456"),
			freets:       rankedFixture(),
			wantStatus:   http.StatusOK,
		},
		{
			name:         "rank_error",
			setupContext: testContext(),
			freets:       []domain.RankedFreet(nil),
			rankErr:      errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rankCmd := cmdmocks.NewMockCommand[command.Empty, []domain.RankedFreet](t)
			rankCmd.EXPECT().Execute(mock.Anything, command.Empty{}).Return(tc.freets, tc.rankErr)

			req := tc.setupContext(httptest.NewRequest(http.MethodGet, "/v1/reactions/freets", nil))
			rec := httptest.NewRecorder()
			RankedFreetsList{RankCmd: rankCmd, CacheMaxAge: time.Minute}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCacheCtrl, rec.Header().Get("Cache-Control"))
			if tc.wantStatus != http.StatusOK {
				return
			}

			var resp ListResponse[domain.RankedFreet]
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			require.Len(t, resp.Data, 2)
			assert.Equal(t, "f2", resp.Data[0].ID)
			assert.Equal(t, 2, resp.Data[0].Score)
			assert.Equal(t, "f1", resp.Data[1].ID)
		})
	}
}

func TestRSS_ServeHTTP(t *testing.T) {
	t.Run("ranked_items", func(t *testing.T) {
		rankCmd := cmdmocks.NewMockCommand[command.Empty, []domain.RankedFreet](t)
		rankCmd.EXPECT().Execute(mock.Anything, command.Empty{}).Return(rankedFixture(), nil)

		ctrl := RSS{
			FeedHostname:    "https://fritter.example",
			FeedPath:        "/rss",
			FeedAuthorName:  "Fritter",
			FeedAuthorEmail: "feed@fritter.example",
			RankCmd:         rankCmd,
			CacheMaxAge:     time.Hour,
		}

		req := testContext()(httptest.NewRequest(http.MethodGet, "/rss", nil))
		rec := httptest.NewRecorder()
		ctrl.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
		assert.Equal(t, "max-age=3600", rec.Header().Get("Cache-Control"))

		body := rec.Body.String()
		assert.Contains(t, body, "https://fritter.example/v1/freets/f2")
		assert.Contains(t, body, "@bob (+2): second")
		assert.Less(t, strings.Index(body, "@bob (+2)"), strings.Index(body, "@alice (+0)"))
	})

	t.Run("rank_error", func(t *testing.T) {
		rankCmd := cmdmocks.NewMockCommand[command.Empty, []domain.RankedFreet](t)
		rankCmd.EXPECT().Execute(mock.Anything, command.Empty{}).
			Return([]domain.RankedFreet(nil), errors.New("database error"))

		req := testContext()(httptest.NewRequest(http.MethodGet, "/rss", nil))
		rec := httptest.NewRecorder()
		RSS{RankCmd: rankCmd}.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestFeedItemTitle(t *testing.T) {
	long := domain.RankedFreet{Freet: domain.Freet{Content: strings.Repeat("é", 70)}, Score: -1}
	title := feedItemTitle(long)
	assert.Equal(t, "@unknown (-1): ", title[:len("@unknown (-1): ")])
	assert.Equal(t, 61, len([]rune(title))-len([]rune("@unknown (-1): ")))
}

func TestRankedFreetsList_Pagination(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantStatus int
		wantIDs    []string
	}{
		{name: "second_page", query: "?page=2&page_size=1", wantStatus: http.StatusOK, wantIDs: []string{"f1"}},
		{name: "past_end", query: "?page=3&page_size=1", wantStatus: http.StatusOK, wantIDs: []string{}},
		{name: "page_size_only", query: "?page_size=5", wantStatus: http.StatusOK, wantIDs: []string{"f2", "f1"}},
		{name: "page_size_too_large", query: "?page_size=500", wantStatus: http.StatusBadRequest},
		{name: "page_not_number", query: "?page=x", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rankCmd := cmdmocks.NewMockCommand[command.Empty, []domain.RankedFreet](t)
			if tc.wantStatus == http.StatusOK {
				rankCmd.EXPECT().Execute(mock.Anything, command.Empty{}).Return(rankedFixture(), nil)
			}

			req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/reactions/freets"+tc.query, nil))
			rec := httptest.NewRecorder()
			RankedFreetsList{RankCmd: rankCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var resp ListResponse[domain.RankedFreet]
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			ids := make([]string, 0, len(resp.Data))
			for _, f := range resp.Data {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}
