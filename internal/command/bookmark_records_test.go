package command

import (
	"errors"
	"testing"

	"github.com/jbeshir/fritter-engagement/internal/datasources/mocks"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetBookmark_Execute(t *testing.T) {
	cases := []struct {
		name    string
		result  domain.Bookmark
		err     error
		wantErr error
	}{
		{
			name:   "found",
			result: domain.Bookmark{ID: "b1", UserID: "u1", FreetID: "f1", CreatedAt: testNow},
		},
		{
			name:    "not_bookmarked",
			err:     domain.ErrNotFound,
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockBookmarkGetter(t)
			getter.EXPECT().GetBookmark(mock.Anything, "u1", "f1").Return(tc.result, tc.err)

			bookmark, err := NewGetBookmark(getter).Execute(testContext(), GetBookmarkRequest{
				UserID:  "u1",
				FreetID: "f1",
			})
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.result, bookmark)
		})
	}
}

func TestListBookmarks_Execute(t *testing.T) {
	bookmarks := []domain.Bookmark{
		{ID: "b2", UserID: "u1", FreetID: "f2"},
		{ID: "b1", UserID: "u2", FreetID: "f1"},
	}

	t.Run("all", func(t *testing.T) {
		lister := mocks.NewMockBookmarkLister(t)
		lister.EXPECT().ListBookmarks(mock.Anything).Return(bookmarks, nil)

		sut := NewListBookmarks(mocks.NewMockUsernameResolver(t), lister, mocks.NewMockUserBookmarkLister(t))

		got, err := sut.Execute(testContext(), ListBookmarksRequest{})
		require.NoError(t, err)
		assert.Equal(t, bookmarks, got)
	})

	t.Run("by_author", func(t *testing.T) {
		resolver := mocks.NewMockUsernameResolver(t)
		userLister := mocks.NewMockUserBookmarkLister(t)
		resolver.EXPECT().ResolveUsername(mock.Anything, "alice").Return(domain.User{ID: "u1", Username: "alice"}, nil)
		userLister.EXPECT().ListUserBookmarks(mock.Anything, "u1").Return(bookmarks[:1], nil)

		sut := NewListBookmarks(resolver, mocks.NewMockBookmarkLister(t), userLister)

		got, err := sut.Execute(testContext(), ListBookmarksRequest{Author: "alice"})
		require.NoError(t, err)
		assert.Equal(t, bookmarks[:1], got)
	})

	t.Run("unknown_author", func(t *testing.T) {
		resolver := mocks.NewMockUsernameResolver(t)
		resolver.EXPECT().ResolveUsername(mock.Anything, "nobody").Return(domain.User{}, domain.ErrNotFound)

		sut := NewListBookmarks(resolver, mocks.NewMockBookmarkLister(t), mocks.NewMockUserBookmarkLister(t))

		_, err := sut.Execute(testContext(), ListBookmarksRequest{Author: "nobody"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("store_error", func(t *testing.T) {
		lister := mocks.NewMockBookmarkLister(t)
		lister.EXPECT().ListBookmarks(mock.Anything).Return(nil, errors.New("boom"))

		sut := NewListBookmarks(mocks.NewMockUsernameResolver(t), lister, mocks.NewMockUserBookmarkLister(t))

		_, err := sut.Execute(testContext(), ListBookmarksRequest{})
		require.Error(t, err)
	})
}
