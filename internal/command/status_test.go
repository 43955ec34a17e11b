package command

import (
	"strings"
	"testing"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/datasources/mocks"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateStatus_Execute(t *testing.T) {
	t.Run("stores_trimmed_status_for_a_day", func(t *testing.T) {
		userGetter := mocks.NewMockUserGetter(t)
		replacer := mocks.NewMockStatusReplacer(t)

		userGetter.EXPECT().GetUser(mock.Anything, "u1").Return(domain.User{ID: "u1", Username: "alice"}, nil)
		replacer.EXPECT().ReplaceStatus(mock.Anything, mock.MatchedBy(func(s domain.Status) bool {
			return s.AuthorID == "u1" && s.Content == "gone fishing" &&
				s.ExpiresAt.Equal(testNow.Add(24*time.Hour))
		})).Return(nil)

		sut := NewCreateStatus(userGetter, replacer)
		sut.Clock = fixedClock()

		status, err := sut.Execute(testContext(), CreateStatusRequest{UserID: "u1", Content: "  gone fishing "})
		require.NoError(t, err)
		assert.Equal(t, "alice", status.Author)
	})

	t.Run("empty_rejected", func(t *testing.T) {
		_, err := NewCreateStatus(mocks.NewMockUserGetter(t), mocks.NewMockStatusReplacer(t)).
			Execute(testContext(), CreateStatusRequest{UserID: "u1", Content: " "})
		require.ErrorIs(t, err, domain.ErrInvalidStatusContent)
	})

	t.Run("too_long_rejected", func(t *testing.T) {
		_, err := NewCreateStatus(mocks.NewMockUserGetter(t), mocks.NewMockStatusReplacer(t)).
			Execute(testContext(), CreateStatusRequest{UserID: "u1", Content: strings.Repeat("a", 31)})
		require.ErrorIs(t, err, domain.ErrStatusTooLong)
	})
}

func TestDeleteStatus_Execute(t *testing.T) {
	cases := []struct {
		name         string
		userID       string
		expectDelete bool
		wantErr      error
	}{
		{name: "author_deletes", userID: "u1", expectDelete: true},
		{name: "other_user_forbidden", userID: "u2", wantErr: domain.ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockStatusGetter(t)
			deleter := mocks.NewMockStatusDeleter(t)

			getter.EXPECT().GetStatus(mock.Anything, "s1").Return(domain.Status{ID: "s1", AuthorID: "u1"}, nil)
			if tc.expectDelete {
				deleter.EXPECT().DeleteStatus(mock.Anything, "s1").Return(nil)
			}

			_, err := NewDeleteStatus(getter, deleter).
				Execute(testContext(), DeleteStatusRequest{UserID: tc.userID, StatusID: "s1"})
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestListStatuses_Execute(t *testing.T) {
	resolver := mocks.NewMockUsernameResolver(t)
	lister := mocks.NewMockLiveStatusLister(t)

	resolver.EXPECT().ResolveUsername(mock.Anything, "alice").Return(domain.User{ID: "u1"}, nil)
	lister.EXPECT().ListLiveStatuses(mock.Anything, "u1", testNow).Return([]domain.Status{{ID: "s1"}}, nil)

	sut := NewListStatuses(resolver, lister)
	sut.Clock = fixedClock()

	statuses, err := sut.Execute(testContext(), ListStatusesRequest{Author: "alice"})
	require.NoError(t, err)
	assert.Len(t, statuses, 1)
}
