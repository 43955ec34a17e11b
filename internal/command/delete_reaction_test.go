package command

import (
	"testing"

	"github.com/jbeshir/fritter-engagement/internal/datasources/mocks"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteReaction_Execute(t *testing.T) {
	cases := []struct {
		name         string
		userID       string
		getErr       error
		expectDelete bool
		wantErr      error
	}{
		{name: "owner_deletes", userID: "u1", expectDelete: true},
		{name: "other_user_forbidden", userID: "u2", wantErr: domain.ErrForbidden},
		{name: "unknown_reaction", userID: "u1", getErr: domain.ErrNotFound, wantErr: domain.ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockReactionGetter(t)
			deleter := mocks.NewMockReactionDeleter(t)
			events := mocks.NewMockEventPublisher(t)

			getter.EXPECT().GetReaction(mock.Anything, "r1").
				Return(domain.Reaction{ID: "r1", UserID: "u1", FreetID: "f1", Kind: domain.ReactionKindLike}, tc.getErr)
			if tc.expectDelete {
				deleter.EXPECT().DeleteReaction(mock.Anything, "r1").Return(nil)
				events.EXPECT().PublishEvent(mock.Anything, mock.MatchedBy(func(e domain.EngagementEvent) bool {
					return e.Type == domain.EventReactionDeleted && e.ReactionID == "r1"
				})).Return(nil)
			}

			sut := NewDeleteReaction(getter, deleter, events)
			sut.Clock = fixedClock()

			_, err := sut.Execute(testContext(), DeleteReactionRequest{UserID: tc.userID, ReactionID: "r1"})
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
