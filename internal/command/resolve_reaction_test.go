package command

import (
	"testing"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/datasources/mocks"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveReaction_Execute(t *testing.T) {
	created := testNow.Add(-time.Hour)

	cases := []struct {
		name        string
		stored      domain.Reaction
		getErr      error
		userID      string
		decision    domain.Decision
		expectStore bool
		expected    domain.Recommendation
		wantErr     error
	}{
		{
			name:        "sad_undecided_to_yes",
			stored:      domain.Reaction{ID: "r1", UserID: "u1", Kind: domain.ReactionKindSad, Recommendation: domain.Undecided, UpdatedAt: created},
			userID:      "u1",
			decision:    domain.DecisionYes,
			expectStore: true,
			expected:    domain.RecommendYes,
		},
		{
			name:        "sad_yes_re_resolved_to_no",
			stored:      domain.Reaction{ID: "r1", UserID: "u1", Kind: domain.ReactionKindSad, Recommendation: domain.RecommendYes, UpdatedAt: created},
			userID:      "u1",
			decision:    domain.DecisionNo,
			expectStore: true,
			expected:    domain.RecommendNo,
		},
		{
			name:     "same_decision_is_a_no_op",
			stored:   domain.Reaction{ID: "r1", UserID: "u1", Kind: domain.ReactionKindSad, Recommendation: domain.RecommendNo, UpdatedAt: created},
			userID:   "u1",
			decision: domain.DecisionNo,
			expected: domain.RecommendNo,
		},
		{
			name:     "like_cannot_be_resolved",
			stored:   domain.Reaction{ID: "r1", UserID: "u1", Kind: domain.ReactionKindLike, Recommendation: domain.RecommendYes},
			userID:   "u1",
			decision: domain.DecisionNo,
			wantErr:  domain.ErrInvalidState,
		},
		{
			name:     "other_user_forbidden",
			stored:   domain.Reaction{ID: "r1", UserID: "u1", Kind: domain.ReactionKindSad},
			userID:   "u2",
			decision: domain.DecisionYes,
			wantErr:  domain.ErrForbidden,
		},
		{
			name:     "unknown_reaction",
			getErr:   domain.ErrNotFound,
			userID:   "u1",
			decision: domain.DecisionYes,
			wantErr:  domain.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockReactionGetter(t)
			setter := mocks.NewMockReactionRecommendationSetter(t)
			events := mocks.NewMockEventPublisher(t)

			getter.EXPECT().GetReaction(mock.Anything, "r1").Return(tc.stored, tc.getErr)
			if tc.expectStore {
				setter.EXPECT().SetReactionRecommendation(mock.Anything, "r1", tc.expected, testNow).Return(nil)
				events.EXPECT().PublishEvent(mock.Anything, mock.MatchedBy(func(e domain.EngagementEvent) bool {
					return e.Type == domain.EventReactionResolved && e.ReactionID == "r1"
				})).Return(nil)
			}

			sut := NewResolveReaction(getter, setter, events)
			sut.Clock = fixedClock()

			resolved, err := sut.Execute(testContext(), ResolveReactionRequest{
				UserID:     tc.userID,
				ReactionID: "r1",
				Decision:   tc.decision,
			})
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, resolved.Recommendation)
			if tc.expectStore {
				assert.Equal(t, testNow, resolved.UpdatedAt)
			} else {
				assert.Equal(t, created, resolved.UpdatedAt)
			}
		})
	}
}
