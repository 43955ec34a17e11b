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

func TestRankFreets_Execute(t *testing.T) {
	freet := func(id string) domain.Freet {
		return domain.Freet{ID: id, Content: "freet " + id}
	}
	reaction := func(freetID string, rec domain.Recommendation) domain.Reaction {
		return domain.Reaction{FreetID: freetID, Recommendation: rec}
	}

	cases := []struct {
		name         string
		freetIDs     []string
		reactions    []domain.Reaction
		fetchIDs     []string
		fetched      []domain.Freet
		expectedIDs  []string
		expectedScrs []int
	}{
		{
			name:         "orders_by_score_with_stable_ties",
			freetIDs:     []string{"f1", "f2", "f3", "f4"},
			reactions:    []domain.Reaction{reaction("f3", domain.RecommendYes), reaction("f2", domain.RecommendNo), reaction("f4", domain.Undecided)},
			fetchIDs:     []string{"f3", "f1", "f4", "f2"},
			fetched:      []domain.Freet{freet("f3"), freet("f1"), freet("f4"), freet("f2")},
			expectedIDs:  []string{"f3", "f1", "f4", "f2"},
			expectedScrs: []int{1, 0, 0, -1},
		},
		{
			name:         "dangling_reactions_and_vanished_freets_skipped",
			freetIDs:     []string{"f1", "f2"},
			reactions:    []domain.Reaction{reaction("gone", domain.RecommendYes), reaction("f2", domain.RecommendYes)},
			fetchIDs:     []string{"f2", "f1"},
			fetched:      []domain.Freet{freet("f1")},
			expectedIDs:  []string{"f1"},
			expectedScrs: []int{0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idLister := mocks.NewMockFreetIDLister(t)
			reactionLister := mocks.NewMockReactionLister(t)
			fetcher := mocks.NewMockFreetsByIDFetcher(t)

			idLister.EXPECT().ListFreetIDs(mock.Anything).Return(tc.freetIDs, nil)
			reactionLister.EXPECT().ListReactions(mock.Anything).Return(tc.reactions, nil)
			fetcher.EXPECT().FetchFreetsByID(mock.Anything, tc.fetchIDs).Return(tc.fetched, nil)

			ranked, err := NewRankFreets(idLister, reactionLister, fetcher).Execute(testContext(), Empty{})
			require.NoError(t, err)

			require.Len(t, ranked, len(tc.expectedIDs))
			for i := range ranked {
				assert.Equal(t, tc.expectedIDs[i], ranked[i].ID)
				assert.Equal(t, tc.expectedScrs[i], ranked[i].Score)
			}
		})
	}
}

func TestRankFreets_Execute_NoFreets(t *testing.T) {
	idLister := mocks.NewMockFreetIDLister(t)
	reactionLister := mocks.NewMockReactionLister(t)

	idLister.EXPECT().ListFreetIDs(mock.Anything).Return([]string{}, nil)
	reactionLister.EXPECT().ListReactions(mock.Anything).Return([]domain.Reaction{}, nil)

	ranked, err := NewRankFreets(idLister, reactionLister, mocks.NewMockFreetsByIDFetcher(t)).
		Execute(testContext(), Empty{})
	require.NoError(t, err)
	assert.Empty(t, ranked)
	assert.NotNil(t, ranked)
}

func TestRankFreets_Execute_ReactionListingFails(t *testing.T) {
	idLister := mocks.NewMockFreetIDLister(t)
	reactionLister := mocks.NewMockReactionLister(t)

	idLister.EXPECT().ListFreetIDs(mock.Anything).Return([]string{"f1"}, nil)
	reactionLister.EXPECT().ListReactions(mock.Anything).Return(nil, errors.New("db down"))

	_, err := NewRankFreets(idLister, reactionLister, mocks.NewMockFreetsByIDFetcher(t)).
		Execute(testContext(), Empty{})
	require.ErrorContains(t, err, "db down")
}
