package command

import (
	"testing"

	"github.com/jbeshir/fritter-engagement/internal/datasources/mocks"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListReactions_Execute(t *testing.T) {
	byAlice := []domain.Reaction{
		{ID: "r2", UserID: "u1", FreetID: "f2"},
		{ID: "r1", UserID: "u1", FreetID: "f1"},
	}

	t.Run("all", func(t *testing.T) {
		lister := mocks.NewMockReactionLister(t)
		lister.EXPECT().ListReactions(mock.Anything).Return(byAlice, nil)

		sut := NewListReactions(mocks.NewMockUsernameResolver(t), lister,
			mocks.NewMockUserReactionLister(t), mocks.NewMockFreetReactionLister(t))

		reactions, err := sut.Execute(testContext(), ListReactionsRequest{})
		require.NoError(t, err)
		assert.Equal(t, byAlice, reactions)
	})

	t.Run("by_author_resolves_case_insensitively_in_store", func(t *testing.T) {
		resolver := mocks.NewMockUsernameResolver(t)
		userLister := mocks.NewMockUserReactionLister(t)
		resolver.EXPECT().ResolveUsername(mock.Anything, "ALICE").Return(domain.User{ID: "u1", Username: "alice"}, nil)
		userLister.EXPECT().ListUserReactions(mock.Anything, "u1").Return(byAlice, nil)

		sut := NewListReactions(resolver, mocks.NewMockReactionLister(t), userLister, mocks.NewMockFreetReactionLister(t))

		reactions, err := sut.Execute(testContext(), ListReactionsRequest{Author: "ALICE"})
		require.NoError(t, err)
		assert.Equal(t, byAlice, reactions)
	})

	t.Run("by_author_and_freet", func(t *testing.T) {
		resolver := mocks.NewMockUsernameResolver(t)
		userLister := mocks.NewMockUserReactionLister(t)
		resolver.EXPECT().ResolveUsername(mock.Anything, "alice").Return(domain.User{ID: "u1"}, nil)
		userLister.EXPECT().ListUserReactions(mock.Anything, "u1").Return(byAlice, nil)

		sut := NewListReactions(resolver, mocks.NewMockReactionLister(t), userLister, mocks.NewMockFreetReactionLister(t))

		reactions, err := sut.Execute(testContext(), ListReactionsRequest{Author: "alice", FreetID: "f1"})
		require.NoError(t, err)
		assert.Equal(t, []domain.Reaction{byAlice[1]}, reactions)
	})

	t.Run("unknown_author", func(t *testing.T) {
		resolver := mocks.NewMockUsernameResolver(t)
		resolver.EXPECT().ResolveUsername(mock.Anything, "nobody").Return(domain.User{}, domain.ErrNotFound)

		sut := NewListReactions(resolver, mocks.NewMockReactionLister(t),
			mocks.NewMockUserReactionLister(t), mocks.NewMockFreetReactionLister(t))

		_, err := sut.Execute(testContext(), ListReactionsRequest{Author: "nobody"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("by_freet", func(t *testing.T) {
		freetLister := mocks.NewMockFreetReactionLister(t)
		freetLister.EXPECT().ListFreetReactions(mock.Anything, "f1").Return(byAlice[1:], nil)

		sut := NewListReactions(mocks.NewMockUsernameResolver(t), mocks.NewMockReactionLister(t),
			mocks.NewMockUserReactionLister(t), freetLister)

		reactions, err := sut.Execute(testContext(), ListReactionsRequest{FreetID: "f1"})
		require.NoError(t, err)
		assert.Equal(t, byAlice[1:], reactions)
	})
}
