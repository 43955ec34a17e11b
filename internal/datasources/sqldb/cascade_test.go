package sqldb

import (
	"testing"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEngagementGraph(t *testing.T, r *Repository) {
	t.Helper()
	ctx := t.Context()

	seedUser(t, r, "u1", "alice")
	seedUser(t, r, "u2", "bob")
	seedFreet(t, r, "f1", "u1", 0)
	seedFreet(t, r, "f2", "u2", 0)

	seedReaction(t, r, "r1", "u1", "f2", domain.ReactionKindLike, 1)
	seedReaction(t, r, "r2", "u2", "f1", domain.ReactionKindSad, 2)
	seedReaction(t, r, "r3", "u2", "f2", domain.ReactionKindHappy, 3)

	for _, b := range []domain.Bookmark{
		{ID: "b1", UserID: "u1", FreetID: "f2", CreatedAt: at(4)},
		{ID: "b2", UserID: "u2", FreetID: "f1", CreatedAt: at(5)},
		{ID: "b3", UserID: "u2", FreetID: "f2", CreatedAt: at(6)},
	} {
		_, err := r.CreateBookmark(ctx, b)
		require.NoError(t, err)
	}

	require.NoError(t, r.ReplaceStatus(ctx, domain.NewStatus("s1", "u1", "hi", at(7))))
}

func TestRepository_CascadeUser(t *testing.T) {
	r := createTestRepository(t)
	ctx := t.Context()
	seedEngagementGraph(t, r)

	res, err := r.CascadeUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.CascadeResult{Reactions: 2, Bookmarks: 2, Statuses: 1, Freets: 1}, res)

	reactions, err := r.ListReactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"r3"}, reactionIDs(reactions))

	bookmarks, err := r.ListUserBookmarks(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "b3", bookmarks[0].ID)

	_, err = r.GetUser(ctx, "u1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.ResolveUsername(ctx, "alice")
	require.ErrorIs(t, err, domain.ErrNotFound)

	t.Run("repeat_is_a_no_op", func(t *testing.T) {
		res, err := r.CascadeUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, domain.CascadeResult{}, res)
	})
}

func TestRepository_CascadeFreet(t *testing.T) {
	r := createTestRepository(t)
	ctx := t.Context()
	seedEngagementGraph(t, r)

	res, err := r.CascadeFreet(ctx, "f2")
	require.NoError(t, err)
	assert.Equal(t, domain.CascadeResult{Reactions: 2, Bookmarks: 2, Freets: 1}, res)

	reactions, err := r.ListReactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"r2"}, reactionIDs(reactions))

	exists, err := r.FreetExists(ctx, "f2")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_CascadeUser_CanceledContextLeavesDataIntact(t *testing.T) {
	r := createTestRepository(t)
	seedEngagementGraph(t, r)

	ctx, cancel := contextCanceled(t)
	cancel()

	_, err := r.CascadeUser(ctx, "u1")
	var cascadeErr *domain.CascadeError
	require.ErrorAs(t, err, &cascadeErr)
	assert.Equal(t, "user", cascadeErr.Subject)

	reactions, err := r.ListReactions(t.Context())
	require.NoError(t, err)
	assert.Len(t, reactions, 3)
}

func TestRepository_SweepDanglingEngagement(t *testing.T) {
	r := createTestRepository(t)
	ctx := t.Context()
	seedEngagementGraph(t, r)

	// Rows referencing a freet whose removal never reached this store.
	seedReaction(t, r, "r-dangling", "u1", "gone", domain.ReactionKindLike, 8)
	_, err := r.CreateBookmark(ctx, domain.Bookmark{ID: "b-dangling", UserID: "u2", FreetID: "gone", CreatedAt: at(9)})
	require.NoError(t, err)

	res, err := r.SweepDanglingEngagement(ctx, at(10))
	require.NoError(t, err)
	assert.Equal(t, domain.CascadeResult{Reactions: 1, Bookmarks: 1}, res)

	res, err = r.SweepDanglingEngagement(ctx, at(7).Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, domain.CascadeResult{Statuses: 1}, res)

	reactions, err := r.ListReactions(ctx)
	require.NoError(t, err)
	assert.Len(t, reactions, 3)
}
