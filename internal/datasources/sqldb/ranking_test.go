package sqldb

import (
	"testing"

	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankFreets_AgainstStore(t *testing.T) {
	r := createTestRepository(t)
	ctx := t.Context()

	// Store enumeration order is B, A, F, Z.
	seedFreet(t, r, "B", "u1", 0)
	seedFreet(t, r, "A", "u1", 1)
	seedFreet(t, r, "F", "u1", 2)
	seedFreet(t, r, "Z", "u1", 3)

	seedReaction(t, r, "rb1", "u2", "B", domain.ReactionKindLike, 4)
	seedReaction(t, r, "rb2", "u3", "B", domain.ReactionKindHappy, 5)
	seedReaction(t, r, "ra1", "u2", "A", domain.ReactionKindLike, 6)
	seedReaction(t, r, "ra2", "u3", "A", domain.ReactionKindLike, 7)

	seedReaction(t, r, "rf1", "u2", "F", domain.ReactionKindLike, 8)
	seedReaction(t, r, "rf2", "u3", "F", domain.ReactionKindLike, 9)
	seedReaction(t, r, "rf3", "u4", "F", domain.ReactionKindSad, 10)
	seedReaction(t, r, "rf4", "u5", "F", domain.ReactionKindSad, 11)
	require.NoError(t, r.SetReactionRecommendation(ctx, "rf4", domain.RecommendNo, at(12)))

	ranked, err := command.NewRankFreets(r, r, r).Execute(ctx, command.Empty{})
	require.NoError(t, err)

	type entry struct {
		ID    string
		Score int
	}
	got := make([]entry, len(ranked))
	for i, f := range ranked {
		got[i] = entry{ID: f.ID, Score: f.Score}
	}
	assert.Equal(t, []entry{{"B", 2}, {"A", 2}, {"F", 1}, {"Z", 0}}, got)
}
