package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReactionKind(t *testing.T) {
	cases := []struct {
		input    string
		expected ReactionKind
		wantErr  bool
	}{
		{input: "like", expected: ReactionKindLike},
		{input: "Happy", expected: ReactionKindHappy},
		{input: " sad ", expected: ReactionKindSad},
		{input: "angry", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			kind, err := ParseReactionKind(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidReactionKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, kind)
		})
	}
}

func TestParseDecision(t *testing.T) {
	d, err := ParseDecision("yes")
	require.NoError(t, err)
	assert.Equal(t, RecommendYes, d.Recommendation())

	d, err = ParseDecision("no")
	require.NoError(t, err)
	assert.Equal(t, RecommendNo, d.Recommendation())

	for _, bad := range []string{"", "YES", "maybe", "1"} {
		_, err := ParseDecision(bad)
		assert.ErrorIs(t, err, ErrInvalidDecision, bad)
	}
}

func TestNewReaction_InitialRecommendation(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	assert.Equal(t, RecommendYes, NewReaction("r1", "u1", "f1", ReactionKindLike, now).Recommendation)
	assert.Equal(t, RecommendYes, NewReaction("r1", "u1", "f1", ReactionKindHappy, now).Recommendation)

	sad := NewReaction("r1", "u1", "f1", ReactionKindSad, now)
	assert.Equal(t, Undecided, sad.Recommendation)
	assert.Equal(t, now, sad.CreatedAt)
	assert.Equal(t, now, sad.UpdatedAt)
}

func TestReaction_Resolve(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	cases := []struct {
		name        string
		kind        ReactionKind
		current     Recommendation
		decision    Decision
		expected    Recommendation
		wantChanged bool
		wantErr     error
	}{
		{
			name:        "undecided_sad_yes",
			kind:        ReactionKindSad,
			current:     Undecided,
			decision:    DecisionYes,
			expected:    RecommendYes,
			wantChanged: true,
		},
		{
			name:        "undecided_sad_no",
			kind:        ReactionKindSad,
			current:     Undecided,
			decision:    DecisionNo,
			expected:    RecommendNo,
			wantChanged: true,
		},
		{
			name:        "re_resolve_latest_wins",
			kind:        ReactionKindSad,
			current:     RecommendYes,
			decision:    DecisionNo,
			expected:    RecommendNo,
			wantChanged: true,
		},
		{
			name:     "same_decision_unchanged",
			kind:     ReactionKindSad,
			current:  RecommendNo,
			decision: DecisionNo,
			expected: RecommendNo,
		},
		{
			name:     "like_rejected",
			kind:     ReactionKindLike,
			current:  RecommendYes,
			decision: DecisionNo,
			expected: RecommendYes,
			wantErr:  ErrInvalidState,
		},
		{
			name:     "happy_rejected",
			kind:     ReactionKindHappy,
			current:  RecommendYes,
			decision: DecisionYes,
			expected: RecommendYes,
			wantErr:  ErrInvalidState,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Reaction{ID: "r1", Kind: tc.kind, Recommendation: tc.current, CreatedAt: created, UpdatedAt: created}

			resolved, changed, err := r.Resolve(tc.decision, later)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expected, resolved.Recommendation)
			assert.Equal(t, tc.wantChanged, changed)
			if changed {
				assert.Equal(t, later, resolved.UpdatedAt)
			} else {
				assert.Equal(t, created, resolved.UpdatedAt)
			}
		})
	}
}

func TestRecommendationFromScore(t *testing.T) {
	for _, score := range []int{-1, 0, 1} {
		r, err := RecommendationFromScore(score)
		require.NoError(t, err)
		assert.Equal(t, score, r.Score())
	}

	_, err := RecommendationFromScore(2)
	assert.Error(t, err)
}

func TestReaction_MarshalJSON(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	r := NewReaction("r1", "u1", "f1", ReactionKindSad, at)
	r.Username = "alice"

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "r1",
		"user": "alice",
		"freet": "f1",
		"reaction": "sad",
		"post_boost": 0,
		"recommendation": "undecided",
		"created_at": "2024-05-01T09:30:00Z",
		"updated_at": "2024-05-01T09:30:00Z"
	}`, string(data))
}
