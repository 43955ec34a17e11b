package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ReactionKind is the emotional response a user attaches to a freet.
type ReactionKind string

const (
	ReactionKindLike  ReactionKind = "like"
	ReactionKindHappy ReactionKind = "happy"
	ReactionKindSad   ReactionKind = "sad"
)

func ParseReactionKind(s string) (ReactionKind, error) {
	switch kind := ReactionKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case ReactionKindLike, ReactionKindHappy, ReactionKindSad:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidReactionKind, s)
	}
}

// Recommendation is the per-reaction boost a freet receives in the ranked feed.
// Its integer value is the contribution to the freet's score.
type Recommendation int

const (
	RecommendNo  Recommendation = -1
	Undecided    Recommendation = 0
	RecommendYes Recommendation = 1
)

// InitialRecommendation is the state a new reaction of the given kind starts in.
// Sad reactions wait for the reactor to decide whether the freet should be boosted.
func InitialRecommendation(kind ReactionKind) Recommendation {
	if kind == ReactionKindSad {
		return Undecided
	}
	return RecommendYes
}

func RecommendationFromScore(score int) (Recommendation, error) {
	switch r := Recommendation(score); r {
	case RecommendNo, Undecided, RecommendYes:
		return r, nil
	default:
		return Undecided, fmt.Errorf("recommendation score %d out of range", score)
	}
}

func (r Recommendation) Score() int {
	return int(r)
}

func (r Recommendation) String() string {
	switch r {
	case RecommendYes:
		return "yes"
	case RecommendNo:
		return "no"
	default:
		return "undecided"
	}
}

// Decision is the reactor's answer to "should this sad reaction boost the freet?".
type Decision string

const (
	DecisionYes Decision = "yes"
	DecisionNo  Decision = "no"
)

// ParseDecision accepts exactly "yes" or "no".
func ParseDecision(s string) (Decision, error) {
	switch d := Decision(s); d {
	case DecisionYes, DecisionNo:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDecision, s)
	}
}

func (d Decision) Recommendation() Recommendation {
	if d == DecisionYes {
		return RecommendYes
	}
	return RecommendNo
}

type Reaction struct {
	ID             string         `json:"id"`
	UserID         string         `json:"-"`
	Username       string         `json:"user"`
	FreetID        string         `json:"freet"`
	Kind           ReactionKind   `json:"reaction"`
	Recommendation Recommendation `json:"post_boost"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// MarshalJSON adds the recommendation state as a label next to its score.
func (r Reaction) MarshalJSON() ([]byte, error) {
	type plain Reaction
	return json.Marshal(struct {
		plain
		Label string `json:"recommendation"`
	}{plain(r), r.Recommendation.String()})
}

func NewReaction(id, userID, freetID string, kind ReactionKind, now time.Time) Reaction {
	return Reaction{
		ID:             id,
		UserID:         userID,
		FreetID:        freetID,
		Kind:           kind,
		Recommendation: InitialRecommendation(kind),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Resolve applies the reactor's decision. Only sad reactions carry a decision;
// a sad reaction may be re-resolved and the latest decision wins.
// The second return value is false when the decision leaves the reaction unchanged.
func (r Reaction) Resolve(d Decision, now time.Time) (Reaction, bool, error) {
	if r.Kind != ReactionKindSad {
		return r, false, fmt.Errorf("%w: only sad reactions can be resolved, reaction is %s", ErrInvalidState, r.Kind)
	}

	next := d.Recommendation()
	if next == r.Recommendation {
		return r, false, nil
	}

	r.Recommendation = next
	r.UpdatedAt = now
	return r, true, nil
}
