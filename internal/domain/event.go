package domain

import "time"

// EventType names an engagement change. It doubles as the message subject.
type EventType string

const (
	EventReactionCreated  EventType = "engagement.reaction.created"
	EventReactionDeleted  EventType = "engagement.reaction.deleted"
	EventReactionResolved EventType = "engagement.reaction.resolved"
	EventBookmarkCreated  EventType = "engagement.bookmark.created"
	EventBookmarkDeleted  EventType = "engagement.bookmark.deleted"
	EventUserCascaded     EventType = "engagement.user.cascaded"
	EventFreetCascaded    EventType = "engagement.freet.cascaded"
)

// EngagementEvent is published after an engagement change commits.
type EngagementEvent struct {
	Type           EventType      `json:"type"`
	UserID         string         `json:"user_id,omitempty"`
	FreetID        string         `json:"freet_id,omitempty"`
	ReactionID     string         `json:"reaction_id,omitempty"`
	BookmarkID     string         `json:"bookmark_id,omitempty"`
	ReactionKind   ReactionKind   `json:"reaction_kind,omitempty"`
	Recommendation *int           `json:"recommendation,omitempty"`
	Cascade        *CascadeResult `json:"cascade,omitempty"`
	OccurredAt     time.Time      `json:"occurred_at"`
}

func ReactionEvent(t EventType, r Reaction, now time.Time) EngagementEvent {
	score := r.Recommendation.Score()
	return EngagementEvent{
		Type:           t,
		UserID:         r.UserID,
		FreetID:        r.FreetID,
		ReactionID:     r.ID,
		ReactionKind:   r.Kind,
		Recommendation: &score,
		OccurredAt:     now,
	}
}

func BookmarkEvent(t EventType, b Bookmark, now time.Time) EngagementEvent {
	return EngagementEvent{
		Type:       t,
		UserID:     b.UserID,
		FreetID:    b.FreetID,
		BookmarkID: b.ID,
		OccurredAt: now,
	}
}
