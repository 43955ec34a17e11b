package domain

import (
	"fmt"
	"time"
)

type NotificationKind string

const (
	NotificationKindReaction NotificationKind = "reaction"
	NotificationKindBookmark NotificationKind = "bookmark"
)

// Notification is a transient alert shown to a freet's author.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"-"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	FreetID   string           `json:"freet"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}

func NewReactionNotification(id, authorID string, r Reaction, now time.Time, ttl time.Duration) Notification {
	return Notification{
		ID:        id,
		UserID:    authorID,
		Kind:      NotificationKindReaction,
		Message:   fmt.Sprintf("@%s reacted %s to your freet", r.Username, r.Kind),
		FreetID:   r.FreetID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func NewBookmarkNotification(id, authorID, username string, b Bookmark, now time.Time, ttl time.Duration) Notification {
	return Notification{
		ID:        id,
		UserID:    authorID,
		Kind:      NotificationKindBookmark,
		Message:   fmt.Sprintf("@%s bookmarked your freet", username),
		FreetID:   b.FreetID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
