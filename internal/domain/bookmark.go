package domain

import "time"

// Bookmark is a private save of a freet. A user bookmarks a freet at most once.
type Bookmark struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Username  string    `json:"user"`
	FreetID   string    `json:"freet"`
	CreatedAt time.Time `json:"created_at"`
}
