package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// StatusLifetime is how long a status stays visible after it is posted.
	StatusLifetime = 24 * time.Hour

	MaxStatusLength = 30
)

// Status is a short-lived line a user shows alongside their profile. Each user
// has at most one live status; posting a new one replaces the old.
type Status struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"-"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewStatus(id, authorID, content string, now time.Time) Status {
	return Status{
		ID:        id,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: now,
		ExpiresAt: now.Add(StatusLifetime),
	}
}

func (s Status) ExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// NormalizeStatusContent trims content and checks it is 1 to MaxStatusLength characters.
func NormalizeStatusContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("%w: must not be empty", ErrInvalidStatusContent)
	}
	if utf8.RuneCountInString(content) > MaxStatusLength {
		return "", ErrStatusTooLong
	}
	return content, nil
}
