package domain

import "time"

// Freet is a short user-authored post. Freets are owned by the freet service;
// the engagement layer only references them.
type Freet struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"-"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// RankedFreet is a freet with its aggregate recommendation score.
type RankedFreet struct {
	Freet
	Score int `json:"score"`
}
