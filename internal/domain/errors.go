package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced user, freet, reaction, bookmark or status does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the acting user does not own the record being modified.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidState is returned when an operation is not permitted in the record's current state.
	ErrInvalidState = errors.New("invalid state")

	ErrInvalidReactionKind  = errors.New("invalid reaction kind")
	ErrInvalidDecision      = errors.New("invalid recommendation decision")
	ErrInvalidUsername      = errors.New("invalid username")
	ErrInvalidStatusContent = errors.New("invalid status content")
	ErrStatusTooLong        = fmt.Errorf("%w: longer than %d characters", ErrInvalidStatusContent, MaxStatusLength)
)

// CascadeResult counts the dependent rows removed by a cascade.
type CascadeResult struct {
	Reactions int64 `json:"reactions"`
	Bookmarks int64 `json:"bookmarks"`
	Statuses  int64 `json:"statuses"`
	Freets    int64 `json:"freets"`
}

func (r CascadeResult) Total() int64 {
	return r.Reactions + r.Bookmarks + r.Statuses + r.Freets
}

// CascadeError reports a cascade that did not complete. No partial removal
// is committed when it is returned.
type CascadeError struct {
	Subject string // "user" or "freet"
	ID      string
	Step    string
	Err     error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("cascade for %s [%s] failed at %s: %v", e.Subject, e.ID, e.Step, e.Err)
}

func (e *CascadeError) Unwrap() error {
	return e.Err
}
