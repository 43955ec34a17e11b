package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// MaxUsernameLength bounds registered usernames.
const MaxUsernameLength = 32

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// UsernameKey is the case-folded form usernames are unique under and resolved by.
func UsernameKey(username string) string {
	return cases.Fold().String(strings.TrimSpace(username))
}

func ValidateUsername(username string) error {
	if username == "" || len(username) > MaxUsernameLength {
		return fmt.Errorf("%w: must be 1 to %d characters", ErrInvalidUsername, MaxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("%w: only letters, digits and underscores are allowed", ErrInvalidUsername)
	}
	return nil
}
