package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsernameKey(t *testing.T) {
	assert.Equal(t, "alice", UsernameKey("Alice"))
	assert.Equal(t, "alice", UsernameKey("  ALICE "))
	assert.Equal(t, UsernameKey("bob_99"), UsernameKey("BOB_99"))
}

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		name     string
		username string
		valid    bool
	}{
		{name: "simple", username: "alice", valid: true},
		{name: "underscore_digits", username: "a_1", valid: true},
		{name: "max_length", username: strings.Repeat("a", MaxUsernameLength), valid: true},
		{name: "empty", username: ""},
		{name: "too_long", username: strings.Repeat("a", MaxUsernameLength+1)},
		{name: "space", username: "al ice"},
		{name: "at_sign", username: "@alice"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUsername(tc.username)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidUsername)
			}
		})
	}
}
