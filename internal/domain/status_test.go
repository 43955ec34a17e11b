package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatusContent(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		expected string
		wantErr  error
	}{
		{name: "trimmed", content: "  out for lunch ", expected: "out for lunch"},
		{name: "max_length", content: strings.Repeat("x", MaxStatusLength), expected: strings.Repeat("x", MaxStatusLength)},
		{name: "multibyte_counts_runes", content: strings.Repeat("é", MaxStatusLength), expected: strings.Repeat("é", MaxStatusLength)},
		{name: "empty", content: "", wantErr: ErrInvalidStatusContent},
		{name: "whitespace_only", content: "   ", wantErr: ErrInvalidStatusContent},
		{name: "too_long", content: strings.Repeat("x", MaxStatusLength+1), wantErr: ErrStatusTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content, err := NormalizeStatusContent(tc.content)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, content)
		})
	}
}

func TestStatus_ExpiredAt(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewStatus("s1", "u1", "hi", now)

	assert.Equal(t, now.Add(24*time.Hour), s.ExpiresAt)
	assert.False(t, s.ExpiredAt(now))
	assert.False(t, s.ExpiredAt(now.Add(23*time.Hour)))
	assert.True(t, s.ExpiredAt(now.Add(24*time.Hour)))
}
