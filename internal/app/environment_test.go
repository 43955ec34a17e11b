package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestMustGetEnvAsStrings(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		expected []string
	}{
		{name: "empty", value: "", expected: nil},
		{name: "single", value: "auth0", expected: []string{"auth0"}},
		{name: "trimmed", value: " auth0, api_token ,,session", expected: []string{"auth0", "api_token", "session"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv("TEST_STRINGS", c.value)
			assert.Equal(t, c.expected, MustGetEnvAsStrings(testContext(), "TEST_STRINGS"))
		})
	}
}

func TestMustGetEnv_Typed(t *testing.T) {
	t.Setenv("TEST_INT", "8080")
	t.Setenv("TEST_BOOL", "TRUE")
	t.Setenv("TEST_DURATION", "90s")

	assert.Equal(t, 8080, MustGetEnvAsInt(testContext(), "TEST_INT"))
	assert.True(t, MustGetEnvAsBoolean(testContext(), "TEST_BOOL"))
	assert.Equal(t, 90*time.Second, MustGetEnvAsDuration(testContext(), "TEST_DURATION"))
}

func TestMustGetEnv_Panics(t *testing.T) {
	t.Setenv("TEST_BOOL", "yes")

	assert.Panics(t, func() { MustGetEnvAsString(testContext(), "TEST_DEFINITELY_UNSET") })
	assert.Panics(t, func() { MustGetEnvAsBoolean(testContext(), "TEST_BOOL") })
}

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("TEST_SET", "value")

	assert.Equal(t, "value", GetEnvAsString("TEST_SET", "fallback"))
	assert.Equal(t, "fallback", GetEnvAsString("TEST_DEFINITELY_UNSET", "fallback"))
}
