package sqldb

import (
	"testing"

	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_ResolveUsername(t *testing.T) {
	r := createTestRepository(t)
	seedUser(t, r, "auth0|alice", "Alice")

	cases := []struct {
		name     string
		username string
		wantID   string
		wantErr  error
	}{
		{name: "exact", username: "Alice", wantID: "auth0|alice"},
		{name: "lower_case", username: "alice", wantID: "auth0|alice"},
		{name: "upper_case", username: "ALICE", wantID: "auth0|alice"},
		{name: "unknown", username: "bob", wantErr: domain.ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := r.ResolveUsername(t.Context(), tc.username)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, u.ID)
			assert.Equal(t, "Alice", u.Username)
		})
	}
}

func TestRepository_RegisterUser(t *testing.T) {
	r := createTestRepository(t)
	ctx := t.Context()

	seedUser(t, r, "u1", "alice")

	t.Run("taken_by_other_user_case_insensitively", func(t *testing.T) {
		err := r.RegisterUser(ctx, domain.User{ID: "u2", Username: "ALICE", CreatedAt: at(1)})
		require.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("same_user_can_change_case", func(t *testing.T) {
		require.NoError(t, r.RegisterUser(ctx, domain.User{ID: "u1", Username: "Alice", CreatedAt: at(1)}))

		u, err := r.GetUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", u.Username)
		assert.True(t, at(0).Equal(u.CreatedAt))
	})

	t.Run("rename_frees_old_name", func(t *testing.T) {
		require.NoError(t, r.RegisterUser(ctx, domain.User{ID: "u1", Username: "alicia", CreatedAt: at(2)}))
		require.NoError(t, r.RegisterUser(ctx, domain.User{ID: "u2", Username: "alice", CreatedAt: at(2)}))

		u, err := r.ResolveUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "u2", u.ID)
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, err := r.GetUser(ctx, "nobody")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
