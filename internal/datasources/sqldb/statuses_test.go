package sqldb

import (
	"testing"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Statuses(t *testing.T) {
	r := createTestRepository(t)
	ctx := t.Context()

	seedUser(t, r, "u1", "alice")
	seedUser(t, r, "u2", "bob")

	require.NoError(t, r.ReplaceStatus(ctx, domain.NewStatus("s1", "u1", "first", at(0))))
	require.NoError(t, r.ReplaceStatus(ctx, domain.NewStatus("s2", "u2", "hello", at(1))))

	t.Run("replace_removes_previous", func(t *testing.T) {
		require.NoError(t, r.ReplaceStatus(ctx, domain.NewStatus("s3", "u1", "second", at(2))))

		_, err := r.GetStatus(ctx, "s1")
		require.ErrorIs(t, err, domain.ErrNotFound)

		statuses, err := r.ListLiveStatuses(ctx, "u1", at(3))
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.Equal(t, "second", statuses[0].Content)
		assert.Equal(t, "alice", statuses[0].Author)
	})

	t.Run("live_excludes_expired", func(t *testing.T) {
		statuses, err := r.ListLiveStatuses(ctx, "", at(3))
		require.NoError(t, err)
		require.Len(t, statuses, 2)
		assert.Equal(t, "s3", statuses[0].ID)
		assert.Equal(t, "s2", statuses[1].ID)

		// s2 was posted at minute 1 and lives for a day.
		statuses, err = r.ListLiveStatuses(ctx, "", at(1).Add(24*time.Hour))
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.Equal(t, "s3", statuses[0].ID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, r.DeleteStatus(ctx, "s2"))
		require.ErrorIs(t, r.DeleteStatus(ctx, "s2"), domain.ErrNotFound)
	})
}
