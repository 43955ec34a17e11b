package sqldb

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMySQLTestRepository(t *testing.T) *Repository {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}
	uri := os.Getenv("MYSQL_URI")
	if uri == "" {
		t.Skip("MYSQL_URI not set")
	}

	db, err := Connect(t.Context(), DriverMySQL, uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(t.Context(), db, DriverMySQL))
	return New(db, DriverMySQL)
}

func TestMySQL_BookmarkUniquenessAndFreetCascade(t *testing.T) {
	r := createMySQLTestRepository(t)
	ctx := t.Context()

	userID := uuid.NewString()
	freetID := uuid.NewString()
	seedFreet(t, r, freetID, userID, 0)
	seedReaction(t, r, uuid.NewString(), userID, freetID, domain.ReactionKindLike, 1)

	first, err := r.CreateBookmark(ctx, domain.Bookmark{ID: uuid.NewString(), UserID: userID, FreetID: freetID, CreatedAt: at(2)})
	require.NoError(t, err)
	again, err := r.CreateBookmark(ctx, domain.Bookmark{ID: uuid.NewString(), UserID: userID, FreetID: freetID, CreatedAt: at(3)})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	res, err := r.CascadeFreet(ctx, freetID)
	require.NoError(t, err)
	assert.Equal(t, domain.CascadeResult{Reactions: 1, Bookmarks: 1, Freets: 1}, res)

	_, err = r.GetBookmark(ctx, userID, freetID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
