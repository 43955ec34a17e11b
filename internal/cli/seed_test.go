package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func TestLoadSeedFile(t *testing.T) {
	seed, err := LoadSeedFile(filepath.Join("testdata", "seed.yaml"))
	require.NoError(t, err)

	require.Len(t, seed.Users, 3)
	assert.Equal(t, SeedUser{ID: "auth0|alice", Username: "alice"}, seed.Users[0])

	require.Len(t, seed.Freets, 3)
	assert.Equal(t, "f2", seed.Freets[1].ID)
	assert.Equal(t, time.Date(2024, 4, 27, 12, 5, 0, 0, time.UTC), seed.Freets[1].CreatedAt.UTC())

	require.Len(t, seed.Reactions, 5)
	assert.Equal(t, SeedReaction{User: "carol", Freet: "f2", Kind: "sad", Recommended: "yes"}, seed.Reactions[1])
	assert.Empty(t, seed.Reactions[4].Recommended)

	assert.Equal(t, []SeedBookmark{{User: "carol", Freet: "f1"}}, seed.Bookmarks)
}

func TestLoadSeedFile_Errors(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, writeFile(path, "users: [unterminated"))
	_, err = LoadSeedFile(path)
	assert.Error(t, err)
}
