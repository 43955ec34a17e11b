package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_RankedFreets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/reactions/freets", r.URL.Path)
		assert.Equal(t, "Bearer freet_api|abc", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":[{"id":"f2","author":"bob","content":"hi","score":2},{"id":"f1","author":"alice","content":"yo","score":0}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "freet_api|abc")
	freets, err := c.RankedFreets(t.Context())
	require.NoError(t, err)
	require.Len(t, freets, 2)
	assert.Equal(t, "f2", freets[0].ID)
	assert.Equal(t, "bob", freets[0].Author)
	assert.Equal(t, 2, freets[0].Score)
	assert.Equal(t, "f1", freets[1].ID)
}

func TestClient_ListReactions(t *testing.T) {
	cases := []struct {
		name          string
		author        string
		freetID       string
		expectedQuery string
	}{
		{
			name:          "author_only",
			author:        "alice",
			expectedQuery: "author=alice",
		},
		{
			name:          "freet_only",
			freetID:       "f1",
			expectedQuery: "freet_id=f1",
		},
		{
			name:          "both",
			author:        "alice",
			freetID:       "f1",
			expectedQuery: "author=alice&freet_id=f1",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/reactions", r.URL.Path)
				assert.Equal(t, c.expectedQuery, r.URL.RawQuery)
				_, _ = w.Write([]byte(`{"data":[{"id":"r1","user":"alice","freet":"f1","reaction":"sad","post_boost":0,"recommendation":"undecided"}]}`))
			}))
			defer srv.Close()

			reactions, err := NewClient(srv.URL, "").ListReactions(t.Context(), c.author, c.freetID)
			require.NoError(t, err)
			require.Len(t, reactions, 1)
			assert.Equal(t, "sad", reactions[0].Kind)
			assert.Equal(t, "undecided", reactions[0].Recommendation)
		})
	}
}

func TestClient_CreateReaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"freet_id": "f1", "reaction_type": "happy"}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"r1","freet":"f1","reaction":"happy","post_boost":1}`))
	}))
	defer srv.Close()

	reaction, err := NewClient(srv.URL, "t").CreateReaction(t.Context(), "f1", "happy")
	require.NoError(t, err)
	assert.Equal(t, "r1", reaction.ID)
	assert.Equal(t, 1, reaction.PostBoost)
}

func TestClient_ResolveReaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/reactions/r1", r.URL.Path)
		assert.Equal(t, "no", r.URL.Query().Get("recommended"))
		_, _ = w.Write([]byte(`{"id":"r1","reaction":"sad","post_boost":-1}`))
	}))
	defer srv.Close()

	reaction, err := NewClient(srv.URL, "t").ResolveReaction(t.Context(), "r1", "no")
	require.NoError(t, err)
	assert.Equal(t, -1, reaction.PostBoost)
}

func TestClient_DeleteBookmark(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1/bookmarks/f1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, NewClient(srv.URL, "t").DeleteBookmark(t.Context(), "f1"))
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"freet not found"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "t").GetFreet(t.Context(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "freet not found")
}
