package discovery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/discover", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"matches": []map[string]interface{}{
				{"id": "a1", "name": "HN Scraper", "package_name": "hn-scraper", "similarity": 0.91},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok")
	matches, err := client.Discover(context.Background(), "scrape hacker news", 0.7, 5)
	require.NoError(t, err)

	assert.Equal(t, "scrape hacker news", gotBody["task"])
	assert.Equal(t, 0.7, gotBody["threshold"])
	assert.Equal(t, float64(5), gotBody["limit"])

	require.Len(t, matches, 1)
	assert.Equal(t, "hn-scraper", matches[0].PackageName)
	assert.InDelta(t, 0.91, matches[0].Similarity, 1e-9)
}

func TestReindex(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reindex", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok")
	require.NoError(t, client.Reindex(context.Background(), "a1", "scrapes things"))
	assert.Equal(t, "a1", gotBody["agent_id"])
	assert.Equal(t, "scrapes things", gotBody["description"])
}

func TestDiscover_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok")
	_, err := client.Discover(context.Background(), "x", 0.7, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
