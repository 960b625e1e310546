package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mootbing/angine/pkg/auth"
	"github.com/Mootbing/angine/pkg/config"
	"github.com/Mootbing/angine/pkg/discovery"
	"github.com/Mootbing/angine/pkg/queue"
	"github.com/Mootbing/angine/pkg/ratelimit"
	testdb "github.com/Mootbing/angine/test/database"
)

type fakeUploader struct{}

func (fakeUploader) Upload(_ context.Context, path string, _ []byte, _ string) (string, error) {
	return "https://store.example/" + path, nil
}

func (fakeUploader) Download(_ context.Context, _ string, _ int64) ([]byte, error) {
	return nil, fmt.Errorf("not found")
}

func (fakeUploader) PublicURL(path string) string {
	return "https://store.example/" + path
}

type fakeDiscovery struct{}

func (fakeDiscovery) Discover(_ context.Context, _ string, _ float64, _ int) ([]discovery.Match, error) {
	return []discovery.Match{
		{ID: "a1", Name: "HN Scraper", PackageName: "hn-scraper", Similarity: 0.9},
	}, nil
}

func (fakeDiscovery) Reindex(_ context.Context, _, _ string) error {
	return nil
}

// testServer bundles the server with direct service handles for seeding.
type testServer struct {
	server *Server
	auth   *auth.Service
	store  *queue.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	client := testdb.NewTestClient(t)
	store := queue.NewStore(client.Client)
	authService := auth.NewService(client.Client, config.EnvTest)

	mr := miniredis.RunT(t)
	redisClient := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })
	limiter := ratelimit.NewWithClient(redisClient)

	cfg := &config.Config{
		Environment:  config.EnvTest,
		DefaultModel: "gpt-4o-mini",
	}

	server := NewServer(cfg, client, store, authService, limiter, fakeUploader{}, fakeDiscovery{})
	return &testServer{server: server, auth: authService, store: store}
}

// issueKey creates a credential and returns its raw bearer value and id.
func (ts *testServer) issueKey(t *testing.T, scopes []string, rpm int) (string, string) {
	t.Helper()
	raw, rec, err := ts.auth.Issue(context.Background(), auth.IssueInput{
		Name:     "test key",
		Scopes:   scopes,
		RPMLimit: rpm,
	})
	require.NoError(t, err)
	return raw, rec.ID
}

func (ts *testServer) request(method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	ts.server.Echo().ServeHTTP(rec, req)
	return rec
}

func TestAdmission(t *testing.T) {
	ts := newTestServer(t)

	t.Run("missing credential", func(t *testing.T) {
		rec := ts.request(http.MethodGet, "/api/v1/jobs", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown key", func(t *testing.T) {
		rec := ts.request(http.MethodGet, "/api/v1/jobs", "engine_test_doesnotexist", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong environment prefix", func(t *testing.T) {
		rec := ts.request(http.MethodGet, "/api/v1/jobs", "engine_live_doesnotexist", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoked key is indistinguishable from unknown", func(t *testing.T) {
		raw, id := ts.issueKey(t, []string{auth.ScopeJobsRead}, 60)
		require.NoError(t, ts.auth.Revoke(context.Background(), id, "test"))

		rec := ts.request(http.MethodGet, "/api/v1/jobs", raw, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var env map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, "invalid API key", env["error"])
	})

	t.Run("missing scope is 403", func(t *testing.T) {
		raw, _ := ts.issueKey(t, []string{auth.ScopeJobsRead}, 60)
		rec := ts.request(http.MethodPost, "/api/v1/jobs", raw,
			map[string]string{"task": "do something"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("health needs no credential", func(t *testing.T) {
		rec := ts.request(http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRateLimiting(t *testing.T) {
	ts := newTestServer(t)
	raw, _ := ts.issueKey(t, []string{auth.ScopeJobsRead}, 5)

	for i := 1; i <= 5; i++ {
		rec := ts.request(http.MethodGet, "/api/v1/jobs", raw, nil)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	for i := 6; i <= 7; i++ {
		rec := ts.request(http.MethodGet, "/api/v1/jobs", raw, nil)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code, "request %d", i)
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	}
}

func TestJobLifecycleEndpoints(t *testing.T) {
	ts := newTestServer(t)
	raw, _ := ts.issueKey(t, []string{auth.ScopeJobsRead, auth.ScopeJobsWrite, auth.ScopeJobsDelete}, 1000)

	// Create.
	rec := ts.request(http.MethodPost, "/api/v1/jobs", raw, map[string]interface{}{
		"task":      "Compute 2+2 with Python",
		"hitl_mode": "auto_execute",
		"priority":  10,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	jobID := created["id"].(string)
	assert.Equal(t, "queued", created["status"])

	// Get.
	rec = ts.request(http.MethodGet, "/api/v1/jobs/"+jobID, raw, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "Compute 2+2 with Python", detail["task"])
	assert.Equal(t, float64(10), detail["priority"])

	// List.
	rec = ts.request(http.MethodGet, "/api/v1/jobs?status=queued", raw, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, float64(1), list["count"])

	// Respond to a job that is not waiting → INVALID_STATE.
	rec = ts.request(http.MethodPost, "/api/v1/jobs/"+jobID+"/respond", raw,
		map[string]string{"answer": "yes"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_STATE")

	// Cancel.
	rec = ts.request(http.MethodDelete, "/api/v1/jobs/"+jobID, raw, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cancelled"`)

	// Cancelling twice conflicts with the lattice.
	rec = ts.request(http.MethodDelete, "/api/v1/jobs/"+jobID, raw, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_STATE")
}

func TestJobValidation(t *testing.T) {
	ts := newTestServer(t)
	raw, _ := ts.issueKey(t, []string{auth.ScopeJobsWrite}, 1000)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing task", map[string]interface{}{}},
		{"priority above range", map[string]interface{}{"task": "x", "priority": 101}},
		{"timeout below range", map[string]interface{}{"task": "x", "timeout_seconds": 10}},
		{"timeout above range", map[string]interface{}{"task": "x", "timeout_seconds": 4000}},
		{"bad hitl mode", map[string]interface{}{"task": "x", "hitl_mode": "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.request(http.MethodPost, "/api/v1/jobs", raw, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
		})
	}
}

func TestOwnershipIsolation(t *testing.T) {
	ts := newTestServer(t)
	rawA, _ := ts.issueKey(t, []string{auth.ScopeJobsRead, auth.ScopeJobsWrite}, 1000)
	rawB, _ := ts.issueKey(t, []string{auth.ScopeJobsRead, auth.ScopeJobsWrite}, 1000)
	rawAdmin, _ := ts.issueKey(t, []string{auth.ScopeAdmin}, 1000)

	rec := ts.request(http.MethodPost, "/api/v1/jobs", rawA,
		map[string]string{"task": "private work"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	jobID := created["id"].(string)

	// Another credential sees 404, not 403, so existence cannot be probed.
	rec = ts.request(http.MethodGet, "/api/v1/jobs/"+jobID, rawB, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Admin sees it.
	rec = ts.request(http.MethodGet, "/api/v1/jobs/"+jobID, rawAdmin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Owner's list does not leak into B's list.
	rec = ts.request(http.MethodGet, "/api/v1/jobs", rawB, nil)
	var list map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, float64(0), list["count"])
}

func TestAdminKeyEndpoints(t *testing.T) {
	ts := newTestServer(t)
	rawAdmin, _ := ts.issueKey(t, []string{auth.ScopeAdmin}, 1000)

	// Non-admin cannot reach admin surface.
	rawPlain, _ := ts.issueKey(t, []string{auth.ScopeJobsRead}, 1000)
	rec := ts.request(http.MethodGet, "/api/v1/admin/keys", rawPlain, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Create: the raw key appears exactly once.
	rec = ts.request(http.MethodPost, "/api/v1/admin/keys", rawAdmin, map[string]interface{}{
		"name":           "ci key",
		"scopes":         []string{"jobs:read"},
		"rate_limit_rpm": 30,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	newRaw := created["key"].(string)
	newID := created["id"].(string)
	assert.Contains(t, newRaw, "engine_test_")

	// Metadata never echoes the raw key.
	rec = ts.request(http.MethodGet, "/api/v1/admin/keys/"+newID, rawAdmin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), newRaw)
	assert.Contains(t, rec.Body.String(), newRaw[:14])

	// The issued key works...
	rec = ts.request(http.MethodGet, "/api/v1/jobs", newRaw, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// ...until revoked.
	rec = ts.request(http.MethodDelete, "/api/v1/admin/keys/"+newID, rawAdmin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = ts.request(http.MethodGet, "/api/v1/jobs", newRaw, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAgentEndpoints(t *testing.T) {
	ts := newTestServer(t)
	raw, _ := ts.issueKey(t, []string{auth.ScopeAgentsRead, auth.ScopeAgentsWrite}, 1000)

	// Register.
	rec := ts.request(http.MethodPost, "/api/v1/agents", raw, map[string]string{
		"name":         "HN Scraper",
		"description":  "Scrapes Hacker News front page posts",
		"package_name": "hn-scraper",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Duplicate package name conflicts.
	rec = ts.request(http.MethodPost, "/api/v1/agents", raw, map[string]string{
		"name":         "HN Scraper 2",
		"description":  "Another scraper for Hacker News",
		"package_name": "hn-scraper",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE")

	// Invalid package name.
	rec = ts.request(http.MethodPost, "/api/v1/agents", raw, map[string]string{
		"name":         "Bad",
		"description":  "Has an invalid package name",
		"package_name": "Not Allowed!",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// List.
	rec = ts.request(http.MethodGet, "/api/v1/agents", raw, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hn-scraper")

	// Discover proxies the external service.
	rec = ts.request(http.MethodPost, "/api/v1/agents/discover", raw,
		map[string]string{"task": "scrape hacker news"})
	require.Equal(t, http.StatusOK, rec.Code)
	var disco map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &disco))
	assert.Equal(t, float64(1), disco["count"])
	assert.Equal(t, 0.7, disco["threshold"])
}

func TestAdminMetricsAndWorkers(t *testing.T) {
	ts := newTestServer(t)
	rawAdmin, _ := ts.issueKey(t, []string{auth.ScopeAdmin}, 1000)

	rec := ts.request(http.MethodGet, "/api/v1/admin/metrics", rawAdmin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	for _, key := range []string{"jobs", "workers", "agents", "api_keys", "timestamp"} {
		assert.Contains(t, m, key)
	}

	rec = ts.request(http.MethodGet, "/api/v1/admin/workers", rawAdmin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var w map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &w))
	assert.Equal(t, float64(0), w["count"])
}
