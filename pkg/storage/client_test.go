package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	var gotPath, gotContentType, gotUpsert, gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotUpsert = r.Header.Get("X-Upsert")
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok")
	url, err := client.Upload(context.Background(),
		"artifacts/job-1/report.md", []byte("# hi"), "text/markdown")
	require.NoError(t, err)

	assert.Equal(t, "/object/artifacts/job-1/report.md", gotPath)
	assert.Equal(t, "text/markdown", gotContentType)
	assert.Equal(t, "true", gotUpsert)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "# hi", string(gotBody))
	assert.Equal(t, srv.URL+"/object/public/artifacts/job-1/report.md", url)
}

func TestUpload_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("denied"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok")
	_, err := client.Upload(context.Background(), "p", []byte("x"), "text/plain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0123456789"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok")

	data, err := client.Download(context.Background(), srv.URL+"/object/public/x", 100)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(data))

	// maxBytes caps the read.
	data, err = client.Download(context.Background(), srv.URL+"/object/public/x", 4)
	require.NoError(t, err)
	assert.Equal(t, "0123", string(data))
}
