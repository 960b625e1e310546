package sandbox

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProviderServer mimics the sandbox provider's REST surface.
func fakeProviderServer(t *testing.T) (*httptest.Server, *sync.Map) {
	t.Helper()
	files := &sync.Map{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /sandboxes", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"sandbox_id": "sbx-1"})
	})
	mux.HandleFunc("POST /sandboxes/sbx-1/commands", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Command string `json:"command"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		lines := []string{
			`{"stream":"stdout","data":"4\n"}`,
			`{"stream":"stderr","data":"warning: x\n"}`,
			`{"exit_code":0}`,
		}
		for _, l := range lines {
			_, _ = w.Write([]byte(l + "\n"))
		}
	})
	mux.HandleFunc("PUT /sandboxes/sbx-1/files", func(w http.ResponseWriter, r *http.Request) {
		content, _ := io.ReadAll(r.Body)
		files.Store(r.URL.Query().Get("path"), string(content))
	})
	mux.HandleFunc("GET /sandboxes/sbx-1/files", func(w http.ResponseWriter, r *http.Request) {
		if v, ok := files.Load(r.URL.Query().Get("path")); ok {
			_, _ = w.Write([]byte(v.(string)))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("DELETE /sandboxes/sbx-1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, files
}

func TestSandboxLifecycle(t *testing.T) {
	srv, files := fakeProviderServer(t)
	provider := NewHTTPProvider(srv.URL, "token")
	ctx := context.Background()

	sbx, err := provider.Create(ctx, 5*time.Minute)
	require.NoError(t, err)

	require.NoError(t, sbx.WriteFile(ctx, "/home/user/script.py", "print(2+2)"))
	v, ok := files.Load("/home/user/script.py")
	require.True(t, ok)
	assert.Equal(t, "print(2+2)", v)

	got, err := sbx.ReadFile(ctx, "/home/user/script.py")
	require.NoError(t, err)
	assert.Equal(t, "print(2+2)", got)

	var stdout, stderr string
	res, err := sbx.RunCommand(ctx, "python3 /home/user/script.py", RunOpts{
		Timeout:  30 * time.Second,
		OnStdout: func(chunk string) { stdout += chunk },
		OnStderr: func(chunk string) { stderr += chunk },
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "4\n", res.Stdout)
	assert.Equal(t, "warning: x\n", res.Stderr)
	assert.Equal(t, "4\n", stdout)
	assert.Equal(t, "warning: x\n", stderr)
	assert.Contains(t, res.Combined(), "4")
	assert.Contains(t, res.Combined(), "warning")

	require.NoError(t, sbx.Kill(ctx))
}

func TestCreate_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("no capacity"))
	}))
	defer srv.Close()

	provider := NewHTTPProvider(srv.URL, "token")
	_, err := provider.Create(context.Background(), time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestRunCommand_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/sandboxes" {
			_ = json.NewEncoder(w).Encode(map[string]string{"sandbox_id": "sbx-1"})
			return
		}
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	provider := NewHTTPProvider(srv.URL, "token")
	sbx, err := provider.Create(context.Background(), time.Minute)
	require.NoError(t, err)

	_, err = sbx.RunCommand(context.Background(), "sleep 10", RunOpts{Timeout: 100 * time.Millisecond})
	require.Error(t, err)
}
