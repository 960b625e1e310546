package agent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mootbing/angine/pkg/discovery"
	"github.com/Mootbing/angine/pkg/llm"
	"github.com/Mootbing/angine/pkg/sandbox"
)

func newTestExecutor(t *testing.T) (*toolExecutor, *fakeSandboxProvider, *fakeLogs) {
	t.Helper()
	deps, _, logs, _, sandboxes := newTestDeps(&fakeChat{})
	return newToolExecutor(deps, testJob()), sandboxes, logs
}

func call(name, args string) llm.ToolCall {
	return llm.ToolCall{
		ID:   "call-1",
		Type: "function",
		Function: llm.FunctionCall{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestFetchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"a":1,"b":[2,3]}`))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", maxFetchBody+100)))
		case "/echo-method":
			_, _ = w.Write([]byte(r.Method))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ex, _, _ := newTestExecutor(t)
	ctx := context.Background()

	t.Run("pretty-prints JSON", func(t *testing.T) {
		res := ex.execute(ctx, call("fetch_url",
			`{"url":"`+srv.URL+`/json","method":"GET"}`))
		assert.False(t, res.isError)
		assert.Contains(t, res.content, "HTTP 200")
		assert.Contains(t, res.content, "\"a\": 1")
	})

	t.Run("truncates oversized text", func(t *testing.T) {
		res := ex.execute(ctx, call("fetch_url",
			`{"url":"`+srv.URL+`/big","method":"GET"}`))
		assert.False(t, res.isError)
		assert.Contains(t, res.content, "[truncated]")
		assert.Less(t, len(res.content), maxFetchBody+200)
	})

	t.Run("passes method through", func(t *testing.T) {
		res := ex.execute(ctx, call("fetch_url",
			`{"url":"`+srv.URL+`/echo-method","method":"DELETE"}`))
		assert.Contains(t, res.content, "DELETE")
	})

	t.Run("rejects unsupported method", func(t *testing.T) {
		res := ex.execute(ctx, call("fetch_url",
			`{"url":"`+srv.URL+`","method":"PATCH"}`))
		assert.True(t, res.isError)
		assert.Contains(t, res.content, "unsupported method")
	})

	t.Run("requires url", func(t *testing.T) {
		res := ex.execute(ctx, call("fetch_url", `{"method":"GET"}`))
		assert.True(t, res.isError)
	})
}

func TestRunPython(t *testing.T) {
	ctx := context.Background()

	t.Run("runs code in a lazily-created sandbox", func(t *testing.T) {
		ex, sandboxes, _ := newTestExecutor(t)
		res := ex.execute(ctx, call("run_python", `{"code":"print(2+2)"}`))
		assert.False(t, res.isError)
		assert.Contains(t, res.content, "exit code 0")

		require.Len(t, sandboxes.created, 1)
		sbx := sandboxes.created[0]
		assert.Equal(t, "print(2+2)", sbx.files[scriptPath])
		// Baseline install happens first, then the script run.
		require.GreaterOrEqual(t, len(sbx.commands), 2)
		assert.Contains(t, sbx.commands[0], "pip install")
		assert.Contains(t, sbx.commands[len(sbx.commands)-1], "python3 "+scriptPath)
	})

	t.Run("reuses the sandbox across calls", func(t *testing.T) {
		ex, sandboxes, _ := newTestExecutor(t)
		ex.execute(ctx, call("run_python", `{"code":"print(1)"}`))
		ex.execute(ctx, call("run_python", `{"code":"print(2)"}`))
		assert.Len(t, sandboxes.created, 1)
	})

	t.Run("nonzero exit surfaces as tool error", func(t *testing.T) {
		ex, sandboxes, _ := newTestExecutor(t)
		ex.execute(ctx, call("run_python", `{"code":"x"}`)) // creates sandbox
		sandboxes.created[0].results["python3"] = &sandbox.RunResult{
			Stderr: "Traceback", ExitCode: 1,
		}
		res := ex.execute(ctx, call("run_python", `{"code":"boom"}`))
		assert.True(t, res.isError)
		assert.Contains(t, res.content, "exit code 1")
		assert.Contains(t, res.content, "Traceback")
	})

	t.Run("rejects too many packages", func(t *testing.T) {
		ex, _, _ := newTestExecutor(t)
		res := ex.execute(ctx, call("run_python",
			`{"code":"x","packages":["a","b","c","d","e","f","g","h","i","j","k"]}`))
		assert.True(t, res.isError)
		assert.Contains(t, res.content, "at most 10")
	})

	t.Run("rejects disallowed package names", func(t *testing.T) {
		ex, _, _ := newTestExecutor(t)
		res := ex.execute(ctx, call("run_python",
			`{"code":"x","packages":["numpy; rm -rf /"]}`))
		assert.True(t, res.isError)
		assert.Contains(t, res.content, "not allowed")
	})

	t.Run("sandbox creation failure is a tool error not a loop failure", func(t *testing.T) {
		deps, _, _, _, sandboxes := newTestDeps(&fakeChat{})
		sandboxes.createErr = assert.AnError
		ex := newToolExecutor(deps, testJob())
		res := ex.execute(ctx, call("run_python", `{"code":"x"}`))
		assert.True(t, res.isError)
		assert.Contains(t, res.content, "sandbox unavailable")
	})
}

func TestWriteAndReadFile(t *testing.T) {
	ex, _, _ := newTestExecutor(t)
	ctx := context.Background()

	res := ex.execute(ctx, call("write_file", `{"filename":"out.txt","content":"hello"}`))
	assert.False(t, res.isError)
	assert.Equal(t, []string{"out.txt"}, ex.stagedFilenames())

	ex.attachments["in.txt"] = "input data"
	res = ex.execute(ctx, call("read_file", `{"filename":"in.txt"}`))
	assert.Equal(t, "input data", res.content)

	res = ex.execute(ctx, call("read_file", `{"filename":"nope.txt"}`))
	assert.True(t, res.isError)
}

func TestDiscoverTools(t *testing.T) {
	ctx := context.Background()

	deps, _, _, _, _ := newTestDeps(&fakeChat{})
	var recordedNames []string
	deps.Discovery = &fakeDiscovery{matches: []discovery.Match{
		{ID: "a1", Name: "HN Scraper", PackageName: "hn-scraper", Similarity: 0.91},
		{ID: "a2", Name: "Web Fetch", PackageName: "web-fetch", Similarity: 0.72},
	}}
	deps.OnToolsDiscovered = func(_ context.Context, _ string, names []string) {
		recordedNames = names
	}
	ex := newToolExecutor(deps, testJob())

	res := ex.execute(ctx, call("discover_tools", `{"query":"scrape hacker news"}`))
	assert.False(t, res.isError)
	assert.Contains(t, res.content, "hn-scraper")
	assert.Contains(t, res.content, "0.91")
	assert.Equal(t, []string{"hn-scraper", "web-fetch"}, recordedNames)
}

func TestPersistArtifacts_UploadFailureIsNotFatal(t *testing.T) {
	deps, store, logs, artifacts, _ := newTestDeps(&fakeChat{})
	store.uploadErr = assert.AnError
	ex := newToolExecutor(deps, testJob())
	ex.stagedFiles["report.md"] = "# hi"

	ex.persistArtifacts(context.Background())

	assert.Empty(t, artifacts.recorded)
	var sawWarn bool
	for _, line := range logs.all() {
		if strings.Contains(line, "warn: artifact upload failed") {
			sawWarn = true
		}
	}
	assert.True(t, sawWarn)
}
