package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Mootbing/angine/pkg/discovery"
	"github.com/Mootbing/angine/pkg/llm"
	"github.com/Mootbing/angine/pkg/sandbox"
)

// fakeChat replays a scripted sequence of assistant messages and records the
// requests it received.
type fakeChat struct {
	mu       sync.Mutex
	script   []llm.Message
	err      error
	requests []*llm.ChatRequest
}

func (f *fakeChat) ChatCompletion(ctx context.Context, req *llm.ChatRequest) (*llm.Message, *llm.Usage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, nil, f.err
	}
	if len(f.script) == 0 {
		return nil, nil, fmt.Errorf("fakeChat: script exhausted")
	}
	next := f.script[0]
	f.script = f.script[1:]
	return &next, &llm.Usage{TotalTokens: 10}, nil
}

// assistantToolCall builds a scripted assistant message with one tool call.
func assistantToolCall(id, name, args string) llm.Message {
	return llm.Message{
		Role: llm.RoleAssistant,
		ToolCalls: []llm.ToolCall{{
			ID:   id,
			Type: "function",
			Function: llm.FunctionCall{
				Name:      name,
				Arguments: args,
			},
		}},
	}
}

// fakeStorage captures uploads and serves canned downloads.
type fakeStorage struct {
	mu        sync.Mutex
	uploads   map[string][]byte
	downloads map[string]string // publicURL → content
	uploadErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		uploads:   map[string][]byte{},
		downloads: map[string]string{},
	}
}

func (f *fakeStorage) Upload(_ context.Context, path string, data []byte, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads[path] = data
	return "https://store.example/" + path, nil
}

func (f *fakeStorage) Download(_ context.Context, publicURL string, _ int64) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	content, ok := f.downloads[publicURL]
	if !ok {
		return nil, fmt.Errorf("not found: %s", publicURL)
	}
	return []byte(content), nil
}

// fakeLogs records appended log lines.
type fakeLogs struct {
	mu      sync.Mutex
	entries []string
}

func (f *fakeLogs) Append(_ context.Context, _, level, message string, _ map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, level+": "+message)
}

func (f *fakeLogs) all() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.entries...)
}

// fakeArtifacts records artifact rows.
type fakeArtifacts struct {
	mu       sync.Mutex
	recorded []string
}

func (f *fakeArtifacts) Record(_ context.Context, _, filename, _, _, _ string, _ int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recorded = append(f.recorded, filename)
	return nil
}

// fakeDiscovery returns canned matches.
type fakeDiscovery struct {
	matches []discovery.Match
	err     error
}

func (f *fakeDiscovery) Discover(_ context.Context, _ string, _ float64, _ int) ([]discovery.Match, error) {
	return f.matches, f.err
}

func (f *fakeDiscovery) Reindex(_ context.Context, _, _ string) error {
	return nil
}

// fakeSandboxProvider hands out fakeSandbox instances.
type fakeSandboxProvider struct {
	mu        sync.Mutex
	createErr error
	created   []*fakeSandbox
}

func (f *fakeSandboxProvider) Create(_ context.Context, _ time.Duration) (sandbox.Sandbox, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	sbx := &fakeSandbox{
		files:   map[string]string{},
		results: map[string]*sandbox.RunResult{},
	}
	f.created = append(f.created, sbx)
	return sbx, nil
}

// fakeSandbox records commands and serves canned results per command prefix.
type fakeSandbox struct {
	mu       sync.Mutex
	commands []string
	files    map[string]string
	results  map[string]*sandbox.RunResult // command prefix → result
	killed   bool
}

func (f *fakeSandbox) RunCommand(_ context.Context, cmd string, opts sandbox.RunOpts) (*sandbox.RunResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, cmd)
	for prefix, res := range f.results {
		if len(cmd) >= len(prefix) && cmd[:len(prefix)] == prefix {
			if opts.OnStdout != nil && res.Stdout != "" {
				opts.OnStdout(res.Stdout)
			}
			if opts.OnStderr != nil && res.Stderr != "" {
				opts.OnStderr(res.Stderr)
			}
			return res, nil
		}
	}
	return &sandbox.RunResult{ExitCode: 0}, nil
}

func (f *fakeSandbox) WriteFile(_ context.Context, path, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = content
	return nil
}

func (f *fakeSandbox) ReadFile(_ context.Context, path string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	content, ok := f.files[path]
	if !ok {
		return "", fmt.Errorf("no such file: %s", path)
	}
	return content, nil
}

func (f *fakeSandbox) Kill(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.killed = true
	return nil
}

// newTestDeps wires a full fake dependency set.
func newTestDeps(chat *fakeChat) (*Deps, *fakeStorage, *fakeLogs, *fakeArtifacts, *fakeSandboxProvider) {
	store := newFakeStorage()
	logs := &fakeLogs{}
	artifacts := &fakeArtifacts{}
	sandboxes := &fakeSandboxProvider{}

	deps := &Deps{
		LLM:       chat,
		Sandboxes: sandboxes,
		Storage:   store,
		Discovery: &fakeDiscovery{},
		Logs:      logs,
		Artifacts: artifacts,
	}
	return deps, store, logs, artifacts, sandboxes
}

func testJob() *JobInput {
	return &JobInput{
		ID:             "job-1",
		Task:           "Compute 2+2 with Python",
		Model:          "gpt-4o-mini",
		HITLMode:       HITLAutoExecute,
		TimeoutSeconds: 300,
	}
}
