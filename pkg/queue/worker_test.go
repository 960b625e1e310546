package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mootbing/angine/ent/job"
	"github.com/Mootbing/angine/ent/workernode"
	"github.com/Mootbing/angine/pkg/agent"
	"github.com/Mootbing/angine/pkg/config"
	"github.com/Mootbing/angine/pkg/llm"
)

// scriptedChat replays assistant messages; when the script is empty it
// blocks until the context is cancelled (simulating a long model call).
type scriptedChat struct {
	mu     sync.Mutex
	script []llm.Message
}

func (f *scriptedChat) ChatCompletion(ctx context.Context, _ *llm.ChatRequest) (*llm.Message, *llm.Usage, error) {
	f.mu.Lock()
	if len(f.script) > 0 {
		next := f.script[0]
		f.script = f.script[1:]
		f.mu.Unlock()
		return &next, &llm.Usage{}, nil
	}
	f.mu.Unlock()

	<-ctx.Done()
	return nil, nil, ctx.Err()
}

func (f *scriptedChat) push(msgs ...llm.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.script = append(f.script, msgs...)
}

// nullStorage satisfies the loop's storage seam without a real object store.
type nullStorage struct{}

func (nullStorage) Upload(_ context.Context, path string, _ []byte, _ string) (string, error) {
	return "https://store.example/" + path, nil
}

func (nullStorage) Download(_ context.Context, _ string, _ int64) ([]byte, error) {
	return nil, fmt.Errorf("not found")
}

func finalAnswer(answer string) llm.Message {
	return llm.Message{
		Role: llm.RoleAssistant,
		ToolCalls: []llm.ToolCall{{
			ID: "call-1", Type: "function",
			Function: llm.FunctionCall{
				Name:      "final_answer",
				Arguments: fmt.Sprintf(`{"answer":%q}`, answer),
			},
		}},
	}
}

func askUser(question string) llm.Message {
	return llm.Message{
		Role: llm.RoleAssistant,
		ToolCalls: []llm.ToolCall{{
			ID: "call-1", Type: "function",
			Function: llm.FunctionCall{
				Name:      "ask_user",
				Arguments: fmt.Sprintf(`{"question":%q}`, question),
			},
		}},
	}
}

func testWorkerConfig() config.WorkerConfig {
	return config.WorkerConfig{
		Concurrency:        2,
		PollInterval:       50 * time.Millisecond,
		HeartbeatInterval:  time.Second,
		ShutdownTimeout:    500 * time.Millisecond,
		StaleSweepInterval: time.Minute,
		StaleThreshold:     2 * time.Minute,
	}
}

func newTestRuntime(t *testing.T, s *Store, chat *scriptedChat) *Runtime {
	t.Helper()
	loop := agent.NewLoop(WireAgentDeps(s, agent.Deps{
		LLM:     chat,
		Storage: nullStorage{},
	}))
	return NewRuntime("test-worker-1", "testhost", s, loop, testWorkerConfig(), nil)
}

func TestRuntime_CompletesJob(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chat := &scriptedChat{}
	chat.push(finalAnswer("4"))

	j := enqueueTestJob(t, s, 0)

	r := newTestRuntime(t, s, chat)
	require.NoError(t, r.Start(ctx))
	defer r.Shutdown(context.Background())

	require.Eventually(t, func() bool {
		got, err := s.Get(context.Background(), j.ID)
		return err == nil && got.Status == job.StatusCompleted
	}, 10*time.Second, 50*time.Millisecond)

	got, err := s.Get(context.Background(), j.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Result)
	assert.Equal(t, "4", *got.Result)

	logs, _, err := s.ListLogs(context.Background(), j.ID, 100, 0)
	require.NoError(t, err)
	var sawStart bool
	for _, l := range logs {
		if l.Message == "worker started job" {
			sawStart = true
		}
	}
	assert.True(t, sawStart)
}

func TestRuntime_ParkAndResume(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chat := &scriptedChat{}
	chat.push(askUser("proceed with this plan?"))

	j := enqueueTestJob(t, s, 0)

	r := newTestRuntime(t, s, chat)
	require.NoError(t, r.Start(ctx))
	defer r.Shutdown(context.Background())

	require.Eventually(t, func() bool {
		got, err := s.Get(context.Background(), j.ID)
		return err == nil && got.Status == job.StatusWaitingForUser
	}, 10*time.Second, 50*time.Millisecond)

	got, err := s.Get(context.Background(), j.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AgentQuestion)
	assert.Equal(t, "proceed with this plan?", *got.AgentQuestion)

	// The user answers; the job re-queues and the second drive completes.
	chat.push(finalAnswer("done"))
	require.NoError(t, s.Respond(context.Background(), j.ID, "yes"))

	require.Eventually(t, func() bool {
		got, err := s.Get(context.Background(), j.ID)
		return err == nil && got.Status == job.StatusCompleted
	}, 10*time.Second, 50*time.Millisecond)

	got, err = s.Get(context.Background(), j.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Result)
	assert.Equal(t, "done", *got.Result)
}

func TestRuntime_ShutdownReleasesRunningJob(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Empty script: the model call blocks until cancellation.
	chat := &scriptedChat{}

	j := enqueueTestJob(t, s, 0)

	r := newTestRuntime(t, s, chat)
	require.NoError(t, r.Start(ctx))

	require.Eventually(t, func() bool {
		got, err := s.Get(context.Background(), j.ID)
		return err == nil && got.Status == job.StatusRunning
	}, 10*time.Second, 50*time.Millisecond)

	r.Shutdown(context.Background())

	got, err := s.Get(context.Background(), j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, got.Status, "cancelled job must be released, not failed")
	assert.Nil(t, got.WorkerID)
	assert.Zero(t, got.RetryCount)

	workers, err := s.ListWorkers(context.Background())
	require.NoError(t, err)
	require.Len(t, workers, 1)
	assert.Equal(t, workernode.StatusDead, workers[0].Status)
}

func TestRuntime_StartupReleasesOwnStaleLeases(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Simulate a crash: a job left running under this worker's id.
	j := enqueueTestJob(t, s, 0)
	_, err := s.ClaimNext(ctx, "test-worker-1")
	require.NoError(t, err)

	chat := &scriptedChat{}
	chat.push(finalAnswer("recovered"))

	r := newTestRuntime(t, s, chat)
	require.NoError(t, r.Start(ctx))
	defer r.Shutdown(context.Background())

	// The startup recovery released it (incrementing retry_count), and the
	// fresh runtime then claims and completes it.
	require.Eventually(t, func() bool {
		got, err := s.Get(context.Background(), j.ID)
		return err == nil && got.Status == job.StatusCompleted
	}, 10*time.Second, 50*time.Millisecond)

	got, err := s.Get(context.Background(), j.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.RetryCount)
}
