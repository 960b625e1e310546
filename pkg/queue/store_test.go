package queue

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mootbing/angine/ent"
	"github.com/Mootbing/angine/ent/job"
	"github.com/Mootbing/angine/ent/workernode"
	"github.com/Mootbing/angine/pkg/agent"
	"github.com/Mootbing/angine/pkg/llm"
	testdb "github.com/Mootbing/angine/test/database"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewStore(client.Client)
}

func enqueueTestJob(t *testing.T, s *Store, priority int) *ent.Job {
	t.Helper()
	j, err := s.Enqueue(context.Background(), EnqueueInput{
		Task:           "test task",
		APIKeyID:       "key-1",
		Priority:       priority,
		TimeoutSeconds: 300,
		Model:          "gpt-4o-mini",
		HITLMode:       "auto_execute",
	})
	require.NoError(t, err)
	return j
}

func TestEnqueueAndClaim(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := enqueueTestJob(t, s, 0)
	assert.Equal(t, job.StatusQueued, created.Status)
	assert.Nil(t, created.StartedAt)
	assert.Zero(t, created.RetryCount)

	claimed, err := s.ClaimNext(ctx, "worker-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, claimed.ID)
	assert.Equal(t, job.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.WorkerID)
	assert.Equal(t, "worker-1", *claimed.WorkerID)
	assert.NotNil(t, claimed.StartedAt)

	_, err = s.ClaimNext(ctx, "worker-2")
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestClaimOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	low1 := enqueueTestJob(t, s, 10)
	high := enqueueTestJob(t, s, 90)
	low2 := enqueueTestJob(t, s, 10)

	first, err := s.ClaimNext(ctx, "w")
	require.NoError(t, err)
	assert.Equal(t, high.ID, first.ID, "highest priority first")

	second, err := s.ClaimNext(ctx, "w")
	require.NoError(t, err)
	assert.Equal(t, low1.ID, second.ID, "FIFO within equal priority")

	third, err := s.ClaimNext(ctx, "w")
	require.NoError(t, err)
	assert.Equal(t, low2.ID, third.ID)
}

func TestConcurrentClaims(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	const jobs = 8
	const workers = 4
	for i := 0; i < jobs; i++ {
		enqueueTestJob(t, s, 0)
	}

	var mu sync.Mutex
	claimedBy := map[string]string{}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID string) {
			defer wg.Done()
			for {
				j, err := s.ClaimNext(ctx, workerID)
				if err != nil {
					return
				}
				mu.Lock()
				prev, seen := claimedBy[j.ID]
				claimedBy[j.ID] = workerID
				mu.Unlock()
				require.False(t, seen, "job %s claimed twice (by %s and %s)", j.ID, prev, workerID)
			}
		}(string(rune('a' + w)))
	}
	wg.Wait()

	assert.Len(t, claimedBy, jobs, "every job claimed exactly once")
}

func TestCompleteTransitions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	j := enqueueTestJob(t, s, 0)

	// queued → completed is not on the lattice.
	err := s.Complete(ctx, j.ID, "4")
	require.Error(t, err)
	assert.True(t, IsInvalidTransition(err))

	_, err = s.ClaimNext(ctx, "w")
	require.NoError(t, err)

	require.NoError(t, s.Complete(ctx, j.ID, "4"))
	got, err := s.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, got.Status)
	assert.Equal(t, "4", *got.Result)
	assert.NotNil(t, got.CompletedAt)

	// Idempotent repeat.
	require.NoError(t, s.Complete(ctx, j.ID, "4"))

	// Terminal states admit no further transitions.
	err = s.Fail(ctx, j.ID, "nope")
	assert.True(t, IsInvalidTransition(err))
	err = s.Cancel(ctx, j.ID)
	assert.True(t, IsInvalidTransition(err))
	err = s.Release(ctx, j.ID)
	assert.True(t, IsInvalidTransition(err))
}

func TestReleaseClearsLease(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	j := enqueueTestJob(t, s, 0)
	_, err := s.ClaimNext(ctx, "w1")
	require.NoError(t, err)

	require.NoError(t, s.Release(ctx, j.ID))

	got, err := s.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, got.Status)
	assert.Nil(t, got.WorkerID)
	assert.Nil(t, got.StartedAt)
	assert.Zero(t, got.RetryCount, "release never increments retry_count")

	// Claimable again.
	again, err := s.ClaimNext(ctx, "w2")
	require.NoError(t, err)
	assert.Equal(t, j.ID, again.ID)
}

func TestParkAndRespondRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	j := enqueueTestJob(t, s, 0)
	_, err := s.ClaimNext(ctx, "w1")
	require.NoError(t, err)

	state := &agent.ExecutionState{
		Checkpoint: agent.CheckpointV1,
		ConversationHistory: []llm.Message{
			{Role: llm.RoleSystem, Content: "system"},
			{Role: llm.RoleUser, Content: "task"},
			{Role: llm.RoleAssistant, Content: "", ToolCalls: []llm.ToolCall{{
				ID: "call-1", Type: "function",
				Function: llm.FunctionCall{Name: "ask_user", Arguments: `{"question":"ok?"}`},
			}}},
		},
		ResumedCount: 0,
	}

	require.NoError(t, s.Park(ctx, j.ID, "ok to proceed?", state))

	parked, err := s.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusWaitingForUser, parked.Status)
	require.NotNil(t, parked.AgentQuestion)
	assert.Equal(t, "ok to proceed?", *parked.AgentQuestion)
	assert.NotNil(t, parked.PausedAt)
	assert.NotEmpty(t, parked.ExecutionState)

	require.NoError(t, s.Respond(ctx, j.ID, "yes please"))

	resumed, err := s.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, resumed.Status)
	assert.Nil(t, resumed.AgentQuestion)
	assert.Nil(t, resumed.PausedAt)
	require.NotNil(t, resumed.UserAnswer)
	assert.Equal(t, "yes please", *resumed.UserAnswer)

	var got agent.ExecutionState
	require.NoError(t, json.Unmarshal(resumed.ExecutionState, &got))
	assert.Equal(t, 1, got.ResumedCount)
	last := got.ConversationHistory[len(got.ConversationHistory)-1]
	assert.Equal(t, llm.RoleUser, last.Role)
	assert.Contains(t, last.Content, "yes please")

	// Respond requires waiting_for_user.
	err = s.Respond(ctx, j.ID, "again")
	assert.True(t, IsInvalidTransition(err))
}

func TestCancelRules(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("queued jobs can be cancelled", func(t *testing.T) {
		j := enqueueTestJob(t, s, 0)
		require.NoError(t, s.Cancel(ctx, j.ID))
		got, err := s.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelled, got.Status)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("running jobs cannot be cancelled", func(t *testing.T) {
		j := enqueueTestJob(t, s, 0)
		_, err := s.ClaimNext(ctx, "w")
		require.NoError(t, err)
		err = s.Cancel(ctx, j.ID)
		assert.True(t, IsInvalidTransition(err))
	})

	t.Run("waiting jobs can be cancelled", func(t *testing.T) {
		j := enqueueTestJob(t, s, 50)
		_, err := s.ClaimNext(ctx, "w")
		require.NoError(t, err)
		require.NoError(t, s.Park(ctx, j.ID, "q?", &agent.ExecutionState{Checkpoint: agent.CheckpointV1}))
		require.NoError(t, s.Cancel(ctx, j.ID))
	})
}

func TestRecoverStale(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Dead worker: heartbeat far in the past.
	require.NoError(t, s.UpsertWorker(ctx, "dead-w", "host", "v", workernode.StatusActive, 1))
	_, err := s.client.WorkerNode.UpdateOneID("dead-w").
		SetLastHeartbeat(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	// Live worker.
	require.NoError(t, s.UpsertWorker(ctx, "live-w", "host", "v", workernode.StatusActive, 1))

	// Job held by the dead worker, started long ago.
	deadJob := enqueueTestJob(t, s, 0)
	_, err = s.ClaimNext(ctx, "dead-w")
	require.NoError(t, err)
	_, err = s.client.Job.UpdateOneID(deadJob.ID).
		SetStartedAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	// Job held by the live worker, also old — must NOT be recovered.
	liveJob := enqueueTestJob(t, s, 0)
	_, err = s.ClaimNext(ctx, "live-w")
	require.NoError(t, err)
	_, err = s.client.Job.UpdateOneID(liveJob.ID).
		SetStartedAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	count, err := s.RecoverStale(ctx, 2*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	recovered, err := s.Get(ctx, deadJob.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, recovered.Status)
	assert.Equal(t, 1, recovered.RetryCount)
	assert.Nil(t, recovered.WorkerID)

	untouched, err := s.Get(ctx, liveJob.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, untouched.Status)

	// Idempotence: a second sweep finds nothing.
	count, err = s.RecoverStale(ctx, 2*time.Minute)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRecoverStale_FailsAtMaxRetries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertWorker(ctx, "dead-w", "host", "v", workernode.StatusActive, 1))
	_, err := s.client.WorkerNode.UpdateOneID("dead-w").
		SetLastHeartbeat(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	j := enqueueTestJob(t, s, 0)
	_, err = s.ClaimNext(ctx, "dead-w")
	require.NoError(t, err)
	_, err = s.client.Job.UpdateOneID(j.ID).
		SetStartedAt(time.Now().Add(-10 * time.Minute)).
		SetRetryCount(3). // at max_retries
		Save(ctx)
	require.NoError(t, err)

	count, err := s.RecoverStale(ctx, 2*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := s.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "worker lost", *got.ErrorMessage)
	assert.NotNil(t, got.CompletedAt)
}

func TestAppendLogSequencing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	j := enqueueTestJob(t, s, 0)
	s.AppendLog(ctx, j.ID, "info", "first", nil)
	s.AppendLog(ctx, j.ID, "warn", "second", map[string]interface{}{"k": "v"})
	s.AppendLog(ctx, j.ID, "error", "third", nil)

	logs, total, err := s.ListLogs(ctx, j.ID, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, logs, 3)
	for i, l := range logs {
		assert.Equal(t, i+1, l.SequenceNumber)
	}
	assert.Equal(t, "first", logs[0].Message)
	assert.Equal(t, "v", logs[1].Metadata["k"])

	// Appends against an unknown job are swallowed, not fatal.
	s.AppendLog(ctx, "no-such-job", "info", "dropped", nil)
}

func TestListFiltering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	enqueueTestJob(t, s, 0)
	enqueueTestJob(t, s, 0)
	_, err := s.ClaimNext(ctx, "w")
	require.NoError(t, err)

	running, total, err := s.List(ctx, ListParams{Status: "running", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, running, 1)

	all, total, err := s.List(ctx, ListParams{APIKeyID: "key-1", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)

	none, total, err := s.List(ctx, ListParams{APIKeyID: "key-other", Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, none)
}

func TestAttachmentsBinding(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	att, err := s.CreateAttachment(ctx, "", "data.csv", "text/csv",
		"attachments/x/data.csv", "https://store.example/data.csv", 7)
	require.NoError(t, err)

	j, err := s.Enqueue(ctx, EnqueueInput{
		Task:           "analyze the attached file",
		APIKeyID:       "key-1",
		TimeoutSeconds: 300,
		Model:          "gpt-4o-mini",
		HITLMode:       "auto_execute",
		AttachmentIDs:  []string{att.ID},
	})
	require.NoError(t, err)

	attachments, err := s.ListAttachments(ctx, j.ID)
	require.NoError(t, err)
	require.Len(t, attachments, 1)
	assert.Equal(t, "data.csv", attachments[0].Filename)

	// A bound attachment cannot be bound to another job.
	_, err = s.Enqueue(ctx, EnqueueInput{
		Task:           "second job",
		APIKeyID:       "key-1",
		TimeoutSeconds: 300,
		Model:          "gpt-4o-mini",
		HITLMode:       "auto_execute",
		AttachmentIDs:  []string{att.ID},
	})
	require.Error(t, err)
}
