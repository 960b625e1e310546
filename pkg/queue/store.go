package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/Mootbing/angine/ent"
	"github.com/Mootbing/angine/ent/job"
	"github.com/Mootbing/angine/ent/jobartifact"
	"github.com/Mootbing/angine/ent/jobattachment"
	"github.com/Mootbing/angine/ent/joblog"
	"github.com/Mootbing/angine/ent/workernode"
	"github.com/Mootbing/angine/pkg/agent"
	"github.com/Mootbing/angine/pkg/llm"
)

// Store is the durable queue store. Every mutating operation is expressed as
// a conditional update (CAS on id + expected status) or a transaction, so
// concurrent workers can never double-apply a transition.
type Store struct {
	client *ent.Client
	logger *slog.Logger
}

// NewStore creates a queue store.
func NewStore(client *ent.Client) *Store {
	return &Store{
		client: client,
		logger: slog.Default().With("component", "queue-store"),
	}
}

// Client exposes the underlying ent client for read-only composition
// (admin metrics, agent registry).
func (s *Store) Client() *ent.Client {
	return s.client
}

// EnqueueInput carries parameters for job creation.
type EnqueueInput struct {
	Task           string
	APIKeyID       string
	Priority       int
	TimeoutSeconds int
	Model          string
	HITLMode       string
	MaxRetries     int
	AttachmentIDs  []string
}

// Enqueue creates a job in queued status and binds any pre-uploaded
// attachments to it.
func (s *Store) Enqueue(ctx context.Context, input EnqueueInput) (*ent.Job, error) {
	maxRetries := input.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	created, err := tx.Job.Create().
		SetID(uuid.New().String()).
		SetTask(input.Task).
		SetAPIKeyID(input.APIKeyID).
		SetPriority(input.Priority).
		SetTimeoutSeconds(input.TimeoutSeconds).
		SetModel(input.Model).
		SetHitlMode(job.HitlMode(input.HITLMode)).
		SetMaxRetries(maxRetries).
		SetStatus(job.StatusQueued).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if len(input.AttachmentIDs) > 0 {
		n, err := tx.JobAttachment.Update().
			Where(
				jobattachment.IDIn(input.AttachmentIDs...),
				jobattachment.JobIDIsNil(),
			).
			SetJobID(created.ID).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to bind attachments: %w", err)
		}
		if n != len(input.AttachmentIDs) {
			return nil, fmt.Errorf("one or more attachments are unknown or already bound")
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit enqueue: %w", err)
	}

	return created, nil
}

// ClaimNext atomically claims the next queued job for the worker using
// FOR UPDATE SKIP LOCKED, ordered by priority descending then created_at
// ascending. Returns ErrNoJobsAvailable when the queue is empty.
func (s *Store) ClaimNext(ctx context.Context, workerID string) (*ent.Job, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	next, err := tx.Job.Query().
		Where(job.StatusEQ(job.StatusQueued)).
		Order(ent.Desc(job.FieldPriority), ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query queued job: %w", err)
	}

	claimed, err := next.Update().
		SetStatus(job.StatusRunning).
		SetWorkerID(workerID).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// Complete transitions running → completed. Idempotent if the job is already
// completed; any other current status is an invalid transition.
func (s *Store) Complete(ctx context.Context, jobID, result string) error {
	n, err := s.client.Job.Update().
		Where(job.IDEQ(jobID), job.StatusEQ(job.StatusRunning)).
		SetStatus(job.StatusCompleted).
		SetResult(result).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}
	if n == 0 {
		return s.transitionConflict(ctx, jobID, job.StatusCompleted)
	}
	return nil
}

// Fail transitions running → failed with a diagnostic message.
func (s *Store) Fail(ctx context.Context, jobID, errorMessage string) error {
	n, err := s.client.Job.Update().
		Where(job.IDEQ(jobID), job.StatusEQ(job.StatusRunning)).
		SetStatus(job.StatusFailed).
		SetErrorMessage(errorMessage).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail job: %w", err)
	}
	if n == 0 {
		return s.transitionConflict(ctx, jobID, job.StatusFailed)
	}
	return nil
}

// Release transitions running → queued, clearing the lease, so another
// worker can pick the job up. Used on worker abort and shutdown; it never
// touches retry_count.
func (s *Store) Release(ctx context.Context, jobID string) error {
	n, err := s.client.Job.Update().
		Where(job.IDEQ(jobID), job.StatusEQ(job.StatusRunning)).
		SetStatus(job.StatusQueued).
		ClearWorkerID().
		ClearStartedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release job: %w", err)
	}
	if n == 0 {
		return s.transitionConflict(ctx, jobID, job.StatusQueued)
	}
	return nil
}

// Park transitions running → waiting_for_user, storing the agent's question
// and the execution checkpoint.
func (s *Store) Park(ctx context.Context, jobID, question string, state *agent.ExecutionState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal execution state: %w", err)
	}

	n, err := s.client.Job.Update().
		Where(job.IDEQ(jobID), job.StatusEQ(job.StatusRunning)).
		SetStatus(job.StatusWaitingForUser).
		SetAgentQuestion(question).
		SetExecutionState(blob).
		SetPausedAt(time.Now()).
		ClearWorkerID().
		ClearStartedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to park job: %w", err)
	}
	if n == 0 {
		return s.transitionConflict(ctx, jobID, job.StatusWaitingForUser)
	}
	return nil
}

// Respond records the user's answer on a waiting_for_user job: the answer is
// appended to the checkpointed conversation, resumed_count is incremented,
// and the job goes back to queued.
func (s *Store) Respond(ctx context.Context, jobID, answer string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := tx.Job.Query().
		Where(job.IDEQ(jobID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load job: %w", err)
	}
	if current.Status != job.StatusWaitingForUser {
		return &InvalidTransitionError{JobID: jobID, From: string(current.Status), To: string(job.StatusQueued)}
	}

	var state agent.ExecutionState
	if len(current.ExecutionState) > 0 {
		if err := json.Unmarshal(current.ExecutionState, &state); err != nil {
			return fmt.Errorf("failed to decode execution state: %w", err)
		}
	}

	state.ConversationHistory = append(state.ConversationHistory, userAnswerMessage(answer))
	state.ResumedCount++
	state.LastCheckpointAt = time.Now().UTC()

	blob, err := json.Marshal(&state)
	if err != nil {
		return fmt.Errorf("failed to marshal execution state: %w", err)
	}

	if err := current.Update().
		SetStatus(job.StatusQueued).
		SetExecutionState(blob).
		SetUserAnswer(answer).
		ClearAgentQuestion().
		ClearPausedAt().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to requeue job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit respond: %w", err)
	}
	return nil
}

// Cancel transitions queued or waiting_for_user → cancelled. A job already
// claimed by a worker cannot be cancelled.
func (s *Store) Cancel(ctx context.Context, jobID string) error {
	n, err := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusIn(job.StatusQueued, job.StatusWaitingForUser),
		).
		SetStatus(job.StatusCancelled).
		SetCompletedAt(time.Now()).
		ClearAgentQuestion().
		ClearPausedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel job: %w", err)
	}
	if n == 0 {
		return s.transitionConflict(ctx, jobID, job.StatusCancelled)
	}
	return nil
}

// transitionConflict distinguishes not-found, idempotent repeats, and real
// lattice violations after a zero-row conditional update.
func (s *Store) transitionConflict(ctx context.Context, jobID string, target job.Status) error {
	current, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load job: %w", err)
	}
	if current.Status == target {
		return nil
	}
	return &InvalidTransitionError{JobID: jobID, From: string(current.Status), To: string(target)}
}

// Get loads one job.
func (s *Store) Get(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	return j, nil
}

// ListParams filters List.
type ListParams struct {
	APIKeyID string
	Status   string
	Limit    int
	Offset   int
}

// List returns jobs newest-first.
func (s *Store) List(ctx context.Context, params ListParams) ([]*ent.Job, int, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	q := s.client.Job.Query()
	if params.APIKeyID != "" {
		q = q.Where(job.APIKeyIDEQ(params.APIKeyID))
	}
	if params.Status != "" {
		q = q.Where(job.StatusEQ(job.Status(params.Status)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	jobs, err := q.
		Order(ent.Desc(job.FieldCreatedAt)).
		Limit(limit).
		Offset(params.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, total, nil
}

// SetDiscoveredTools writes the package names surfaced by discover_tools.
func (s *Store) SetDiscoveredTools(ctx context.Context, jobID string, names []string) error {
	if err := s.client.Job.UpdateOneID(jobID).
		SetToolsDiscovered(names).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set discovered tools: %w", err)
	}
	return nil
}

// AppendLog appends one entry to the job's log stream. Best-effort: every
// failure path logs a warning and returns, log writes never fail a job.
// Appends are rejected once the job has been terminal for longer than the
// grace period; reads stay valid forever.
func (s *Store) AppendLog(ctx context.Context, jobID, level, message string, metadata map[string]interface{}) {
	owner, err := s.client.Job.Query().
		Where(job.IDEQ(jobID)).
		Select(job.FieldStatus, job.FieldCompletedAt).
		Only(ctx)
	if err != nil {
		s.logger.Warn("Log append dropped: job lookup failed", "job_id", jobID, "error", err)
		return
	}
	if isTerminal(owner.Status) && owner.CompletedAt != nil &&
		time.Since(*owner.CompletedAt) > terminalLogGrace {
		s.logger.Warn("Log append dropped: job is terminal past grace period", "job_id", jobID)
		return
	}

	err = withTx(ctx, s.client, func(tx *ent.Tx) error {
		seq, err := tx.JobLog.Query().
			Where(joblog.JobIDEQ(jobID)).
			Aggregate(ent.Max(joblog.FieldSequenceNumber)).
			Int(ctx)
		if err != nil {
			// Max over zero rows scans NULL; start the stream at 1.
			seq = 0
		}

		builder := tx.JobLog.Create().
			SetID(uuid.New().String()).
			SetJobID(jobID).
			SetSequenceNumber(seq + 1).
			SetLevel(joblog.Level(level)).
			SetMessage(message)
		if metadata != nil {
			builder.SetMetadata(metadata)
		}
		return builder.Exec(ctx)
	})
	if err != nil {
		s.logger.Warn("Log append failed", "job_id", jobID, "error", err)
	}
}

// ListLogs returns a job's log entries in sequence order.
func (s *Store) ListLogs(ctx context.Context, jobID string, limit, offset int) ([]*ent.JobLog, int, error) {
	if limit <= 0 || limit > 1000 {
		limit = 1000
	}

	q := s.client.JobLog.Query().Where(joblog.JobIDEQ(jobID))

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count logs: %w", err)
	}

	logs, err := q.
		Order(ent.Asc(joblog.FieldSequenceNumber)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list logs: %w", err)
	}
	return logs, total, nil
}

// RecordArtifact persists one produced-artifact row. Like log appends, it is
// rejected once the job has been terminal for longer than the grace period.
func (s *Store) RecordArtifact(ctx context.Context, jobID, filename, mimeType, storagePath, publicURL string, sizeBytes int64) error {
	owner, err := s.client.Job.Query().
		Where(job.IDEQ(jobID)).
		Select(job.FieldStatus, job.FieldCompletedAt).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to look up artifact owner: %w", err)
	}
	if isTerminal(owner.Status) && owner.CompletedAt != nil &&
		time.Since(*owner.CompletedAt) > terminalLogGrace {
		return fmt.Errorf("artifact rejected: job %s is terminal past grace period", jobID)
	}

	if err := s.client.JobArtifact.Create().
		SetID(uuid.New().String()).
		SetJobID(jobID).
		SetFilename(filename).
		SetMimeType(mimeType).
		SetStoragePath(storagePath).
		SetPublicURL(publicURL).
		SetSizeBytes(sizeBytes).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to record artifact: %w", err)
	}
	return nil
}

// ListArtifacts returns a job's artifacts.
func (s *Store) ListArtifacts(ctx context.Context, jobID string) ([]*ent.JobArtifact, error) {
	artifacts, err := s.client.JobArtifact.Query().
		Where(jobartifact.JobIDEQ(jobID)).
		Order(ent.Asc(jobartifact.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	return artifacts, nil
}

// CreateAttachment records an uploaded input file, optionally pre-bound to a job.
func (s *Store) CreateAttachment(ctx context.Context, jobID, filename, mimeType, storagePath, publicURL string, sizeBytes int64) (*ent.JobAttachment, error) {
	builder := s.client.JobAttachment.Create().
		SetID(uuid.New().String()).
		SetFilename(filename).
		SetMimeType(mimeType).
		SetStoragePath(storagePath).
		SetPublicURL(publicURL).
		SetSizeBytes(sizeBytes)
	if jobID != "" {
		builder.SetJobID(jobID)
	}

	att, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment: %w", err)
	}
	return att, nil
}

// ListAttachments returns a job's input files.
func (s *Store) ListAttachments(ctx context.Context, jobID string) ([]*ent.JobAttachment, error) {
	attachments, err := s.client.JobAttachment.Query().
		Where(jobattachment.JobIDEQ(jobID)).
		Order(ent.Asc(jobattachment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return attachments, nil
}

// RecoverStale releases running jobs whose lease has gone stale: started
// longer ago than the threshold and owned by a worker whose heartbeat marks
// it dead. Jobs with retries left go back to queued with retry_count
// incremented; exhausted jobs fail with "worker lost". Safe to run
// concurrently from every worker: each transition is a CAS keyed on the
// observed worker id, so a second sweep finds nothing left to do.
func (s *Store) RecoverStale(ctx context.Context, threshold time.Duration) (int, error) {
	cutoff := time.Now().Add(-threshold)

	stale, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.StartedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale jobs: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	deadWorkers, err := s.deadWorkerSet(ctx)
	if err != nil {
		return 0, err
	}

	recovered := 0
	for _, j := range stale {
		if j.WorkerID == nil || !deadWorkers[*j.WorkerID] {
			continue
		}

		if j.RetryCount < j.MaxRetries {
			n, err := s.client.Job.Update().
				Where(
					job.IDEQ(j.ID),
					job.StatusEQ(job.StatusRunning),
					job.WorkerIDEQ(*j.WorkerID),
				).
				SetStatus(job.StatusQueued).
				ClearWorkerID().
				ClearStartedAt().
				AddRetryCount(1).
				Save(ctx)
			if err != nil {
				s.logger.Error("Failed to release stale job", "job_id", j.ID, "error", err)
				continue
			}
			if n > 0 {
				s.logger.Warn("Stale job released back to queue",
					"job_id", j.ID, "worker_id", *j.WorkerID, "retry_count", j.RetryCount+1)
				recovered++
			}
			continue
		}

		n, err := s.client.Job.Update().
			Where(
				job.IDEQ(j.ID),
				job.StatusEQ(job.StatusRunning),
				job.WorkerIDEQ(*j.WorkerID),
			).
			SetStatus(job.StatusFailed).
			SetErrorMessage("worker lost").
			SetCompletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			s.logger.Error("Failed to fail stale job", "job_id", j.ID, "error", err)
			continue
		}
		if n > 0 {
			s.logger.Warn("Stale job failed: retries exhausted",
				"job_id", j.ID, "worker_id", *j.WorkerID)
			recovered++
		}
	}

	return recovered, nil
}

// deadWorkerSet returns the ids of workers whose heartbeat is past the dead
// threshold (or which have been explicitly marked dead).
func (s *Store) deadWorkerSet(ctx context.Context) (map[string]bool, error) {
	workers, err := s.client.WorkerNode.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}

	now := time.Now()
	dead := make(map[string]bool)
	for _, w := range workers {
		if w.Status == workernode.StatusDead || WorkerHealthFor(w.LastHeartbeat, now) == "dead" {
			dead[w.ID] = true
		}
	}
	return dead, nil
}

// UpsertWorker registers or refreshes a worker record (heartbeat).
func (s *Store) UpsertWorker(ctx context.Context, workerID, hostname, version string, status workernode.Status, activeJobs int) error {
	err := s.client.WorkerNode.Create().
		SetID(workerID).
		SetHostname(hostname).
		SetVersion(version).
		SetStatus(status).
		SetActiveJobs(activeJobs).
		SetLastHeartbeat(time.Now()).
		OnConflictColumns(workernode.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert worker: %w", err)
	}
	return nil
}

// MarkWorkerDead finalizes a worker record at shutdown.
func (s *Store) MarkWorkerDead(ctx context.Context, workerID string) error {
	if err := s.client.WorkerNode.UpdateOneID(workerID).
		SetStatus(workernode.StatusDead).
		SetActiveJobs(0).
		Exec(ctx); err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to mark worker dead: %w", err)
	}
	return nil
}

// ListWorkers returns all worker registrations.
func (s *Store) ListWorkers(ctx context.Context) ([]*ent.WorkerNode, error) {
	workers, err := s.client.WorkerNode.Query().
		Order(ent.Desc(workernode.FieldLastHeartbeat)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}

// ReleaseWorkerJobs requeues every running job owned by the given worker,
// incrementing its retry count; a job already at max retries is failed with
// "worker lost" instead. Returns the number requeued. Called once at startup so a crashed previous run of this worker does not
// strand its leases for the full stale-sweep window.
func (s *Store) ReleaseWorkerJobs(ctx context.Context, workerID string) (int, error) {
	owned, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.WorkerIDEQ(workerID),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query worker jobs: %w", err)
	}

	released := 0
	for _, j := range owned {
		if j.RetryCount >= j.MaxRetries {
			if err := s.Fail(ctx, j.ID, "worker lost"); err != nil {
				s.logger.Error("Failed to fail startup orphan", "job_id", j.ID, "error", err)
			}
			continue
		}
		n, err := s.client.Job.Update().
			Where(job.IDEQ(j.ID), job.StatusEQ(job.StatusRunning), job.WorkerIDEQ(workerID)).
			SetStatus(job.StatusQueued).
			ClearWorkerID().
			ClearStartedAt().
			AddRetryCount(1).
			Save(ctx)
		if err != nil {
			s.logger.Error("Failed to release startup orphan", "job_id", j.ID, "error", err)
			continue
		}
		released += n
	}
	return released, nil
}

// isTerminal reports whether a status admits no further transitions.
func isTerminal(status job.Status) bool {
	switch status {
	case job.StatusCompleted, job.StatusFailed, job.StatusCancelled:
		return true
	default:
		return false
	}
}

// withTx runs fn inside a transaction, committing on success.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// userAnswerMessage shapes a HITL answer as the next user turn.
func userAnswerMessage(answer string) llm.Message {
	return llm.Message{Role: llm.RoleUser, Content: answer}
}
