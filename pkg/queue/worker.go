package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Mootbing/angine/ent"
	"github.com/Mootbing/angine/ent/workernode"
	"github.com/Mootbing/angine/pkg/agent"
	"github.com/Mootbing/angine/pkg/config"
	"github.com/Mootbing/angine/pkg/metrics"
	"github.com/Mootbing/angine/pkg/notify"
	"github.com/Mootbing/angine/pkg/version"
)

// Runtime is the worker: it polls the queue, leases jobs up to its
// concurrency bound, drives the agent loop for each, heartbeats its
// registration, and sweeps stale leases left by dead workers.
type Runtime struct {
	workerID string
	hostname string
	store    *Store
	loop     *agent.Loop
	cfg      config.WorkerConfig
	notifier *notify.Service
	logger   *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup // background loops
	jobWg    sync.WaitGroup // in-flight job tasks

	mu           sync.Mutex
	active       map[string]context.CancelFunc
	shuttingDown bool
}

// NewRuntime creates a worker runtime. notifier may be nil.
func NewRuntime(workerID, hostname string, store *Store, loop *agent.Loop, cfg config.WorkerConfig, notifier *notify.Service) *Runtime {
	return &Runtime{
		workerID: workerID,
		hostname: hostname,
		store:    store,
		loop:     loop,
		cfg:      cfg,
		notifier: notifier,
		logger:   slog.Default().With("component", "worker", "worker_id", workerID),
		stopCh:   make(chan struct{}),
		active:   map[string]context.CancelFunc{},
	}
}

// Start releases any leases left by a previous run of this worker id,
// registers the worker, and launches the poll, heartbeat, and stale-sweep
// loops.
func (r *Runtime) Start(ctx context.Context) error {
	released, err := r.store.ReleaseWorkerJobs(ctx, r.workerID)
	if err != nil {
		return fmt.Errorf("startup lease recovery failed: %w", err)
	}
	if released > 0 {
		r.logger.Warn("Released leases from previous run", "count", released)
	}

	if err := r.heartbeat(ctx); err != nil {
		return fmt.Errorf("initial heartbeat failed: %w", err)
	}

	r.wg.Add(3)
	go r.pollLoop(ctx)
	go r.heartbeatLoop(ctx)
	go r.sweepLoop(ctx)

	r.logger.Info("Worker started", "concurrency", r.cfg.Concurrency)
	return nil
}

// pollLoop claims jobs while capacity allows and spawns one task per job.
func (r *Runtime) pollLoop(ctx context.Context) {
	defer r.wg.Done()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		if r.activeCount() < r.cfg.Concurrency {
			claimed, err := r.store.ClaimNext(ctx, r.workerID)
			switch {
			case err == nil:
				metrics.JobsClaimed.Inc()
				r.jobWg.Add(1)
				go r.runJob(claimed)
				continue // look for more work before sleeping
			case errors.Is(err, ErrNoJobsAvailable):
				// fall through to sleep
			case ctx.Err() != nil:
				return
			default:
				r.logger.Error("Claim failed", "error", err)
			}
		}

		r.sleep(r.pollInterval())
	}
}

// runJob executes one claimed job through the agent loop and applies the
// resulting transition. The job context is detached from the poll loop so
// shutdown can drain jobs before cancelling them.
func (r *Runtime) runJob(j *ent.Job) {
	defer r.jobWg.Done()

	timeout := time.Duration(j.TimeoutSeconds) * time.Second
	jobCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	r.register(j.ID, cancel)
	defer func() {
		r.unregister(j.ID)
		// Refresh the registration so the recorded active-job count drops as
		// soon as the slot frees, not on the next heartbeat tick.
		hbCtx, hbCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer hbCancel()
		if err := r.heartbeat(hbCtx); err != nil {
			r.logger.Warn("Post-job heartbeat failed", "error", err)
		}
	}()

	metrics.ActiveJobs.Inc()
	defer metrics.ActiveJobs.Dec()

	log := r.logger.With("job_id", j.ID)
	r.store.AppendLog(jobCtx, j.ID, "info", "worker started job",
		map[string]interface{}{"worker_id": r.workerID})

	input, err := buildJobInput(jobCtx, r.store, j)
	if err != nil {
		log.Error("Failed to build job input", "error", err)
		r.failJob(j, fmt.Sprintf("failed to prepare job: %v", err))
		return
	}

	outcome, runErr := r.loop.Run(jobCtx, input)

	// Terminal store writes use a background context: the job context may
	// already be cancelled or expired.
	finishCtx, finishCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer finishCancel()

	switch {
	case runErr == nil && outcome.Kind == agent.OutcomeFinal:
		if err := r.store.Complete(finishCtx, j.ID, outcome.Result); err != nil {
			log.Error("Failed to complete job", "error", err)
			return
		}
		metrics.JobsFinished.WithLabelValues("completed").Inc()
		r.store.AppendLog(finishCtx, j.ID, "info", "job completed", nil)
		r.notifier.NotifyJobFinished(finishCtx, notify.JobFinishedInput{
			JobID: j.ID, Status: "completed", Result: outcome.Result,
		})
		log.Info("Job completed")

	case runErr == nil && outcome.Kind == agent.OutcomeAskUser:
		if err := r.store.Park(finishCtx, j.ID, outcome.Question, outcome.State); err != nil {
			log.Error("Failed to park job", "error", err)
			return
		}
		metrics.JobsFinished.WithLabelValues("parked").Inc()
		r.store.AppendLog(finishCtx, j.ID, "info", "job waiting for user response", nil)
		r.notifier.NotifyJobWaiting(finishCtx, notify.JobWaitingInput{
			JobID: j.ID, Question: outcome.Question,
		})
		log.Info("Job parked for user response")

	case errors.Is(runErr, context.Canceled):
		// Shutdown cancellation: hand the lease back untouched so another
		// worker resumes the job.
		if err := r.store.Release(finishCtx, j.ID); err != nil {
			log.Error("Failed to release cancelled job", "error", err)
			return
		}
		metrics.JobsFinished.WithLabelValues("released").Inc()
		r.store.AppendLog(finishCtx, j.ID, "warn", "job released: worker shutting down", nil)
		log.Warn("Job released on cancellation")

	case errors.Is(runErr, context.DeadlineExceeded):
		r.failJob(j, fmt.Sprintf("job timed out after %ds", j.TimeoutSeconds))

	default:
		r.failJob(j, runErr.Error())
	}
}

// failJob fails a job with a diagnostic, logging secondary errors only.
func (r *Runtime) failJob(j *ent.Job, errorMessage string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := r.store.Fail(ctx, j.ID, errorMessage); err != nil {
		r.logger.Error("Failed to fail job", "job_id", j.ID, "error", err)
		return
	}
	metrics.JobsFinished.WithLabelValues("failed").Inc()
	r.store.AppendLog(ctx, j.ID, "error", "job failed: "+errorMessage, nil)
	r.notifier.NotifyJobFinished(ctx, notify.JobFinishedInput{
		JobID: j.ID, Status: "failed", ErrorMessage: errorMessage,
	})
	r.logger.Warn("Job failed", "job_id", j.ID, "error", errorMessage)
}

// heartbeatLoop refreshes the worker registration on the configured cadence.
func (r *Runtime) heartbeatLoop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.heartbeat(ctx); err != nil {
				r.logger.Warn("Heartbeat failed", "error", err)
			}
		}
	}
}

// heartbeat upserts the worker record with current status and load.
func (r *Runtime) heartbeat(ctx context.Context) error {
	status := workernode.StatusActive
	r.mu.Lock()
	if r.shuttingDown {
		status = workernode.StatusDraining
	}
	activeJobs := len(r.active)
	r.mu.Unlock()

	return r.store.UpsertWorker(ctx, r.workerID, r.hostname, version.Full(), status, activeJobs)
}

// sweepLoop runs the stale-lease recovery on every worker; the store makes
// the recovery idempotent under concurrent sweeps.
func (r *Runtime) sweepLoop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.StaleSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := r.store.RecoverStale(ctx, r.cfg.StaleThreshold)
			if err != nil {
				r.logger.Error("Stale-lease sweep failed", "error", err)
				continue
			}
			if count > 0 {
				metrics.StaleJobsRecovered.Add(float64(count))
				r.logger.Warn("Stale leases recovered", "count", count)
			}
		}
	}
}

// Shutdown drains the worker: polling stops, one draining heartbeat goes
// out, active jobs get ShutdownTimeout to finish, stragglers are cancelled
// (and thereby released, not failed), and the registration is marked dead.
func (r *Runtime) Shutdown(ctx context.Context) {
	r.logger.Info("Worker shutting down")

	r.mu.Lock()
	r.shuttingDown = true
	r.mu.Unlock()

	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()

	if err := r.heartbeat(ctx); err != nil {
		r.logger.Warn("Draining heartbeat failed", "error", err)
	}

	if !r.waitJobs(r.cfg.ShutdownTimeout) {
		r.logger.Warn("Shutdown timeout reached, cancelling remaining jobs",
			"remaining", r.activeCount())
		r.cancelAll()
		if !r.waitJobs(10 * time.Second) {
			r.logger.Error("Jobs still running after cancellation wait")
		}
	}

	if err := r.store.MarkWorkerDead(ctx, r.workerID); err != nil {
		r.logger.Warn("Failed to mark worker dead", "error", err)
	}
	r.logger.Info("Worker stopped")
}

// waitJobs waits for all in-flight jobs up to the given duration.
func (r *Runtime) waitJobs(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		r.jobWg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (r *Runtime) cancelAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, cancel := range r.active {
		r.logger.Warn("Cancelling job", "job_id", id)
		cancel()
	}
}

func (r *Runtime) register(jobID string, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[jobID] = cancel
}

func (r *Runtime) unregister(jobID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, jobID)
}

func (r *Runtime) activeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

// sleep waits for d or until stop is signalled.
func (r *Runtime) sleep(d time.Duration) {
	select {
	case <-r.stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the poll duration with ±20% jitter so multiple
// workers do not stampede the claim query in lockstep.
func (r *Runtime) pollInterval() time.Duration {
	base := r.cfg.PollInterval
	jitter := base / 5
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}
