// Package metrics exposes Prometheus instrumentation for the engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts admitted/rejected API requests by outcome:
	// ok, unauthorized, forbidden, rate_limited.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "angine",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "API admission outcomes.",
	}, []string{"outcome"})

	// JobsClaimed counts successful claims.
	JobsClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "angine",
		Subsystem: "queue",
		Name:      "jobs_claimed_total",
		Help:      "Jobs claimed by this worker.",
	})

	// JobsFinished counts terminal and park outcomes by kind:
	// completed, failed, parked, released.
	JobsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "angine",
		Subsystem: "queue",
		Name:      "jobs_finished_total",
		Help:      "Job execution outcomes.",
	}, []string{"outcome"})

	// StaleJobsRecovered counts jobs released or failed by the stale-lease sweep.
	StaleJobsRecovered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "angine",
		Subsystem: "queue",
		Name:      "stale_jobs_recovered_total",
		Help:      "Jobs recovered from dead workers.",
	})

	// ActiveJobs tracks the number of jobs currently executing in-process.
	ActiveJobs = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "angine",
		Subsystem: "queue",
		Name:      "active_jobs",
		Help:      "Jobs currently executing on this worker.",
	})

	// AgentIterations counts agent loop iterations.
	AgentIterations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "angine",
		Subsystem: "agent",
		Name:      "iterations_total",
		Help:      "Agent loop iterations executed.",
	})

	// ToolCalls counts tool executions by tool name and status (ok/error).
	ToolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "angine",
		Subsystem: "agent",
		Name:      "tool_calls_total",
		Help:      "Tool executions by name and status.",
	}, []string{"tool", "status"})
)
