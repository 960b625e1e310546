// Package notify delivers Slack notifications for job lifecycle events.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token   string
	Channel string
}

// JobFinishedInput contains data for a terminal job notification.
type JobFinishedInput struct {
	JobID        string
	Status       string // completed, failed, cancelled
	Result       string
	ErrorMessage string
}

// JobWaitingInput contains data for a HITL pause notification.
type JobWaitingInput struct {
	JobID    string
	Question string
}

// Service handles Slack notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	api     *goslack.Client
	channel string
	logger  *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		api:     goslack.New(cfg.Token),
		channel: cfg.Channel,
		logger:  slog.Default().With("component", "notify"),
	}
}

// NewServiceWithAPIURL creates a Service that targets a custom Slack API URL.
// Useful for testing with a mock server.
func NewServiceWithAPIURL(token, channel, apiURL string) *Service {
	return &Service{
		api:     goslack.New(token, goslack.OptionAPIURL(apiURL)),
		channel: channel,
		logger:  slog.Default().With("component", "notify"),
	}
}

// NotifyJobFinished sends a terminal-status notification.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyJobFinished(ctx context.Context, input JobFinishedInput) {
	if s == nil {
		return
	}

	var text string
	switch input.Status {
	case "completed":
		text = fmt.Sprintf(":white_check_mark: Job `%s` completed\n%s",
			input.JobID, truncate(input.Result, 500))
	case "failed":
		text = fmt.Sprintf(":x: Job `%s` failed\n%s",
			input.JobID, truncate(input.ErrorMessage, 500))
	default:
		text = fmt.Sprintf(":no_entry_sign: Job `%s` %s", input.JobID, input.Status)
	}

	s.post(ctx, input.JobID, text)
}

// NotifyJobWaiting sends a notification that a job is parked on a question.
func (s *Service) NotifyJobWaiting(ctx context.Context, input JobWaitingInput) {
	if s == nil {
		return
	}
	text := fmt.Sprintf(":question: Job `%s` is waiting for a response\n> %s",
		input.JobID, truncate(input.Question, 500))
	s.post(ctx, input.JobID, text)
}

func (s *Service) post(ctx context.Context, jobID, text string) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, _, err := s.api.PostMessageContext(ctx, s.channel,
		goslack.MsgOptionText(text, false))
	if err != nil {
		s.logger.Warn("Failed to send Slack notification", "job_id", jobID, "error", err)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
