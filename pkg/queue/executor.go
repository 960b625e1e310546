package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Mootbing/angine/ent"
	"github.com/Mootbing/angine/pkg/agent"
)

// storeLogSink adapts Store.AppendLog to the agent loop's LogSink.
type storeLogSink struct {
	store *Store
}

func (s *storeLogSink) Append(ctx context.Context, jobID, level, message string, metadata map[string]interface{}) {
	s.store.AppendLog(ctx, jobID, level, message, metadata)
}

// storeArtifactSink adapts Store.RecordArtifact to the agent loop's ArtifactSink.
type storeArtifactSink struct {
	store *Store
}

func (s *storeArtifactSink) Record(ctx context.Context, jobID, filename, mimeType, storagePath, publicURL string, sizeBytes int64) error {
	return s.store.RecordArtifact(ctx, jobID, filename, mimeType, storagePath, publicURL, sizeBytes)
}

// WireAgentDeps completes the agent dependency set with store-backed sinks.
func WireAgentDeps(store *Store, deps agent.Deps) *agent.Deps {
	deps.Logs = &storeLogSink{store: store}
	deps.Artifacts = &storeArtifactSink{store: store}
	deps.OnToolsDiscovered = func(ctx context.Context, jobID string, names []string) {
		if err := store.SetDiscoveredTools(ctx, jobID, names); err != nil {
			slog.Warn("Failed to persist discovered tools", "job_id", jobID, "error", err)
		}
	}
	return &deps
}

// buildJobInput maps a claimed job row (plus its attachments) into the agent
// loop's input.
func buildJobInput(ctx context.Context, store *Store, j *ent.Job) (*agent.JobInput, error) {
	input := &agent.JobInput{
		ID:             j.ID,
		Task:           j.Task,
		Model:          j.Model,
		HITLMode:       string(j.HitlMode),
		TimeoutSeconds: j.TimeoutSeconds,
	}
	if j.UserAnswer != nil {
		input.UserAnswer = *j.UserAnswer
	}

	if len(j.ExecutionState) > 0 {
		var state agent.ExecutionState
		if err := json.Unmarshal(j.ExecutionState, &state); err != nil {
			return nil, fmt.Errorf("failed to decode execution state: %w", err)
		}
		input.State = &state
	}

	attachments, err := store.ListAttachments(ctx, j.ID)
	if err != nil {
		return nil, err
	}
	for _, att := range attachments {
		input.Attachments = append(input.Attachments, agent.AttachmentRef{
			Filename:  att.Filename,
			MimeType:  att.MimeType,
			PublicURL: att.PublicURL,
			SizeBytes: att.SizeBytes,
		})
	}

	return input, nil
}
