// Package agent implements the tool-using conversation loop that drives a
// chat-completion model until it produces a final answer, asks the user a
// question, or fails.
package agent

import (
	"context"
	"errors"
	"time"

	"github.com/Mootbing/angine/pkg/discovery"
	"github.com/Mootbing/angine/pkg/llm"
	"github.com/Mootbing/angine/pkg/sandbox"
)

// MaxIterations is the hard cap on conversation turns per drive.
const MaxIterations = 20

// ErrMaxIterations is returned when the loop exhausts its iteration budget
// without a final answer or an ask_user.
var ErrMaxIterations = errors.New("max iterations reached")

// HITL modes. They influence the system prompt, not the loop mechanics.
const (
	HITLPlanApproval = "plan_approval"
	HITLAutoExecute  = "auto_execute"
	HITLAlwaysAsk    = "always_ask"
)

// OutcomeKind tags the loop result.
type OutcomeKind string

// Loop outcomes.
const (
	OutcomeFinal   OutcomeKind = "final"
	OutcomeAskUser OutcomeKind = "ask_user"
)

// Outcome is the terminal result of one drive of the loop. Failures are
// returned as errors from Run, not as an Outcome.
type Outcome struct {
	Kind     OutcomeKind
	Result   string          // final answer text (OutcomeFinal)
	Question string          // question for the user (OutcomeAskUser)
	State    *ExecutionState // checkpoint to park with (OutcomeAskUser)
}

// JobInput is the slice of a job the loop needs. The worker runtime maps the
// persisted row into this; the loop never touches the database directly.
type JobInput struct {
	ID             string
	Task           string
	Model          string
	HITLMode       string
	TimeoutSeconds int

	// UserAnswer is the most recent HITL response, set on resumed jobs.
	UserAnswer string

	// State is the parked checkpoint; nil for a fresh job.
	State *ExecutionState

	Attachments []AttachmentRef
}

// AttachmentRef points at one caller-supplied input file.
type AttachmentRef struct {
	Filename  string
	MimeType  string
	PublicURL string
	SizeBytes int64
}

// ChatClient is the loop's view of the chat provider.
type ChatClient interface {
	ChatCompletion(ctx context.Context, req *llm.ChatRequest) (*llm.Message, *llm.Usage, error)
}

// Downloader fetches attachment bodies from the object store.
type Downloader interface {
	Download(ctx context.Context, publicURL string, maxBytes int64) ([]byte, error)
}

// ArtifactUploader persists staged files when the loop exits.
type ArtifactUploader interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// LogSink appends to the job's log stream. Implementations are best-effort;
// append failures never propagate into the loop.
type LogSink interface {
	Append(ctx context.Context, jobID, level, message string, metadata map[string]interface{})
}

// ArtifactSink records produced artifact rows.
type ArtifactSink interface {
	Record(ctx context.Context, jobID, filename, mimeType, storagePath, publicURL string, sizeBytes int64) error
}

// Deps wires the loop's external collaborators. Discovery and Notify-style
// extras may be nil; the corresponding tools degrade to a tool error.
type Deps struct {
	LLM       ChatClient
	Sandboxes sandbox.Provider
	Storage   interface {
		Downloader
		ArtifactUploader
	}
	Discovery discovery.Service
	Logs      LogSink
	Artifacts ArtifactSink

	// OnToolsDiscovered is invoked with package names surfaced by
	// discover_tools so the worker can persist them on the job. Optional.
	OnToolsDiscovered func(ctx context.Context, jobID string, names []string)
}

// ExecutionState is the serializable checkpoint captured when parking a job.
// The blob is owned entirely by this package; the checkpoint tag versions
// its schema.
type ExecutionState struct {
	Checkpoint          string        `json:"checkpoint"`
	ConversationHistory []llm.Message `json:"conversation_history"`
	FilesProduced       []string      `json:"files_produced"`
	PackagesInstalled   []string      `json:"packages_installed"`
	ResumedCount        int           `json:"resumed_count"`
	LastCheckpointAt    time.Time     `json:"last_checkpoint_at"`
}

// CheckpointV1 is the current checkpoint schema tag.
const CheckpointV1 = "v1"
