package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Mootbing/angine/pkg/llm"
	"github.com/Mootbing/angine/pkg/metrics"
)

// Loop drives one job's conversation against the chat provider.
type Loop struct {
	deps *Deps
}

// NewLoop creates an agent loop with the given collaborators.
func NewLoop(deps *Deps) *Loop {
	return &Loop{deps: deps}
}

// Run drives the conversation until a final answer, an ask_user pause, or a
// failure. Errors (including cancellation) are returned to the worker, which
// decides between fail and release. The job's sandbox, if created, is torn
// down on every exit path.
func (l *Loop) Run(ctx context.Context, job *JobInput) (*Outcome, error) {
	ex := newToolExecutor(l.deps, job)
	defer ex.teardown()

	attachmentNames := ex.loadAttachments(ctx, job.Attachments)

	messages := l.buildConversation(ctx, job, attachmentNames)
	tools := toolInventory()

	for iteration := 0; iteration < MaxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		metrics.AgentIterations.Inc()

		assistant, _, err := l.deps.LLM.ChatCompletion(ctx, &llm.ChatRequest{
			Model:      job.Model,
			Messages:   messages,
			Tools:      tools,
			ToolChoice: "auto",
			MaxTokens:  4096,
		})
		if err != nil {
			return nil, fmt.Errorf("chat completion failed on iteration %d: %w", iteration+1, err)
		}

		messages = append(messages, *assistant)

		if len(assistant.ToolCalls) == 0 {
			if strings.TrimSpace(assistant.Content) == "" {
				return nil, fmt.Errorf("model returned an empty message with no tool calls")
			}
			// The model should finish via final_answer; accept bare text as a
			// final answer anyway rather than burning iterations.
			l.deps.Logs.Append(ctx, job.ID, "warn",
				"model produced a final response without calling final_answer", nil)
			ex.persistArtifacts(ctx)
			return &Outcome{Kind: OutcomeFinal, Result: assistant.Content}, nil
		}

		// Tool calls execute sequentially in the order the model returned them.
		for _, call := range assistant.ToolCalls {
			res := ex.execute(ctx, call)

			if res.isFinal {
				ex.persistArtifacts(ctx)
				return &Outcome{Kind: OutcomeFinal, Result: res.final}, nil
			}
			if res.isAsk {
				ex.persistArtifacts(ctx)
				return &Outcome{
					Kind:     OutcomeAskUser,
					Question: res.askUser,
					State:    l.buildState(job, messages, ex),
				}, nil
			}

			content := res.content
			if res.isError {
				content = "tool error: " + content
			}
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				Content:    content,
				ToolCallID: call.ID,
				Name:       call.Function.Name,
			})
		}
	}

	return nil, ErrMaxIterations
}

// buildConversation assembles the message history for this drive. A fresh
// job gets the workflow system prompt plus the task; a resumed job replays
// the checkpointed history verbatim with the user's answer as the newest
// user message.
func (l *Loop) buildConversation(ctx context.Context, job *JobInput, attachmentNames []string) []llm.Message {
	if job.State != nil && len(job.State.ConversationHistory) > 0 && job.UserAnswer != "" {
		messages := append([]llm.Message{}, job.State.ConversationHistory...)

		// respond() already appends the answer into the checkpoint; only add
		// it here if an older checkpoint predates that behavior.
		last := messages[len(messages)-1]
		if last.Role != llm.RoleUser || !strings.Contains(last.Content, job.UserAnswer) {
			messages = append(messages, llm.Message{Role: llm.RoleUser, Content: job.UserAnswer})
		}

		l.deps.Logs.Append(ctx, job.ID, "info",
			fmt.Sprintf("resuming with %d previous messages", len(job.State.ConversationHistory)), nil)
		return messages
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: buildSystemPrompt(job.HITLMode, attachmentNames)},
	}

	task := job.Task
	if job.UserAnswer != "" {
		task += "\n\nEarlier answer from the user: " + job.UserAnswer
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: task})
	return messages
}

// buildState captures the full message history verbatim so the next round is
// a faithful continuation.
func (l *Loop) buildState(job *JobInput, messages []llm.Message, ex *toolExecutor) *ExecutionState {
	resumedCount := 0
	files := ex.stagedFilenames()
	if job.State != nil {
		resumedCount = job.State.ResumedCount
		files = mergeStrings(job.State.FilesProduced, files)
	}

	return &ExecutionState{
		Checkpoint:          CheckpointV1,
		ConversationHistory: messages,
		FilesProduced:       files,
		PackagesInstalled:   ex.installedPackageNames(),
		ResumedCount:        resumedCount,
		LastCheckpointAt:    time.Now().UTC(),
	}
}

// mergeStrings unions two string slices preserving first-seen order.
func mergeStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range append(append([]string{}, a...), b...) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
