package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mootbing/angine/pkg/llm"
)

func TestRun_FinalAnswer(t *testing.T) {
	chat := &fakeChat{script: []llm.Message{
		assistantToolCall("call-1", "final_answer", `{"answer":"4"}`),
	}}
	deps, _, _, _, _ := newTestDeps(chat)

	outcome, err := NewLoop(deps).Run(context.Background(), testJob())
	require.NoError(t, err)
	assert.Equal(t, OutcomeFinal, outcome.Kind)
	assert.Equal(t, "4", outcome.Result)

	// Request carried the tool inventory and auto tool choice.
	require.Len(t, chat.requests, 1)
	req := chat.requests[0]
	assert.Equal(t, "auto", req.ToolChoice)
	assert.Len(t, req.Tools, 7)
	assert.Equal(t, llm.RoleSystem, req.Messages[0].Role)
	assert.Equal(t, llm.RoleUser, req.Messages[1].Role)
}

func TestRun_RunPythonThenFinal(t *testing.T) {
	chat := &fakeChat{script: []llm.Message{
		assistantToolCall("call-1", "run_python", `{"code":"print(2+2)"}`),
		assistantToolCall("call-2", "final_answer", `{"answer":"4"}`),
	}}
	deps, _, _, _, sandboxes := newTestDeps(chat)

	outcome, err := NewLoop(deps).Run(context.Background(), testJob())
	require.NoError(t, err)
	assert.Equal(t, OutcomeFinal, outcome.Kind)

	// One sandbox created lazily, script written to the fixed path, and the
	// sandbox torn down on exit.
	require.Len(t, sandboxes.created, 1)
	sbx := sandboxes.created[0]
	assert.Equal(t, "print(2+2)", sbx.files[scriptPath])
	assert.True(t, sbx.killed)

	// The second request carries the tool result back to the model.
	require.Len(t, chat.requests, 2)
	second := chat.requests[1]
	last := second.Messages[len(second.Messages)-1]
	assert.Equal(t, llm.RoleTool, last.Role)
	assert.Equal(t, "call-1", last.ToolCallID)
	assert.Contains(t, last.Content, "exit code 0")
}

func TestRun_AskUserParksWithVerbatimHistory(t *testing.T) {
	chat := &fakeChat{script: []llm.Message{
		assistantToolCall("call-1", "ask_user", `{"question":"proceed with this plan?"}`),
	}}
	deps, _, _, _, _ := newTestDeps(chat)

	job := testJob()
	job.HITLMode = HITLPlanApproval

	outcome, err := NewLoop(deps).Run(context.Background(), job)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAskUser, outcome.Kind)
	assert.Equal(t, "proceed with this plan?", outcome.Question)

	require.NotNil(t, outcome.State)
	assert.Equal(t, CheckpointV1, outcome.State.Checkpoint)
	assert.Zero(t, outcome.State.ResumedCount)

	// History is the verbatim conversation including the assistant turn that
	// asked the question.
	history := outcome.State.ConversationHistory
	require.Len(t, history, 3)
	assert.Equal(t, llm.RoleSystem, history[0].Role)
	assert.Equal(t, llm.RoleUser, history[1].Role)
	assert.Equal(t, llm.RoleAssistant, history[2].Role)
	require.Len(t, history[2].ToolCalls, 1)
	assert.Equal(t, "ask_user", history[2].ToolCalls[0].Function.Name)
}

func TestRun_ResumeReplaysHistory(t *testing.T) {
	chat := &fakeChat{script: []llm.Message{
		assistantToolCall("call-2", "final_answer", `{"answer":"done"}`),
	}}
	deps, _, logs, _, _ := newTestDeps(chat)

	job := testJob()
	job.UserAnswer = "yes, go ahead"
	job.State = &ExecutionState{
		Checkpoint: CheckpointV1,
		ConversationHistory: []llm.Message{
			{Role: llm.RoleSystem, Content: "system"},
			{Role: llm.RoleUser, Content: "task"},
			assistantToolCall("call-1", "ask_user", `{"question":"ok?"}`),
			{Role: llm.RoleUser, Content: "yes, go ahead"},
		},
		ResumedCount: 1,
	}

	outcome, err := NewLoop(deps).Run(context.Background(), job)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFinal, outcome.Kind)

	// Replayed verbatim: no duplicate answer message appended.
	require.Len(t, chat.requests, 1)
	msgs := chat.requests[0].Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, "yes, go ahead", msgs[3].Content)

	assert.Contains(t, logs.all(), "info: resuming with 4 previous messages")
}

func TestRun_BareTextIsAcceptedAsFinal(t *testing.T) {
	chat := &fakeChat{script: []llm.Message{
		{Role: llm.RoleAssistant, Content: "the answer is 4"},
	}}
	deps, _, logs, _, _ := newTestDeps(chat)

	outcome, err := NewLoop(deps).Run(context.Background(), testJob())
	require.NoError(t, err)
	assert.Equal(t, OutcomeFinal, outcome.Kind)
	assert.Equal(t, "the answer is 4", outcome.Result)

	assert.Contains(t, logs.all(),
		"warn: model produced a final response without calling final_answer")
}

func TestRun_EmptyResponseFails(t *testing.T) {
	chat := &fakeChat{script: []llm.Message{
		{Role: llm.RoleAssistant, Content: "   "},
	}}
	deps, _, _, _, _ := newTestDeps(chat)

	_, err := NewLoop(deps).Run(context.Background(), testJob())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty message")
}

func TestRun_ToolErrorIsFedBack(t *testing.T) {
	chat := &fakeChat{script: []llm.Message{
		assistantToolCall("call-1", "read_file", `{"filename":"missing.txt"}`),
		assistantToolCall("call-2", "final_answer", `{"answer":"gave up"}`),
	}}
	deps, _, _, _, _ := newTestDeps(chat)

	outcome, err := NewLoop(deps).Run(context.Background(), testJob())
	require.NoError(t, err)
	assert.Equal(t, OutcomeFinal, outcome.Kind)

	last := chat.requests[1].Messages[len(chat.requests[1].Messages)-1]
	assert.Equal(t, llm.RoleTool, last.Role)
	assert.Contains(t, last.Content, "tool error")
	assert.Contains(t, last.Content, "missing.txt")
}

func TestRun_UnknownToolIsReportedNotExecuted(t *testing.T) {
	chat := &fakeChat{script: []llm.Message{
		assistantToolCall("call-1", "rm_rf", `{}`),
		assistantToolCall("call-2", "final_answer", `{"answer":"ok"}`),
	}}
	deps, _, _, _, _ := newTestDeps(chat)

	_, err := NewLoop(deps).Run(context.Background(), testJob())
	require.NoError(t, err)

	last := chat.requests[1].Messages[len(chat.requests[1].Messages)-1]
	assert.Contains(t, last.Content, `unknown tool "rm_rf"`)
}

func TestRun_MalformedArgumentsAreFedBack(t *testing.T) {
	chat := &fakeChat{script: []llm.Message{
		assistantToolCall("call-1", "run_python", `{not json`),
		assistantToolCall("call-2", "final_answer", `{"answer":"ok"}`),
	}}
	deps, _, _, _, _ := newTestDeps(chat)

	_, err := NewLoop(deps).Run(context.Background(), testJob())
	require.NoError(t, err)

	last := chat.requests[1].Messages[len(chat.requests[1].Messages)-1]
	assert.Contains(t, last.Content, "invalid tool arguments")
}

func TestRun_MaxIterations(t *testing.T) {
	// A model that loops forever on harmless tool calls.
	script := make([]llm.Message, 0, MaxIterations)
	for i := 0; i < MaxIterations; i++ {
		script = append(script, assistantToolCall(
			fmt.Sprintf("call-%d", i), "write_file",
			`{"filename":"out.txt","content":"x"}`))
	}
	chat := &fakeChat{script: script}
	deps, _, _, _, _ := newTestDeps(chat)

	_, err := NewLoop(deps).Run(context.Background(), testJob())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxIterations)
	assert.Len(t, chat.requests, MaxIterations)
}

func TestRun_ProviderErrorFailsJob(t *testing.T) {
	chat := &fakeChat{err: errors.New("upstream 503")}
	deps, _, _, _, _ := newTestDeps(chat)

	_, err := NewLoop(deps).Run(context.Background(), testJob())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream 503")
}

func TestRun_CancellationPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chat := &fakeChat{}
	deps, _, _, _, _ := newTestDeps(chat)

	_, err := NewLoop(deps).Run(ctx, testJob())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_ArtifactsPersistedOnFinal(t *testing.T) {
	chat := &fakeChat{script: []llm.Message{
		assistantToolCall("call-1", "write_file", `{"filename":"report.md","content":"# Report"}`),
		assistantToolCall("call-2", "final_answer", `{"answer":"see report.md"}`),
	}}
	deps, store, _, artifacts, _ := newTestDeps(chat)

	outcome, err := NewLoop(deps).Run(context.Background(), testJob())
	require.NoError(t, err)
	assert.Equal(t, OutcomeFinal, outcome.Kind)

	assert.Equal(t, []byte("# Report"), store.uploads["artifacts/job-1/report.md"])
	assert.Equal(t, []string{"report.md"}, artifacts.recorded)
}

func TestRun_AttachmentPreload(t *testing.T) {
	chat := &fakeChat{script: []llm.Message{
		assistantToolCall("call-1", "read_file", `{"filename":"data.csv"}`),
		assistantToolCall("call-2", "final_answer", `{"answer":"ok"}`),
	}}
	deps, store, logs, _, _ := newTestDeps(chat)
	store.downloads["https://store.example/attachments/x/data.csv"] = "a,b\n1,2"

	job := testJob()
	job.Attachments = []AttachmentRef{
		{
			Filename:  "data.csv",
			PublicURL: "https://store.example/attachments/x/data.csv",
			SizeBytes: 7,
		},
		{
			Filename:  "huge.bin",
			PublicURL: "https://store.example/attachments/x/huge.bin",
			SizeBytes: 20 << 20,
		},
	}

	_, err := NewLoop(deps).Run(context.Background(), job)
	require.NoError(t, err)

	// Attachment contents flow back through read_file.
	last := chat.requests[1].Messages[len(chat.requests[1].Messages)-1]
	assert.Contains(t, last.Content, "a,b")

	// Oversized attachment is skipped with a warning, and the system prompt
	// lists only the loaded one.
	var sawSkip bool
	for _, line := range logs.all() {
		if line == `warn: skipping attachment "huge.bin": 20971520 bytes exceeds the 10485760 byte limit` {
			sawSkip = true
		}
	}
	assert.True(t, sawSkip)
	assert.Contains(t, chat.requests[0].Messages[0].Content, "data.csv")
	assert.NotContains(t, chat.requests[0].Messages[0].Content, "huge.bin")
}
