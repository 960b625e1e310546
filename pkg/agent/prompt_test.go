package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt(t *testing.T) {
	t.Run("plan approval mandates an approval checkpoint", func(t *testing.T) {
		p := buildSystemPrompt(HITLPlanApproval, nil)
		assert.Contains(t, p, "wait for approval")
		assert.Contains(t, p, "discover_tools")
		assert.Contains(t, p, "final_answer")
	})

	t.Run("auto execute skips approval", func(t *testing.T) {
		p := buildSystemPrompt(HITLAutoExecute, nil)
		assert.Contains(t, p, "Do not ask for approval")
		assert.NotContains(t, p, "wait for approval")
	})

	t.Run("always ask confirms every side-effectful call", func(t *testing.T) {
		p := buildSystemPrompt(HITLAlwaysAsk, nil)
		assert.Contains(t, p, "EVERY side-effectful tool call")
	})

	t.Run("attachments are listed when present", func(t *testing.T) {
		p := buildSystemPrompt(HITLAutoExecute, []string{"data.csv", "notes.txt"})
		assert.Contains(t, p, "data.csv, notes.txt")

		assert.NotContains(t, buildSystemPrompt(HITLAutoExecute, nil), "Attached files")
	})
}
