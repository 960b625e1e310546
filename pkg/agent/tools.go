package agent

import "github.com/Mootbing/angine/pkg/llm"

// Tool names. The dispatch table is a closed enumeration: unknown names are
// reported back to the model as tool errors, never executed.
const (
	toolDiscoverTools = "discover_tools"
	toolFetchURL      = "fetch_url"
	toolRunPython     = "run_python"
	toolReadFile      = "read_file"
	toolWriteFile     = "write_file"
	toolAskUser       = "ask_user"
	toolFinalAnswer   = "final_answer"
)

// toolInventory returns the tool definitions exposed to the model.
func toolInventory() []llm.Tool {
	return []llm.Tool{
		llm.NewFunctionTool(toolDiscoverTools,
			"Search the registry of external capability packages relevant to a task.",
			`{
				"type": "object",
				"properties": {
					"query": {"type": "string", "description": "What capability to look for"}
				},
				"required": ["query"]
			}`),
		llm.NewFunctionTool(toolFetchURL,
			"Perform an HTTP request. Responses over 50 KB are truncated.",
			`{
				"type": "object",
				"properties": {
					"url": {"type": "string"},
					"method": {"type": "string", "enum": ["GET", "POST", "PUT", "DELETE"]},
					"headers": {"type": "object", "additionalProperties": {"type": "string"}},
					"body": {"type": "string"}
				},
				"required": ["url", "method"]
			}`),
		llm.NewFunctionTool(toolRunPython,
			"Run Python code in the job's sandbox. Returns combined stdout/stderr and the exit code.",
			`{
				"type": "object",
				"properties": {
					"code": {"type": "string"},
					"packages": {
						"type": "array",
						"items": {"type": "string"},
						"description": "Extra pip packages to install first (max 10)"
					}
				},
				"required": ["code"]
			}`),
		llm.NewFunctionTool(toolReadFile,
			"Read the contents of a file attached to the task.",
			`{
				"type": "object",
				"properties": {
					"filename": {"type": "string"}
				},
				"required": ["filename"]
			}`),
		llm.NewFunctionTool(toolWriteFile,
			"Stage an output file. Staged files are published as artifacts when the task completes.",
			`{
				"type": "object",
				"properties": {
					"filename": {"type": "string"},
					"content": {"type": "string"}
				},
				"required": ["filename", "content"]
			}`),
		llm.NewFunctionTool(toolAskUser,
			"Pause the task and ask the submitter a question. Their answer arrives as the next user message.",
			`{
				"type": "object",
				"properties": {
					"question": {"type": "string"}
				},
				"required": ["question"]
			}`),
		llm.NewFunctionTool(toolFinalAnswer,
			"Complete the task with the final result text.",
			`{
				"type": "object",
				"properties": {
					"answer": {"type": "string"}
				},
				"required": ["answer"]
			}`),
	}
}
