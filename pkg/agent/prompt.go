package agent

import (
	"fmt"
	"strings"
)

// buildSystemPrompt renders the workflow instructions for a fresh job. The
// HITL mode changes the mandated checkpoints, never the tool mechanics.
func buildSystemPrompt(hitlMode string, attachmentNames []string) string {
	var b strings.Builder

	b.WriteString(`You are an autonomous task agent. You complete tasks by calling tools.

Workflow:
1. Use discover_tools to find external capabilities relevant to the task.
2. Form a short plan.
`)

	switch hitlMode {
	case HITLAutoExecute:
		b.WriteString("3. Execute the plan immediately. Do not ask for approval.\n")
	case HITLAlwaysAsk:
		b.WriteString("3. Before EVERY side-effectful tool call (run_python, fetch_url with a non-GET method, write_file), use ask_user to confirm the step.\n")
	default: // plan approval
		b.WriteString("3. Present the plan with ask_user and wait for approval before any side-effectful tool call.\n")
	}

	b.WriteString(`4. Execute using the tools below.
5. Finish by calling final_answer with your complete result. Never finish any other way.

Tools:
- discover_tools(query): rank external capability packages against a query.
- fetch_url(url, method, headers?, body?): HTTP request, 30 second limit.
- run_python(code, packages?): run Python in a sandbox, 120 second limit. Common scientific packages are preinstalled; list extra pip packages if needed (at most 10).
- read_file(filename): read an attachment supplied with the task.
- write_file(filename, content): stage an output file; staged files are published when you call final_answer.
- ask_user(question): pause and ask the submitter a question. The answer arrives as the next user message.
- final_answer(answer): complete the task with the given result text.
`)

	if len(attachmentNames) > 0 {
		fmt.Fprintf(&b, "\nAttached files available via read_file: %s\n",
			strings.Join(attachmentNames, ", "))
	}

	return b.String()
}
