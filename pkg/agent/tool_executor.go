package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/Mootbing/angine/pkg/llm"
	"github.com/Mootbing/angine/pkg/metrics"
	"github.com/Mootbing/angine/pkg/sandbox"
)

const (
	fetchURLTimeout  = 30 * time.Second
	runPythonTimeout = 120 * time.Second

	// maxFetchBody is the truncation threshold for fetched text.
	maxFetchBody = 50 * 1024

	// maxExtraPackages bounds pip installs per run_python call.
	maxExtraPackages = 10

	// scriptPath is the fixed location run_python writes code to.
	scriptPath = "/home/user/script.py"
)

// packagePattern is the allow-pattern for pip package names.
var packagePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// baselinePackages are preinstalled into every sandbox on first use.
var baselinePackages = []string{"numpy", "pandas", "requests", "matplotlib", "beautifulsoup4"}

// toolResult is the outcome of one tool call. final/askUser signal loop exit.
type toolResult struct {
	content string
	isError bool
	final   string
	askUser string
	isFinal bool
	isAsk   bool
}

// toolExecutor owns the per-job tool state: the lazily-created sandbox, the
// loaded attachments, and the staged output files. It lives for exactly one
// drive of the loop.
type toolExecutor struct {
	deps  *Deps
	jobID string

	httpClient *http.Client

	sbx               sandbox.Sandbox
	sandboxTimeout    time.Duration
	attachments       map[string]string // filename → content
	stagedFiles       map[string]string // filename → content
	installedPackages map[string]bool
	reinstall         []string
	discovered        []string
}

func newToolExecutor(deps *Deps, job *JobInput) *toolExecutor {
	ex := &toolExecutor{
		deps:              deps,
		jobID:             job.ID,
		httpClient:        &http.Client{Timeout: fetchURLTimeout},
		sandboxTimeout:    time.Duration(job.TimeoutSeconds) * time.Second,
		attachments:       map[string]string{},
		stagedFiles:       map[string]string{},
		installedPackages: map[string]bool{},
	}
	if job.State != nil {
		// The sandbox did not survive the park; packages from the previous
		// round are reinstalled when the next sandbox comes up.
		ex.reinstall = append(ex.reinstall, job.State.PackagesInstalled...)
	}
	return ex
}

// execute dispatches one tool call. Argument parse failures and handler
// errors come back as isError results fed to the model, so it can adapt.
func (ex *toolExecutor) execute(ctx context.Context, call llm.ToolCall) toolResult {
	var args map[string]interface{}
	if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
		metrics.ToolCalls.WithLabelValues(call.Function.Name, "error").Inc()
		return toolResult{
			content: fmt.Sprintf("invalid tool arguments: %v", err),
			isError: true,
		}
	}

	var res toolResult
	switch call.Function.Name {
	case toolDiscoverTools:
		res = ex.discoverTools(ctx, stringArg(args, "query"))
	case toolFetchURL:
		res = ex.fetchURL(ctx, args)
	case toolRunPython:
		res = ex.runPython(ctx, args)
	case toolReadFile:
		res = ex.readFile(stringArg(args, "filename"))
	case toolWriteFile:
		res = ex.writeFile(stringArg(args, "filename"), stringArg(args, "content"))
	case toolAskUser:
		q := stringArg(args, "question")
		if q == "" {
			res = toolResult{content: "ask_user requires a question", isError: true}
		} else {
			res = toolResult{askUser: q, isAsk: true}
		}
	case toolFinalAnswer:
		res = toolResult{final: stringArg(args, "answer"), isFinal: true}
	default:
		res = toolResult{
			content: fmt.Sprintf("unknown tool %q", call.Function.Name),
			isError: true,
		}
	}

	status := "ok"
	if res.isError {
		status = "error"
	}
	metrics.ToolCalls.WithLabelValues(call.Function.Name, status).Inc()
	return res
}

// discoverTools consults the external discovery service and returns a ranked
// textual summary.
func (ex *toolExecutor) discoverTools(ctx context.Context, query string) toolResult {
	if ex.deps.Discovery == nil {
		return toolResult{content: "tool discovery is not available", isError: true}
	}
	if query == "" {
		return toolResult{content: "discover_tools requires a query", isError: true}
	}

	matches, err := ex.deps.Discovery.Discover(ctx, query, 0.5, 5)
	if err != nil {
		return toolResult{content: fmt.Sprintf("discovery failed: %v", err), isError: true}
	}
	if len(matches) == 0 {
		return toolResult{content: "no matching capability packages found"}
	}

	var b strings.Builder
	b.WriteString("Matching capability packages (most relevant first):\n")
	names := make([]string, 0, len(matches))
	for i, m := range matches {
		fmt.Fprintf(&b, "%d. %s (package %s, similarity %.2f)\n", i+1, m.Name, m.PackageName, m.Similarity)
		names = append(names, m.PackageName)
	}
	ex.discovered = append(ex.discovered, names...)

	if ex.deps.OnToolsDiscovered != nil {
		ex.deps.OnToolsDiscovered(ctx, ex.jobID, ex.discovered)
	}

	return toolResult{content: b.String()}
}

// fetchURL performs an HTTP request with a 30-second wall clock. JSON bodies
// are pretty-printed; text beyond 50 KB is truncated with a marker.
func (ex *toolExecutor) fetchURL(ctx context.Context, args map[string]interface{}) toolResult {
	rawURL := stringArg(args, "url")
	method := strings.ToUpper(stringArg(args, "method"))
	if rawURL == "" {
		return toolResult{content: "fetch_url requires a url", isError: true}
	}
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return toolResult{content: fmt.Sprintf("unsupported method %q", method), isError: true}
	}

	ctx, cancel := context.WithTimeout(ctx, fetchURLTimeout)
	defer cancel()

	var body io.Reader
	if b := stringArg(args, "body"); b != "" {
		body = strings.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return toolResult{content: fmt.Sprintf("invalid request: %v", err), isError: true}
	}
	if headers, ok := args["headers"].(map[string]interface{}); ok {
		for k, v := range headers {
			if s, ok := v.(string); ok {
				req.Header.Set(k, s)
			}
		}
	}

	resp, err := ex.httpClient.Do(req)
	if err != nil {
		return toolResult{content: fmt.Sprintf("request failed: %v", err), isError: true}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBody*4))
	if err != nil {
		return toolResult{content: fmt.Sprintf("failed to read response: %v", err), isError: true}
	}

	text := string(respBody)
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, respBody, "", "  "); err == nil {
			text = pretty.String()
		}
	}
	if len(text) > maxFetchBody {
		text = text[:maxFetchBody] + "\n... [truncated]"
	}

	return toolResult{content: fmt.Sprintf("HTTP %d\n%s", resp.StatusCode, text)}
}

// runPython lazily provisions the job's sandbox, installs any extra
// packages, writes the code to a fixed path, and runs it with a 120-second
// cap. Sandbox errors surface as tool errors so the model can recover.
func (ex *toolExecutor) runPython(ctx context.Context, args map[string]interface{}) toolResult {
	code := stringArg(args, "code")
	if code == "" {
		return toolResult{content: "run_python requires code", isError: true}
	}

	var packages []string
	if raw, ok := args["packages"].([]interface{}); ok {
		for _, p := range raw {
			if s, ok := p.(string); ok {
				packages = append(packages, s)
			}
		}
	}
	if len(packages) > maxExtraPackages {
		return toolResult{
			content: fmt.Sprintf("at most %d extra packages allowed, got %d", maxExtraPackages, len(packages)),
			isError: true,
		}
	}
	for _, p := range packages {
		if !packagePattern.MatchString(p) {
			return toolResult{content: fmt.Sprintf("package name %q not allowed", p), isError: true}
		}
	}

	if err := ex.ensureSandbox(ctx); err != nil {
		return toolResult{content: fmt.Sprintf("sandbox unavailable: %v", err), isError: true}
	}

	if toInstall := ex.newPackages(packages); len(toInstall) > 0 {
		installCmd := "pip install --quiet " + strings.Join(toInstall, " ")
		res, err := ex.sbx.RunCommand(ctx, installCmd, sandbox.RunOpts{Timeout: runPythonTimeout})
		if err != nil {
			return toolResult{content: fmt.Sprintf("package install failed: %v", err), isError: true}
		}
		if res.ExitCode != 0 {
			return toolResult{
				content: fmt.Sprintf("package install exited %d:\n%s", res.ExitCode, res.Combined()),
				isError: true,
			}
		}
		for _, p := range toInstall {
			ex.installedPackages[p] = true
		}
	}

	if err := ex.sbx.WriteFile(ctx, scriptPath, code); err != nil {
		return toolResult{content: fmt.Sprintf("failed to write script: %v", err), isError: true}
	}

	res, err := ex.sbx.RunCommand(ctx, "python3 "+scriptPath, sandbox.RunOpts{
		Timeout: runPythonTimeout,
		// Stream chunks into the job log without blocking execution.
		OnStdout: func(chunk string) { ex.logAsync("debug", "stdout: "+chunk) },
		OnStderr: func(chunk string) { ex.logAsync("debug", "stderr: "+chunk) },
	})
	if err != nil {
		return toolResult{content: fmt.Sprintf("execution failed: %v", err), isError: true}
	}

	return toolResult{
		content: fmt.Sprintf("exit code %d\n%s", res.ExitCode, res.Combined()),
		isError: res.ExitCode != 0,
	}
}

// ensureSandbox creates the job's sandbox on first use.
func (ex *toolExecutor) ensureSandbox(ctx context.Context) error {
	if ex.sbx != nil {
		return nil
	}
	if ex.deps.Sandboxes == nil {
		return fmt.Errorf("no sandbox provider configured")
	}

	sbx, err := ex.deps.Sandboxes.Create(ctx, ex.sandboxTimeout)
	if err != nil {
		return err
	}
	ex.sbx = sbx

	install := "pip install --quiet " + strings.Join(append(append([]string{}, baselinePackages...), ex.reinstall...), " ")
	if res, err := sbx.RunCommand(ctx, install, sandbox.RunOpts{Timeout: runPythonTimeout}); err != nil {
		ex.logAsync("warn", fmt.Sprintf("baseline package install failed: %v", err))
	} else if res.ExitCode != 0 {
		ex.logAsync("warn", fmt.Sprintf("baseline package install exited %d", res.ExitCode))
	} else {
		for _, p := range ex.reinstall {
			ex.installedPackages[p] = true
		}
	}
	return nil
}

// newPackages filters out packages already installed in this job's sandbox.
func (ex *toolExecutor) newPackages(packages []string) []string {
	var out []string
	for _, p := range packages {
		if !ex.installedPackages[p] {
			out = append(out, p)
		}
	}
	return out
}

// teardown kills the sandbox if one was created. Called on every loop exit.
func (ex *toolExecutor) teardown() {
	if ex.sbx == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ex.sbx.Kill(ctx); err != nil {
		ex.deps.Logs.Append(ctx, ex.jobID, "warn",
			fmt.Sprintf("sandbox teardown failed: %v", err), nil)
	}
	ex.sbx = nil
}

func (ex *toolExecutor) readFile(filename string) toolResult {
	content, ok := ex.attachments[filename]
	if !ok {
		return toolResult{content: fmt.Sprintf("unknown attachment %q", filename), isError: true}
	}
	return toolResult{content: content}
}

func (ex *toolExecutor) writeFile(filename, content string) toolResult {
	if filename == "" {
		return toolResult{content: "write_file requires a filename", isError: true}
	}
	ex.stagedFiles[filename] = content
	return toolResult{content: fmt.Sprintf("staged %q (%d bytes)", filename, len(content))}
}

// persistArtifacts uploads every staged file to the object store and records
// a JobArtifact row. Upload failures log a warning but are not fatal.
func (ex *toolExecutor) persistArtifacts(ctx context.Context) {
	filenames := make([]string, 0, len(ex.stagedFiles))
	for f := range ex.stagedFiles {
		filenames = append(filenames, f)
	}
	sort.Strings(filenames)

	for _, filename := range filenames {
		content := ex.stagedFiles[filename]
		contentType := mime.TypeByExtension(filepath.Ext(filename))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		path := fmt.Sprintf("artifacts/%s/%s", ex.jobID, filename)

		publicURL, err := ex.deps.Storage.Upload(ctx, path, []byte(content), contentType)
		if err != nil {
			ex.deps.Logs.Append(ctx, ex.jobID, "warn",
				fmt.Sprintf("artifact upload failed for %q: %v", filename, err), nil)
			continue
		}
		if err := ex.deps.Artifacts.Record(ctx, ex.jobID, filename, contentType, path, publicURL, int64(len(content))); err != nil {
			ex.deps.Logs.Append(ctx, ex.jobID, "warn",
				fmt.Sprintf("artifact record failed for %q: %v", filename, err), nil)
			continue
		}
		ex.deps.Logs.Append(ctx, ex.jobID, "info",
			fmt.Sprintf("artifact uploaded: %s", filename),
			map[string]interface{}{"public_url": publicURL, "size_bytes": len(content)})
	}
}

// stagedFilenames returns the staged file names in stable order.
func (ex *toolExecutor) stagedFilenames() []string {
	out := make([]string, 0, len(ex.stagedFiles))
	for f := range ex.stagedFiles {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// installedPackageNames returns installed package names in stable order.
func (ex *toolExecutor) installedPackageNames() []string {
	out := make([]string, 0, len(ex.installedPackages))
	for p := range ex.installedPackages {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// logAsync appends to the job log without blocking the calling path.
func (ex *toolExecutor) logAsync(level, message string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		ex.deps.Logs.Append(ctx, ex.jobID, level, message, nil)
	}()
}

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}
