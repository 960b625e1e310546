package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/Mootbing/angine/ent"
	"github.com/Mootbing/angine/ent/job"
	"github.com/Mootbing/angine/pkg/auth"
	"github.com/Mootbing/angine/pkg/models"
	"github.com/Mootbing/angine/pkg/queue"
)

// createJobHandler handles POST /api/v1/jobs.
func (s *Server) createJobHandler(c *echo.Context) error {
	var req CreateJobRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}
	cred := credentialFrom(c)

	priority := 0
	if req.Priority != nil {
		priority = *req.Priority
	}
	timeout := defaultTimeout
	if req.TimeoutSeconds != nil {
		timeout = *req.TimeoutSeconds
	}
	model := req.Model
	if model == "" {
		model = s.cfg.DefaultModel
	}
	hitlMode := req.HITLMode
	if hitlMode == "" {
		hitlMode = "plan_approval"
	}

	created, err := s.store.Enqueue(c.Request().Context(), queue.EnqueueInput{
		Task:           req.Task,
		APIKeyID:       cred.ID,
		Priority:       priority,
		TimeoutSeconds: timeout,
		Model:          model,
		HITLMode:       hitlMode,
		AttachmentIDs:  req.Attachments,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":         created.ID,
		"status":     string(created.Status),
		"task":       created.Task,
		"created_at": created.CreatedAt,
	})
}

// listJobsHandler handles GET /api/v1/jobs. Non-admin credentials see only
// their own jobs.
func (s *Server) listJobsHandler(c *echo.Context) error {
	cred := credentialFrom(c)

	params := queue.ListParams{Limit: 50}
	if !auth.HasScope(auth.ScopeAdmin, cred.Scopes) {
		params.APIKeyID = cred.ID
	}

	if v := c.QueryParam("status"); v != "" {
		if err := job.StatusValidator(job.Status(v)); err != nil {
			return newAPIError(http.StatusBadRequest, CodeValidationError, "invalid status: "+v)
		}
		params.Status = v
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			return newAPIError(http.StatusBadRequest, CodeValidationError, "limit must be 1..100")
		}
		params.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return newAPIError(http.StatusBadRequest, CodeValidationError, "offset must be non-negative")
		}
		params.Offset = n
	}

	jobs, total, err := s.store.List(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]models.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, models.NewJobResponse(j))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"jobs":   out,
		"count":  total,
		"offset": params.Offset,
		"limit":  params.Limit,
	})
}

// jobForCaller loads a job and enforces the ownership rule: callers that
// neither own the job nor hold admin get a 404, not a 403, so existence
// cannot be probed.
func (s *Server) jobForCaller(c *echo.Context) (*ent.Job, error) {
	jobID := c.Param("id")
	if jobID == "" {
		return nil, newAPIError(http.StatusBadRequest, CodeValidationError, "job id is required")
	}

	j, err := s.store.Get(c.Request().Context(), jobID)
	if err != nil {
		return nil, mapServiceError(err)
	}

	cred := credentialFrom(c)
	if j.APIKeyID != cred.ID && !auth.HasScope(auth.ScopeAdmin, cred.Scopes) {
		return nil, newAPIError(http.StatusNotFound, CodeNotFound, "resource not found")
	}
	return j, nil
}

// getJobHandler handles GET /api/v1/jobs/:id.
func (s *Server) getJobHandler(c *echo.Context) error {
	j, err := s.jobForCaller(c)
	if err != nil {
		return err
	}

	artifacts, err := s.store.ListArtifacts(c.Request().Context(), j.ID)
	if err != nil {
		return mapServiceError(err)
	}

	detail := models.JobDetail{
		JobResponse: models.NewJobResponse(j),
		Artifacts:   make([]models.ArtifactResponse, 0, len(artifacts)),
	}
	for _, a := range artifacts {
		detail.Artifacts = append(detail.Artifacts, models.NewArtifactResponse(a))
	}

	return c.JSON(http.StatusOK, detail)
}

// cancelJobHandler handles DELETE /api/v1/jobs/:id.
func (s *Server) cancelJobHandler(c *echo.Context) error {
	j, err := s.jobForCaller(c)
	if err != nil {
		return err
	}

	var req CancelRequest
	_ = c.Bind(&req) // body is optional

	if err := s.store.Cancel(c.Request().Context(), j.ID); err != nil {
		return mapServiceError(err)
	}

	if req.Reason != "" {
		s.store.AppendLog(c.Request().Context(), j.ID, "info", "job cancelled: "+req.Reason, nil)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":     j.ID,
		"status": "cancelled",
	})
}

// respondHandler handles POST /api/v1/jobs/:id/respond: the HITL answer that
// re-queues a waiting job.
func (s *Server) respondHandler(c *echo.Context) error {
	j, err := s.jobForCaller(c)
	if err != nil {
		return err
	}

	var req RespondRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	answer := req.Answer
	if req.Action == "edit" && req.EditedPlan != "" {
		answer = answer + "\n\nEdited plan:\n" + req.EditedPlan
	}

	if err := s.store.Respond(c.Request().Context(), j.ID, answer); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":     j.ID,
		"status": "queued",
	})
}

// listLogsHandler handles GET /api/v1/jobs/:id/logs.
func (s *Server) listLogsHandler(c *echo.Context) error {
	j, err := s.jobForCaller(c)
	if err != nil {
		return err
	}

	limit, offset := 100, 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	logs, total, err := s.store.ListLogs(c.Request().Context(), j.ID, limit, offset)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]models.LogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, models.NewLogResponse(l))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"logs":   out,
		"count":  total,
		"offset": offset,
		"limit":  limit,
	})
}

// listArtifactsHandler handles GET /api/v1/jobs/:id/artifacts.
func (s *Server) listArtifactsHandler(c *echo.Context) error {
	j, err := s.jobForCaller(c)
	if err != nil {
		return err
	}

	artifacts, err := s.store.ListArtifacts(c.Request().Context(), j.ID)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]models.ArtifactResponse, 0, len(artifacts))
	for _, a := range artifacts {
		out = append(out, models.NewArtifactResponse(a))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"artifacts": out,
		"count":     len(out),
	})
}
