package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/Mootbing/angine/ent/agentpackage"
	"github.com/Mootbing/angine/ent/apikey"
	"github.com/Mootbing/angine/ent/job"
	"github.com/Mootbing/angine/pkg/auth"
	"github.com/Mootbing/angine/pkg/models"
	"github.com/Mootbing/angine/pkg/queue"
)

// listKeysHandler handles GET /api/v1/admin/keys.
func (s *Server) listKeysHandler(c *echo.Context) error {
	params := auth.ListParams{Limit: 50}
	params.ActiveOnly = c.QueryParam("active_only") == "true"
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			params.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			params.Offset = n
		}
	}

	keys, total, err := s.authService.List(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]models.KeyResponse, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.NewKeyResponse(k))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"keys":   out,
		"count":  total,
		"offset": params.Offset,
		"limit":  params.Limit,
	})
}

// createKeyHandler handles POST /api/v1/admin/keys. The raw key appears in
// this response and never again.
func (s *Server) createKeyHandler(c *echo.Context) error {
	var req CreateKeyRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	rpm := 0
	if req.RateLimitRPM != nil {
		rpm = *req.RateLimitRPM
	}

	rawKey, rec, err := s.authService.Issue(c.Request().Context(), auth.IssueInput{
		Name:       req.Name,
		OwnerEmail: req.OwnerEmail,
		Scopes:     req.Scopes,
		RPMLimit:   rpm,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":      rec.ID,
		"key":     rawKey,
		"message": "store this key now; it cannot be retrieved again",
	})
}

// getKeyHandler handles GET /api/v1/admin/keys/:id.
func (s *Server) getKeyHandler(c *echo.Context) error {
	keyID := c.Param("id")
	if keyID == "" {
		return newAPIError(http.StatusBadRequest, CodeValidationError, "key id is required")
	}

	rec, err := s.authService.Get(c.Request().Context(), keyID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models.NewKeyResponse(rec))
}

// revokeKeyHandler handles DELETE /api/v1/admin/keys/:id.
func (s *Server) revokeKeyHandler(c *echo.Context) error {
	keyID := c.Param("id")
	if keyID == "" {
		return newAPIError(http.StatusBadRequest, CodeValidationError, "key id is required")
	}

	var req RevokeRequest
	_ = c.Bind(&req) // body is optional

	if err := s.authService.Revoke(c.Request().Context(), keyID, req.Reason); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":     keyID,
		"status": "revoked",
	})
}

// adminMetricsHandler handles GET /api/v1/admin/metrics: a JSON aggregate of
// queue, worker, agent, and credential counts.
func (s *Server) adminMetricsHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	client := s.store.Client()

	jobsByStatus := map[string]int{}
	jobsTotal := 0
	for _, status := range []job.Status{
		job.StatusQueued, job.StatusRunning, job.StatusWaitingForUser,
		job.StatusCompleted, job.StatusFailed, job.StatusCancelled,
	} {
		n, err := client.Job.Query().Where(job.StatusEQ(status)).Count(ctx)
		if err != nil {
			return mapServiceError(err)
		}
		jobsByStatus[string(status)] = n
		jobsTotal += n
	}

	lastHour, err := client.Job.Query().
		Where(job.CreatedAtGT(time.Now().Add(-time.Hour))).
		Count(ctx)
	if err != nil {
		return mapServiceError(err)
	}

	workers, err := s.store.ListWorkers(ctx)
	if err != nil {
		return mapServiceError(err)
	}
	workersByStatus := map[string]int{}
	now := time.Now()
	for _, w := range workers {
		workersByStatus[queue.WorkerHealthFor(w.LastHeartbeat, now)]++
	}

	agentsTotal, err := client.AgentPackage.Query().Count(ctx)
	if err != nil {
		return mapServiceError(err)
	}
	agentsVerified, err := client.AgentPackage.Query().
		Where(agentpackage.Verified(true)).Count(ctx)
	if err != nil {
		return mapServiceError(err)
	}

	keysTotal, err := client.APIKey.Query().Count(ctx)
	if err != nil {
		return mapServiceError(err)
	}
	keysActive, err := client.APIKey.Query().
		Where(apikey.IsActive(true)).Count(ctx)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"jobs": map[string]interface{}{
			"by_status": jobsByStatus,
			"total":     jobsTotal,
			"last_hour": lastHour,
		},
		"workers": map[string]interface{}{
			"by_status": workersByStatus,
			"total":     len(workers),
		},
		"agents": map[string]interface{}{
			"total":    agentsTotal,
			"verified": agentsVerified,
		},
		"api_keys": map[string]interface{}{
			"total":  keysTotal,
			"active": keysActive,
		},
		"timestamp": time.Now().UTC(),
	})
}

// listWorkersHandler handles GET /api/v1/admin/workers.
func (s *Server) listWorkersHandler(c *echo.Context) error {
	workers, err := s.store.ListWorkers(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	statusFilter := c.QueryParam("status")
	now := time.Now()
	summary := map[string]int{}
	out := make([]models.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		health := queue.WorkerHealthFor(w.LastHeartbeat, now)
		summary[health]++
		if statusFilter != "" && health != statusFilter && string(w.Status) != statusFilter {
			continue
		}
		out = append(out, models.WorkerResponse{
			ID:            w.ID,
			Hostname:      w.Hostname,
			Version:       w.Version,
			Status:        string(w.Status),
			Health:        health,
			ActiveJobs:    w.ActiveJobs,
			LastHeartbeat: w.LastHeartbeat,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"workers": out,
		"count":   len(out),
		"summary": summary,
	})
}
