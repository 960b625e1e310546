package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/google/uuid"

	"github.com/Mootbing/angine/ent"
	"github.com/Mootbing/angine/ent/agentpackage"
	"github.com/Mootbing/angine/pkg/models"
)

// discoverAgentsHandler handles POST /api/v1/agents/discover: semantic
// ranking of registered agent packages against a task description.
func (s *Server) discoverAgentsHandler(c *echo.Context) error {
	var req DiscoverRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	threshold := defaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	limit := defaultDiscoLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	matches, err := s.discovery.Discover(c.Request().Context(), req.Task, threshold, limit)
	if err != nil {
		slog.Error("Agent discovery failed", "error", err)
		return newAPIError(http.StatusInternalServerError, CodeInternalError,
			"agent discovery failed")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"agents":    matches,
		"count":     len(matches),
		"threshold": threshold,
	})
}

// listAgentsHandler handles GET /api/v1/agents.
func (s *Server) listAgentsHandler(c *echo.Context) error {
	limit, offset := 50, 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	q := s.store.Client().AgentPackage.Query()
	if c.QueryParam("verified_only") == "true" {
		q = q.Where(agentpackage.Verified(true))
	}

	total, err := q.Clone().Count(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	agents, err := q.
		Order(ent.Asc(agentpackage.FieldName)).
		Limit(limit).
		Offset(offset).
		All(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]models.AgentResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, models.NewAgentResponse(a))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"agents": out,
		"count":  total,
		"offset": offset,
		"limit":  limit,
	})
}

// createAgentHandler handles POST /api/v1/agents: registers an agent package
// and kicks off embedding indexing in the background.
func (s *Server) createAgentHandler(c *echo.Context) error {
	var req CreateAgentRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}
	if !packageNamePattern.MatchString(req.PackageName) {
		return newAPIError(http.StatusBadRequest, CodeValidationError,
			"package_name must match ^[a-z0-9_-]+$")
	}

	version := req.Version
	if version == "" {
		version = "latest"
	}

	created, err := s.store.Client().AgentPackage.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetDescription(req.Description).
		SetPackageName(req.PackageName).
		SetVersion(version).
		Save(c.Request().Context())
	if err != nil {
		if ent.IsConstraintError(err) {
			return newAPIError(http.StatusConflict, CodeDuplicate,
				"an agent with this package name already exists")
		}
		return mapServiceError(err)
	}

	// Index in the background; a failed reindex is repairable via the admin
	// reindex endpoint.
	go func(id, description string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.discovery.Reindex(ctx, id, description); err != nil {
			slog.Warn("Agent reindex failed after create", "agent_id", id, "error", err)
		}
	}(created.ID, created.Description)

	return c.JSON(http.StatusCreated, models.NewAgentResponse(created))
}

// reindexAgentsHandler handles POST /api/v1/admin/agents/reindex: recompute
// embeddings for every registered agent package.
func (s *Server) reindexAgentsHandler(c *echo.Context) error {
	agents, err := s.store.Client().AgentPackage.Query().All(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	updated := 0
	var failures []string
	for _, a := range agents {
		if err := s.discovery.Reindex(c.Request().Context(), a.ID, a.Description); err != nil {
			slog.Warn("Agent reindex failed", "agent_id", a.ID, "error", err)
			failures = append(failures, a.PackageName)
			continue
		}
		updated++
	}

	resp := map[string]interface{}{
		"updated": updated,
		"total":   len(agents),
	}
	if len(failures) > 0 {
		resp["errors"] = failures
	}
	return c.JSON(http.StatusOK, resp)
}
