package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/Mootbing/angine/pkg/database"
	"github.com/Mootbing/angine/pkg/version"
)

// healthHandler handles GET /health. Unauthenticated.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.dbClient.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"ok":       false,
			"version":  version.Full(),
			"database": dbHealth,
			"error":    err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":       true,
		"version":  version.Full(),
		"database": dbHealth,
	})
}
