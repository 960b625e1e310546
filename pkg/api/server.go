// Package api provides the authenticated HTTP surface of the engine.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Mootbing/angine/pkg/auth"
	"github.com/Mootbing/angine/pkg/config"
	"github.com/Mootbing/angine/pkg/database"
	"github.com/Mootbing/angine/pkg/discovery"
	"github.com/Mootbing/angine/pkg/queue"
	"github.com/Mootbing/angine/pkg/ratelimit"
	"github.com/Mootbing/angine/pkg/storage"
)

// Server is the HTTP API server.
type Server struct {
	echo        *echo.Echo
	httpServer  *http.Server
	cfg         *config.Config
	dbClient    *database.Client
	store       *queue.Store
	authService *auth.Service
	limiter     *ratelimit.Limiter
	objectStore storage.Uploader
	discovery   discovery.Service
	validate    *validator.Validate
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	store *queue.Store,
	authService *auth.Service,
	limiter *ratelimit.Limiter,
	objectStore storage.Uploader,
	discoverySvc discovery.Service,
) *Server {
	e := echo.New()

	s := &Server{
		echo:        e,
		cfg:         cfg,
		dbClient:    dbClient,
		store:       store,
		authService: authService,
		limiter:     limiter,
		objectStore: objectStore,
		discovery:   discoverySvc,
		validate:    validator.New(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes registers all API routes.
func (s *Server) setupRoutes() {
	s.echo.HTTPErrorHandler = httpErrorHandler
	s.echo.Use(securityHeaders())

	// Body limit sits above the 10 MiB upload cap to cover multipart overhead.
	s.echo.Use(middleware.BodyLimit(12 * 1024 * 1024))

	s.echo.GET("/health", s.healthHandler)
	s.echo.GET("/metrics", func(c *echo.Context) error {
		promhttp.Handler().ServeHTTP(c.Response(), c.Request())
		return nil
	})

	v1 := s.echo.Group("/api/v1")

	// Jobs.
	v1.POST("/jobs", s.createJobHandler, s.authenticate(auth.ScopeJobsWrite))
	v1.GET("/jobs", s.listJobsHandler, s.authenticate(auth.ScopeJobsRead))
	v1.POST("/jobs/upload", s.uploadHandler, s.authenticate(auth.ScopeJobsWrite))
	v1.GET("/jobs/:id", s.getJobHandler, s.authenticate(auth.ScopeJobsRead))
	v1.DELETE("/jobs/:id", s.cancelJobHandler, s.authenticate(auth.ScopeJobsDelete))
	v1.POST("/jobs/:id/respond", s.respondHandler, s.authenticate(auth.ScopeJobsWrite))
	v1.GET("/jobs/:id/logs", s.listLogsHandler, s.authenticate(auth.ScopeJobsRead))
	v1.GET("/jobs/:id/artifacts", s.listArtifactsHandler, s.authenticate(auth.ScopeJobsRead))

	// Agent registry.
	v1.POST("/agents/discover", s.discoverAgentsHandler, s.authenticate(auth.ScopeAgentsRead))
	v1.GET("/agents", s.listAgentsHandler, s.authenticate(auth.ScopeAgentsRead))
	v1.POST("/agents", s.createAgentHandler, s.authenticate(auth.ScopeAgentsWrite))

	// Admin.
	admin := v1.Group("/admin", s.authenticate(auth.ScopeAdmin))
	admin.POST("/agents/reindex", s.reindexAgentsHandler)
	admin.GET("/keys", s.listKeysHandler)
	admin.POST("/keys", s.createKeyHandler)
	admin.GET("/keys/:id", s.getKeyHandler)
	admin.DELETE("/keys/:id", s.revokeKeyHandler)
	admin.GET("/metrics", s.adminMetricsHandler)
	admin.GET("/workers", s.listWorkersHandler)
}

// Start runs the HTTP server on the given port until Shutdown is called.
func (s *Server) Start(port string) error {
	s.httpServer = &http.Server{
		Addr:              ":" + port,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("HTTP server listening", "port", port)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Echo exposes the router for handler tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
