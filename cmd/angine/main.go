// Angine server — authenticated job API plus the worker runtime that drives
// the tool-using agent loop.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Mootbing/angine/pkg/agent"
	"github.com/Mootbing/angine/pkg/api"
	"github.com/Mootbing/angine/pkg/auth"
	"github.com/Mootbing/angine/pkg/config"
	"github.com/Mootbing/angine/pkg/database"
	"github.com/Mootbing/angine/pkg/discovery"
	"github.com/Mootbing/angine/pkg/llm"
	"github.com/Mootbing/angine/pkg/notify"
	"github.com/Mootbing/angine/pkg/queue"
	"github.com/Mootbing/angine/pkg/ratelimit"
	"github.com/Mootbing/angine/pkg/sandbox"
	"github.com/Mootbing/angine/pkg/storage"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL, schema up to date")

	limiter, err := ratelimit.New(cfg.RateLimit.RedisURL, cfg.RateLimit.RedisToken)
	if err != nil {
		return fmt.Errorf("failed to initialize rate limiter: %w", err)
	}
	defer func() { _ = limiter.Close() }()

	authService := auth.NewService(dbClient.Client, cfg.Environment)
	store := queue.NewStore(dbClient.Client)
	objectStore := storage.NewClient(cfg.ObjectStore.URL, cfg.ObjectStore.Token)
	discoverySvc := discovery.NewClient(cfg.Discovery.URL, cfg.Discovery.Token)
	chatClient := llm.NewClient(cfg.ChatModel.URL, cfg.ChatModel.Token)
	sandboxProvider := sandbox.NewHTTPProvider(cfg.Sandbox.URL, cfg.Sandbox.Token)
	notifier := notify.NewService(notify.ServiceConfig{
		Token:   cfg.SlackBotToken,
		Channel: cfg.SlackChannelID,
	})

	loop := agent.NewLoop(queue.WireAgentDeps(store, agent.Deps{
		LLM:       chatClient,
		Sandboxes: sandboxProvider,
		Storage:   objectStore,
		Discovery: discoverySvc,
	}))

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	workerID := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	runtime := queue.NewRuntime(workerID, hostname, store, loop, cfg.Worker, notifier)
	if err := runtime.Start(ctx); err != nil {
		return fmt.Errorf("failed to start worker runtime: %w", err)
	}

	server := api.NewServer(cfg, dbClient, store, authService, limiter, objectStore, discoverySvc)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(cfg.HTTPPort)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
	}

	// Drain: stop accepting requests first, then let the worker finish or
	// release its jobs, then close the database.
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		cfg.Worker.ShutdownTimeout+30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
	runtime.Shutdown(shutdownCtx)

	slog.Info("Shutdown complete")
	return nil
}
