package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pathlight/insights-engine/internal/common"
	"github.com/pathlight/insights-engine/internal/export"
	"github.com/pathlight/insights-engine/internal/insight"
	"github.com/pathlight/insights-engine/internal/llm/openai"
	repo "github.com/pathlight/insights-engine/internal/repository"
	srv "github.com/pathlight/insights-engine/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Persistence is optional: without DB_URL the pipeline still serves
	// insights, it just skips record writes and the records endpoints.
	var (
		insightRepo repo.InsightRepository
		exporter    *export.Service
		store       insight.RecordStore
	)
	if cfg.Database.DSN != "" {
		entc, pool, err := repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer repo.Close(entc, pool, logger)

		if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
		if err := repo.Migrate(ctx, entc, logger); err != nil {
			os.Exit(1)
		}

		insightRepo = repo.NewInsightRepository(entc, logger)
		exporter = export.NewService(insightRepo, logger)
		store = insightRepo
	} else {
		logger.Warn("DB_URL not set, persistence disabled")
	}

	openaiClient := openai.NewClient(openai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	validator, err := insight.NewValidator(logger)
	if err != nil {
		logger.Error("failed to compile insight schemas", "error", err)
		os.Exit(1)
	}

	orch := insight.NewOrchestrator(openaiClient, validator, store, cfg.LLM.PersistTimeout, logger)

	handler := srv.NewHandler(srv.Deps{
		Orchestrator: orch,
		Repo:         insightRepo,
		Exporter:     exporter,
		Logger:       logger,
	})

	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
