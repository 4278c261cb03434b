// Package main is the entry point for the reco-service HTTP server.
// In Go, the `main` package with a `main()` function is what gets executed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fleveque/reco-service/internal/config"
	"github.com/fleveque/reco-service/internal/llm"
	"github.com/fleveque/reco-service/internal/search"
	"github.com/fleveque/reco-service/internal/server"
	"github.com/fleveque/reco-service/internal/service"
)

func main() {
	// os.Exit ensures the process exits with a non-zero code on failure.
	// We call run() separately so deferred cleanup functions execute properly
	// (deferred functions don't run when os.Exit is called directly).
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load a .env file when present — API keys are commonly configured this
	// way in development. A missing file is not an error.
	_ = godotenv.Load()

	// Load configuration
	configPath := os.Getenv("RECO_CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Set up structured logging with zap.
	// zap outputs JSON in production and human-readable format in development.
	var logger *zap.Logger
	if cfg.Log.Level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	// Sync flushes buffered log entries. We intentionally ignore the error
	// because Sync commonly fails on stdout/stderr (not a real problem).
	defer func() { _ = logger.Sync() }()

	// Wire the dependency graph explicitly: clients and enricher are
	// constructed once here and injected — never reached as globals.
	openaiClient := llm.NewOpenAIClient(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.Model, cfg.LLM.MaxTokens, cfg.LLM.Timeout)
	claudeClient := llm.NewAnthropicClient(cfg.LLM.Anthropic.APIKey, cfg.LLM.Anthropic.Model, cfg.LLM.MaxTokens, cfg.LLM.Timeout)

	var enricher search.Enricher
	if cfg.Search.Enabled {
		enricher = search.NewDuckDuckGo(cfg.Search.BaseURL, cfg.Search.Timeout, logger)
	}

	recommender := service.NewRecommendationService(openaiClient, claudeClient, enricher, logger)

	srv := server.New(cfg, server.Deps{Recommender: recommender}, logger)

	// Graceful shutdown: listen for SIGINT (Ctrl+C) or SIGTERM (docker stop).
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine so we can block on signals below.
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	// Give in-flight requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
