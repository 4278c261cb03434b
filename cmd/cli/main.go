// Package main provides the CLI tool for the reco-service.
// Uses Cobra for command parsing — Cobra is the standard Go CLI framework
// (used by kubectl, docker, hugo, and many others).
//
// Run with: go run ./cmd/cli recommend "Inception" --provider both
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fleveque/reco-service/internal/config"
	"github.com/fleveque/reco-service/internal/llm"
	"github.com/fleveque/reco-service/internal/model"
	"github.com/fleveque/reco-service/internal/search"
	"github.com/fleveque/reco-service/internal/service"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "reco-cli",
		Short: "Movie recommendation service CLI tools",
	}

	root.AddCommand(recommendCmd())
	return root
}

func recommendCmd() *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "Fetch movie recommendations without going through the HTTP server",
		Args:  cobra.ExactArgs(1),
		// RunE returns an error (vs Run which doesn't). Cobra prints the error automatically.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(args[0], provider)
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", `Provider: "openai", "claude", or "both" (default from config)`)
	return cmd
}

func runRecommend(title string, provider string) error {
	_ = godotenv.Load()

	configPath := os.Getenv("RECO_CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Set up logger (always use development mode for CLI)
	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Same dependency graph as the server, minus the HTTP layer.
	openaiClient := llm.NewOpenAIClient(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.Model, cfg.LLM.MaxTokens, cfg.LLM.Timeout)
	claudeClient := llm.NewAnthropicClient(cfg.LLM.Anthropic.APIKey, cfg.LLM.Anthropic.Model, cfg.LLM.MaxTokens, cfg.LLM.Timeout)

	var enricher search.Enricher
	if cfg.Search.Enabled {
		enricher = search.NewDuckDuckGo(cfg.Search.BaseURL, cfg.Search.Timeout, logger)
	}

	recommender := service.NewRecommendationService(openaiClient, claudeClient, enricher, logger)

	if provider == "" {
		provider = cfg.LLM.DefaultProvider
	}
	selector, ok := model.ParseSelector(provider)
	if !ok {
		return fmt.Errorf("unknown provider %q: use \"openai\", \"claude\", or \"both\"", provider)
	}

	// Ctrl+C cancels the in-flight provider calls.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("cancelling...")
		cancel()
	}()

	set, err := recommender.Recommend(ctx, title, selector)
	if err != nil {
		return fmt.Errorf("fetching recommendations: %w", err)
	}

	for _, rec := range set.Recommendations {
		fmt.Printf("=== %s", rec.Provider)
		if rec.SearchEnhanced {
			fmt.Print(" (search enhanced)")
		}
		fmt.Printf(" ===\n%s\n\n", rec.Content)
	}

	return nil
}
