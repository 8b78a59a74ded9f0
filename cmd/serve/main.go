// Command serve exposes the nutrition agent over JSON-RPC.
//
// Configuration is via environment variables (a .env file is loaded if present):
//
//	NUTRI_PORT        - Server port (default: 8000)
//	NUTRI_LOG_LEVEL   - debug, info, warn or error (default: info)
//	NUTRI_AGENT_ID    - Agent id served at /agents/{id} (default: nutrition-agent)
//	NUTRI_PROVIDER    - anthropic, openai or google; empty serves lookups without a model
//	NUTRI_MODEL       - Model override (optional, uses provider default)
//	NUTRI_MAX_STEPS   - Max agent iterations (default: 5)
//	ANTHROPIC_API_KEY - Anthropic API key
//	OPENAI_API_KEY    - OpenAI API key
//	GOOGLE_API_KEY    - Google API key
//	FDC_API_KEY       - USDA FoodData Central API key (required)
//	FDC_BASE_URL      - FoodData Central API root
//
// Usage:
//
//	FDC_API_KEY=... NUTRI_PROVIDER=anthropic go run ./cmd/serve
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

	"github.com/spetersoncode/nutriagent"
	"github.com/spetersoncode/nutriagent/agent"
	"github.com/spetersoncode/nutriagent/client"
	"github.com/spetersoncode/nutriagent/nutrition"
	"github.com/spetersoncode/nutriagent/server"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	level, _ := parseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	gen, err := newGenerator(context.Background(), cfg, logger)
	if err != nil {
		slog.Error("failed to create agent", "error", err)
		os.Exit(1)
	}

	agents := agent.NewRegistry()
	agents.MustRegister(cfg.AgentID, gen)

	foods := nutrition.NewClient(cfg.FDCKey, nutrition.WithBaseURL(cfg.FDCBaseURL))
	handler := server.NewHandler(agents, foods, server.WithLogger(logger))

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     server.NewRouter(handler),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	provider := cfg.Provider
	if provider == "" {
		provider = "none"
	}
	slog.Info("server starting",
		"port", cfg.Port,
		"agent", cfg.AgentID,
		"provider", provider,
		"endpoint", "POST /agents/"+cfg.AgentID,
	)

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newGenerator builds the model-backed agent for the configured provider,
// or the passthrough agent when no provider is set.
func newGenerator(ctx context.Context, cfg *Config, logger *slog.Logger) (agent.Generator, error) {
	if cfg.Provider == "" {
		return agent.Passthrough(), nil
	}

	events := make(chan client.Event, 64)
	go logClientEvents(logger, events)

	c := client.New(client.Config{
		Provider: nutriagent.Provider(cfg.Provider),
		APIKeys: client.APIKeys{
			Anthropic: cfg.AnthropicKey,
			OpenAI:    cfg.OpenAIKey,
			Google:    cfg.GoogleKey,
		},
		Model:  cfg.Model,
		Events: events,
	})
	if err := c.Init(ctx); err != nil {
		return nil, err
	}

	return agent.New(c, agent.WithMaxSteps(cfg.MaxSteps)), nil
}

func logClientEvents(logger *slog.Logger, events <-chan client.Event) {
	for e := range events {
		log := logger.With("provider", e.Provider, "model", e.Model, "operation", e.Operation)
		switch e.Type {
		case client.EventRequestStart:
			log.Debug("model request started")
		case client.EventRequestComplete:
			log.Debug("model request completed",
				"duration_ms", e.Duration.Milliseconds(),
				"input_tokens", e.Usage.InputTokens,
				"output_tokens", e.Usage.OutputTokens,
			)
		case client.EventRequestError:
			log.Warn("model request failed", "duration_ms", e.Duration.Milliseconds(), "error", e.Error)
		}
	}
}
