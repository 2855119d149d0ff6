package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"movi-agent/config"
	_ "movi-agent/docs" // Swagger docs
	agentDelivery "movi-agent/internal/agent/delivery/http"
	"movi-agent/internal/agent/pending"
	"movi-agent/internal/agent/repository/movi"
	"movi-agent/internal/agent/usecase"
	"movi-agent/internal/httpserver"
	"movi-agent/internal/middleware"
	"movi-agent/internal/router"
	"movi-agent/pkg/log"
	"movi-agent/pkg/openai"
)

// @title       Movi Agent API
// @description Natural-language front-end for the Movi transport operations backend.
// @version     1
// @host        localhost:8090
// @schemes     http
func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Movi Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.URL)

	// 3. LLM classifier (optional). Without an API key the rule classifier
	// handles every message.
	var llm openai.IOpenAI
	if cfg.OpenAI.APIKey != "" {
		llm, err = openai.New(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
			Timeout: cfg.OpenAI.Timeout,
		})
		if err != nil {
			logger.Warnf(ctx, "OpenAI client unavailable, rules only: %v", err)
			llm = nil
		} else {
			logger.Infof(ctx, "LLM classifier enabled (model %s)", cfg.OpenAI.Model)
		}
	} else {
		logger.Info(ctx, "OPENAI_API_KEY not set, rule classifier only")
	}

	// 4. Backend repository
	moviClient := movi.NewClient(cfg.Backend.URL, cfg.Backend.Timeout)
	backend := movi.New(moviClient, logger)

	// 5. Agent wiring
	store := pending.New(cfg.Pending.TTL, cfg.Pending.Capacity)
	semanticRouter := router.New(llm, logger)
	agentUC := usecase.New(logger, semanticRouter, backend, store)
	agentHandler := agentDelivery.New(logger, agentUC)

	// 6. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		Middleware:    middleware.New(logger, cfg),
		BackendURL:    cfg.Backend.URL,
		LLMConfigured: llm != nil,
		AgentHandler:  agentHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
