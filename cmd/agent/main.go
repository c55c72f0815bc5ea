// In file: cmd/agent/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dileep-u-k/taskmaster-agent/internal/agent"
	"github.com/dileep-u-k/taskmaster-agent/internal/llm"
	"github.com/dileep-u-k/taskmaster-agent/internal/logging"
	"github.com/dileep-u-k/taskmaster-agent/internal/tools"

	"github.com/gin-gonic/gin"
)

// main is the entry point for the application. Its primary role is the
// "Composition Root": it loads configuration, initializes all services,
// injects dependencies, and starts the server.
func main() {
	logger := logging.New(nil, os.Getenv("LOG_LEVEL"))
	buildInfo := GetBuildInfo()
	logger.Info().Str("version", buildInfo.Version).Str("commit", buildInfo.GitCommit).Msg("🚀 Starting TaskMaster Agent Core")

	// 1. LOAD CONFIGURATION
	cfg, err := LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ FATAL: Configuration Error")
	}
	logger = logging.New(nil, cfg.LogLevel)
	logger.Info().Msg("✅ Configuration loaded.")

	// 2. INITIALIZE SERVICES
	llmClient, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.LLM.Model)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ FATAL: Could not create Gemini client")
	}

	registry, err := initializeRegistry(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ FATAL: Could not initialize tool registry")
	}

	agentCore := agent.New(llmClient, registry, cfg.AgentConfig(), logger)
	agentHandler := NewAgentHandler(agentCore, logger)
	logger.Info().Int("tools", registry.Count()).Msg("✅ All services initialized.")

	// 3. SETUP AND RUN THE WEB SERVER
	gin.SetMode(os.Getenv("GIN_MODE"))
	engine := setupRouter(agentHandler)

	srv := &http.Server{Addr: fmt.Sprintf(":%d", cfg.Server.Port), Handler: engine}
	runServerWithGracefulShutdown(srv, logger, time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
}

// initializeRegistry creates and registers all available tools. Adding a
// tool here is the only change required to extend the agent; the
// orchestrator's control flow is untouched.
func initializeRegistry(cfg *AppConfig) (*tools.Registry, error) {
	registry := tools.NewRegistry()

	weatherTool, err := tools.NewWeatherTool(cfg.WeatherAPIKey, cfg.Weather.BaseURL, cfg.WeatherTimeout())
	if err != nil {
		return nil, fmt.Errorf("failed to create weather tool: %w", err)
	}
	registry.Register(weatherTool)
	registry.Register(tools.NewCalculatorTool())

	if cfg.NewsAPIKey != "" {
		newsTool, err := tools.NewNewsTool(cfg.NewsAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create news tool: %w", err)
		}
		registry.Register(newsTool)
	}

	return registry, nil
}

// runServerWithGracefulShutdown handles the server lifecycle.
func runServerWithGracefulShutdown(srv *http.Server, logger *logging.Logger, timeout time.Duration) {
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("👂 Agent is listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("❌ Listen error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("❌ Server shutdown failed")
	}

	logger.Info().Msg("👋 Server exited gracefully.")
}
