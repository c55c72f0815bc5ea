// In file: cmd/agent/config.go
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/dileep-u-k/taskmaster-agent/internal/agent"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig holds all configuration for the agent service: secrets from the
// environment and non-secret settings from config.yaml.
type AppConfig struct {
	GeminiAPIKey  string
	WeatherAPIKey string
	NewsAPIKey    string // optional; the news tool is only registered when set
	LogLevel      string

	Server struct {
		Port                   int `yaml:"port"`
		ShutdownTimeoutSeconds int `yaml:"shutdown_timeout_seconds"`
	} `yaml:"server"`
	LLM struct {
		Model           string  `yaml:"model"`
		Temperature     float32 `yaml:"temperature"`
		TopP            float32 `yaml:"top_p"`
		TopK            int32   `yaml:"top_k"`
		MaxOutputTokens int     `yaml:"max_output_tokens"`
	} `yaml:"llm"`
	Classifier struct {
		Temperature     float32 `yaml:"temperature"`
		MaxOutputTokens int     `yaml:"max_output_tokens"`
	} `yaml:"classifier"`
	Weather struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"weather"`
}

// LoadConfig loads configuration from a .env file (local development only),
// environment variables, and the given YAML file. Both provider secrets are
// required: a missing key is a fatal startup error, never a runtime one.
func LoadConfig(yamlPath string) (*AppConfig, error) {
	// In Docker (GIN_MODE="release") configuration is provided directly as
	// environment variables; only load a .env file for local development.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("WARNING: No .env file found for local development.")
		}
	}

	cfg := &AppConfig{}

	raw, err := os.ReadFile(yamlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", yamlPath, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", yamlPath, err)
	}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.WeatherAPIKey = os.Getenv("OPENWEATHERMAP_API_KEY")
	cfg.NewsAPIKey = os.Getenv("NEWS_API_KEY")
	cfg.LogLevel = os.Getenv("LOG_LEVEL")

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	if cfg.WeatherAPIKey == "" {
		return nil, fmt.Errorf("OPENWEATHERMAP_API_KEY environment variable is not set")
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", portStr, err)
		}
		cfg.Server.Port = port
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.ShutdownTimeoutSeconds == 0 {
		cfg.Server.ShutdownTimeoutSeconds = 10
	}
	if cfg.LLM.Model == "" {
		return nil, fmt.Errorf("llm.model is not set in %s", yamlPath)
	}

	return cfg, nil
}

// AgentConfig maps the loaded settings onto the orchestrator's config.
func (c *AppConfig) AgentConfig() agent.Config {
	return agent.Config{
		Model:                     c.LLM.Model,
		Temperature:               c.LLM.Temperature,
		TopP:                      c.LLM.TopP,
		TopK:                      c.LLM.TopK,
		MaxOutputTokens:           c.LLM.MaxOutputTokens,
		ClassifierTemperature:     c.Classifier.Temperature,
		ClassifierMaxOutputTokens: c.Classifier.MaxOutputTokens,
	}
}

// WeatherTimeout returns the configured weather upstream timeout.
func (c *AppConfig) WeatherTimeout() time.Duration {
	return time.Duration(c.Weather.TimeoutSeconds) * time.Second
}
