package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spetersoncode/nutriagent"
	"github.com/spetersoncode/nutriagent/nutrition"
)

// Config holds the server configuration loaded from environment variables.
type Config struct {
	// Server
	Port     string
	LogLevel string // debug, info, warn, error

	// Agent
	AgentID  string
	Provider string // empty serves the passthrough agent
	Model    string
	MaxSteps int

	// API Keys
	AnthropicKey string
	OpenAIKey    string
	GoogleKey    string

	// FoodData Central
	FDCKey     string
	FDCBaseURL string
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load() // Load .env file if present

	cfg := &Config{
		Port:         getEnvOrDefault("NUTRI_PORT", "8000"),
		LogLevel:     getEnvOrDefault("NUTRI_LOG_LEVEL", "info"),
		AgentID:      getEnvOrDefault("NUTRI_AGENT_ID", "nutrition-agent"),
		Provider:     strings.ToLower(os.Getenv("NUTRI_PROVIDER")),
		Model:        os.Getenv("NUTRI_MODEL"),
		MaxSteps:     getEnvIntOrDefault("NUTRI_MAX_STEPS", 5),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		GoogleKey:    os.Getenv("GOOGLE_API_KEY"),
		FDCKey:       os.Getenv("FDC_API_KEY"),
		FDCBaseURL:   getEnvOrDefault("FDC_BASE_URL", nutrition.DefaultBaseURL),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.FDCKey == "" {
		return fmt.Errorf("FDC_API_KEY is required")
	}
	if c.AgentID == "" {
		return fmt.Errorf("NUTRI_AGENT_ID must not be empty")
	}
	if c.MaxSteps < 1 {
		return fmt.Errorf("NUTRI_MAX_STEPS must be at least 1, got %d", c.MaxSteps)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}

	switch nutriagent.Provider(c.Provider) {
	case "":
	case nutriagent.ProviderAnthropic:
		if c.AnthropicKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for anthropic provider")
		}
	case nutriagent.ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for openai provider")
		}
	case nutriagent.ProviderGoogle:
		if c.GoogleKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required for google provider")
		}
	default:
		return fmt.Errorf("unknown provider: %s (must be anthropic, openai, or google)", c.Provider)
	}

	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid NUTRI_LOG_LEVEL %q (must be debug, info, warn, or error)", s)
	}
	return level, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
