package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:     "8000",
		LogLevel: "info",
		AgentID:  "nutrition-agent",
		MaxSteps: 5,
		FDCKey:   "fdc",
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"passthrough", func(c *Config) {}, ""},
		{"missing fdc key", func(c *Config) { c.FDCKey = "" }, "FDC_API_KEY"},
		{"empty agent id", func(c *Config) { c.AgentID = "" }, "NUTRI_AGENT_ID"},
		{"zero steps", func(c *Config) { c.MaxSteps = 0 }, "NUTRI_MAX_STEPS"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "NUTRI_LOG_LEVEL"},
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, "ANTHROPIC_API_KEY"},
		{"anthropic with key", func(c *Config) { c.Provider = "anthropic"; c.AnthropicKey = "k" }, ""},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, "OPENAI_API_KEY"},
		{"google without key", func(c *Config) { c.Provider = "google" }, "GOOGLE_API_KEY"},
		{"unknown provider", func(c *Config) { c.Provider = "mistral" }, "unknown provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FDC_API_KEY", "fdc")
	t.Setenv("NUTRI_PROVIDER", "")
	t.Setenv("NUTRI_PORT", "")
	t.Setenv("NUTRI_MAX_STEPS", "not-a-number")
	t.Setenv("FDC_BASE_URL", "")
	t.Setenv("NUTRI_AGENT_ID", "")
	t.Setenv("NUTRI_LOG_LEVEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "nutrition-agent", cfg.AgentID)
	assert.Equal(t, 5, cfg.MaxSteps)
	assert.Equal(t, "https://api.nal.usda.gov/fdc/v1", cfg.FDCBaseURL)
}

func TestParseLogLevel(t *testing.T) {
	level, err := parseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = parseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
