package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the console. Values come from the
// ADMIN_-prefixed environment, with .env loaded first when present.
type Config struct {
	APIBaseURL string `envconfig:"API_BASE_URL"`
	APIToken   string `envconfig:"API_TOKEN"`
	TokenFile  string `envconfig:"TOKEN_FILE"`

	RequestTimeout      time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s"`
	PageSize            int           `envconfig:"PAGE_SIZE" default:"10"`
	AutoRefreshInterval time.Duration `envconfig:"AUTO_REFRESH_INTERVAL" default:"30s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("admin", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("ADMIN_API_BASE_URL is required")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("ADMIN_PAGE_SIZE must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("ADMIN_REQUEST_TIMEOUT must be positive")
	}
	return nil
}

// Token resolves the bearer token: the inline value wins, then the token
// file. An empty result means unauthenticated calls.
func (c *Config) Token() (string, error) {
	if c.APIToken != "" {
		return c.APIToken, nil
	}
	if c.TokenFile != "" {
		b, err := os.ReadFile(c.TokenFile)
		if err != nil {
			return "", fmt.Errorf("read token file: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	return "", nil
}

// Logger builds the process logger from the configured level and format.
func (c *Config) Logger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(c.LogFormat) == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
