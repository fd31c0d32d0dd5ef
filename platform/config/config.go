// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DirectoryConfig provides settings for the directory service client.
type DirectoryConfig interface {
	GetDirectoryBaseURL() string
	GetDirectoryAPIKey() string
	GetDirectoryRateLimit() float64
	GetHTTPTimeout() time.Duration
	GetRetryMaxAttempts() int
}

// PipelineConfig provides settings for the per-record pipeline.
type PipelineConfig interface {
	GetFailureLogPath() string
	GetMergePrimaryPolicy() string
	GetRecordDelay() time.Duration
}

// MergePrimaryPolicy values for PipelineConfig.GetMergePrimaryPolicy.
const (
	MergePreferHighestID = "highest-id"
	MergePreferLowestID  = "lowest-id"
)

// Config holds all application configuration.
type Config struct {
	Env string

	DirectoryBaseURL   string
	DirectoryAPIKey    string
	DirectoryRateLimit float64
	HTTPTimeout        time.Duration
	RetryMaxAttempts   int

	FailureLogPath     string
	MergePrimaryPolicy string
	RecordDelay        time.Duration
}

// Load reads configuration from the environment, with .env support.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		DirectoryBaseURL:   strings.TrimRight(getEnv("DIRECTORY_BASE_URL", "https://api.hubapi.com"), "/"),
		DirectoryAPIKey:    getEnv("DIRECTORY_API_KEY", ""),
		DirectoryRateLimit: mustFloat(getEnv("DIRECTORY_RATE_LIMIT", "9")),
		HTTPTimeout:        mustDuration(getEnv("HTTP_TIMEOUT", "15s")),
		RetryMaxAttempts:   mustInt(getEnv("RETRY_MAX_ATTEMPTS", "3")),
		FailureLogPath:     getEnv("FAILURE_LOG_PATH", "failed_records.log"),
		MergePrimaryPolicy: getEnv("MERGE_PRIMARY_POLICY", MergePreferHighestID),
		RecordDelay:        mustDuration(getEnv("RECORD_DELAY", "300ms")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DirectoryAPIKey == "" {
		return fmt.Errorf("DIRECTORY_API_KEY is required")
	}
	if c.DirectoryRateLimit <= 0 {
		return fmt.Errorf("DIRECTORY_RATE_LIMIT must be positive")
	}
	if c.RetryMaxAttempts < 1 {
		return fmt.Errorf("RETRY_MAX_ATTEMPTS must be at least 1")
	}
	switch c.MergePrimaryPolicy {
	case MergePreferHighestID, MergePreferLowestID:
	default:
		return fmt.Errorf("MERGE_PRIMARY_POLICY must be %q or %q", MergePreferHighestID, MergePreferLowestID)
	}
	return nil
}

// GetDirectoryBaseURL returns the directory service base URL.
func (c *Config) GetDirectoryBaseURL() string { return c.DirectoryBaseURL }

// GetDirectoryAPIKey returns the directory service bearer token.
func (c *Config) GetDirectoryAPIKey() string { return c.DirectoryAPIKey }

// GetDirectoryRateLimit returns the allowed directory requests per second.
func (c *Config) GetDirectoryRateLimit() float64 { return c.DirectoryRateLimit }

// GetHTTPTimeout returns the per-call timeout for directory requests.
func (c *Config) GetHTTPTimeout() time.Duration { return c.HTTPTimeout }

// GetRetryMaxAttempts returns the retry budget for transient read failures.
func (c *Config) GetRetryMaxAttempts() int { return c.RetryMaxAttempts }

// GetFailureLogPath returns the append-only failure artifact path.
func (c *Config) GetFailureLogPath() string { return c.FailureLogPath }

// GetMergePrimaryPolicy returns which merge argument survives as primary.
func (c *Config) GetMergePrimaryPolicy() string { return c.MergePrimaryPolicy }

// GetRecordDelay returns the pause between consecutive source records.
func (c *Config) GetRecordDelay() time.Duration { return c.RecordDelay }

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func mustFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}
