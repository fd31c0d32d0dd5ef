package config

import (
	"testing"
	"time"
)

func TestLoad_DefaultsApplied(t *testing.T) {
	t.Setenv("DIRECTORY_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetDirectoryBaseURL() != "https://api.hubapi.com" {
		t.Fatalf("unexpected base URL: %q", cfg.GetDirectoryBaseURL())
	}
	if cfg.GetDirectoryRateLimit() != 9 {
		t.Fatalf("unexpected rate limit: %v", cfg.GetDirectoryRateLimit())
	}
	if cfg.GetHTTPTimeout() != 15*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.GetHTTPTimeout())
	}
	if cfg.GetMergePrimaryPolicy() != MergePreferHighestID {
		t.Fatalf("unexpected merge policy: %q", cfg.GetMergePrimaryPolicy())
	}
	if cfg.GetRecordDelay() != 300*time.Millisecond {
		t.Fatalf("unexpected record delay: %v", cfg.GetRecordDelay())
	}
}

func TestLoad_MissingAPIKeyFails(t *testing.T) {
	t.Setenv("DIRECTORY_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestLoad_InvalidMergePolicyFails(t *testing.T) {
	t.Setenv("DIRECTORY_API_KEY", "test-key")
	t.Setenv("MERGE_PRIMARY_POLICY", "newest")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid merge policy")
	}
}

func TestLoad_TrailingSlashStrippedFromBaseURL(t *testing.T) {
	t.Setenv("DIRECTORY_API_KEY", "test-key")
	t.Setenv("DIRECTORY_BASE_URL", "https://directory.example.com/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetDirectoryBaseURL() != "https://directory.example.com" {
		t.Fatalf("unexpected base URL: %q", cfg.GetDirectoryBaseURL())
	}
}
