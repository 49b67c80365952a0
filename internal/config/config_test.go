package config

import (
	"os"
	"testing"
	"time"
)

func TestGetEnv_Default(t *testing.T) {
	if got := getEnv("JOBTRACK_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestGetEnv_Override(t *testing.T) {
	t.Setenv("JOBTRACK_TEST_KEY", "value")

	if got := getEnv("JOBTRACK_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
}

func TestLoad_TokenTTL(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "45")

	cfg := Load()
	if cfg.TokenTTL != 45*time.Minute {
		t.Fatalf("expected 45m TTL, got %v", cfg.TokenTTL)
	}
}

func TestLoad_TokenTTLDefault(t *testing.T) {
	// t.Setenv registers the restore, Unsetenv makes the variable truly
	// absent so the default applies regardless of the host environment
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "")
	os.Unsetenv("ACCESS_TOKEN_TTL_MINUTES")

	cfg := Load()
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("expected default 30m TTL, got %v", cfg.TokenTTL)
	}
}
