package gemini

import (
	"testing"
	"time"
)

func TestNewConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := NewConfig(); err == nil {
		t.Fatalf("expected error when GEMINI_API_KEY is missing")
	}
}

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("GEMINI_TIMEOUT", "")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	if cfg.Model != "gemini-2.5-flash" {
		t.Fatalf("expected default model, got %s", cfg.Model)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("expected default timeout, got %v", cfg.Timeout)
	}
	if cfg.Location != "us-central1" {
		t.Fatalf("expected default location, got %s", cfg.Location)
	}
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMINI_TIMEOUT", "5s")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	if cfg.Model != "gemini-2.5-pro" {
		t.Fatalf("expected overridden model, got %s", cfg.Model)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", cfg.Timeout)
	}
}

func TestToGeminiRole(t *testing.T) {
	if got := toGeminiRole("candidate"); got != "user" {
		t.Fatalf("expected candidate to map to user, got %s", got)
	}
	if got := toGeminiRole("interviewer"); got != "model" {
		t.Fatalf("expected interviewer to map to model, got %s", got)
	}
}
