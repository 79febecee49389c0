package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SHUTDOWN_TIMEOUT", "DATABASE_URL", "DATABASE_NAME", "DB_DSN", "STORE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Addr != ":8000" {
		t.Fatalf("expected default addr :8000, got %q", cfg.Addr)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected default shutdown timeout 10s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.DatabaseURL != "" || cfg.PostgresDSN != "" {
		t.Fatalf("expected no store configured by default")
	}
	if cfg.MemoryStore {
		t.Fatalf("expected memory store disabled by default")
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("SHUTDOWN_TIMEOUT", "3")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "beestore")
	t.Setenv("STORE", "memory")

	cfg := Load()

	if cfg.Addr != ":9001" {
		t.Fatalf("expected addr :9001, got %q", cfg.Addr)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected shutdown timeout 3s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.DatabaseURL != "mongodb://localhost:27017" {
		t.Fatalf("unexpected database url %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != "beestore" {
		t.Fatalf("unexpected database name %q", cfg.DatabaseName)
	}
	if !cfg.MemoryStore {
		t.Fatalf("expected memory store enabled")
	}
}

func TestLoad_InvalidShutdownTimeoutFallsBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-number")

	cfg := Load()
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected fallback 10s, got %v", cfg.ShutdownTimeout)
	}
}
