package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("IGNITIA_API_URL", "")
	t.Setenv("IGNITIA_STATE_FILE", "")
	t.Setenv("IGNITIA_REDIS_ADDR", "")
	t.Setenv("IGNITIA_REDIS_PASSWORD", "")
	t.Setenv("IGNITIA_HTTP_TIMEOUT_SEC", "")
	t.Setenv("IGNITIA_WEB_ADDR", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("expected default API URL %q, got %q", defaultAPIURL, cfg.APIURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("expected default timeout 30s, got %v", cfg.HTTPTimeout)
	}
	if cfg.WebAddr != "127.0.0.1:8787" {
		t.Fatalf("expected default web addr 127.0.0.1:8787, got %q", cfg.WebAddr)
	}
	if cfg.StateFile == "" {
		t.Fatal("expected a default state file path")
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("expected no redis addr by default, got %q", cfg.RedisAddr)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("IGNITIA_API_URL", "http://localhost:9000")
	t.Setenv("IGNITIA_STATE_FILE", "/tmp/ignitia-test.json")
	t.Setenv("IGNITIA_HTTP_TIMEOUT_SEC", "5")
	t.Setenv("IGNITIA_REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.APIURL != "http://localhost:9000" {
		t.Fatalf("expected overridden API URL, got %q", cfg.APIURL)
	}
	if cfg.StateFile != "/tmp/ignitia-test.json" {
		t.Fatalf("expected overridden state file, got %q", cfg.StateFile)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("expected redis addr, got %q", cfg.RedisAddr)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("IGNITIA_HTTP_TIMEOUT_SEC", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-integer timeout")
	}
}
