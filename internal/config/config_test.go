package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("port=%q", cfg.Port)
	}
	if cfg.MockLatency != time.Second {
		t.Fatalf("mock latency=%s", cfg.MockLatency)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Fatalf("token ttl=%s", cfg.TokenTTL)
	}
	if cfg.SessionFile != "admin_session.json" {
		t.Fatalf("session file=%q", cfg.SessionFile)
	}
	if cfg.MetricsEnabled {
		t.Fatalf("metrics enabled by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_PORT", "9090")
	t.Setenv("STOREFRONT_MOCK_LATENCY", "0s")
	t.Setenv("STOREFRONT_METRICS_ENABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "9090" {
		t.Fatalf("port=%q", cfg.Port)
	}
	if cfg.MockLatency != 0 {
		t.Fatalf("mock latency=%s", cfg.MockLatency)
	}
	if !cfg.MetricsEnabled {
		t.Fatalf("metrics not enabled")
	}
}
