package config

import (
	"os"
	"testing"
)

func TestConfigLoad_Defaults(t *testing.T) {
	_ = os.Unsetenv("FINWISE_HTTP_PORT")
	_ = os.Unsetenv("FINWISE_SEED_SAMPLE_DATA")
	_ = os.Unsetenv("FINWISE_BCRYPT_COST")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 8080 || !cfg.SeedSampleData || cfg.BcryptCost != 10 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("FINWISE_HTTP_PORT", "9191")
	defer func() { _ = os.Unsetenv("FINWISE_HTTP_PORT") }()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 9191 {
		t.Fatalf("port env override failed, got %d", cfg.HTTPPort)
	}
}

func TestConfigLoad_BcryptCostOutOfRange(t *testing.T) {
	_ = os.Setenv("FINWISE_BCRYPT_COST", "99")
	defer func() { _ = os.Unsetenv("FINWISE_BCRYPT_COST") }()

	if _, err := New(); err == nil {
		t.Fatal("expected error for out-of-range bcrypt cost")
	}
}

func TestConfigLoad_ProbeIntervalDefault(t *testing.T) {
	_ = os.Unsetenv("FINWISE_HEALTH_PROBE_INTERVAL_SECONDS")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HealthProbeIntervalSeconds != 5 {
		t.Fatalf("unexpected default probe interval: %d", cfg.HealthProbeIntervalSeconds)
	}
}
