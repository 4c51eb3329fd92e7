package config

import (
	"os"
	"testing"
)

func unsetBuildEnv() {
	_ = os.Unsetenv("FINWISE_BUILD_TARGET")
	_ = os.Unsetenv("FINWISE_DB_DRIVER")
	_ = os.Unsetenv("FINWISE_SQLITE_PATH")
}

func TestResolveDefaultsLocal(t *testing.T) {
	unsetBuildEnv()
	_ = os.Setenv("FINWISE_BUILD_TARGET", "local")
	defer unsetBuildEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "sqlite" || cfg.SQLitePath == "" {
		t.Fatalf("unexpected mapping: %s %q", cfg.DBDriver, cfg.SQLitePath)
	}
}

func TestResolveDefaultsDemo(t *testing.T) {
	unsetBuildEnv()
	_ = os.Setenv("FINWISE_BUILD_TARGET", "demo")
	defer unsetBuildEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "memory" || cfg.SQLitePath != "" {
		t.Fatalf("unexpected mapping for demo: %s %q", cfg.DBDriver, cfg.SQLitePath)
	}
}

func TestResolveDefaultsOverride(t *testing.T) {
	unsetBuildEnv()
	_ = os.Setenv("FINWISE_BUILD_TARGET", "demo")
	_ = os.Setenv("FINWISE_DB_DRIVER", "sqlite")
	defer unsetBuildEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("override failed, got %s", cfg.DBDriver)
	}
}

func TestResolveDefaultsRejectsUnknownTarget(t *testing.T) {
	unsetBuildEnv()
	_ = os.Setenv("FINWISE_BUILD_TARGET", "cloud")
	defer unsetBuildEnv()

	if _, err := New(); err == nil {
		t.Fatal("expected error for unknown build target")
	}
}
