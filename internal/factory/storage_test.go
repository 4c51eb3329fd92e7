package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/finwise/finwise-server/internal/config"
)

func TestNewStoreMemoryDriver(t *testing.T) {
	cfg := config.NewForTesting()

	st, err := NewStore(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer func() { _ = st.Close() }()

	if err := st.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestNewStoreSqliteDriver(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.DBDriver = "sqlite"
	cfg.SQLitePath = filepath.Join(t.TempDir(), "finwise.db")

	st, err := NewStore(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer func() { _ = st.Close() }()

	if err := st.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestNewStoreRejectsUnknownDriver(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.DBDriver = "postgres"

	if _, err := NewStore(cfg, zerolog.Nop()); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestNewStoreSqliteRequiresPath(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.DBDriver = "sqlite"
	cfg.SQLitePath = ""

	if _, err := NewStore(cfg, zerolog.Nop()); err == nil {
		t.Fatal("expected error for missing sqlite path")
	}
}
