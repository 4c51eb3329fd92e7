package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/finwise/finwise-server/internal/config"
	"github.com/finwise/finwise-server/internal/kv"
	kvmem "github.com/finwise/finwise-server/internal/kv/memory"
	kvsqlite "github.com/finwise/finwise-server/internal/kv/sqlite"
	storepkg "github.com/finwise/finwise-server/internal/store"
)

// NewStore builds the collection store over the configured kv driver.
func NewStore(cfg *config.Config, log zerolog.Logger) (*storepkg.Store, error) {
	var backend kv.Store
	switch cfg.DBDriver {
	case "sqlite":
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("FINWISE_SQLITE_PATH is required when DB_DRIVER=sqlite")
		}
		db, err := kvsqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		backend, err = kvsqlite.NewSqliteStoreWithDB(db)
		if err != nil {
			return nil, err
		}
	case "memory":
		backend = kvmem.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}

	log.Debug().Str("driver", cfg.DBDriver).Str("path", cfg.SQLitePath).Msg("storage driver ready")
	return storepkg.New(backend, log), nil
}
