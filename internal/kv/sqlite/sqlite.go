// Package sqlite implements kv.Store on a local SQLite file via
// modernc.org/sqlite. Each collection is one row; a Set is a single UPSERT,
// which gives the whole-collection atomicity the storage contract requires.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/finwise/finwise-server/internal/kv"
)

const schema = `CREATE TABLE IF NOT EXISTS Collections (
    Name       TEXT PRIMARY KEY,
    Value      BLOB NOT NULL,
    UpdateTime TIMESTAMP NOT NULL
)`

// Open opens (or creates) a SQLite database at the given path and enables WAL
// journal mode. The URI parameter ensures better concurrency for read-heavy
// workloads.
func Open(path string) (*sql.DB, error) {
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// SqliteStore implements kv.Store using the SQLite driver.
type SqliteStore struct {
	db *sql.DB
}

// NewSqliteStore opens (or creates) a SQLite database file and ensures the
// Collections table exists.
func NewSqliteStore(path string) (kv.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewSqliteStoreWithDB(db)
}

// NewSqliteStoreWithDB allows wiring with an existing connection (used by the
// factory and tests).
func NewSqliteStoreWithDB(db *sql.DB) (kv.Store, error) {
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SqliteStore{db: db}, nil
}

// DB exposes the underlying *sql.DB connection (local-only use case).
func (s *SqliteStore) DB() *sql.DB { return s.db }

func (s *SqliteStore) Get(ctx context.Context, collection string) ([]byte, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT Value FROM Collections WHERE Name = ?`, collection)
	var value []byte
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (s *SqliteStore) Set(ctx context.Context, collection string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO Collections (Name, Value, UpdateTime) VALUES (?,?,?)
		 ON CONFLICT(Name) DO UPDATE SET Value = excluded.Value, UpdateTime = excluded.UpdateTime`,
		collection, value, time.Now().UTC())
	return err
}

func (s *SqliteStore) Delete(ctx context.Context, collection string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM Collections WHERE Name = ?`, collection)
	return err
}

func (s *SqliteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SqliteStore) Close() error { return s.db.Close() }
