// Package kv defines the collection-level storage boundary: named collections
// holding one JSON-serialized value each, read and written whole. A single Set
// is atomic; an operation spanning two Set calls is not.
package kv

import "context"

// Store exposes persistence for named collections.
// Implementations live under internal/kv/<driver>/ (e.g., sqlite, memory).
type Store interface {
	// Get returns the stored value for the collection. The second return is
	// false when the collection has never been written.
	Get(ctx context.Context, collection string) ([]byte, bool, error)
	// Set replaces the collection's value in a single atomic write.
	Set(ctx context.Context, collection string, value []byte) error
	// Delete removes the collection. Deleting an absent collection is not an
	// error.
	Delete(ctx context.Context, collection string) error
	// Ping verifies the backing storage is reachable.
	Ping(ctx context.Context) error
	Close() error
}
