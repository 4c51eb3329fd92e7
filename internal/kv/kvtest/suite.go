// Package kvtest holds the driver conformance suite for kv.Store
// implementations.
package kvtest

import (
	"context"
	"testing"

	"github.com/finwise/finwise-server/internal/kv"
)

// Run exercises a minimal compliance suite against a kv.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) kv.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	// Absent collection reads as not-ok, not as an error.
	if v, ok, err := s.Get(ctx, "absent"); err != nil || ok || v != nil {
		t.Fatalf("Get absent: v=%q ok=%v err=%v", v, ok, err)
	}

	// Write then read back.
	if err := s.Set(ctx, "c1", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get(ctx, "c1")
	if err != nil || !ok || string(v) != `[{"id":"a"}]` {
		t.Fatalf("Get after Set: v=%q ok=%v err=%v", v, ok, err)
	}

	// Overwrite replaces the whole value.
	if err := s.Set(ctx, "c1", []byte(`[]`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if v, _, _ := s.Get(ctx, "c1"); string(v) != `[]` {
		t.Fatalf("Get after overwrite: %q", v)
	}

	// Collections are independent.
	if err := s.Set(ctx, "c2", []byte(`"x"`)); err != nil {
		t.Fatalf("Set c2: %v", err)
	}
	if v, _, _ := s.Get(ctx, "c1"); string(v) != `[]` {
		t.Fatalf("c1 changed by c2 write: %q", v)
	}

	// Mutating a returned slice must not corrupt the stored value.
	v, _, _ = s.Get(ctx, "c2")
	for i := range v {
		v[i] = 'z'
	}
	if v2, _, _ := s.Get(ctx, "c2"); string(v2) != `"x"` {
		t.Fatalf("stored value aliased by caller mutation: %q", v2)
	}

	// Delete is idempotent.
	if err := s.Delete(ctx, "c1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "c1"); ok {
		t.Fatalf("c1 still present after Delete")
	}
	if err := s.Delete(ctx, "c1"); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
