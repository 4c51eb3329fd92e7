package memory

import (
	"testing"

	"github.com/finwise/finwise-server/internal/kv"
	"github.com/finwise/finwise-server/internal/kv/kvtest"
)

func TestMemoryStoreConformance(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) kv.Store {
		return NewMemoryStore()
	})
}
