// internal/store/memory.go
//
// Durable key-value store abstraction consumed by the session, stats, and
// aggregate components, plus an in-memory implementation.
//
// The engine treats storage as a best-effort mirror: values are opaque
// serialized blobs consulted at load time, and a failed write degrades the
// affected feature (no resume, no cross-day stats) without stopping play.
//
// The memory implementation serves tests and acts as the fallback when the
// SQLite backend is unavailable. State is lost on restart.

package store

import (
	"context"
	"sync"
)

// Store is a durable key-value store over opaque byte blobs.
// Implementations may be backed by memory (this package) or SQLite.
type Store interface {
	// Get retrieves a value. The bool reports whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set writes or replaces a value.
	Set(ctx context.Context, key string, value []byte) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex // guards values
	values map[string][]byte
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{values: make(map[string][]byte)}
}

func (m *memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}
