package store

import (
	"context"
	"sync"

	"github.com/patrickmn/go-cache"
)

// Compile-time interface check.
var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory Store implementation.
// It is safe for concurrent use. Counters are lost on process restart.
type MemoryStore struct {
	// mu keeps Reset from deleting a key between Add and IncrementInt64.
	mu       sync.Mutex
	counters *cache.Cache
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counters: cache.New(cache.NoExpiration, 0),
	}
}

// Increment atomically adds one to the counter for key.
func (m *MemoryStore) Increment(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Add fails when the key already exists, which is fine: either way the
	// counter is present for IncrementInt64.
	_ = m.counters.Add(key, int64(0), cache.NoExpiration)

	n, err := m.counters.IncrementInt64(key, 1)
	if err != nil {
		return 0, &Error{Backend: "memory", Op: "incr", Key: key, Err: err}
	}
	return n, nil
}

// Get returns the current counter value for key.
func (m *MemoryStore) Get(_ context.Context, key string) (int64, error) {
	v, ok := m.counters.Get(key)
	if !ok {
		return 0, nil
	}
	return v.(int64), nil
}

// Reset removes the counter for the given key.
func (m *MemoryStore) Reset(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters.Delete(key)
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}

// set overwrites the counter for key. Used by TieredStore to backfill.
func (m *MemoryStore) set(key string, count int64) {
	m.counters.Set(key, count, cache.NoExpiration)
}
