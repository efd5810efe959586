package store

import "context"

// Compile-time interface check.
var _ Store = (*TieredStore)(nil)

// TieredStore wraps an in-memory store (fast path) with a persistent backend
// (durable path). Writes go to both stores (write-through); reads check memory
// first and fall back to the persistent store on a miss.
type TieredStore struct {
	memory     *MemoryStore
	persistent Store
}

// NewTieredStore creates a TieredStore backed by the given persistent store.
// An internal MemoryStore is created automatically.
func NewTieredStore(persistent Store) *TieredStore {
	return &TieredStore{
		memory:     NewMemoryStore(),
		persistent: persistent,
	}
}

// Increment goes to the persistent backend, which is authoritative for the
// returned count, and then mirrors that count into memory.
func (t *TieredStore) Increment(ctx context.Context, key string) (int64, error) {
	count, err := t.persistent.Increment(ctx, key)
	if err != nil {
		return 0, err
	}

	t.memory.set(key, count)
	return count, nil
}

// Get reads from memory first. On a miss (zero value), it falls back to the
// persistent store and backfills memory.
func (t *TieredStore) Get(ctx context.Context, key string) (int64, error) {
	count, err := t.memory.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return count, nil
	}

	count, err = t.persistent.Get(ctx, key)
	if err != nil {
		return 0, err
	}

	if count > 0 {
		t.memory.set(key, count)
	}
	return count, nil
}

// Reset removes the counter from both stores.
func (t *TieredStore) Reset(ctx context.Context, key string) error {
	t.memory.Reset(ctx, key)
	return t.persistent.Reset(ctx, key)
}

// Close closes the persistent backend. The in-memory store needs no cleanup.
func (t *TieredStore) Close() error {
	return t.persistent.Close()
}
