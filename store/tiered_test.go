package store

import (
	"context"
	"testing"
)

func newTestTieredStore(t *testing.T) *TieredStore {
	t.Helper()
	persistent, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	ts := NewTieredStore(persistent)
	t.Cleanup(func() { ts.Close() })
	return ts
}

func TestTieredStoreIncrement(t *testing.T) {
	s := newTestTieredStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		got, err := s.Increment(ctx, "test")
		if err != nil {
			t.Fatal(err)
		}
		if got != i {
			t.Errorf("increment %d: got %d, want %d", i, got, i)
		}
	}
}

func TestTieredStoreGet(t *testing.T) {
	s := newTestTieredStore(t)
	ctx := context.Background()

	got, _ := s.Get(ctx, "key")
	if got != 0 {
		t.Errorf("initial get: got %d, want 0", got)
	}

	s.Increment(ctx, "key")
	s.Increment(ctx, "key")

	got, _ = s.Get(ctx, "key")
	if got != 2 {
		t.Errorf("after 2 increments: got %d, want 2", got)
	}
}

func TestTieredStoreReset(t *testing.T) {
	s := newTestTieredStore(t)
	ctx := context.Background()

	s.Increment(ctx, "key")
	s.Reset(ctx, "key")

	got, _ := s.Get(ctx, "key")
	if got != 0 {
		t.Errorf("after reset: got %d, want 0", got)
	}
}

func TestTieredStorePersistentFallback(t *testing.T) {
	persistent, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer persistent.Close()

	ctx := context.Background()

	// Write data through a tiered store.
	ts1 := NewTieredStore(persistent)
	ts1.Increment(ctx, "key")
	ts1.Increment(ctx, "key")
	ts1.Increment(ctx, "key")

	// Simulate memory loss by creating a new tiered store with the same
	// persistent backend but a fresh MemoryStore.
	ts2 := NewTieredStore(persistent)

	got, err := ts2.Get(ctx, "key")
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("persistent fallback: got %d, want 3", got)
	}

	got, _ = ts2.Increment(ctx, "key")
	if got != 4 {
		t.Errorf("increment after fallback: got %d, want 4", got)
	}
}
