package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreIncrement(t *testing.T) {
	s := newTestSQLiteStore(t)
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

func TestSQLiteStoreGet(t *testing.T) {
	s := newTestSQLiteStore(t)
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

func TestSQLiteStoreReset(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	s.Increment(ctx, "key")
	s.Reset(ctx, "key")

	got, _ := s.Get(ctx, "key")
	if got != 0 {
		t.Errorf("after reset: got %d, want 0", got)
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.db")
	ctx := context.Background()

	s1, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	s1.Increment(ctx, "page_views")
	s1.Increment(ctx, "page_views")
	s1.Close()

	s2, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	got, err := s2.Increment(ctx, "page_views")
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("after reopen: got %d, want 3", got)
	}
}

func TestSQLiteStoreClosedIsUnavailable(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	_, err = s.Increment(context.Background(), "key")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}

	var storeErr *Error
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if storeErr.Op != "incr" || storeErr.Key != "key" {
		t.Errorf("op, key = %q, %q, want incr, key", storeErr.Op, storeErr.Key)
	}
}
