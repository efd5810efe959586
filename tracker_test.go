package pagetracker

import (
	"context"
	"errors"
	"testing"

	"github.com/ryhazerus/pagetracker/store"
)

func TestTrackerHit(t *testing.T) {
	tr := New()
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		got, err := tr.Hit(ctx)
		if err != nil {
			t.Fatalf("hit %d: %v", i, err)
		}
		if got != i {
			t.Errorf("hit %d: got %d, want %d", i, got, i)
		}
	}

	views, err := tr.Views(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if views != 3 {
		t.Errorf("views = %d, want 3", views)
	}
}

func TestTrackerUsesKey(t *testing.T) {
	s := store.NewMemoryStore()
	tr := New(WithStore(s), WithKey("home"))
	ctx := context.Background()

	tr.Hit(ctx)
	tr.Hit(ctx)

	if got, _ := s.Get(ctx, "home"); got != 2 {
		t.Errorf("home = %d, want 2", got)
	}
	if got, _ := s.Get(ctx, DefaultKey); got != 0 {
		t.Errorf("%s = %d, want 0", DefaultKey, got)
	}
	if tr.Key() != "home" {
		t.Errorf("Key() = %q, want home", tr.Key())
	}
}

func TestTrackerReset(t *testing.T) {
	tr := New()
	ctx := context.Background()

	tr.Hit(ctx)
	tr.Hit(ctx)

	if err := tr.Reset(ctx); err != nil {
		t.Fatal(err)
	}

	got, _ := tr.Hit(ctx)
	if got != 1 {
		t.Errorf("after reset: got %d, want 1", got)
	}
}

func TestTrackerHitStoreError(t *testing.T) {
	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	tr := New(WithStore(s))

	_, err = tr.Hit(context.Background())
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
}
