package pagetracker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ryhazerus/pagetracker/store"
)

// DefaultKey is the counter incremented when no key is configured.
const DefaultKey = "page_views"

// Tracker counts page views in a store.Store. It holds no count of its own;
// every read and write goes to the store.
type Tracker struct {
	store  store.Store
	key    string
	logger *zap.Logger
}

// New creates a new Tracker with the given options.
// If no store is provided, an in-memory store is used.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		key:    DefaultKey,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(t)
	}
	if t.store == nil {
		t.store = store.NewMemoryStore()
	}
	return t
}

// Hit records one page view and returns the new total.
func (t *Tracker) Hit(ctx context.Context) (int64, error) {
	n, err := t.store.Increment(ctx, t.key)
	if err != nil {
		return 0, fmt.Errorf("pagetracker: hit: %w", err)
	}
	return n, nil
}

// Views returns the current total without changing it.
func (t *Tracker) Views(ctx context.Context) (int64, error) {
	n, err := t.store.Get(ctx, t.key)
	if err != nil {
		return 0, fmt.Errorf("pagetracker: views: %w", err)
	}
	return n, nil
}

// Reset removes the counter, so the next hit starts again at one.
func (t *Tracker) Reset(ctx context.Context) error {
	if err := t.store.Reset(ctx, t.key); err != nil {
		return fmt.Errorf("pagetracker: reset: %w", err)
	}
	return nil
}

// Key returns the name of the counter.
func (t *Tracker) Key() string {
	return t.key
}

// Close releases resources held by the tracker's store.
func (t *Tracker) Close() error {
	return t.store.Close()
}
