package store

import (
	"context"
	"sync"
)

// Compile-time interface check.
var _ Store = (*Lazy)(nil)

// OpenFunc constructs a Store.
type OpenFunc func() (Store, error)

// Lazy is a Store whose backend is constructed on first use and reused for
// the lifetime of the Lazy value. Concurrent first calls construct the
// backend once. A failed construction is not remembered, so the next
// operation tries again.
type Lazy struct {
	open OpenFunc

	mu    sync.Mutex
	store Store
}

// NewLazy returns a Lazy that builds its backend with open.
func NewLazy(open OpenFunc) *Lazy {
	return &Lazy{open: open}
}

// Store returns the backend, constructing it if needed.
func (l *Lazy) Store() (Store, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store != nil {
		return l.store, nil
	}

	s, err := l.open()
	if err != nil {
		return nil, err
	}
	l.store = s
	return s, nil
}

// Increment constructs the backend if needed and increments key.
func (l *Lazy) Increment(ctx context.Context, key string) (int64, error) {
	s, err := l.Store()
	if err != nil {
		return 0, err
	}
	return s.Increment(ctx, key)
}

// Get constructs the backend if needed and reads key.
func (l *Lazy) Get(ctx context.Context, key string) (int64, error) {
	s, err := l.Store()
	if err != nil {
		return 0, err
	}
	return s.Get(ctx, key)
}

// Reset constructs the backend if needed and removes key.
func (l *Lazy) Reset(ctx context.Context, key string) error {
	s, err := l.Store()
	if err != nil {
		return err
	}
	return s.Reset(ctx, key)
}

// Close closes the backend if it was ever constructed.
func (l *Lazy) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store == nil {
		return nil
	}
	err := l.store.Close()
	l.store = nil
	return err
}
