package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable is matched by every error a backend returns when it cannot
// serve an operation: connection failures, timeouts and protocol errors.
var ErrUnavailable = errors.New("pagetracker/store: unavailable")

// Error describes a failed store operation. It unwraps to the backend's
// error and matches ErrUnavailable.
type Error struct {
	Backend string
	Op      string
	Key     string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pagetracker/store/%s: %s %s: %v", e.Backend, e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrUnavailable
}

// Store defines the interface for page-view counter backends.
type Store interface {
	// Increment atomically adds one to the counter for key and returns the
	// new value. A missing key starts at zero.
	Increment(ctx context.Context, key string) (current int64, err error)

	// Get returns the current counter value for key, or zero if it is unset.
	Get(ctx context.Context, key string) (current int64, err error)

	// Reset removes the counter for the given key.
	Reset(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
