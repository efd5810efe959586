package pagetracker

import (
	"go.uber.org/zap"

	"github.com/ryhazerus/pagetracker/store"
)

// Option configures the Tracker.
type Option func(*Tracker)

// WithStore sets the backing store for the counter.
// If not provided, an in-memory store is used by default.
func WithStore(s store.Store) Option {
	return func(t *Tracker) {
		t.store = s
	}
}

// WithKey sets the counter name. Defaults to DefaultKey.
func WithKey(key string) Option {
	return func(t *Tracker) {
		t.key = key
	}
}

// WithLogger sets the logger the HTTP handler reports store failures to.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) {
		t.logger = l
	}
}
