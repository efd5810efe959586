// Package redis provides a [store.Store] backed by Redis through go-redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/ryhazerus/pagetracker/store"
)

// DefaultURL is the database used when no URL is configured.
const DefaultURL = "redis://localhost:6379/0"

const backend = "redis"

// Compile-time interface check.
var _ store.Store = (*RedisStore)(nil)

// RedisStore is a Store backed by Redis. Counters are plain integer keys
// updated with INCR, so they can be shared with any other Redis client.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// Option configures a RedisStore.
type Option func(*RedisStore)

// WithPrefix namespaces every key with p.
func WithPrefix(p string) Option {
	return func(r *RedisStore) {
		r.prefix = p
	}
}

// NewRedisStore creates a new Redis-backed store.
func NewRedisStore(client *redis.Client, opts ...Option) *RedisStore {
	r := &RedisStore{client: client}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Open builds a store for a redis:// or rediss:// URL. It does not touch the
// network: go-redis dials on the first command.
func Open(url string, opts ...Option) (*RedisStore, error) {
	o, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("pagetracker/store/redis: parse url: %w", err)
	}
	return NewRedisStore(redis.NewClient(o), opts...), nil
}

// Increment atomically increments the counter for key.
func (r *RedisStore) Increment(ctx context.Context, key string) (int64, error) {
	n, err := r.client.Incr(ctx, r.key(key)).Result()
	if err != nil {
		return 0, &store.Error{Backend: backend, Op: "incr", Key: key, Err: err}
	}
	return n, nil
}

// Get returns the current counter value for key.
func (r *RedisStore) Get(ctx context.Context, key string) (int64, error) {
	n, err := r.client.Get(ctx, r.key(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, &store.Error{Backend: backend, Op: "get", Key: key, Err: err}
	}
	return n, nil
}

// Reset removes the counter for the given key.
func (r *RedisStore) Reset(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return &store.Error{Backend: backend, Op: "del", Key: key, Err: err}
	}
	return nil
}

// Close closes the underlying Redis client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) key(key string) string {
	return r.prefix + key
}
