package cachemanager

import (
	"context"
	"time"

	"github.com/zjrosen/parley/internal/log"
)

// ReadThroughCache computes a value on miss and stores it.
type ReadThroughCache[K ~string, V any, I any] struct {
	cache CacheManager[K, V]
	fn    func(ctx context.Context, input I) (V, error)
	skip  bool
}

// NewReadThroughCache wires fn behind cache. With skip set every Get calls fn.
func NewReadThroughCache[K ~string, V any, I any](
	cache CacheManager[K, V],
	fn func(ctx context.Context, input I) (V, error),
	skip bool,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{cache: cache, fn: fn, skip: skip}
}

// Get returns the cached value for key, computing it from input on a miss.
// Errors are returned and never cached.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	if r.skip {
		return r.fn(ctx, input)
	}
	if v, ok := r.cache.Get(ctx, key); ok {
		log.Debug(log.CatCache, "hit", "key", key)
		return v, nil
	}
	v, err := r.fn(ctx, input)
	if err != nil {
		return v, err
	}
	r.cache.Set(ctx, key, v, ttl)
	return v, nil
}

// Invalidate flushes the underlying cache.
func (r *ReadThroughCache[K, V, I]) Invalidate(ctx context.Context) {
	r.cache.Flush(ctx)
}
