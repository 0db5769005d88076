package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rowKey string

func TestInMemoryCacheManager_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[rowKey, []int]("rows", DefaultExpiration, DefaultCleanupInterval)

	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)

	c.Set(ctx, "a", []int{1, 2}, time.Minute)
	v, ok := c.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)
	assert.Equal(t, 1, c.Len())

	c.Delete(ctx, "a")
	_, ok = c.Get(ctx, "a")
	assert.False(t, ok)
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[string, string]("flush", DefaultExpiration, DefaultCleanupInterval)
	c.Set(ctx, "x", "1", time.Minute)
	c.Set(ctx, "y", "2", time.Minute)

	c.Flush(ctx)

	assert.Equal(t, 0, c.Len())
}

func TestReadThroughCache_ComputesOnce(t *testing.T) {
	ctx := context.Background()
	calls := 0
	rt := NewReadThroughCache[string, int, int](
		NewInMemoryCacheManager[string, int]("square", DefaultExpiration, DefaultCleanupInterval),
		func(_ context.Context, in int) (int, error) {
			calls++
			return in * in, nil
		},
		false,
	)

	v1, err := rt.Get(ctx, "3", 3, time.Minute)
	require.NoError(t, err)
	v2, err := rt.Get(ctx, "3", 3, time.Minute)
	require.NoError(t, err)

	assert.Equal(t, 9, v1)
	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, calls)

	rt.Invalidate(ctx)
	_, _ = rt.Get(ctx, "3", 3, time.Minute)
	assert.Equal(t, 2, calls)
}

func TestReadThroughCache_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	calls := 0
	rt := NewReadThroughCache[string, int, int](
		NewInMemoryCacheManager[string, int]("err", DefaultExpiration, DefaultCleanupInterval),
		func(_ context.Context, _ int) (int, error) {
			calls++
			return 0, errors.New("nope")
		},
		false,
	)

	_, err := rt.Get(ctx, "k", 1, time.Minute)
	require.Error(t, err)
	_, err = rt.Get(ctx, "k", 1, time.Minute)
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestReadThroughCache_Skip(t *testing.T) {
	ctx := context.Background()
	calls := 0
	rt := NewReadThroughCache[string, int, int](
		NewInMemoryCacheManager[string, int]("skip", DefaultExpiration, DefaultCleanupInterval),
		func(_ context.Context, in int) (int, error) {
			calls++
			return in, nil
		},
		true,
	)
	_, _ = rt.Get(ctx, "k", 1, time.Minute)
	_, _ = rt.Get(ctx, "k", 1, time.Minute)
	assert.Equal(t, 2, calls)
}
