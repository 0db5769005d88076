package emoji

import (
	"context"
	"strconv"
	"time"

	"github.com/zjrosen/parley/internal/cachemanager"
	"github.com/zjrosen/parley/internal/log"
)

const rowCacheTTL = 5 * time.Minute

type rowKey string

type rowInput struct {
	catalog  Catalog
	filter   string
	tone     SkinTone
	rowWidth int
}

// RowCache memoizes Materialize for the lifetime of a picker session, so
// flipping back to a previous filter skips the rematerialization. It must be
// flushed when the catalog is rebuilt.
type RowCache struct {
	rt    *cachemanager.ReadThroughCache[rowKey, Rows, rowInput]
	cache cachemanager.CacheManager[rowKey, Rows]
}

// NewRowCache creates an empty cache.
func NewRowCache() *RowCache {
	cache := cachemanager.NewInMemoryCacheManager[rowKey, Rows]("emoji-rows", rowCacheTTL, cachemanager.DefaultCleanupInterval)
	materialize := func(_ context.Context, in rowInput) (Rows, error) {
		return Materialize(in.catalog, in.filter, in.tone, in.rowWidth), nil
	}
	return &RowCache{
		rt:    cachemanager.NewReadThroughCache(cachemanager.CacheManager[rowKey, Rows](cache), materialize, false),
		cache: cache,
	}
}

// Rows returns Materialize(c, filter, tone, rowWidth), cached by the
// catalog fingerprint and the other arguments.
func (rc *RowCache) Rows(ctx context.Context, c Catalog, filter string, tone SkinTone, rowWidth int) Rows {
	in := rowInput{catalog: c, filter: filter, tone: tone, rowWidth: rowWidth}
	if rc == nil || c.fingerprint == "" {
		return Materialize(c, filter, tone, rowWidth)
	}
	key := rowKey(c.fingerprint + "|" + string(tone) + "|" + strconv.Itoa(rowWidth) + "|" + filter)
	rows, err := rc.rt.Get(ctx, key, in, rowCacheTTL)
	if err != nil {
		log.ErrorErr(log.CatCache, "materialize failed", err)
		return Materialize(c, filter, tone, rowWidth)
	}
	return rows
}

// Flush drops every cached row sequence.
func (rc *RowCache) Flush(ctx context.Context) {
	if rc == nil {
		return
	}
	rc.rt.Invalidate(ctx)
	log.Debug(log.CatCache, "row cache flushed")
}

// Len is the number of cached row sequences.
func (rc *RowCache) Len() int {
	if rc == nil {
		return 0
	}
	return rc.cache.Len()
}
