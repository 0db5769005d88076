package emoji

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowCache_MemoizesByInputs(t *testing.T) {
	ctx := context.Background()
	rc := NewRowCache()
	c := Build(mustLoad(t, smileYAML), nil, SkinToneDefault, nil)

	first := rc.Rows(ctx, c, "smile", SkinToneDefault, 9)
	assert.Equal(t, Materialize(c, "smile", SkinToneDefault, 9), first)
	assert.Equal(t, 1, rc.Len())

	again := rc.Rows(ctx, c, "smile", SkinToneDefault, 9)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, rc.Len(), "identical inputs hit the cache")

	rc.Rows(ctx, c, "smile", SkinToneDefault, 3)
	rc.Rows(ctx, c, "", SkinToneDefault, 9)
	assert.Equal(t, 3, rc.Len())

	rc.Flush(ctx)
	assert.Equal(t, 0, rc.Len())
}

func TestRowCache_RebuildChangesKey(t *testing.T) {
	ctx := context.Background()
	rc := NewRowCache()
	src := mustLoad(t, smileYAML)

	plain := Build(src, nil, SkinToneDefault, nil)
	withRecent := Build(src, []string{"dog"}, SkinToneDefault, &plain)
	require.NotEqual(t, plain.Fingerprint(), withRecent.Fingerprint())

	a := rc.Rows(ctx, plain, "", SkinToneDefault, 9)
	b := rc.Rows(ctx, withRecent, "", SkinToneDefault, 9)
	assert.NotEqual(t, a.Len(), b.Len(), "a rebuilt catalog is never served stale rows")
}

func TestRowCache_NilIsPassThrough(t *testing.T) {
	var rc *RowCache
	c := Build(mustLoad(t, smileYAML), nil, SkinToneDefault, nil)
	assert.Equal(t, Materialize(c, "", SkinToneDefault, 9), rc.Rows(context.Background(), c, "", SkinToneDefault, 9))
	assert.Equal(t, 0, rc.Len())
	rc.Flush(context.Background())
}
