package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rs := NewRedisStore(RedisOptions{Address: mr.Addr()})
	t.Cleanup(func() { _ = rs.Close() })
	return rs, mr
}

func TestRedisStorePing(t *testing.T) {
	rs, mr := newTestRedisStore(t)

	assert.NoError(t, rs.Ping(context.Background()))

	mr.Close()
	assert.Error(t, rs.Ping(context.Background()))
}

func TestRedisStoreRoundTrip(t *testing.T) {
	rs, _ := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, rs.Set(ctx, "key", []byte("value"), time.Minute))

	value, found := rs.Get(ctx, "key")
	assert.True(t, found)
	assert.Equal(t, []byte("value"), value)
	assert.True(t, rs.Has(ctx, "key"))
}

func TestRedisStoreKeysArePrefixed(t *testing.T) {
	rs, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, rs.Set(ctx, "key", []byte("value"), time.Minute))
	assert.True(t, mr.Exists("catalog:key"))
}

func TestRedisStoreMissingKey(t *testing.T) {
	rs, _ := newTestRedisStore(t)
	ctx := context.Background()

	value, found := rs.Get(ctx, "missing")
	assert.False(t, found)
	assert.Nil(t, value)
	assert.False(t, rs.Has(ctx, "missing"))
}

func TestRedisStoreTTL(t *testing.T) {
	rs, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, rs.Set(ctx, "key", []byte("value"), time.Minute))

	mr.FastForward(2 * time.Minute)

	_, found := rs.Get(ctx, "key")
	assert.False(t, found)
}

func TestRedisStoreDelete(t *testing.T) {
	rs, _ := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, rs.Set(ctx, "key", []byte("value"), time.Minute))
	require.NoError(t, rs.Delete(ctx, "key"))

	_, found := rs.Get(ctx, "key")
	assert.False(t, found)
}

func TestRedisStoreClearOnlyTouchesPrefix(t *testing.T) {
	rs, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, rs.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, rs.Set(ctx, "b", []byte("2"), time.Minute))
	require.NoError(t, mr.Set("other:key", "untouched"))

	require.NoError(t, rs.Clear(ctx))

	assert.False(t, rs.Has(ctx, "a"))
	assert.False(t, rs.Has(ctx, "b"))
	assert.True(t, mr.Exists("other:key"))
}

func TestRedisStoreDegradesToMissWhenDown(t *testing.T) {
	rs, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, rs.Set(ctx, "key", []byte("value"), time.Minute))
	mr.Close()

	// A dead server reads as a miss, never an error
	value, found := rs.Get(ctx, "key")
	assert.False(t, found)
	assert.Nil(t, value)
	assert.False(t, rs.Has(ctx, "key"))

	// Writes do surface errors so callers can log and move on
	assert.Error(t, rs.Set(ctx, "key", []byte("value"), time.Minute))
}
