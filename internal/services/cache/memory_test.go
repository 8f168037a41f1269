package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryStore(t *testing.T) *MemoryStore {
	t.Helper()
	ms := NewMemoryStore(1)
	t.Cleanup(ms.Stop)
	return ms
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ms := newTestMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, ms.Set(ctx, "key", []byte("value"), time.Minute))

	value, found := ms.Get(ctx, "key")
	assert.True(t, found)
	assert.Equal(t, []byte("value"), value)
	assert.True(t, ms.Has(ctx, "key"))
}

func TestMemoryStoreMissingKey(t *testing.T) {
	ms := newTestMemoryStore(t)
	ctx := context.Background()

	value, found := ms.Get(ctx, "missing")
	assert.False(t, found)
	assert.Nil(t, value)
	assert.False(t, ms.Has(ctx, "missing"))
}

func TestMemoryStoreExpiry(t *testing.T) {
	ms := newTestMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, ms.Set(ctx, "key", []byte("value"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, found := ms.Get(ctx, "key")
	assert.False(t, found)
	assert.False(t, ms.Has(ctx, "key"))
}

func TestMemoryStoreDelete(t *testing.T) {
	ms := newTestMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, ms.Set(ctx, "key", []byte("value"), time.Minute))
	require.NoError(t, ms.Delete(ctx, "key"))

	_, found := ms.Get(ctx, "key")
	assert.False(t, found)

	// Deleting again is a no-op
	assert.NoError(t, ms.Delete(ctx, "key"))
}

func TestMemoryStoreClear(t *testing.T) {
	ms := newTestMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, ms.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, ms.Set(ctx, "b", []byte("2"), time.Minute))
	require.NoError(t, ms.Clear(ctx))

	assert.False(t, ms.Has(ctx, "a"))
	assert.False(t, ms.Has(ctx, "b"))
	assert.Equal(t, int64(0), ms.Stats().Size)
}

func TestMemoryStoreOverwriteAdjustsSize(t *testing.T) {
	ms := newTestMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, ms.Set(ctx, "key", []byte("a much longer initial value"), time.Minute))
	require.NoError(t, ms.Set(ctx, "key", []byte("v"), time.Minute))

	assert.Equal(t, int64(len("key")+len("v")), ms.Stats().Size)
}

func TestMemoryStoreStats(t *testing.T) {
	ms := newTestMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, ms.Set(ctx, "key", []byte("value"), time.Minute))
	ms.Get(ctx, "key")
	ms.Get(ctx, "missing")

	stats := ms.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Sets)
	assert.Equal(t, int64(1024*1024), stats.MaxSize)
	assert.Greater(t, stats.Size, int64(0))
}

func TestMemoryStoreEvictsWhenFull(t *testing.T) {
	ms := newTestMemoryStore(t)
	ctx := context.Background()

	// Each entry is ~256KB; a 1MB bound cannot hold all six
	value := make([]byte, 256*1024)
	keys := []string{"a", "b", "c", "d", "e", "f"}
	for _, key := range keys {
		require.NoError(t, ms.Set(ctx, key, value, time.Minute))
	}

	stats := ms.Stats()
	assert.LessOrEqual(t, stats.Size, stats.MaxSize)
	assert.Greater(t, stats.Evictions, int64(0))
}
