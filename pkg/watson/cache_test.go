package watson_test

import (
	"context"
	"testing"
	"time"

	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := watson.NewMemoryCache(10)
	ctx := context.Background()

	entry := &watson.CacheEntry{
		Data:      []byte("token"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)

	retrieved, err := cache.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, retrieved.Data)
	assert.False(t, retrieved.CreatedAt.IsZero())
}

func TestMemoryCache_GetNonExistent(t *testing.T) {
	t.Parallel()

	cache := watson.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "nonexistent")
	require.ErrorIs(t, err, watson.ErrCacheKeyNotFound)
}

func TestMemoryCache_GetExpired(t *testing.T) {
	t.Parallel()

	cache := watson.NewMemoryCache(10)
	ctx := context.Background()

	err := cache.Set(ctx, "key1", &watson.CacheEntry{
		Data:      []byte("token"),
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	})
	require.NoError(t, err)

	_, err = cache.Get(ctx, "key1")
	require.ErrorIs(t, err, watson.ErrCacheEntryExpired)
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	t.Parallel()

	cache := watson.NewMemoryCache(10)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		_ = cache.Set(ctx, key, &watson.CacheEntry{Data: []byte(key), ExpiresAt: time.Now().Add(time.Hour)})
	}

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.False(t, cache.Has(ctx, "a"))
	assert.True(t, cache.Has(ctx, "b"))

	require.NoError(t, cache.Clear(ctx))
	assert.False(t, cache.Has(ctx, "b"))
	assert.False(t, cache.Has(ctx, "c"))
}

func TestMemoryCache_EvictsOldest(t *testing.T) {
	t.Parallel()

	cache := watson.NewMemoryCache(2)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		_ = cache.Set(ctx, key, &watson.CacheEntry{Data: []byte(key), ExpiresAt: time.Now().Add(time.Hour)})
	}

	assert.Equal(t, 2, cache.Len())
	assert.False(t, cache.Has(ctx, "a"))
	assert.True(t, cache.Has(ctx, "b"))
	assert.True(t, cache.Has(ctx, "c"))
}

func TestMemoryCache_Cleanup(t *testing.T) {
	t.Parallel()

	cache := watson.NewMemoryCache(10)
	ctx := context.Background()

	_ = cache.Set(ctx, "expired", &watson.CacheEntry{ExpiresAt: time.Now().Add(-time.Hour)})
	_ = cache.Set(ctx, "valid", &watson.CacheEntry{ExpiresAt: time.Now().Add(time.Hour)})

	cache.Cleanup()

	assert.True(t, cache.Has(ctx, "valid"))
	assert.Equal(t, 1, cache.Len())
}

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	cache, err := watson.NewCacheFromConfig(nil)
	require.NoError(t, err)
	assert.IsType(t, &watson.MemoryCache{}, cache)

	cache, err = watson.NewCacheFromConfig(&watson.CacheConfig{Type: watson.CacheTypeNone})
	require.NoError(t, err)

	_, err = cache.Get(context.Background(), "anything")
	require.ErrorIs(t, err, watson.ErrCacheDisabled)
	assert.False(t, cache.Has(context.Background(), "anything"))

	_, err = watson.NewCacheFromConfig(&watson.CacheConfig{Type: watson.CacheTypeNATS})
	require.ErrorIs(t, err, watson.ErrNATSConfigRequired)

	_, err = watson.NewCacheFromConfig(&watson.CacheConfig{Type: "redis"})
	require.ErrorIs(t, err, watson.ErrUnsupportedCacheType)
}

func TestWithCacheOptions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := watson.NewMemoryCache(10)

	assert.Same(t, backend, watson.WithCacheOptions(backend, nil))

	cache := watson.WithCacheOptions(backend, &watson.CacheOptions{KeyPrefix: "tokens", DefaultTTL: time.Minute})

	entry := &watson.CacheEntry{Data: []byte("token")}
	require.NoError(t, cache.Set(ctx, "key", entry))
	assert.True(t, entry.ExpiresAt.IsZero())

	assert.True(t, backend.Has(ctx, "tokens:key"))
	assert.False(t, backend.Has(ctx, "key"))

	stored, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("token"), stored.Data)
	assert.WithinDuration(t, time.Now().Add(time.Minute), stored.ExpiresAt, 5*time.Second)

	fixed := time.Now().Add(time.Hour)
	require.NoError(t, cache.Set(ctx, "fixed", &watson.CacheEntry{Data: []byte("x"), ExpiresAt: fixed}))

	stored, err = backend.Get(ctx, "tokens:fixed")
	require.NoError(t, err)
	assert.True(t, fixed.Equal(stored.ExpiresAt))

	require.NoError(t, cache.Delete(ctx, "key"))
	assert.False(t, cache.Has(ctx, "key"))
}

func TestNewCacheFromConfig_Options(t *testing.T) {
	t.Parallel()

	cache, err := watson.NewCacheFromConfig(&watson.CacheConfig{
		Type:    watson.CacheTypeMemory,
		Options: watson.DefaultCacheOptions(),
	})
	require.NoError(t, err)
	_, isMemory := cache.(*watson.MemoryCache)
	assert.False(t, isMemory)

	require.NoError(t, cache.Set(context.Background(), "key", &watson.CacheEntry{Data: []byte("v")}))

	entry, err := cache.Get(context.Background(), "key")
	require.NoError(t, err)
	assert.False(t, entry.ExpiresAt.IsZero())
}
