package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_DeterministicAndOrderSensitive(t *testing.T) {
	assert.Equal(t, Key("a", "b"), Key("a", "b"))
	assert.NotEqual(t, Key("a", "b"), Key("b", "a"))
	// Part boundaries matter: ("ab","c") must differ from ("a","bc")
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
}

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	store.Set(ctx, "k", "v", 0)

	value, ok := store.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestMemory_MissOnUnknownKey(t *testing.T) {
	_, ok := NewMemory().Get(context.Background(), "missing")
	assert.False(t, ok)
}

func TestMemory_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	store.Set(ctx, "k", "v", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemory_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	store.Set(ctx, "a", "1", 0)
	store.Set(ctx, "b", "2", 0)

	store.Clear(ctx)

	_, ok := store.Get(ctx, "a")
	assert.False(t, ok)
	_, ok = store.Get(ctx, "b")
	assert.False(t, ok)
}

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return NewRedis(client, "test:"), server
}

func TestRedis_SetGet(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedis(t)

	store.Set(ctx, "k", "v", time.Minute)

	value, ok := store.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestRedis_ClearOnlyTouchesOwnPrefix(t *testing.T) {
	ctx := context.Background()
	store, server := newTestRedis(t)
	store.Set(ctx, "k", "v", 0)
	require.NoError(t, server.Set("other:key", "kept"))

	store.Clear(ctx)

	_, ok := store.Get(ctx, "k")
	assert.False(t, ok)
	kept, err := server.Get("other:key")
	require.NoError(t, err)
	assert.Equal(t, "kept", kept)
}

func TestRedis_BackendFailureReadsAsMiss(t *testing.T) {
	ctx := context.Background()
	store, server := newTestRedis(t)
	store.Set(ctx, "k", "v", 0)
	server.Close()

	_, ok := store.Get(ctx, "k")
	assert.False(t, ok)
}
