package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demandcast/internal/cache"
)

func TestMemory_SetGet(t *testing.T) {
	c := cache.NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "abc", []byte(`{"results":[]}`), time.Minute))

	payload, ok, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"results":[]}`), payload)
}

func TestMemory_Miss(t *testing.T) {
	c := cache.NewMemory()

	payload, ok, err := c.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, payload)
}

func TestMemory_Expiry(t *testing.T) {
	c := cache.NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "abc", []byte("x"), time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	_, ok, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_ZeroTTLNeverExpires(t *testing.T) {
	c := cache.NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "abc", []byte("x"), 0))

	_, ok, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemory_Invalidate(t *testing.T) {
	c := cache.NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "abc", []byte("x"), time.Minute))
	require.NoError(t, c.Invalidate(ctx, "abc"))

	_, ok, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	c := cache.NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "abc", []byte("original"), time.Minute))

	payload, ok, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	require.True(t, ok)
	payload[0] = 'X'

	again, ok, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("original"), again)
}

func TestRedis_BadURL(t *testing.T) {
	_, err := cache.NewRedis(context.Background(), "not-a-url")
	require.Error(t, err)
}
