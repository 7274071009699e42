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

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedis(client, "fightcast:"), mr
}

func TestCaches(t *testing.T) {
	r, _ := newTestRedis(t)
	backends := map[string]Cache{
		"memory": NewMemory(time.Minute, time.Minute),
		"redis":  r,
	}

	for name, c := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := c.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
			got, ok, err := c.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []byte("v"), got)

			assert.NoError(t, c.Ping(ctx))
		})
	}
}

func TestRedisPrefixAndTTL(t *testing.T) {
	r, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "snapshot:a:r", []byte("{}"), 30*time.Second))
	assert.True(t, mr.Exists("fightcast:snapshot:a:r"))
	assert.Equal(t, 30*time.Second, mr.TTL("fightcast:snapshot:a:r"))

	mr.FastForward(31 * time.Second)
	_, ok, err := r.Get(ctx, "snapshot:a:r")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory(time.Minute, time.Minute)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisUnavailable(t *testing.T) {
	r, mr := newTestRedis(t)
	mr.Close()

	_, _, err := r.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, r.Ping(context.Background()))
}
