package cache_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/daybook/pkg/cache"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, goredis.UniversalClient) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedis_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrNotFound for missing key", func(t *testing.T) {
		t.Parallel()

		_, client := newTestRedis(t)
		c := cache.NewRedis[string](client, nil)

		_, err := c.Get(context.Background(), "missing")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("returns stored value", func(t *testing.T) {
		t.Parallel()

		_, client := newTestRedis(t)
		c := cache.NewRedis[int](client, nil)

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "answer", 42, time.Minute))

		val, err := c.Get(ctx, "answer")
		require.NoError(t, err)
		require.Equal(t, 42, val)
	})

	t.Run("returns ErrNotFound after expiration", func(t *testing.T) {
		t.Parallel()

		mr, client := newTestRedis(t)
		c := cache.NewRedis[string](client, nil)

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", time.Second))

		mr.FastForward(2 * time.Second)

		_, err := c.Get(ctx, "key")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("round-trips struct values through JSON", func(t *testing.T) {
		t.Parallel()

		_, client := newTestRedis(t)

		type post struct {
			Slug  string `json:"slug"`
			Title string `json:"title"`
		}

		c := cache.NewRedis[post](client, nil)

		ctx := context.Background()
		p := post{Slug: "hello-world", Title: "Hello, World"}
		require.NoError(t, c.Set(ctx, "post", p, time.Minute))

		val, err := c.Get(ctx, "post")
		require.NoError(t, err)
		require.Equal(t, p, val)
	})
}

func TestRedis_Set(t *testing.T) {
	t.Parallel()

	t.Run("zero TTL uses configured default", func(t *testing.T) {
		t.Parallel()

		mr, client := newTestRedis(t)
		c := cache.NewRedis[string](client, nil, cache.WithRedisDefaultTTL(time.Minute))

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", 0))

		mr.FastForward(30 * time.Second)
		_, err := c.Get(ctx, "key")
		require.NoError(t, err)

		mr.FastForward(time.Minute)
		_, err = c.Get(ctx, "key")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("negative TTL stores without expiration", func(t *testing.T) {
		t.Parallel()

		mr, client := newTestRedis(t)
		c := cache.NewRedis[string](client, nil, cache.WithRedisDefaultTTL(time.Minute))

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", -1))

		mr.FastForward(24 * time.Hour)

		val, err := c.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, "value", val)
	})

	t.Run("overwrites existing value", func(t *testing.T) {
		t.Parallel()

		_, client := newTestRedis(t)
		c := cache.NewRedis[string](client, nil)

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "first", time.Minute))
		require.NoError(t, c.Set(ctx, "key", "second", time.Minute))

		val, err := c.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, "second", val)
	})
}

func TestRedis_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes existing key", func(t *testing.T) {
		t.Parallel()

		_, client := newTestRedis(t)
		c := cache.NewRedis[string](client, nil)

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", time.Minute))
		require.NoError(t, c.Delete(ctx, "key"))

		_, err := c.Get(ctx, "key")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("deleting missing key is not an error", func(t *testing.T) {
		t.Parallel()

		_, client := newTestRedis(t)
		c := cache.NewRedis[string](client, nil)

		require.NoError(t, c.Delete(context.Background(), "missing"))
	})
}

func TestRedis_Has(t *testing.T) {
	t.Parallel()

	t.Run("reports existing key", func(t *testing.T) {
		t.Parallel()

		_, client := newTestRedis(t)
		c := cache.NewRedis[string](client, nil)

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", time.Minute))

		ok, err := c.Has(ctx, "key")
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("reports missing key", func(t *testing.T) {
		t.Parallel()

		_, client := newTestRedis(t)
		c := cache.NewRedis[string](client, nil)

		ok, err := c.Has(context.Background(), "missing")
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestRedis_Clear(t *testing.T) {
	t.Parallel()

	t.Run("with prefix removes only matching keys", func(t *testing.T) {
		t.Parallel()

		_, client := newTestRedis(t)
		c := cache.NewRedis[string](client, nil, cache.WithPrefix("posts"))

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "a", "1", time.Minute))
		require.NoError(t, c.Set(ctx, "b", "2", time.Minute))
		require.NoError(t, client.Set(ctx, "unrelated", "keep", time.Minute).Err())

		require.NoError(t, c.Clear(ctx))

		_, err := c.Get(ctx, "a")
		require.ErrorIs(t, err, cache.ErrNotFound)

		val, err := client.Get(ctx, "unrelated").Result()
		require.NoError(t, err)
		require.Equal(t, "keep", val)
	})

	t.Run("without prefix flushes the database", func(t *testing.T) {
		t.Parallel()

		_, client := newTestRedis(t)
		c := cache.NewRedis[string](client, nil)

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "a", "1", time.Minute))
		require.NoError(t, client.Set(ctx, "other", "x", time.Minute).Err())

		require.NoError(t, c.Clear(ctx))

		n, err := client.Exists(ctx, "a", "other").Result()
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

func TestRedis_Prefix(t *testing.T) {
	t.Parallel()

	t.Run("prefixes isolate caches sharing a client", func(t *testing.T) {
		t.Parallel()

		_, client := newTestRedis(t)
		posts := cache.NewRedis[string](client, nil, cache.WithPrefix("posts"))
		sections := cache.NewRedis[string](client, nil, cache.WithPrefix("sections"))

		ctx := context.Background()
		require.NoError(t, posts.Set(ctx, "key", "post", time.Minute))
		require.NoError(t, sections.Set(ctx, "key", "section", time.Minute))

		val, err := posts.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, "post", val)

		val, err = sections.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, "section", val)
	})
}

func TestRedis_Close(t *testing.T) {
	t.Parallel()

	t.Run("close leaves the client usable", func(t *testing.T) {
		t.Parallel()

		_, client := newTestRedis(t)
		c := cache.NewRedis[string](client, nil)

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", time.Minute))
		require.NoError(t, c.Close())

		val, err := c.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, "value", val)
	})
}

type upperMarshaler struct{}

func (upperMarshaler) Marshal(v string) ([]byte, error) {
	return []byte(strings.ToUpper(v)), nil
}

func (upperMarshaler) Unmarshal(data []byte) (string, error) {
	return strings.ToLower(string(data)), nil
}

func TestRedis_CustomMarshaler(t *testing.T) {
	t.Parallel()

	_, client := newTestRedis(t)
	c := cache.NewRedis[string](client, upperMarshaler{})

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))

	raw, err := client.Get(ctx, "key").Result()
	require.NoError(t, err)
	require.Equal(t, "VALUE", raw)

	val, err := c.Get(ctx, "key")
	require.NoError(t, err)
	require.Equal(t, "value", val)
}
