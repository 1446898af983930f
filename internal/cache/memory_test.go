package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	t.Cleanup(func() { _ = m.Close() })

	type payload struct{ Name string }

	require.NoError(t, m.SetJSON(ctx, "k", payload{Name: "ada"}, time.Minute))

	t.Run("returns stored values", func(t *testing.T) {
		var got payload
		hit, err := m.GetJSON(ctx, "k", &got)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, "ada", got.Name)
	})

	t.Run("returns copies", func(t *testing.T) {
		items := []string{"a", "b"}
		require.NoError(t, m.SetJSON(ctx, "list", items, time.Minute))
		items[0] = "changed"

		var got []string
		hit, err := m.GetJSON(ctx, "list", &got)
		require.NoError(t, err)
		require.True(t, hit)
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("misses unknown keys", func(t *testing.T) {
		var got payload
		hit, err := m.GetJSON(ctx, "other", &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("expires entries after the ttl", func(t *testing.T) {
		require.NoError(t, m.SetJSON(ctx, "short", payload{Name: "grace"}, 20*time.Millisecond))
		assert.Eventually(t, func() bool {
			var got payload
			hit, err := m.GetJSON(ctx, "short", &got)
			return err == nil && !hit
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("deletes keys", func(t *testing.T) {
		require.NoError(t, m.SetJSON(ctx, "a", 1, time.Minute))
		require.NoError(t, m.SetJSON(ctx, "b", 2, time.Minute))
		require.NoError(t, m.Delete(ctx, "a", "b"))

		var got int
		hit, _ := m.GetJSON(ctx, "a", &got)
		assert.False(t, hit)
		hit, _ = m.GetJSON(ctx, "b", &got)
		assert.False(t, hit)
	})
}

func TestRedis_BypassesWhenUnavailable(t *testing.T) {
	ctx := context.Background()
	r := &Redis{}

	var got string
	hit, err := r.GetJSON(ctx, "k", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, r.SetJSON(ctx, "k", "v", time.Minute))
	assert.NoError(t, r.Delete(ctx, "k"))
	assert.NoError(t, r.Close())
}

func TestRedis_WarnsOnceWhenCommandsFail(t *testing.T) {
	ctx := context.Background()
	r := &Redis{client: redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})}
	t.Cleanup(func() { _ = r.Close() })

	var got string
	hit, err := r.GetJSON(ctx, "k", &got)
	assert.Error(t, err)
	assert.False(t, hit)
	assert.True(t, r.warnedUnavailable.Load())

	assert.Error(t, r.SetJSON(ctx, "k", "v", time.Minute))
}
