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

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, NewRedisCacheFromClient(client, "cm:")
}

type cachedRider struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func TestSetGet_RoundTripWithPrefix(t *testing.T) {
	mr, c := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "rider_code:KOF3456", cachedRider{Name: "Kofi", Code: "KOF3456"}, time.Minute))

	assert.True(t, mr.Exists("cm:rider_code:KOF3456"))

	var got cachedRider
	require.NoError(t, c.Get(ctx, "rider_code:KOF3456", &got))
	assert.Equal(t, "KOF3456", got.Code)
}

func TestGet_MissReturnsErrCacheMiss(t *testing.T) {
	_, c := setupMiniredis(t)

	var got cachedRider
	err := c.Get(context.Background(), "missing", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestSet_Expires(t *testing.T) {
	mr, c := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "category_counts", map[string]int64{"food": 3}, time.Minute))
	mr.FastForward(2 * time.Minute)

	ok, err := c.Exists(ctx, "category_counts")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeletePattern(t *testing.T) {
	_, c := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "categories:list", 1, 0))
	require.NoError(t, c.Set(ctx, "categories:count:food", 1, 0))
	require.NoError(t, c.Set(ctx, "rider_code:ABC1234", 1, 0))

	n, err := c.DeletePattern(ctx, "categories:*")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	ok, err := c.Exists(ctx, "rider_code:ABC1234")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSetNX_OnlyFirstWins(t *testing.T) {
	_, c := setupMiniredis(t)
	ctx := context.Background()

	first, err := c.SetNX(ctx, "lock", "a", time.Minute)
	require.NoError(t, err)
	second, err := c.SetNX(ctx, "lock", "b", time.Minute)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}
