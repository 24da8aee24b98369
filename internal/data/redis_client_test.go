package data

import (
	"context"
	"testing"

	"storefront-gateway/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), testLogger(), &config.RedisConfig{Address: mr.Addr()}, 1)
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, 1, client.Options().DB)
	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	assert.True(t, mr.DB(1).Exists("k"))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(context.Background(), testLogger(), &config.RedisConfig{Address: addr}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis connection failed")
}

func TestNewCacheProvider(t *testing.T) {
	cfg := &config.Config{Cache: config.CacheConfig{Type: "memory"}}
	assert.IsType(t, &MemCache{}, NewCacheProvider(cfg, testLogger(), nil))

	cfg.Cache.Type = "redis"
	assert.IsType(t, &RedisCache{}, NewCacheProvider(cfg, testLogger(), new(MockRedisCacheClient)))
}
