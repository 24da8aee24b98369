package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"storefront-gateway/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "cache:catalog:"

// RedisCacheClient is the subset of the go-redis client the cache uses.
type RedisCacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type RedisCache struct {
	client RedisCacheClient
	logger *slog.Logger
}

func NewRedisCache(client RedisCacheClient, logger *slog.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		logger: logger,
	}
}

// key generates a namespaced Redis key
func (r *RedisCache) key(name string) string {
	return fmt.Sprintf("%s%s", redisKeyPrefix, name)
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

func (r *RedisCache) Get(ctx context.Context, key string) (CachedResponse, bool) {
	timer := time.Now()
	defer observe(metrics.CacheTypeRedis, metrics.CacheOperationTypeGet, timer)

	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Error("error executing redis GET", "error", err)
		}
		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeRedis).Inc()
		return CachedResponse{}, false
	}

	var cached CachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		r.logger.Error("error unmarshalling redis response", "error", err)
		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeRedis).Inc()
		return CachedResponse{}, false
	}

	metrics.CacheHits.WithLabelValues(metrics.CacheTypeRedis).Inc()
	return cached, true
}

// Set stores entry with a redis-side expiry of ttl.
func (r *RedisCache) Set(ctx context.Context, key string, entry CachedResponse, ttl time.Duration) {
	timer := time.Now()
	defer observe(metrics.CacheTypeRedis, metrics.CacheOperationTypeSet, timer)

	now := time.Now()
	entry.Key = key
	entry.Timestamp = now
	if ttl > 0 {
		entry.ExpiresAt = now.Add(ttl)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		r.logger.Error("error marshalling cached response", "error", err)
		return
	}

	if err := r.client.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		r.logger.Error("error executing redis 'SET'", "error", err)
	}
}

func (r *RedisCache) Delete(ctx context.Context, key string) {
	timer := time.Now()
	defer observe(metrics.CacheTypeRedis, metrics.CacheOperationTypeDelete, timer)

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Error("error executing redis 'DEL'", "error", err)
	}
}

func (r *RedisCache) Purge(ctx context.Context) {
	timer := time.Now()
	defer observe(metrics.CacheTypeRedis, metrics.CacheOperationTypePurge, timer)

	keys, err := r.client.Keys(ctx, r.key("*")).Result()
	if err != nil {
		r.logger.Error("error executing redis 'KEYS'", "error", err)
		return
	}

	if len(keys) == 0 {
		return
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Error("error executing redis 'DEL'", "error", err)
	}
}

func (r *RedisCache) ListAll(ctx context.Context) []string {
	timer := time.Now()
	defer observe(metrics.CacheTypeRedis, metrics.CacheOperationTypeListAll, timer)

	keys, err := r.client.Keys(ctx, r.key("*")).Result()
	if err != nil {
		r.logger.Error("error executing redis 'KEYS'", "error", err)
		return []string{}
	}

	result := make([]string, 0, len(keys))
	for _, key := range keys {
		if name := strings.TrimPrefix(key, redisKeyPrefix); name != "" {
			result = append(result, name)
		}
	}

	return result
}

// Size returns the current number of elements in the cache
func (r *RedisCache) Size(ctx context.Context) int {
	timer := time.Now()
	defer observe(metrics.CacheTypeRedis, metrics.CacheOperationTypeCountEntries, timer)

	keys, err := r.client.Keys(ctx, r.key("*")).Result()
	if err != nil {
		r.logger.Error("error executing redis 'KEYS'", "error", err)
		return 0
	}

	return len(keys)
}
