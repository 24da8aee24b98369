package data

import (
	"context"
	"log/slog"
	"time"

	"storefront-gateway/internal/config"
)

//go:generate mockgen -source=cache_provider.go -destination=../mocks/cache.go -package=mocks

// CachedResponse is a backend response kept for replay to later callers.
type CachedResponse struct {
	Key         string    `json:"key"`
	StatusCode  int       `json:"status_code"`
	ContentType string    `json:"content_type"`
	Body        []byte    `json:"body"`
	Timestamp   time.Time `json:"timestamp"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (c CachedResponse) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

type CacheProvider interface {
	Get(ctx context.Context, key string) (CachedResponse, bool)
	Set(ctx context.Context, key string, entry CachedResponse, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Purge(ctx context.Context)
	ListAll(ctx context.Context) []string
	Size(ctx context.Context) int
}

// NewCacheProvider returns the cache selected by cfg.Cache.Type. client is
// only used for the redis cache and may be nil otherwise.
func NewCacheProvider(cfg *config.Config, logger *slog.Logger, client RedisCacheClient) CacheProvider {
	switch cfg.Cache.Type {
	case "redis":
		return NewRedisCache(client, logger)
	case "memory":
		fallthrough
	default:
		return NewMemCache(logger)
	}
}
