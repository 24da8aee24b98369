package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront-gateway/internal/data"
	"storefront-gateway/internal/metrics"
)

// CacheStatsJob publishes the catalog cache size as a gauge.
type CacheStatsJob struct {
	cache     data.CacheProvider
	cacheName string
	interval  time.Duration
	logger    *slog.Logger
}

func NewCacheStatsJob(cache data.CacheProvider, cacheName string, interval time.Duration, logger *slog.Logger) *CacheStatsJob {
	return &CacheStatsJob{
		cache:     cache,
		cacheName: cacheName,
		interval:  interval,
		logger:    logger,
	}
}

func (j *CacheStatsJob) Name() string {
	return "cache-stats"
}

func (j *CacheStatsJob) Interval() time.Duration {
	return j.interval
}

func (j *CacheStatsJob) Run(ctx context.Context) error {
	return runEvery(ctx, j.logger, j.Name(), j.interval, func(ctx context.Context) error {
		metrics.CacheItems.WithLabelValues(j.cacheName).Set(float64(j.cache.Size(ctx)))
		return nil
	})
}
