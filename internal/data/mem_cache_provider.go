package data

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront-gateway/internal/metrics"
)

type MemCache struct {
	cache  map[string]CachedResponse
	mutex  sync.RWMutex
	logger *slog.Logger
	now    func() time.Time
}

func NewMemCache(logger *slog.Logger) *MemCache {
	return &MemCache{
		cache:  make(map[string]CachedResponse),
		logger: logger,
		now:    time.Now,
	}
}

// Get returns an unexpired entry. Expired entries are dropped on read.
func (d *MemCache) Get(_ context.Context, key string) (CachedResponse, bool) {
	timer := time.Now()
	defer observe(metrics.CacheTypeMemory, metrics.CacheOperationTypeGet, timer)

	d.mutex.RLock()
	cached, exists := d.cache[key]
	d.mutex.RUnlock()

	if !exists {
		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeMemory).Inc()
		return CachedResponse{}, false
	}

	if cached.Expired(d.now()) {
		d.mutex.Lock()
		if current, ok := d.cache[key]; ok && current.Expired(d.now()) {
			delete(d.cache, key)
		}
		d.mutex.Unlock()

		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeMemory).Inc()
		return CachedResponse{}, false
	}

	metrics.CacheHits.WithLabelValues(metrics.CacheTypeMemory).Inc()
	return cached, true
}

func (d *MemCache) Set(_ context.Context, key string, entry CachedResponse, ttl time.Duration) {
	timer := time.Now()
	defer observe(metrics.CacheTypeMemory, metrics.CacheOperationTypeSet, timer)

	now := d.now()
	entry.Key = key
	entry.Timestamp = now
	if ttl > 0 {
		entry.ExpiresAt = now.Add(ttl)
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.cache[key] = entry
}

func (d *MemCache) Delete(_ context.Context, key string) {
	timer := time.Now()
	defer observe(metrics.CacheTypeMemory, metrics.CacheOperationTypeDelete, timer)

	d.mutex.Lock()
	defer d.mutex.Unlock()
	delete(d.cache, key)
}

// Purge removes every entry.
func (d *MemCache) Purge(_ context.Context) {
	timer := time.Now()
	defer observe(metrics.CacheTypeMemory, metrics.CacheOperationTypePurge, timer)

	d.mutex.Lock()
	defer d.mutex.Unlock()
	clear(d.cache)
}

// ListAll returns the keys of unexpired entries
func (d *MemCache) ListAll(_ context.Context) []string {
	timer := time.Now()
	defer observe(metrics.CacheTypeMemory, metrics.CacheOperationTypeListAll, timer)

	d.mutex.RLock()
	defer d.mutex.RUnlock()

	now := d.now()
	keys := make([]string, 0, len(d.cache))
	for k, v := range d.cache {
		if !v.Expired(now) {
			keys = append(keys, k)
		}
	}

	return keys
}

// Size returns the number of unexpired entries. Expired entries are evicted
// as a side effect.
func (d *MemCache) Size(_ context.Context) int {
	timer := time.Now()
	defer observe(metrics.CacheTypeMemory, metrics.CacheOperationTypeCountEntries, timer)

	d.mutex.Lock()
	defer d.mutex.Unlock()

	now := d.now()
	for k, v := range d.cache {
		if v.Expired(now) {
			delete(d.cache, k)
		}
	}

	return len(d.cache)
}

func observe(cacheName, operation string, start time.Time) {
	metrics.CacheOperationDuration.WithLabelValues(cacheName, operation).Observe(time.Since(start).Seconds())
}
