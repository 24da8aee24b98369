package middlewares

import (
	"net/http"
	"sync"
	"time"

	"storefront-gateway/internal/metrics"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client address.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*limiterEntry
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

// NewRateLimiter allows perMinute requests per client with the given burst.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*limiterEntry),
		limit:   rate.Limit(float64(perMinute) / 60),
		burst:   burst,
		now:     time.Now,
	}
}

func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.clients[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = entry
		metrics.RateLimiterClients.Set(float64(len(l.clients)))
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// Prune forgets clients not seen for idle and returns how many were removed.
func (l *RateLimiter) Prune(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idle)
	removed := 0
	for key, entry := range l.clients {
		if entry.lastSeen.Before(cutoff) {
			delete(l.clients, key)
			removed++
		}
	}

	metrics.RateLimiterClients.Set(float64(len(l.clients)))
	return removed
}

func (l *RateLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// Middleware answers 429 once a client exhausts its bucket.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.Allow(ClientIP(r)) {
			next.ServeHTTP(w, r)
			return
		}

		metrics.RateLimitedRequests.WithLabelValues(r.URL.Path).Inc()

		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		appCtx.Request, appCtx.Response = r, w

		appCtx.Logger.Warn("rate limit exceeded", "client_ip", ClientIP(r), "path", r.URL.Path)
		w.Header().Set("Retry-After", "60")
		appCtx.SetJSONError(http.StatusTooManyRequests, "Too many requests")
	})
}
