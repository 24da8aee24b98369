package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_name"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_name"},
	)

	CacheOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_cache_operation_duration_seconds",
			Help:    "Time to complete cache operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"cache_name", "operation"},
	)

	CacheItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: Namespace + "_cache_items_total",
			Help: "Current number of items in cache",
		},
		[]string{"cache_name"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_backend_request_duration_seconds",
			Help:    "Time to receive a response from the commerce backend",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "status"},
	)

	BackendRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_backend_request_errors_total",
			Help: "Total number of backend requests that failed before a response arrived",
		},
		[]string{"method"},
	)

	SessionRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_session_rejections_total",
			Help: "Requests refused because the session cookie was missing or did not unseal",
		},
		[]string{"reason"},
	)

	SessionsEstablished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_sessions_established_total",
			Help: "Total number of successful logins that set a sealed session",
		},
	)

	RateLimitedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_rate_limited_requests_total",
			Help: "Requests refused by the per-client rate limiter",
		},
		[]string{"endpoint"},
	)

	RateLimiterClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: Namespace + "_rate_limiter_clients",
			Help: "Number of client addresses currently tracked by the rate limiter",
		},
	)

	JobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_job_runs_total",
			Help: "Total number of background job executions",
		},
		[]string{"job", "result"},
	)
)
