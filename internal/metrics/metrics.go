package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_cache_lookups_total",
			Help: "Cache lookups by feed kind and result (hit, miss)",
		},
		[]string{"kind", "result"},
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_cache_errors_total",
			Help: "Cache operations that failed and were treated as a miss",
		},
		[]string{"operation"},
	)

	CacheBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feed_cache_breaker_state",
			Help: "Cache circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
	)

	EngineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_engine_duration_seconds",
			Help:    "Time spent computing a result on cache miss",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	RepositoryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_repository_errors_total",
			Help: "Repository calls that failed or timed out",
		},
		[]string{"operation"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status code",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func RecordCacheLookup(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(kind, result).Inc()
}

func RecordCacheError(operation string) {
	CacheErrors.WithLabelValues(operation).Inc()
}

// SetCacheBreakerState takes the breaker's numeric state as exported by gobreaker.
func SetCacheBreakerState(state int) {
	CacheBreakerState.Set(float64(state))
}

func RecordEngine(kind string, duration time.Duration) {
	EngineDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

func RecordRepositoryError(operation string) {
	RepositoryErrors.WithLabelValues(operation).Inc()
}

func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
