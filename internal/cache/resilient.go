package cache

import (
	"context"
	"errors"
	"time"

	"github.com/jbeshir/feed-ranking/internal/domain"
	"github.com/jbeshir/feed-ranking/internal/metrics"
	"github.com/sony/gobreaker/v2"
)

type ResilientConfig struct {
	// Timeout bounds each store call. Keep it well under repository timeouts.
	Timeout time.Duration

	// FailureThreshold consecutive failures open the breaker.
	FailureThreshold uint32

	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

type lookup struct {
	value []byte
	found bool
}

// Resilient wraps a Store so that no cache failure ever reaches the caller.
// Errors, timeouts and an open breaker all read as a miss, and failed writes
// are dropped.
type Resilient struct {
	store   Store
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker[lookup]
}

func NewResilient(store Store, cfg ResilientConfig) *Resilient {
	breaker := gobreaker.NewCircuitBreaker[lookup](gobreaker.Settings{
		Name:        "cache",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			// The caller going away says nothing about the cache's health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(_ string, _, to gobreaker.State) {
			metrics.SetCacheBreakerState(int(to))
		},
	})

	return &Resilient{
		store:   store,
		timeout: cfg.Timeout,
		breaker: breaker,
	}
}

func (r *Resilient) Get(ctx context.Context, key string) ([]byte, bool) {
	result, err := r.breaker.Execute(func() (lookup, error) {
		ctx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		value, found, err := r.store.Get(ctx, key)
		return lookup{value: value, found: found}, err
	})
	if err != nil {
		r.logFailure(ctx, "get", key, err)
		return nil, false
	}
	return result.value, result.found
}

func (r *Resilient) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	_, err := r.breaker.Execute(func() (lookup, error) {
		ctx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		return lookup{}, r.store.Set(ctx, key, value, ttl)
	})
	if err != nil {
		r.logFailure(ctx, "set", key, err)
	}
}

func (r *Resilient) logFailure(ctx context.Context, operation, key string, err error) {
	metrics.RecordCacheError(operation)

	logger := domain.LoggerFromContext(ctx)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		logger.DebugContext(ctx, "cache breaker open, skipping", "operation", operation, "key", key)
		return
	}
	logger.WarnContext(ctx, "cache unavailable, treating as miss", "operation", operation, "key", key, "error", err)
}
