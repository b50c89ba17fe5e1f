package command

import (
	"context"
	"time"

	"github.com/jbeshir/feed-ranking/internal/domain"
	"github.com/jbeshir/feed-ranking/internal/metrics"
)

// callRepository runs fn under its own timeout. Any failure, including the
// timeout, comes back as a RepositoryUnavailableError so callers can tell it
// apart from an empty result.
func callRepository[T any](
	ctx context.Context,
	timeout time.Duration,
	operation string,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := fn(ctx)
	if err != nil {
		metrics.RecordRepositoryError(operation)
		var zero T
		return zero, domain.RepositoryUnavailableError{Operation: operation, Err: err}
	}
	return result, nil
}
