// Package cache stores serialized result pages keyed by every parameter that
// shaped them. It is never a source of truth: callers go through Resilient,
// which turns every failure into a miss.
package cache

import (
	"context"
	"time"
)

// Store is a byte-oriented key/value store with per-entry TTL.
// Get reports found=false with a nil error on a miss.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NullStore never stores anything.
type NullStore struct{}

var _ Store = NullStore{}

func (NullStore) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NullStore) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}
