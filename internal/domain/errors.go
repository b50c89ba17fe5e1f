package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks requests rejected before any I/O. Retrying does not help.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRepositoryUnavailable marks failed or timed-out reads from the content or
	// social graph stores. The request is read-only, so callers may retry it.
	ErrRepositoryUnavailable = errors.New("repository unavailable")
)

type InvalidInputError struct {
	Field  string
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

type RepositoryUnavailableError struct {
	Operation string
	Err       error
}

func (e RepositoryUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrRepositoryUnavailable, e.Operation, e.Err)
}

func (e RepositoryUnavailableError) Unwrap() []error {
	return []error{ErrRepositoryUnavailable, e.Err}
}

// IsRetryable reports whether err is a transient repository failure.
// Caller cancellation is not retryable.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	return errors.Is(err, ErrRepositoryUnavailable)
}
