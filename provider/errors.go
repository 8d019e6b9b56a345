package provider

import (
	"errors"
	"fmt"
)

// Sentinel errors for provider operations.
var (
	// ErrNotRegistered indicates no builder is registered for a provider.
	ErrNotRegistered = errors.New("provider not registered")

	// ErrNotConfigured indicates a provider's credentials are absent.
	ErrNotConfigured = errors.New("provider not configured")

	// ErrEmptyResponse indicates the model returned no usable content.
	ErrEmptyResponse = errors.New("empty response from model")

	// ErrRateLimited indicates the request was rate limited.
	ErrRateLimited = errors.New("rate limited")

	// ErrUnavailable indicates the provider's service is unavailable.
	ErrUnavailable = errors.New("provider service unavailable")

	// ErrContextTooLong indicates the input exceeds the context window.
	ErrContextTooLong = errors.New("context exceeds maximum length")
)

// Error wraps provider errors with context.
type Error struct {
	Provider  ID     // Provider the error came from
	Op        string // Operation that failed ("build", "complete")
	Err       error  // Underlying error
	Retryable bool   // Whether the error is likely transient
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new provider error.
func NewError(provider ID, op string, err error, retryable bool) *Error {
	return &Error{
		Provider:  provider,
		Op:        op,
		Err:       err,
		Retryable: retryable,
	}
}

// IsRetryable checks if an error is likely transient and worth retrying.
func IsRetryable(err error) bool {
	var provErr *Error
	if errors.As(err, &provErr) {
		return provErr.Retryable
	}

	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrUnavailable)
}
