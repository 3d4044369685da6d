package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when a remote backend cannot be reached.
var ErrUnavailable = errors.New("cache backend unavailable")

// RetryableError marks a transient failure that [RetryPolicy.Do] may retry.
type RetryableError struct{ Err error }

// Retryable wraps err as a [RetryableError]. It returns nil for a nil err.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether any error in err's chain is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryPolicy bounds how often a backend call is repeated after a transient
// failure. The delay doubles after each attempt. Zero fields take the
// defaults of [DefaultRetryPolicy].
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
}

// DefaultRetryPolicy makes three attempts starting with a 100ms pause.
var DefaultRetryPolicy = RetryPolicy{Attempts: 3, BaseDelay: 100 * time.Millisecond}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.Attempts <= 0 {
		p.Attempts = DefaultRetryPolicy.Attempts
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultRetryPolicy.BaseDelay
	}
	return p
}

// Do calls fn until it succeeds, returns an error not marked [Retryable],
// runs out of attempts, or ctx ends.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	p = p.withDefaults()
	delay := p.BaseDelay

	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil || !IsRetryable(err) || attempt == p.Attempts {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
}

// RetryWithBackoff runs fn under [DefaultRetryPolicy].
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return DefaultRetryPolicy.Do(ctx, fn)
}
