// Package retrier implements a bounded fixed-interval retry policy.
package retrier

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultInterval    = 60 * time.Second
	defaultMaxAttempts = 5
)

// ErrRetriesExceeded all attempts failed with retryable errors.
var ErrRetriesExceeded = errors.New("exceeded maximum retry attempts")

// Retrier executes an operation up to a fixed number of attempts,
// sleeping a fixed interval between them. A classifier decides which
// errors are worth retrying; the rest fail immediately.
type Retrier struct {
	interval    time.Duration
	maxAttempts int
	retryable   func(error) bool
}

// Option defines a function to configure the Retrier.
type Option func(*Retrier)

// WithInterval sets the pause between attempts.
func WithInterval(d time.Duration) Option {
	return func(r *Retrier) {
		r.interval = d
	}
}

// WithMaxAttempts sets the total number of attempts.
func WithMaxAttempts(n int) Option {
	return func(r *Retrier) {
		r.maxAttempts = n
	}
}

// WithRetryable sets the classifier for retryable errors.
// By default every error is retryable.
func WithRetryable(fn func(error) bool) Option {
	return func(r *Retrier) {
		r.retryable = fn
	}
}

// New creates a new Retrier with default values and optional overrides.
func New(opts ...Option) *Retrier {
	r := &Retrier{
		interval:    defaultInterval,
		maxAttempts: defaultMaxAttempts,
		retryable:   func(error) bool { return true },
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Do executes the given function until it succeeds, returns a
// non-retryable error, or exhausts all attempts. Exhaustion returns an
// error matching ErrRetriesExceeded that carries the last failure.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !r.retryable(err) {
			return err
		}
		if attempt == r.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.interval):
		}
	}

	return errors.Wrapf(ErrRetriesExceeded, "last error: %v", err)
}

// DoWithData executes the given function with retries and returns a value.
func DoWithData[T any](r *Retrier, ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := r.Do(ctx, func(ctx context.Context) error {
		var e error
		result, e = fn(ctx)
		return e
	})
	return result, err
}
