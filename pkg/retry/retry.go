package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Classifier reports whether an attempt error is transient and worth another
// try. Returning false aborts the loop immediately with that error.
type Classifier func(error) bool

// Transient treats every error as retryable except context cancellation,
// which means the caller gave up. An attempt's own deadline expiry is just
// another form of "not ready" and stays retryable; Do watches the caller's
// context separately.
func Transient(err error) bool {
	return !errors.Is(err, context.Canceled)
}

// Policy executes an operation a bounded number of times with a fixed delay
// between attempts.
type Policy struct {
	Attempts int
	Delay    time.Duration

	// OnRetry is invoked after each failed attempt that will be retried.
	OnRetry func(attempt int, err error)
}

// Do runs op until it succeeds, the classifier declares an error fatal, the
// context is done, or attempts exhaust. Exhaustion returns the last error
// wrapped with the attempt count.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error, retryable Classifier) error {
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = 1
	}
	if retryable == nil {
		retryable = Transient
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}
		if attempt == attempts {
			break
		}

		if p.OnRetry != nil {
			p.OnRetry(attempt, lastErr)
		}

		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
