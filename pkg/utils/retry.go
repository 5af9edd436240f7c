package utils

import (
	"context"
	"log"
	"time"
)

// RetryPolicy drives the outbound-call retry loop for the generative model
// endpoint. Backoff and Sleep are injectable so the loop can be exercised in
// tests without real delays.
type RetryPolicy struct {
	MaxAttempts int
	// Backoff returns the delay before the attempt following attempt n
	// (1-based).
	Backoff func(attempt int) time.Duration
	// Retryable reports whether err is worth another attempt. A nil
	// predicate retries everything.
	Retryable func(err error) bool
	// Sleep waits for d or until ctx is done. Defaults to a timer sleep.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy matches the model endpoint contract: up to 3 attempts,
// linear backoff of attempt*2s between them.
func DefaultRetryPolicy(retryable func(error) bool) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Backoff:     func(attempt int) time.Duration { return time.Duration(attempt) * 2 * time.Second },
		Retryable:   retryable,
	}
}

// Do runs fn up to MaxAttempts times, sleeping Backoff(attempt) between
// attempts. A non-retryable error is returned immediately; the error of the
// final attempt is returned once attempts are exhausted.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) (string, error)) (string, int, error) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		out, err := fn(ctx)
		if err == nil {
			return out, attempt, nil
		}
		lastErr = err

		if p.Retryable != nil && !p.Retryable(err) {
			return "", attempt, err
		}
		if attempt == p.MaxAttempts {
			break
		}

		delay := p.Backoff(attempt)
		log.Printf("Generative model attempt %d/%d failed (%v), retrying in %s", attempt, p.MaxAttempts, err, delay)
		if sleepErr := sleep(ctx, delay); sleepErr != nil {
			return "", attempt, sleepErr
		}
	}
	return "", p.MaxAttempts, lastErr
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
