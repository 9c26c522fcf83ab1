package ai

import (
	"context"
	"time"
)

// Policy is a bounded-retry policy for external-capability calls.
type Policy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultPolicy retries up to three times with a short fixed delay.
var DefaultPolicy = Policy{MaxAttempts: 3, Backoff: 2 * time.Second}

// Do runs fn until it succeeds or the policy is exhausted, sleeping between
// attempts. Returns the last error, or the context error if cancelled while
// waiting.
func Do(ctx context.Context, p Policy, fn func(context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if !sleepWithContext(ctx, p.Backoff) {
				return ctx.Err()
			}
		}
		if err = fn(ctx); err == nil {
			return nil
		}
	}
	return err
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
