// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepFunc pauses for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Poll calls check until it reports done, sleeping interval between attempts.
// Attempts are numbered from 1. The first error from check, sleep or ctx is returned.
func Poll(ctx context.Context, interval time.Duration, sleep SleepFunc, check func(ctx context.Context, attempt int) (bool, error)) error {
	if sleep == nil {
		sleep = SleepWithContext
	}
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := check(ctx, attempt)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if err := sleep(ctx, interval); err != nil {
			return err
		}
	}
}
