package async

import (
	"context"
	"errors"
	"sync"
	"time"
)

// WithTimeout wraps fn so every call runs under the given deadline. A call
// that exceeds it returns ErrTimeout and cancels fn's context; while the
// cooldown lasts, subsequent calls return ErrTimeout immediately without
// invoking fn, preventing a retry storm against a stalled dependency.
// A cooldown of zero disables the fail-fast window.
//
// The returned function is safe for concurrent use; the cooldown window is
// shared across all callers.
func WithTimeout[T any](timeout, cooldown time.Duration, fn func(context.Context) (T, error)) func(context.Context) (T, error) {
	var (
		mu           sync.Mutex
		lastTimedOut time.Time
	)

	return func(ctx context.Context) (T, error) {
		mu.Lock()
		coolingDown := cooldown > 0 && !lastTimedOut.IsZero() && time.Since(lastTimedOut) < cooldown
		mu.Unlock()

		if coolingDown {
			var zero T
			return zero, ErrTimeout
		}

		future := Run(ctx, fn)
		result, err := future.AwaitWithTimeout(timeout)
		if errors.Is(err, ErrTimeout) {
			future.Stop()
			mu.Lock()
			lastTimedOut = time.Now()
			mu.Unlock()
			var zero T
			return zero, ErrTimeout
		}
		return result, err
	}
}
