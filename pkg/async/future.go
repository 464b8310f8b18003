package async

import (
	"context"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
	cancel context.CancelFunc
}

// Run executes fn on a new goroutine and returns a Future for its result.
// The function receives a context derived from ctx that is additionally
// cancelled by Stop.
func Run[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	ctx, cancel := context.WithCancel(ctx)
	f := &Future[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer close(f.done)
		defer cancel()

		// Early exit prevents doing work when the context is pre-cancelled.
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Await blocks until the function completes and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for completion up to the given duration.
// Returns ErrTimeout when the function is still running afterwards; the
// function itself keeps running and can be stopped or awaited again.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports without blocking whether the function has completed.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Stop cancels the function's context. Stopping is cooperative: the function
// must honor cancellation for the future to complete. Stop is safe to call
// multiple times and after completion.
func (f *Future[T]) Stop() {
	f.cancel()
}

// WaitAll awaits every future in order and returns their results.
// The first error encountered is returned with nil results.
func WaitAll[T any](futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))
	for i, future := range futures {
		result, err := future.Await()
		if err != nil {
			return nil, err
		}
		results[i] = result
	}
	return results, nil
}

// WaitAny blocks until any future completes and returns its index and
// result. Returns ErrNoFutures when called with none.
func WaitAny[T any](futures ...*Future[T]) (int, T, error) {
	if len(futures) == 0 {
		var zero T
		return -1, zero, ErrNoFutures
	}

	type completion struct {
		index  int
		result T
		err    error
	}
	done := make(chan completion, 1)

	for i, future := range futures {
		go func(index int, f *Future[T]) {
			result, err := f.Await()
			select {
			case done <- completion{index: index, result: result, err: err}:
			default:
				// Another future completed first.
			}
		}(i, future)
	}

	c := <-done
	return c.index, c.result, c.err
}
