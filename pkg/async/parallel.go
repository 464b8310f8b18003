package async

import "context"

// Result holds the outcome of one task run by Parallel.
type Result[T any] struct {
	Value T
	Err   error
}

// Parallel runs every task on its own goroutine and blocks until all have
// completed, returning each task's result keyed by its name. Unlike WaitAll,
// one failing task does not discard the others' results.
func Parallel[T any](ctx context.Context, tasks map[string]func(context.Context) (T, error)) map[string]Result[T] {
	futures := make(map[string]*Future[T], len(tasks))
	for name, task := range tasks {
		futures[name] = Run(ctx, task)
	}

	results := make(map[string]Result[T], len(tasks))
	for name, future := range futures {
		value, err := future.Await()
		results[name] = Result[T]{Value: value, Err: err}
	}
	return results
}
