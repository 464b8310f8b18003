// Package async provides futures for running functions on background
// goroutines with cooperative cancellation, timeouts, and coordination
// helpers.
//
// # Futures
//
// Run executes a function asynchronously and returns a Future for its result:
//
//	future := async.Run(ctx, func(ctx context.Context) (User, error) {
//	    return fetchUser(ctx, 123)
//	})
//
//	user, err := future.Await()
//
// A future can be awaited with a deadline or stopped early. Stop cancels the
// context the function was started with; the function is expected to honor
// it, which is the cooperative replacement for forcibly killing a worker:
//
//	user, err := future.AwaitWithTimeout(2 * time.Second)
//	if errors.Is(err, async.ErrTimeout) {
//	    future.Stop()
//	}
//
// # Coordination
//
// WaitAll collects the results of several futures and fails on the first
// error; WaitAny returns the index and result of whichever future completes
// first. Parallel runs a set of named tasks and returns every task's result
// keyed by name:
//
//	results := async.Parallel(ctx, map[string]func(context.Context) (int, error){
//	    "disk":  diskUsage,
//	    "inode": inodeUsage,
//	})
//	fmt.Println(results["disk"].Value, results["disk"].Err)
//
// # Timeouts with Cooldown
//
// WithTimeout wraps a function so each call runs under a deadline. After a
// timed-out call, subsequent calls during the cooldown fail fast with
// ErrTimeout instead of invoking the function again, which keeps a
// persistently slow dependency from stalling every caller:
//
//	probe := async.WithTimeout(2*time.Second, time.Minute, pingGateway)
//
// All operations are safe for concurrent use. Each Run spawns exactly one
// goroutine; a future whose function ignores cancellation leaks that
// goroutine until the function returns on its own.
package async
