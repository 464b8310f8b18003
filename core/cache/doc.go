// Package cache provides a memoized-call wrapper with configurable refresh
// policies.
//
// Memo caches the result of an expensive function and serves the cached value
// until its refresh policy declares it stale:
//
//	lookup := cache.NewMemo(cache.Every(30*time.Second), fetchExternalIP)
//
//	ip, err := lookup.Get(ctx)      // computes on first call
//	ip, err = lookup.Get(ctx)       // cached for the next 30s
//	ip, err = lookup.Refresh(ctx)   // bypasses the policy
//
// # Refresh Policies
//
//   - Every(d): the value is stale d after the last successful computation.
//   - DailyAt(hour, minute): the value is recomputed once per day, the first
//     time it is requested after the given wall-clock time.
//   - Never(): the value is computed once and cached forever.
//
// ParsePolicy builds a policy from a configuration string: "never", a
// "HH:MM" wall-clock time, or an integer number of seconds.
//
// A failed computation is not cached; the next Get retries. All operations
// are safe for concurrent use.
package cache
