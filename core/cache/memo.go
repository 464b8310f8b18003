package cache

import (
	"context"
	"sync"
	"time"
)

// Memo caches the result of fn according to a RefreshPolicy.
// Safe for concurrent use; concurrent Gets serialize so fn runs at most once
// per refresh.
type Memo[T any] struct {
	mu          sync.Mutex
	fn          func(context.Context) (T, error)
	policy      RefreshPolicy
	cached      T
	lastUpdated time.Time
	now         func() time.Time
}

// MemoOption configures a Memo.
type MemoOption[T any] func(*Memo[T])

// WithClock replaces the wall clock, for tests.
func WithClock[T any](now func() time.Time) MemoOption[T] {
	return func(m *Memo[T]) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMemo creates a memoized wrapper around fn with the given refresh policy.
func NewMemo[T any](policy RefreshPolicy, fn func(context.Context) (T, error), opts ...MemoOption[T]) *Memo[T] {
	m := &Memo[T]{
		fn:     fn,
		policy: policy,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the cached value, recomputing it first when the policy declares
// it stale. A failed computation is not cached and leaves any previously
// cached value in place for the next call.
func (m *Memo[T]) Get(ctx context.Context) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.policy.stale(m.lastUpdated, m.now()) {
		return m.cached, nil
	}
	return m.compute(ctx)
}

// Refresh recomputes the value regardless of the policy.
func (m *Memo[T]) Refresh(ctx context.Context) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.compute(ctx)
}

// LastUpdated returns the time of the last successful computation, or the
// zero time when none has succeeded yet.
func (m *Memo[T]) LastUpdated() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lastUpdated
}

func (m *Memo[T]) compute(ctx context.Context) (T, error) {
	value, err := m.fn(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	m.cached = value
	m.lastUpdated = m.now()
	return m.cached, nil
}
