package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrauElster/goutil/core/cache"
)

// fakeClock is a manually advanced clock for policy tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time            { return c.now }
func (c *fakeClock) Advance(d time.Duration)   { c.now = c.now.Add(d) }
func (c *fakeClock) Set(hour, minute int) time.Time {
	c.now = time.Date(c.now.Year(), c.now.Month(), c.now.Day(), hour, minute, 0, 0, time.Local)
	return c.now
}

func TestMemo_Every(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)}
	calls := 0
	memo := cache.NewMemo(cache.Every(10*time.Second), func(context.Context) (int, error) {
		calls++
		return calls, nil
	}, cache.WithClock[int](clock.Now))

	ctx := context.Background()

	got, err := memo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	// Still fresh.
	clock.Advance(9 * time.Second)
	got, err = memo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, 1, calls)

	// Stale after the interval.
	clock.Advance(2 * time.Second)
	got, err = memo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestMemo_Never(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)}
	calls := 0
	memo := cache.NewMemo(cache.Never(), func(context.Context) (string, error) {
		calls++
		return "value", nil
	}, cache.WithClock[string](clock.Now))

	ctx := context.Background()
	for range 3 {
		clock.Advance(24 * time.Hour)
		got, err := memo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "value", got)
	}
	assert.Equal(t, 1, calls)
}

func TestMemo_DailyAt(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local)}
	calls := 0
	memo := cache.NewMemo(cache.DailyAt(9, 30), func(context.Context) (int, error) {
		calls++
		return calls, nil
	}, cache.WithClock[int](clock.Now))

	ctx := context.Background()

	// First call always computes.
	got, err := memo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	// Same day, past the scheduled time: last update was today already.
	clock.Set(10, 0)
	got, err = memo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	// Next day, before the scheduled time: not yet stale.
	clock.Advance(24 * time.Hour)
	clock.Set(9, 0)
	got, err = memo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	// Next day, past the scheduled time: recompute.
	clock.Set(9, 31)
	got, err = memo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestMemo_Refresh(t *testing.T) {
	t.Parallel()

	calls := 0
	memo := cache.NewMemo(cache.Never(), func(context.Context) (int, error) {
		calls++
		return calls, nil
	})

	ctx := context.Background()
	_, err := memo.Get(ctx)
	require.NoError(t, err)

	got, err := memo.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.False(t, memo.LastUpdated().IsZero())
}

func TestMemo_ErrorNotCached(t *testing.T) {
	t.Parallel()

	failing := true
	calls := 0
	memo := cache.NewMemo(cache.Never(), func(context.Context) (int, error) {
		calls++
		if failing {
			return 0, errors.New("upstream down")
		}
		return 42, nil
	})

	ctx := context.Background()
	_, err := memo.Get(ctx)
	require.Error(t, err)
	assert.True(t, memo.LastUpdated().IsZero())

	failing = false
	got, err := memo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 2, calls)
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "never", input: "never"},
		{name: "never uppercase", input: "NEVER"},
		{name: "seconds", input: "30"},
		{name: "daily time", input: "09:30"},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "invalid minute", input: "09:61", wantErr: true},
		{name: "negative seconds", input: "-5", wantErr: true},
		{name: "garbage", input: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := cache.ParsePolicy(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, cache.ErrInvalidPolicy)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
