package spinner_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrauElster/goutil/pkg/spinner"
)

func TestWrap(t *testing.T) {
	t.Run("returns function result", func(t *testing.T) {
		called := false
		err := spinner.Wrap("working", func() error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("propagates errors", func(t *testing.T) {
		wantErr := errors.New("task failed")
		err := spinner.Wrap("working", func() error { return wantErr })
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("stops on panic", func(t *testing.T) {
		assert.Panics(t, func() {
			_ = spinner.Wrap("working", func() error { panic("boom") })
		})
	})
}

func TestStartStop(t *testing.T) {
	s := spinner.New(
		spinner.WithMessage("loading"),
		spinner.WithDelay(10*time.Millisecond),
	)

	s.Start()
	s.Message("still loading")
	s.Stop()

	// Restartable after Stop.
	s.Start()
	s.Stop()
}
