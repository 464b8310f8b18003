package spinner

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

const defaultDelay = 100 * time.Millisecond

// Spinner animates a spinning cursor on stderr. It is safe to Start and
// Stop repeatedly; both are no-ops in CI environments.
type Spinner struct {
	inner *spinner.Spinner
	ci    bool
}

// Option configures a Spinner.
type Option func(*config)

type config struct {
	delay   time.Duration
	message string
	charset []string
}

// WithDelay sets the time between animation frames.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithMessage sets the text following the cursor.
func WithMessage(msg string) Option {
	return func(c *config) { c.message = msg }
}

// WithCharset replaces the animation frames.
func WithCharset(frames []string) Option {
	return func(c *config) {
		if len(frames) > 0 {
			c.charset = frames
		}
	}
}

// New creates a stopped Spinner.
func New(opts ...Option) *Spinner {
	cfg := config{
		delay:   defaultDelay,
		charset: spinner.CharSets[14],
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := spinner.New(cfg.charset, cfg.delay, spinner.WithWriter(os.Stderr))
	if cfg.message != "" {
		s.Suffix = fmt.Sprintf(" %s", cfg.message)
	}
	return &Spinner{
		inner: s,
		ci:    os.Getenv("CI") == "true",
	}
}

// Start begins the animation.
func (s *Spinner) Start() {
	if s.ci {
		return
	}
	s.inner.Start()
}

// Stop halts the animation and clears the cursor line.
func (s *Spinner) Stop() {
	if s.ci {
		return
	}
	s.inner.Stop()
}

// Message swaps the text shown next to the cursor while running.
func (s *Spinner) Message(msg string) {
	s.inner.Suffix = fmt.Sprintf(" %s", msg)
}

// Wrap animates with the given message for the duration of fn and returns
// fn's error. The animation stops even when fn panics.
func Wrap(message string, fn func() error) error {
	s := New(WithMessage(message))
	s.Start()
	defer s.Stop()
	return fn()
}
