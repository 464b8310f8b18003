package async

import "errors"

var (
	// ErrTimeout is returned when an await or a wrapped call exceeds its
	// deadline, and by calls rejected during a timeout cooldown.
	ErrTimeout = errors.New("operation timed out")

	// ErrNoFutures is returned when WaitAny is called with no futures.
	ErrNoFutures = errors.New("no futures provided")
)
