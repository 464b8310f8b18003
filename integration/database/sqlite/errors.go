package sqlite

import "errors"

// Domain-specific SQLite errors for consistent error handling across the
// application. Use errors.Is() to check error types.
var (
	ErrEmptyPath = errors.New("empty sqlite database path")
	ErrNotReady  = errors.New("sqlite database did not answer the connection ping")
	ErrNoRows    = errors.New("no rows to insert")
	ErrNoColumns = errors.New("no column definitions")
)
