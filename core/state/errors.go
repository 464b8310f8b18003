package state

import "errors"

var (
	// ErrUnknownState is returned when the named state has never been set.
	ErrUnknownState = errors.New("unknown state name")

	// ErrTypeMismatch is returned when a value violates the type constraint
	// established on the state's first write. The stored value is unchanged.
	ErrTypeMismatch = errors.New("value does not satisfy type constraint")

	// ErrDuplicateSubscriber is returned when a subscriber id is already
	// registered for the state. The existing subscription is untouched.
	ErrDuplicateSubscriber = errors.New("subscriber id already registered")

	// ErrNotSubscribed is returned when unsubscribing an id that is not
	// registered for the state.
	ErrNotSubscribed = errors.New("subscriber id not registered")

	// ErrNotCopyable is returned when a value cannot be deep-copied across
	// the registry boundary.
	ErrNotCopyable = errors.New("value cannot be deep-copied")
)
