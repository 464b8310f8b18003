package state

import "sync"

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating it on first use.
// It is the single globally addressable instance that decouples producers of
// a value from consumers without either holding a reference to the other.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Set stores value under name in the default registry.
func Set(name string, value any, opts ...SetOption) error {
	return Default().Set(name, value, opts...)
}

// Get returns a deep copy of name's value from the default registry.
func Get(name string) (any, error) {
	return Default().Get(name)
}

// Subscribe registers sub for changes of name in the default registry.
func Subscribe(name string, sub Subscriber) error {
	return Default().Subscribe(name, sub)
}

// Unsubscribe removes subscriberID from name in the default registry.
func Unsubscribe(name, subscriberID string) error {
	return Default().Unsubscribe(name, subscriberID)
}

// UnsubscribeAll removes subscriberID from every state in the default registry.
func UnsubscribeAll(subscriberID string) error {
	return Default().UnsubscribeAll(subscriberID)
}

// StateNames returns the default registry's known state names.
func StateNames() []string {
	return Default().StateNames()
}
