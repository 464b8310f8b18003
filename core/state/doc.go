// Package state provides a process-wide registry of named mutable values with
// synchronous change notification.
//
// A Registry maps state names to internal cells. Each cell owns one value, an
// optional type constraint, and the set of subscribers currently listening to
// it. Setting a value deep-copies it into the cell and synchronously invokes
// every subscriber's callback, in subscription order, with an independent deep
// copy of the new value. There is no replay: a subscriber only observes
// changes made after it subscribed.
//
// # Usage
//
//	registry := state.NewRegistry()
//
//	// First write creates the state and may fix a type constraint.
//	_ = registry.Set("ip", "10.0.0.1", state.WithConstraint[string]())
//
//	sub := state.NewSubscriber("listener1", func(v any) {
//	    fmt.Printf("ip changed: %v\n", v)
//	})
//	_ = registry.Subscribe("ip", sub)
//
//	// Notifies listener1 with "10.0.0.2".
//	_ = registry.Set("ip", "10.0.0.2")
//
// A lazily created default registry is reachable from anywhere in the process
// via Default and the package-level convenience functions. It exists to
// decouple producers of a value from their consumers without either holding a
// reference to the other.
//
// # Value Isolation
//
// Values cross the registry boundary by deep copy only: on Set, on Get, and
// once per subscriber on notification. Mutating a value obtained from Get, or
// one received in a callback, never affects the stored value or what other
// subscribers see. Values must be copyable by reflection; a value that cannot
// be copied fails the Set with ErrNotCopyable.
//
// # Error Handling
//
// Expected failures are returned as sentinel errors and logged at debug
// level, never panics: ErrUnknownState, ErrTypeMismatch,
// ErrDuplicateSubscriber, ErrNotSubscribed. A panic raised inside a
// subscriber callback is not recovered; it propagates through Set to the
// caller and aborts notification of later subscribers. Subscriber callbacks
// must not panic.
//
// # Concurrency
//
// The registry performs no internal locking. Set, Subscribe, and Unsubscribe
// mutate shared maps and must be serialized by the embedding application when
// used from multiple goroutines. The design targets single-writer usage where
// fan-out runs synchronously on the writer's goroutine; no background
// goroutine, queue, or timeout is involved, so a blocking callback stalls the
// setter for that name indefinitely.
package state
