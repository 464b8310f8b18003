package state

import "github.com/google/uuid"

// Subscriber pairs an opaque identity with a callback invoked on every value
// change of the states it is registered to. Subscribers are immutable;
// identity is the id, so one Subscriber value may be registered to any number
// of states, at most once each.
type Subscriber struct {
	id       string
	callback func(value any)
}

// NewSubscriber creates a subscriber with an explicit id.
// The id must be unique within every state it is registered to.
func NewSubscriber(id string, callback func(value any)) Subscriber {
	return Subscriber{id: id, callback: callback}
}

// NewSubscriberFunc creates a subscriber with a generated UUID id.
// Use Subscriber.ID to retrieve the id for later unsubscription.
func NewSubscriberFunc(callback func(value any)) Subscriber {
	return Subscriber{id: uuid.New().String(), callback: callback}
}

// ID returns the subscriber's identity.
func (s Subscriber) ID() string {
	return s.id
}

// Notify invokes the callback with the given value. A panic inside the
// callback is not recovered and propagates to the caller.
func (s Subscriber) Notify(value any) {
	if s.callback != nil {
		s.callback(value)
	}
}
