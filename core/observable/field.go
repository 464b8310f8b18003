package observable

import (
	"fmt"

	"github.com/mitchellh/copystructure"

	"github.com/FrauElster/goutil/core/state"
)

// Field holds one observable attribute value and the subscribers listening to
// it. Fields are created with NewField, which registers them on their parent
// Observable under the attribute name.
type Field[T any] struct {
	attr  string
	value T
	subs  map[string]state.Subscriber
	order []string
}

// NewField creates a typed observable field and registers it on obs under the
// given attribute name. Registering the same attribute name twice panics, as
// it is a programming error in the declaring type.
func NewField[T any](obs *Observable, attribute string, initial T) *Field[T] {
	f := &Field[T]{
		attr:  attribute,
		value: initial,
		subs:  make(map[string]state.Subscriber),
	}
	if err := obs.register(f); err != nil {
		panic(fmt.Sprintf("observable: attribute %q already registered", attribute))
	}
	return f
}

// Attribute returns the name the field is registered under.
func (f *Field[T]) Attribute() string {
	return f.attr
}

// Get returns a deep copy of the current value.
func (f *Field[T]) Get() (T, error) {
	return deepCopy(f.value)
}

// Set stores a deep copy of value and synchronously notifies every subscriber
// of this attribute, in registration order, each with its own deep copy.
func (f *Field[T]) Set(value T) error {
	stored, err := deepCopy(value)
	if err != nil {
		return err
	}
	f.value = stored

	for _, id := range f.order {
		cp, err := deepCopy(f.value)
		if err != nil {
			return err
		}
		f.subs[id].Notify(cp)
	}
	return nil
}

// Subscribe registers sub for changes of this field.
// Returns state.ErrDuplicateSubscriber when the id is already registered.
func (f *Field[T]) Subscribe(sub state.Subscriber) error {
	return f.attach(sub)
}

// SubscribeFunc registers a typed callback under the given id.
func (f *Field[T]) SubscribeFunc(id string, fn func(T)) error {
	return f.attach(state.NewSubscriber(id, func(v any) {
		fn(v.(T))
	}))
}

// Unsubscribe removes the subscriber with the given id.
// Returns state.ErrNotSubscribed when the id is not registered.
func (f *Field[T]) Unsubscribe(subscriberID string) error {
	return f.detach(subscriberID)
}

func (f *Field[T]) attribute() string { return f.attr }

func (f *Field[T]) attach(sub state.Subscriber) error {
	if _, exists := f.subs[sub.ID()]; exists {
		return state.ErrDuplicateSubscriber
	}
	f.subs[sub.ID()] = sub
	f.order = append(f.order, sub.ID())
	return nil
}

func (f *Field[T]) detach(subscriberID string) error {
	if _, exists := f.subs[subscriberID]; !exists {
		return state.ErrNotSubscribed
	}
	delete(f.subs, subscriberID)
	for i, id := range f.order {
		if id == subscriberID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func deepCopy[T any](value T) (T, error) {
	cp, err := copystructure.Copy(value)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("value cannot be deep-copied: %w", err)
	}
	typed, ok := cp.(T)
	if !ok {
		// copystructure returns an untyped nil for nil interface values.
		var zero T
		return zero, nil
	}
	return typed, nil
}
