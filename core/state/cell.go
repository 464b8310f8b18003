package state

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/copystructure"
)

// cell owns one named value, its optional type constraint, and the
// subscribers currently listening to it. The subscriber map guarantees id
// uniqueness; the order slice preserves subscription order for fan-out.
type cell struct {
	name       string
	value      any
	constraint reflect.Type
	subs       map[string]Subscriber
	order      []string
}

func newCell(name string, constraint reflect.Type) *cell {
	return &cell{
		name:       name,
		constraint: constraint,
		subs:       make(map[string]Subscriber),
	}
}

func (c *cell) subscribe(sub Subscriber) error {
	if _, exists := c.subs[sub.ID()]; exists {
		return ErrDuplicateSubscriber
	}
	c.subs[sub.ID()] = sub
	c.order = append(c.order, sub.ID())
	return nil
}

func (c *cell) unsubscribe(subscriberID string) error {
	if _, exists := c.subs[subscriberID]; !exists {
		return ErrNotSubscribed
	}
	delete(c.subs, subscriberID)
	for i, id := range c.order {
		if id == subscriberID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// subscriberIDs returns a snapshot of registered ids in subscription order.
func (c *cell) subscriberIDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

func (c *cell) getValue() (any, error) {
	return deepCopy(c.value)
}

// setValue validates the constraint, stores a deep copy, and synchronously
// notifies every subscriber in subscription order with a fresh copy each.
// On any failure the stored value is left unchanged and nobody is notified.
func (c *cell) setValue(value any) error {
	if c.constraint != nil && value != nil {
		if !reflect.TypeOf(value).AssignableTo(c.constraint) {
			return fmt.Errorf("%w: state %q expects %s, got %T", ErrTypeMismatch, c.name, c.constraint, value)
		}
	}

	stored, err := deepCopy(value)
	if err != nil {
		return err
	}
	c.value = stored

	return c.notify()
}

func (c *cell) notify() error {
	for _, id := range c.order {
		cp, err := deepCopy(c.value)
		if err != nil {
			return err
		}
		c.subs[id].Notify(cp)
	}
	return nil
}

// deepCopy is the sole isolation mechanism between the cell's storage, the
// producer's input, and what subscribers receive.
func deepCopy(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	cp, err := copystructure.Copy(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotCopyable, err)
	}
	return cp, nil
}
