package observable

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/FrauElster/goutil/core/state"
)

// field is the untyped view the Observable keeps of its registered Field[T]
// members.
type field interface {
	attribute() string
	attach(sub state.Subscriber) error
	detach(subscriberID string) error
}

// Observable indexes the observable fields of one instance by attribute name
// and manages subscriptions across them. Embed a *Observable in the declaring
// type and create its fields with NewField.
type Observable struct {
	fields map[string]field
	order  []string
	logger *slog.Logger
}

// Option configures an Observable.
type Option func(*Observable)

// WithLogger configures structured logging. Logging is disabled by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Observable) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates an Observable with no registered fields.
func New(opts ...Option) *Observable {
	o := &Observable{
		fields: make(map[string]field),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Observable) register(f field) error {
	if _, exists := o.fields[f.attribute()]; exists {
		return fmt.Errorf("attribute %q already registered", f.attribute())
	}
	o.fields[f.attribute()] = f
	o.order = append(o.order, f.attribute())
	return nil
}

// Attributes returns the registered attribute names in registration order.
func (o *Observable) Attributes() []string {
	attrs := make([]string, len(o.order))
	copy(attrs, o.order)
	return attrs
}

// Subscribe registers sub on the named attributes, or on every registered
// attribute when none are named. Attributes that are unknown or already hold
// a subscription for the id fail individually; all viable attributes are
// still registered and the failures are returned aggregated with errors.Join.
func (o *Observable) Subscribe(sub state.Subscriber, attributes ...string) error {
	if len(attributes) == 0 {
		attributes = o.order
	}

	var errs []error
	for _, attr := range attributes {
		f, exists := o.fields[attr]
		if !exists {
			o.logger.Debug("subscribe on unknown attribute",
				slog.String("attribute", attr), slog.String("subscriber", sub.ID()))
			errs = append(errs, fmt.Errorf("attribute %q: %w", attr, ErrUnknownAttribute))
			continue
		}
		if err := f.attach(sub); err != nil {
			o.logger.Debug("subscribe rejected",
				slog.String("attribute", attr), slog.String("subscriber", sub.ID()),
				slog.Any("error", err))
			errs = append(errs, fmt.Errorf("attribute %q: %w", attr, err))
		}
	}
	return errors.Join(errs...)
}

// Unsubscribe removes the subscriber id from the named attributes, or from
// every registered attribute when none are named, with the same
// partial-failure aggregation as Subscribe.
func (o *Observable) Unsubscribe(subscriberID string, attributes ...string) error {
	if len(attributes) == 0 {
		attributes = o.order
	}

	var errs []error
	for _, attr := range attributes {
		f, exists := o.fields[attr]
		if !exists {
			o.logger.Debug("unsubscribe on unknown attribute",
				slog.String("attribute", attr), slog.String("subscriber", subscriberID))
			errs = append(errs, fmt.Errorf("attribute %q: %w", attr, ErrUnknownAttribute))
			continue
		}
		if err := f.detach(subscriberID); err != nil {
			o.logger.Debug("unsubscribe rejected",
				slog.String("attribute", attr), slog.String("subscriber", subscriberID),
				slog.Any("error", err))
			errs = append(errs, fmt.Errorf("attribute %q: %w", attr, err))
		}
	}
	return errors.Join(errs...)
}

// UnsubscribeAll removes the subscriber id from every attribute it is
// registered to. Returns state.ErrNotSubscribed when the id was registered
// nowhere.
func (o *Observable) UnsubscribeAll(subscriberID string) error {
	removed := false
	for _, attr := range o.order {
		if o.fields[attr].detach(subscriberID) == nil {
			removed = true
		}
	}
	if !removed {
		o.logger.Debug("unsubscribe all removed nothing",
			slog.String("subscriber", subscriberID))
		return state.ErrNotSubscribed
	}
	return nil
}
