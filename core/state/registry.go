package state

import (
	"io"
	"log/slog"
	"reflect"
)

// Registry is the process-wide mapping from state name to its owning cell.
// A name either has no cell (state unknown) or exactly one; cells are created
// implicitly on first Set and live for the registry's lifetime.
//
// Registry performs no internal locking; see the package documentation for
// the concurrency contract.
type Registry struct {
	states map[string]*cell
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger configures structured logging for the registry.
// Logging is disabled by default.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty state registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		states: make(map[string]*cell),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetOption configures a single Set call.
type SetOption func(*setOptions)

type setOptions struct {
	constraint reflect.Type
}

// WithConstraint fixes the state's type constraint to T. The constraint is
// captured only by the Set that creates the state; on later Sets it is
// ignored.
func WithConstraint[T any]() SetOption {
	return func(o *setOptions) {
		o.constraint = reflect.TypeFor[T]()
	}
}

// WithConstraintOf is the non-generic form of WithConstraint for constraints
// only known at runtime.
func WithConstraintOf(t reflect.Type) SetOption {
	return func(o *setOptions) {
		o.constraint = t
	}
}

// Set stores a deep copy of value under name and synchronously notifies every
// subscriber of that state, in subscription order, each with its own deep
// copy. The first Set for a name always succeeds, creates the state, and
// fixes its type constraint for the lifetime of the registry. Later Sets
// return ErrTypeMismatch when the value violates that constraint, leaving
// the stored value unchanged.
//
// Set does not return until every subscriber callback has run.
func (r *Registry) Set(name string, value any, opts ...SetOption) error {
	if c, exists := r.states[name]; exists {
		if err := c.setValue(value); err != nil {
			r.logger.Debug("state set rejected",
				slog.String("state", name), slog.Any("error", err))
			return err
		}
		return nil
	}

	var options setOptions
	for _, opt := range opts {
		opt(&options)
	}

	c := newCell(name, options.constraint)
	if err := c.setValue(value); err != nil {
		// Only a copy failure can reach here on a fresh cell.
		return err
	}
	r.states[name] = c
	return nil
}

// Get returns a deep copy of the current value of name.
// Returns ErrUnknownState when the name has never been set.
func (r *Registry) Get(name string) (any, error) {
	c, exists := r.states[name]
	if !exists {
		r.logger.Debug("get on unknown state", slog.String("state", name))
		return nil, ErrUnknownState
	}
	return c.getValue()
}

// Subscribe registers sub for changes of name. Returns ErrUnknownState when
// the name has never been set and ErrDuplicateSubscriber when the id is
// already registered for it.
func (r *Registry) Subscribe(name string, sub Subscriber) error {
	c, exists := r.states[name]
	if !exists {
		r.logger.Debug("subscribe on unknown state",
			slog.String("state", name), slog.String("subscriber", sub.ID()))
		return ErrUnknownState
	}
	if err := c.subscribe(sub); err != nil {
		r.logger.Debug("subscribe rejected",
			slog.String("state", name), slog.String("subscriber", sub.ID()),
			slog.Any("error", err))
		return err
	}
	return nil
}

// Unsubscribe removes the subscriber with subscriberID from name.
// Returns ErrUnknownState for a never-set name and ErrNotSubscribed when the
// id is not registered for it.
func (r *Registry) Unsubscribe(name, subscriberID string) error {
	c, exists := r.states[name]
	if !exists {
		r.logger.Debug("unsubscribe on unknown state",
			slog.String("state", name), slog.String("subscriber", subscriberID))
		return ErrUnknownState
	}
	if err := c.unsubscribe(subscriberID); err != nil {
		r.logger.Debug("unsubscribe rejected",
			slog.String("state", name), slog.String("subscriber", subscriberID),
			slog.Any("error", err))
		return err
	}
	return nil
}

// UnsubscribeAll removes subscriberID from every state it is registered to.
// Returns ErrNotSubscribed when the id was registered nowhere.
func (r *Registry) UnsubscribeAll(subscriberID string) error {
	removed := false
	for _, c := range r.states {
		if c.unsubscribe(subscriberID) == nil {
			removed = true
		}
	}
	if !removed {
		r.logger.Debug("unsubscribe all removed nothing",
			slog.String("subscriber", subscriberID))
		return ErrNotSubscribed
	}
	return nil
}

// StateNames returns a snapshot of all currently known state names.
func (r *Registry) StateNames() []string {
	names := make([]string, 0, len(r.states))
	for name := range r.states {
		names = append(names, name)
	}
	return names
}
