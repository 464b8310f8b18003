package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

var (
	// ErrMissingKey is returned when a required key is absent from the file.
	ErrMissingKey = errors.New("required key missing")

	// ErrInvalidConfig is returned when the file is absent, empty, or not a
	// JSON object.
	ErrInvalidConfig = errors.New("invalid config file")
)

// Key describes one expected entry of a JSON config file.
type Key struct {
	// Name of the JSON key.
	Name string

	// Required keys fail the load when missing or undecodable; optional
	// keys are logged and skipped.
	Required bool

	// Decode optionally transforms the raw JSON value into a domain type.
	// When nil, the value is kept as decoded by encoding/json.
	Decode func(raw json.RawMessage) (any, error)
}

// File is the validated content of a JSON config file.
type File struct {
	values map[string]any
}

// FileOption configures LoadFile.
type FileOption func(*fileOptions)

type fileOptions struct {
	logger *slog.Logger
}

// WithFileLogger configures structured logging for optional-key problems.
// Logging is disabled by default.
func WithFileLogger(logger *slog.Logger) FileOption {
	return func(o *fileOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// LoadFile reads a JSON object from path and validates it against the given
// key descriptors. Problems with required keys are aggregated with
// errors.Join and fail the load; problems with optional keys are logged at
// warn level and the key is skipped. Keys present in the file but not
// described are ignored.
func LoadFile(path string, keys []Key, opts ...FileOption) (*File, error) {
	options := fileOptions{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&options)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s is not a JSON object: %v", ErrInvalidConfig, path, err)
	}

	file := &File{values: make(map[string]any, len(keys))}
	var errs []error
	for _, key := range keys {
		rawValue, present := raw[key.Name]
		if !present {
			if key.Required {
				errs = append(errs, fmt.Errorf("%w: %q", ErrMissingKey, key.Name))
			} else {
				options.logger.Debug("optional config key missing",
					slog.String("key", key.Name), slog.String("path", path))
			}
			continue
		}

		var value any
		if key.Decode != nil {
			value, err = key.Decode(rawValue)
		} else {
			err = json.Unmarshal(rawValue, &value)
		}
		if err != nil {
			if key.Required {
				errs = append(errs, fmt.Errorf("could not parse key %q: %w", key.Name, err))
			} else {
				options.logger.Warn("ignoring unparsable optional config key",
					slog.String("key", key.Name), slog.Any("error", err))
			}
			continue
		}
		file.values[key.Name] = value
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return file, nil
}

// Get returns the raw value of a validated key.
func (f *File) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Value returns the key's value as T, or def when the key is absent or has a
// different type. JSON numbers decode as float64 unless a Key.Decode hook
// produced another type.
func Value[T any](f *File, key string, def T) T {
	raw, ok := f.values[key]
	if !ok {
		return def
	}
	v, ok := raw.(T)
	if !ok {
		return def
	}
	return v
}
