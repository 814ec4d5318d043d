package transformer

import (
	"errors"
	"fmt"
)

// Predefined errors for configuration failures.
//
// These are raised at construction time only. Generation failures during
// Transform are propagated from the llm.Provider unchanged and never
// wrapped in a ConfigError.
var (
	// ErrNilProvider indicates that no llm.Provider was supplied.
	ErrNilProvider = errors.New("llm provider is required")

	// ErrNilTemplate indicates that a nil prompt template was supplied.
	ErrNilTemplate = errors.New("prompt template is required")

	// ErrInvalidCount indicates a non-positive reformulation count.
	ErrInvalidCount = errors.New("reformulation count must be greater than zero")
)

// ConfigError wraps a configuration error with the name of the constructor
// that rejected it.
//
// Example:
//
//	err := NewConfigError("NewExpanding", ErrInvalidCount)
//	// Error() returns: "querykit: NewExpanding: reformulation count must be greater than zero"
type ConfigError struct {
	// Op is the name of the constructor that failed.
	Op string

	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message.
//
// The format is: "querykit: <Op>: <Err>"
func (e *ConfigError) Error() string {
	return fmt.Sprintf("querykit: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is / errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a ConfigError wrapping the given error.
//
// If err is nil, returns nil.
func NewConfigError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{
		Op:  op,
		Err: err,
	}
}
