package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the gofuse library

var (
	// ErrChainConsumed indicates that a chain was used after a builder call
	// or Collect already consumed it. Chains are single-use values.
	ErrChainConsumed = errors.New("chain already consumed")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrAlreadyRunning indicates that a component was started twice
	ErrAlreadyRunning = errors.New("already running")

	// ErrNotRunning indicates that an operation requires a running component
	ErrNotRunning = errors.New("not running")
)

// IsMisuse returns true if the error indicates a violation of the API
// contract by the caller rather than a runtime condition
func IsMisuse(err error) bool {
	return errors.Is(err, ErrChainConsumed) || errors.Is(err, ErrInvalidConfiguration)
}

// IsLifecycle returns true if the error relates to component start/stop state
func IsLifecycle(err error) bool {
	return errors.Is(err, ErrAlreadyRunning) || errors.Is(err, ErrNotRunning)
}

// ValidationError describes a configuration value that failed validation.
type ValidationError struct {
	Module string // package or component reporting the error
	Field  string // name of the offending parameter
	Value  interface{}
	Reason string
	Hint   string // optional suggestion for the caller
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a suggestion to the error and returns the same instance
// for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap allows errors.Is(err, ErrInvalidConfiguration) to match.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// IsValidationError returns true if the error or any error in its chain
// is a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
