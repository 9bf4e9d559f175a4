// Package validation provides common validation utilities for the gofuse library.
package validation

import (
	"time"

	gferrors "github.com/vnykmshr/gofuse/pkg/common/errors"
)

// ValidatePositive validates that an integer value is positive (> 0).
// Returns a ValidationError if the value is not positive.
func ValidatePositive(module, field string, value int) error {
	if value <= 0 {
		return gferrors.NewValidationError(module, field, value, "must be positive").
			WithHint("value must be greater than 0")
	}
	return nil
}

// ValidateNotNil validates that an interface value is not nil.
// Returns a ValidationError if the value is nil.
func ValidateNotNil(module, field string, value interface{}) error {
	if value == nil {
		return gferrors.NewValidationError(module, field, nil, "cannot be nil").
			WithHint("provide a valid " + field)
	}
	return nil
}

// ValidateNotEmpty validates that a string value is not empty.
// Returns a ValidationError if the string is empty.
func ValidateNotEmpty(module, field string, value string) error {
	if value == "" {
		return gferrors.NewValidationError(module, field, value, "cannot be empty").
			WithHint("provide a non-empty " + field)
	}
	return nil
}

// ValidateMinDuration validates that a duration is at least min.
// Returns a ValidationError if the duration is too short.
func ValidateMinDuration(module, field string, value, min time.Duration) error {
	if value < min {
		return gferrors.NewValidationError(module, field, value, "too short").
			WithHint("use at least " + min.String())
	}
	return nil
}
