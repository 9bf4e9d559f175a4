package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrChainConsumed", ErrChainConsumed, "chain already consumed"},
		{"ErrInvalidConfiguration", ErrInvalidConfiguration, "invalid configuration"},
		{"ErrAlreadyRunning", ErrAlreadyRunning, "already running"},
		{"ErrNotRunning", ErrNotRunning, "not running"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("error should not be nil")
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsMisuse(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"consumed chain", ErrChainConsumed, true},
		{"invalid configuration", ErrInvalidConfiguration, true},
		{"wrapped consumed chain", &ValidationError{Module: "pipeline", Field: "policy", Value: 9, Reason: "unknown"}, true},
		{"lifecycle error", ErrAlreadyRunning, false},
		{"random error", errors.New("random"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMisuse(tt.err); got != tt.want {
				t.Errorf("IsMisuse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsLifecycle(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"already running", ErrAlreadyRunning, true},
		{"not running", ErrNotRunning, true},
		{"consumed chain", ErrChainConsumed, false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLifecycle(tt.err); got != tt.want {
				t.Errorf("IsLifecycle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "without hint",
			err: &ValidationError{
				Module: "pipeline",
				Field:  "parallelism",
				Value:  -1,
				Reason: "must be positive",
			},
			want: "pipeline: invalid parallelism=-1 (must be positive)",
		},
		{
			name: "with hint",
			err: &ValidationError{
				Module: "pipeline",
				Field:  "policy",
				Value:  7,
				Reason: "unknown execution policy",
				Hint:   "use Sequential, ParallelPreserveOrder or ParallelUnordered",
			},
			want: "pipeline: invalid policy=7 (unknown execution policy) - use Sequential, ParallelPreserveOrder or ParallelUnordered",
		},
		{
			name: "string value",
			err: &ValidationError{
				Module: "runner",
				Field:  "cron",
				Value:  "",
				Reason: "cannot be empty",
			},
			want: "runner: invalid cron= (cannot be empty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	verr := &ValidationError{
		Module: "test",
		Field:  "field",
		Value:  0,
		Reason: "test",
	}

	unwrapped := verr.Unwrap()
	if unwrapped != ErrInvalidConfiguration {
		t.Errorf("Unwrap() = %v, want ErrInvalidConfiguration", unwrapped)
	}

	if !errors.Is(verr, ErrInvalidConfiguration) {
		t.Error("ValidationError should wrap ErrInvalidConfiguration")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("module", "field", 123, "test reason")

	if err.Module != "module" {
		t.Errorf("Module = %q, want %q", err.Module, "module")
	}
	if err.Field != "field" {
		t.Errorf("Field = %q, want %q", err.Field, "field")
	}
	if err.Value != 123 {
		t.Errorf("Value = %v, want %v", err.Value, 123)
	}
	if err.Reason != "test reason" {
		t.Errorf("Reason = %q, want %q", err.Reason, "test reason")
	}
	if err.Hint != "" {
		t.Errorf("Hint = %q, want empty string", err.Hint)
	}
}

func TestValidationError_WithHint(t *testing.T) {
	err := NewValidationError("test", "field", 0, "invalid").
		WithHint("try using a positive value")

	if err.Hint != "try using a positive value" {
		t.Errorf("Hint = %q, want %q", err.Hint, "try using a positive value")
	}

	// Should return same instance for chaining
	result := err.WithHint("new hint")
	if result != err {
		t.Error("WithHint should return the same instance")
	}
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			"validation error",
			&ValidationError{Module: "test", Field: "field", Value: 0, Reason: "test"},
			true,
		},
		{"sentinel", ErrInvalidConfiguration, false},
		{"standard error", errors.New("test"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidationError(tt.err); got != tt.want {
				t.Errorf("IsValidationError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Run("ValidationError message components", func(t *testing.T) {
		err := NewValidationError("mymodule", "myfield", 42, "must be less than 10").
			WithHint("use a value between 0 and 10")

		msg := err.Error()

		expectedParts := []string{"mymodule", "myfield", "42", "must be less than 10", "use a value between 0 and 10"}
		for _, part := range expectedParts {
			if !strings.Contains(msg, part) {
				t.Errorf("error message should contain %q, got %q", part, msg)
			}
		}
	})
}
