// Package errors provides structured errors and exit codes for the cza CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes. Every fatal error maps to ExitFailure; post-generation step
// failures never change the exit code once materialization succeeded.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a project name or input validation failure.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a template key absent from the registry.
	ErrNotFound = errors.New("not found")

	// ErrConfig indicates a configuration load, parse, or write failure.
	ErrConfig = errors.New("config error")

	// ErrMaterialize indicates a template fetch or render failure.
	ErrMaterialize = errors.New("materialize error")
)

// DetailError carries a categorized message plus an actionable hint.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed marks errors already reported by the command layer,
	// so main does not print them twice.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the process exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// NewValidationError creates a validation error with a hint.
func NewValidationError(message, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewNotFoundError creates a not-found error with a hint.
func NewNotFoundError(message, hint string) error {
	return &DetailError{
		Type:    "not found",
		Message: message,
		Hint:    hint,
		Cause:   ErrNotFound,
	}
}

// NewConfigError creates a configuration error wrapping its cause.
func NewConfigError(message string, cause error) error {
	return &DetailError{
		Type:    "config error",
		Message: message,
		Cause:   fmt.Errorf("%w: %w", ErrConfig, cause),
	}
}

// NewMaterializeError creates a materialization error wrapping its cause.
func NewMaterializeError(message string, cause error) error {
	return &DetailError{
		Type:    "generation failed",
		Message: message,
		Hint:    "Check your network connection and that the template repository is reachable, then re-run.",
		Cause:   fmt.Errorf("%w: %w", ErrMaterialize, cause),
	}
}
