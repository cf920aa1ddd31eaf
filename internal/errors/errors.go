package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure: a value that is
// not an integer-comparable term count, or otherwise outside the documented
// contract. It identifies which field failed validation and provides a
// human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid argument for %q: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field with a
// formatted message.
func NewValidationError(field, format string, a ...any) error {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// GenerationError encapsulates a sequence generation failure while
// preserving the original cause. Generation itself cannot fail on numeric
// input; the only causes are externally imposed (context cancellation or
// deadline expiry).
type GenerationError struct {
	// Cause is the underlying error that interrupted the generation.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e GenerationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e GenerationError) Unwrap() error { return e.Cause }

// TimeoutError represents a generation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ColorProvider supplies ANSI color codes for error presentation. The CLI
// passes its theme-backed implementation; tests pass a no-color stub.
type ColorProvider interface {
	ColorRed() string
	ColorYellow() string
	ColorReset() string
}

// HandleGenerationError writes a user-facing description of a generation
// failure to out and maps the error to a process exit code.
//
// Parameters:
//   - err: The error returned by the generation.
//   - elapsed: How long the generation ran before failing.
//   - out: The writer for the error message.
//   - colors: The color provider for highlighting.
//
// Returns:
//   - int: ExitErrorTimeout for deadline expiry, ExitErrorCanceled for
//     cancellation, ExitErrorGeneric otherwise.
func HandleGenerationError(err error, elapsed time.Duration, out io.Writer, colors ColorProvider) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sGeneration timed out after %s.%s\n",
			colors.ColorYellow(), elapsed.Round(time.Millisecond), colors.ColorReset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sGeneration canceled after %s.%s\n",
			colors.ColorYellow(), elapsed.Round(time.Millisecond), colors.ColorReset())
		return ExitErrorCanceled
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", colors.ColorRed(), err, colors.ColorReset())
		return ExitErrorGeneric
	}
}
