package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

// noColor is a ColorProvider stub that emits no escape codes.
type noColor struct{}

func (noColor) ColorRed() string    { return "" }
func (noColor) ColorYellow() string { return "" }
func (noColor) ColorReset() string  { return "" }

// TestConfigError tests construction and message formatting.
func TestConfigError(t *testing.T) {
	err := NewConfigError("unknown theme %q", "solarized")
	want := `unknown theme "solarized"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("NewConfigError should produce a ConfigError, got %T", err)
	}
}

// TestValidationError tests the InvalidArgument error class.
func TestValidationError(t *testing.T) {
	err := NewValidationError("n", "%q is not an integer term count", "abc")

	t.Run("message names the field", func(t *testing.T) {
		if !strings.Contains(err.Error(), `"n"`) {
			t.Errorf("Error() = %q, should name the field", err.Error())
		}
	})

	t.Run("message explains the failure", func(t *testing.T) {
		if !strings.Contains(err.Error(), "not an integer term count") {
			t.Errorf("Error() = %q, should explain the failure", err.Error())
		}
	})

	t.Run("errors.As recovers the type", func(t *testing.T) {
		wrapped := WrapError(err, "parsing flags")
		var valErr ValidationError
		if !errors.As(wrapped, &valErr) {
			t.Fatalf("errors.As failed on %v", wrapped)
		}
		if valErr.Field != "n" {
			t.Errorf("Field = %q, want %q", valErr.Field, "n")
		}
	})
}

// TestGenerationError tests cause preservation and unwrapping.
func TestGenerationError(t *testing.T) {
	cause := context.DeadlineExceeded
	err := GenerationError{Cause: cause}

	if err.Error() != cause.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), cause.Error())
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

// TestTimeoutError tests the formatted timeout message.
func TestTimeoutError(t *testing.T) {
	err := TimeoutError{Operation: "generate", Limit: 5 * time.Second}
	want := `operation "generate" timed out after 5s`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// TestWrapError tests %w wrapping and the nil shortcut.
func TestWrapError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if got := WrapError(nil, "context"); got != nil {
			t.Errorf("WrapError(nil) = %v, want nil", got)
		}
	})

	t.Run("wraps with context", func(t *testing.T) {
		base := errors.New("boom")
		wrapped := WrapError(base, "during %s", "startup")
		if !errors.Is(wrapped, base) {
			t.Error("wrapped error should match base with errors.Is")
		}
		if !strings.Contains(wrapped.Error(), "during startup") {
			t.Errorf("wrapped message = %q, should contain context", wrapped.Error())
		}
	})
}

// TestIsContextError tests context error detection.
func TestIsContextError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("run: %w", context.Canceled), true},
		{"generation wrapping deadline", GenerationError{Cause: context.DeadlineExceeded}, true},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestHandleGenerationError tests the error-to-exit-code mapping and the
// user-facing messages.
func TestHandleGenerationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "deadline exceeded",
			err:      GenerationError{Cause: context.DeadlineExceeded},
			wantCode: ExitErrorTimeout,
			wantMsg:  "timed out",
		},
		{
			name:     "canceled",
			err:      GenerationError{Cause: context.Canceled},
			wantCode: ExitErrorCanceled,
			wantMsg:  "canceled",
		},
		{
			name:     "generic",
			err:      errors.New("boom"),
			wantCode: ExitErrorGeneric,
			wantMsg:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := HandleGenerationError(tt.err, 150*time.Millisecond, &buf, noColor{})
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(buf.String(), tt.wantMsg) {
				t.Errorf("output = %q, should contain %q", buf.String(), tt.wantMsg)
			}
		})
	}
}
