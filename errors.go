package typedform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Azhovan/typedform/internal/pathfmt"
)

// ErrInvalidPathSegment matches any *InvalidPathSegmentError via errors.Is.
var ErrInvalidPathSegment = errors.New("typedform: invalid error path element")

// InvalidPathSegmentError reports a path segment that is neither a string nor a *Symbol.
// It means the validation result producer broke its contract; it is not a field failure.
type InvalidPathSegmentError struct {
	Path  []any
	Index int
	Value any
}

// Kind returns the runtime type of the offending segment.
func (e *InvalidPathSegmentError) Kind() string {
	if e.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", e.Value)
}

func (e *InvalidPathSegmentError) Error() string {
	return fmt.Sprintf("invalid error path element: %s, %v (index %d)", e.Kind(), e.Value, e.Index)
}

func (e *InvalidPathSegmentError) Is(target error) bool {
	return target == ErrInvalidPathSegment
}

// ValidationError aggregates field-level validation failures in report order.
type ValidationError struct {
	FieldErrors []FieldError
}

// Error formats validation errors as a multi-line message.
func (e *ValidationError) Error() string {
	if len(e.FieldErrors) == 0 {
		return "form validation failed: no errors"
	}

	var b strings.Builder
	if len(e.FieldErrors) == 1 {
		b.WriteString("form validation failed: 1 error\n")
	} else {
		fmt.Fprintf(&b, "form validation failed: %d errors\n", len(e.FieldErrors))
	}

	for _, fe := range e.FieldErrors {
		fmt.Fprintf(&b, "  - %s: %s\n", pathfmt.Dotted(fe.Path), fe.Message)
	}

	return strings.TrimRight(b.String(), "\n")
}

// Has reports whether any field error sits exactly at path.
func (e *ValidationError) Has(path ...any) bool {
	return len(e.Get(path...)) > 0
}

// Get returns the messages reported exactly at path, in order.
func (e *ValidationError) Get(path ...any) []string {
	var messages []string
	for _, fe := range e.FieldErrors {
		if samePath(fe.Path, path) {
			messages = append(messages, fe.Message)
		}
	}
	return messages
}

func samePath(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
