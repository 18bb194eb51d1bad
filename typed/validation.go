package typed

import (
	"github.com/Azhovan/typedform"
	"github.com/Azhovan/typedform/internal/pathfmt"
)

// Validation holds the errors found while checking Input.
type Validation struct {
	Input  any
	Errors []*Error
}

// Error is a failure at one location of the validated value.
type Error struct {
	path         []any
	ExpectedType Type
	message      func() string
}

// Path returns the location of the failure. Array elements use int indices.
func (e *Error) Path() []any {
	return e.path
}

// Message computes the failure message.
func (e *Error) Message() string {
	return e.message()
}

// AcceptsSomeCompositeTypes reports whether the expected type is composite.
func (e *Error) AcceptsSomeCompositeTypes() bool {
	return e.ExpectedType.AcceptsSomeCompositeTypes()
}

func (e *Error) String() string {
	return pathfmt.Dotted(e.path) + ": " + e.Message()
}

// HasErrors reports whether any failure was recorded.
// A nil *Validation has no errors.
func (v *Validation) HasErrors() bool {
	if v == nil {
		return false
	}
	return len(v.Errors) > 0
}

// Locations implements typedform.Result.
// A nil *Validation reports no locations, so it can stand for "valid".
func (v *Validation) Locations() []typedform.Location {
	if v == nil {
		return nil
	}
	locs := make([]typedform.Location, len(v.Errors))
	for i, e := range v.Errors {
		locs[i] = e
	}
	return locs
}

func (v *Validation) addError(path []any, t Type, message string) {
	v.Errors = append(v.Errors, &Error{
		path:         path,
		ExpectedType: t,
		message:      func() string { return message },
	})
}

func (v *Validation) addLazyError(path []any, t Type, message func() string) {
	v.Errors = append(v.Errors, &Error{
		path:         path,
		ExpectedType: t,
		message:      message,
	})
}

// Check validates value against t.
func Check(t Type, value any) *Validation {
	v := &Validation{Input: value}
	t.check(v, []any{}, value)
	return v
}

// As exposes t as a typed validator over values of type T.
func As[T any](t Type) typedform.TypedValidator[T] {
	return validatorOf[T]{t: t}
}

type validatorOf[T any] struct {
	t Type
}

func (a validatorOf[T]) Validate(value T) typedform.Result {
	return Check(a.t, value)
}

// child returns a fresh path extending parent by seg.
func child(parent []any, seg any) []any {
	out := make([]any, len(parent), len(parent)+1)
	copy(out, parent)
	return append(out, seg)
}
