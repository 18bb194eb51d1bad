package typedform

import "iter"

// ReduxFormErrorKey is the synthetic child key that carries container-level
// errors when ConvertOptions.ReduxFormStyle is enabled.
const ReduxFormErrorKey = "_error"

// Path locates a value inside a nested structure.
// Segments are either a string (property name) or a *Symbol.
type Path []any

// Symbol is an opaque key for structural slots that are not addressed by name.
// Symbols compare by identity, never by description.
type Symbol struct {
	description string
}

// NewSymbol returns a new unique Symbol.
func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

// Description returns the text the symbol was created with.
func (s *Symbol) Description() string {
	if s == nil {
		return ""
	}
	return s.description
}

func (s *Symbol) String() string {
	return "Symbol(" + s.Description() + ")"
}

// FieldError is a single validation failure at a specific structural location.
type FieldError struct {
	Path    Path   `json:"path" yaml:"path"`
	Message string `json:"message" yaml:"message"`
}

// ConvertOptions configures Convert and Adapt.
type ConvertOptions struct {
	// ReduxFormStyle redirects errors of composite types to path + "_error".
	ReduxFormStyle bool
}

// Location is one erroring location reported by a structural validator.
type Location interface {
	// Path returns the raw path. Segments other than string or *Symbol are rejected by Convert.
	Path() []any

	// Message returns the human-readable message. It may be computed on demand.
	Message() string

	// AcceptsSomeCompositeTypes reports whether the declared type at this
	// location admits more than one underlying representation.
	AcceptsSomeCompositeTypes() bool
}

// Result is the outcome of validating a value. Locations are returned in report order.
type Result interface {
	Locations() []Location
}

// TypedValidator is a validation source backed by a type description.
type TypedValidator[T any] interface {
	Validate(value T) Result
}

// PredicateFunc is a validation source backed by a plain function.
// It returns nil when the value is valid.
type PredicateFunc[T any] func(value T) Result

// FieldErrorFunc produces the field errors for a value.
// A non-nil error element ends the sequence and signals a contract violation.
type FieldErrorFunc[T any] func(value T) iter.Seq2[FieldError, error]

type sourceKind int

const (
	sourceUnset sourceKind = iota
	sourceTyped
	sourcePredicate
)

// Source is either a TypedValidator or a PredicateFunc.
// Build one with FromType or FromFunc.
type Source[T any] struct {
	kind      sourceKind
	typed     TypedValidator[T]
	predicate PredicateFunc[T]
}

// FromType wraps a typed validator.
func FromType[T any](v TypedValidator[T]) Source[T] {
	return Source[T]{kind: sourceTyped, typed: v}
}

// FromFunc wraps a predicate function.
func FromFunc[T any](fn PredicateFunc[T]) Source[T] {
	return Source[T]{kind: sourcePredicate, predicate: fn}
}

// validate runs the source against value.
func (s Source[T]) validate(value T) Result {
	switch s.kind {
	case sourceTyped:
		return s.typed.Validate(value)
	case sourcePredicate:
		return s.predicate(value)
	default:
		panic("typedform: zero Source; use FromType or FromFunc")
	}
}

func (s Source[T]) valid() bool {
	switch s.kind {
	case sourceTyped:
		return s.typed != nil
	case sourcePredicate:
		return s.predicate != nil
	default:
		return false
	}
}
