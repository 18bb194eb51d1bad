package typedform

import "iter"

// Adapt composes a validation source with Convert.
// The returned function holds no mutable state and may be called concurrently.
// Adapt panics if src was not built with FromType or FromFunc.
func Adapt[T any](src Source[T], opts ConvertOptions) FieldErrorFunc[T] {
	if !src.valid() {
		panic("typedform: Adapt called with an empty Source")
	}
	return func(value T) iter.Seq2[FieldError, error] {
		return func(yield func(FieldError, error) bool) {
			result := src.validate(value)
			if result == nil {
				return
			}
			for fe, err := range Convert(result, opts) {
				if !yield(fe, err) {
					return
				}
			}
		}
	}
}
