// Package typedform converts the errors of a structural type validator into
// flat, path-addressed field errors for form validation.
//
// Quick Start:
//
//	validate := typedform.Validator(
//	    typedform.FromType[any](UserType),
//	    typedform.ConvertOptions{ReduxFormStyle: true},
//	)
//
//	if err := validate(value); err != nil {
//	    var ve *typedform.ValidationError
//	    if errors.As(err, &ve) {
//	        // ve.FieldErrors: [{Path: [address _error], Message: "must be an object"}]
//	    }
//	}
//
// Convert and Adapt are the building blocks: Convert lazily turns a Result into
// field errors, Adapt binds a TypedValidator or PredicateFunc to Convert.
// With ReduxFormStyle, errors of composite types (objects, arrays, unions that
// contain them) are moved to a synthetic "_error" child of their path.
//
// See example_test.go and the typed and document packages for complete usage.
package typedform
