// Package typed is a small structural type system that reports validation
// failures as path-addressed errors.
//
// Types are composed declaratively and validate decoded documents
// (map[string]any, []any and scalars):
//
//	NonEmpty := typed.Alias("NonEmptyString", typed.String())
//	NonEmpty.AddConstraint(func(v any) string {
//	    if v == "" {
//	        return "must not be empty"
//	    }
//	    return ""
//	})
//
//	User := typed.Object(
//	    typed.Required("username", NonEmpty),
//	    typed.Optional("nickname", NonEmpty),
//	)
//
//	validation := typed.Check(User, value)
//
// Array element failures are located with int index segments. typedform.Convert
// rejects those with an *typedform.InvalidPathSegmentError, so ArrayOf is only
// useful with typedform when its elements cannot fail, or when validation is
// consumed directly through Check.
//
// Recursive types must recurse through an object or array; see Ref.
//
// A *Validation satisfies typedform.Result, so every Type can be used directly
// as a typedform.TypedValidator[any].
package typed
