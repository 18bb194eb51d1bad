package typedform

import "iter"

// Convert turns a validation result into field errors, lazily and in result order.
//
// A location whose path holds a segment other than a string or *Symbol aborts the
// conversion: the sequence yields an *InvalidPathSegmentError and ends.
// A nil result yields nothing.
func Convert(result Result, opts ConvertOptions) iter.Seq2[FieldError, error] {
	return func(yield func(FieldError, error) bool) {
		if result == nil {
			return
		}
		for _, loc := range result.Locations() {
			path, err := checkPath(loc.Path())
			if err != nil {
				yield(FieldError{}, err)
				return
			}

			fe := FieldError{Message: loc.Message()}
			if opts.ReduxFormStyle && loc.AcceptsSomeCompositeTypes() {
				fe.Path = append(path, ReduxFormErrorKey)
			} else {
				fe.Path = path
			}

			if !yield(fe, nil) {
				return
			}
		}
	}
}

// CollectFieldErrors drains seq and returns the field errors seen before the first error.
func CollectFieldErrors(seq iter.Seq2[FieldError, error]) ([]FieldError, error) {
	var out []FieldError
	for fe, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, fe)
	}
	return out, nil
}

// checkPath validates raw and returns a fresh copy with room for one more segment.
func checkPath(raw []any) (Path, error) {
	path := make(Path, len(raw), len(raw)+1)
	for i, seg := range raw {
		switch seg.(type) {
		case string, *Symbol:
			path[i] = seg
		default:
			return nil, &InvalidPathSegmentError{Path: raw, Index: i, Value: seg}
		}
	}
	return path, nil
}
