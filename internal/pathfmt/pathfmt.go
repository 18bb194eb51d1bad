// Package pathfmt renders structural error paths for display.
package pathfmt

import (
	"fmt"
	"strings"
)

// Root is the display form of an empty path.
const Root = "<root>"

// Segment renders a single path segment.
// Strings are returned unchanged, fmt.Stringer values (symbols) are bracketed.
func Segment(seg any) string {
	switch s := seg.(type) {
	case string:
		return s
	case fmt.Stringer:
		return "[" + s.String() + "]"
	default:
		return fmt.Sprint(seg)
	}
}

// Segments renders every segment of path.
func Segments(path []any) []string {
	out := make([]string, len(path))
	for i, seg := range path {
		out[i] = Segment(seg)
	}
	return out
}

// Dotted joins a path into a dot-separated string.
// Examples:
//   - ["address", "line1"] → "address.line1"
//   - ["tags", Symbol(id)] → "tags[Symbol(id)]"
//   - [] → "<root>"
func Dotted(path []any) string {
	if len(path) == 0 {
		return Root
	}
	var out string
	for _, seg := range path {
		out = ApplyPrefix(out, seg)
	}
	return out
}

// ApplyPrefix appends a rendered segment to prefix.
// Bracketed segments attach directly, names are dot-separated.
// Examples:
//   - ApplyPrefix("address", "line1") → "address.line1"
//   - ApplyPrefix("", "line1") → "line1"
func ApplyPrefix(prefix string, seg any) string {
	key := Segment(seg)
	if prefix == "" {
		return key
	}
	if strings.HasPrefix(key, "[") {
		return prefix + key
	}
	return prefix + "." + key
}
