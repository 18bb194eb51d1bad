package typed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type located struct {
	path    []any
	message string
	compose bool
}

func flatten(v *Validation) []located {
	out := make([]located, len(v.Errors))
	for i, e := range v.Errors {
		out[i] = located{path: e.Path(), message: e.Message(), compose: e.AcceptsSomeCompositeTypes()}
	}
	return out
}

func TestPrimitives(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		value   any
		wantMsg string
	}{
		{"string accepts string", String(), "x", ""},
		{"string rejects int", String(), 1, "must be a string"},
		{"number accepts int", Number(), 3, ""},
		{"number accepts int64", Number(), int64(3), ""},
		{"number accepts float64", Number(), 1.5, ""},
		{"number rejects string", Number(), "3", "must be a number"},
		{"number rejects nil", Number(), nil, "must be a number"},
		{"boolean accepts bool", Boolean(), true, ""},
		{"boolean rejects string", Boolean(), "true", "must be a boolean"},
		{"null accepts nil", Null(), nil, ""},
		{"null rejects string", Null(), "", "must be null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Check(tt.typ, tt.value)
			if tt.wantMsg == "" {
				assert.False(t, v.HasErrors())
				return
			}
			require.Len(t, v.Errors, 1)
			assert.Equal(t, tt.wantMsg, v.Errors[0].Message())
			assert.Equal(t, []any{}, v.Errors[0].Path())
			assert.False(t, v.Errors[0].AcceptsSomeCompositeTypes())
		})
	}
}

func TestObject_DeclarationOrder(t *testing.T) {
	obj := Object(
		Required("a", String()),
		Required("b", String()),
		Required("c", String()),
		Optional("d", String()),
	)

	v := Check(obj, map[string]any{"a": 1, "c": 2})

	assert.Equal(t, []located{
		{path: []any{"a"}, message: "must be a string"},
		{path: []any{}, message: "must have property: b", compose: true},
		{path: []any{"c"}, message: "must be a string"},
	}, flatten(v))
}

func TestObject_NotAnObject(t *testing.T) {
	obj := Object(Required("a", String()))

	for _, value := range []any{nil, "x", 1, []any{}, map[string]any(nil)} {
		v := Check(obj, value)
		require.Len(t, v.Errors, 1, "value %v", value)
		assert.Equal(t, "must be an object", v.Errors[0].Message())
		assert.True(t, v.Errors[0].AcceptsSomeCompositeTypes())
	}
}

func TestObject_Exact(t *testing.T) {
	obj := Object(Required("a", String())).Exact()

	v := Check(obj, map[string]any{"a": "x", "z": 1, "b": 2})

	assert.Equal(t, []located{
		{path: []any{}, message: "must not have property: b", compose: true},
		{path: []any{}, message: "must not have property: z", compose: true},
	}, flatten(v))
}

func TestObject_AcceptsMapAnyAny(t *testing.T) {
	obj := Object(Required("a", String()))
	v := Check(obj, map[any]any{"a": "x"})
	assert.False(t, v.HasErrors())
}

func TestArrayOf_IndexSegments(t *testing.T) {
	arr := ArrayOf(String())

	v := Check(arr, []any{"ok", 2, "ok", false})

	assert.Equal(t, []located{
		{path: []any{1}, message: "must be a string"},
		{path: []any{3}, message: "must be a string"},
	}, flatten(v))

	v = Check(arr, []string{"a", "b"})
	assert.False(t, v.HasErrors())

	v = Check(arr, "nope")
	require.Len(t, v.Errors, 1)
	assert.Equal(t, "must be an array", v.Errors[0].Message())
	assert.True(t, v.Errors[0].AcceptsSomeCompositeTypes())
}

func TestUnion(t *testing.T) {
	u := Union(String(), Number())
	assert.False(t, u.AcceptsSomeCompositeTypes())
	assert.Equal(t, "string | number", u.Name())

	assert.False(t, Check(u, "x").HasErrors())
	assert.False(t, Check(u, 2).HasErrors())

	v := Check(u, true)
	require.Len(t, v.Errors, 1)
	assert.Equal(t, "must be one of: string | number", v.Errors[0].Message())

	withObject := Union(Null(), Object(Required("a", String())))
	assert.True(t, withObject.AcceptsSomeCompositeTypes())
}

func TestAlias_Constraints(t *testing.T) {
	nonEmpty := Alias("NonEmptyString", String()).
		AddConstraint(func(value any) string {
			if value == "" {
				return "must not be empty"
			}
			return ""
		}).
		AddConstraint(func(value any) string {
			if value == "" {
				return "unreachable"
			}
			return ""
		})

	assert.Equal(t, "NonEmptyString", nonEmpty.Name())
	assert.False(t, nonEmpty.AcceptsSomeCompositeTypes())
	assert.False(t, Check(nonEmpty, "x").HasErrors())

	v := Check(nonEmpty, "")
	require.Len(t, v.Errors, 1)
	assert.Equal(t, "must not be empty", v.Errors[0].Message())
	assert.Same(t, nonEmpty, v.Errors[0].ExpectedType)

	// constraints never run on values the underlying type rejected
	v = Check(nonEmpty, 5)
	require.Len(t, v.Errors, 1)
	assert.Equal(t, "must be a string", v.Errors[0].Message())
}

func TestAlias_DelegatesCompositeFlag(t *testing.T) {
	a := Alias("Address", Object(Required("line1", String())))
	assert.True(t, a.AcceptsSomeCompositeTypes())
}

func TestRef_Recursive(t *testing.T) {
	var Node *AliasType
	Node = Alias("Node", Object(
		Required("name", String()),
		Optional("children", ArrayOf(Ref(func() Type { return Node }))),
	))

	v := Check(Node, map[string]any{
		"name": "root",
		"children": []any{
			map[string]any{"name": "a"},
			map[string]any{"name": 7},
		},
	})

	assert.Equal(t, []located{
		{path: []any{"children", 1, "name"}, message: "must be a string"},
	}, flatten(v))
	assert.Equal(t, "Node", Ref(func() Type { return Node }).Name())
}

func TestRef_NilPanics(t *testing.T) {
	r := Ref(func() Type { return nil })
	assert.Panics(t, func() { Check(r, "x") })
}

func TestPathsAreNotShared(t *testing.T) {
	obj := Object(
		Required("a", Object(Required("x", String()), Required("y", String()))),
	)

	v := Check(obj, map[string]any{"a": map[string]any{"x": 1, "y": 2}})
	require.Len(t, v.Errors, 2)

	first := v.Errors[0].Path()
	first[0] = "mutated"
	assert.Equal(t, []any{"a", "y"}, v.Errors[1].Path())
}

func TestAs(t *testing.T) {
	validator := As[map[string]any](Object(Required("a", String())))

	result := validator.Validate(map[string]any{})
	require.NotNil(t, result)
	locs := result.Locations()
	require.Len(t, locs, 1)
	assert.Equal(t, "must have property: a", locs[0].Message())
}

func TestLazyMessage(t *testing.T) {
	calls := 0
	v := &Validation{}
	v.addLazyError([]any{"a"}, String(), func() string {
		calls++
		return "computed"
	})

	assert.Equal(t, 0, calls)
	assert.Equal(t, "computed", v.Errors[0].Message())
	assert.Equal(t, 1, calls)
	assert.Equal(t, "a: computed", v.Errors[0].String())
}

func TestNilValidation(t *testing.T) {
	var v *Validation

	assert.False(t, v.HasErrors())
	assert.Empty(t, v.Locations())
}

func TestUnion_NoMembersPanics(t *testing.T) {
	assert.Panics(t, func() { Union() })
}

func TestUnion_RecursiveThroughObject(t *testing.T) {
	var List *AliasType
	List = Alias("List", Union(Null(), Object(
		Required("value", Number()),
		Required("next", Ref(func() Type { return List })),
	)))

	assert.True(t, List.AcceptsSomeCompositeTypes())
	assert.False(t, Check(List, map[string]any{
		"value": 1,
		"next":  map[string]any{"value": 2, "next": nil},
	}).HasErrors())

	v := Check(List, map[string]any{"value": 1, "next": "x"})
	require.Len(t, v.Errors, 1)
	assert.Equal(t, []any{}, v.Errors[0].Path())
	assert.Equal(t, "must be one of: null | { value: number, next: List }", v.Errors[0].Message())
}
