package typed

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/Azhovan/typedform"
)

// Type describes the accepted shape of a value.
type Type interface {
	// Name is a short human-readable description of the type.
	Name() string

	// AcceptsSomeCompositeTypes reports whether the type admits container values
	// (objects, arrays) whose failures belong to the container rather than a child.
	AcceptsSomeCompositeTypes() bool

	// Validate checks value and returns a *Validation.
	Validate(value any) typedform.Result

	// check records failures for value at path and reports whether none were found.
	check(v *Validation, path []any, value any) bool
}

type primitiveType struct {
	name    string
	article string
	accepts func(value any) bool
}

func (p *primitiveType) Name() string { return p.name }
func (p *primitiveType) AcceptsSomeCompositeTypes() bool { return false }
func (p *primitiveType) Validate(value any) typedform.Result { return Check(p, value) }

func (p *primitiveType) check(v *Validation, path []any, value any) bool {
	if p.accepts(value) {
		return true
	}
	if p.article == "" {
		v.addError(path, p, "must be "+p.name)
	} else {
		v.addError(path, p, "must be "+p.article+" "+p.name)
	}
	return false
}

// String accepts string values.
func String() Type {
	return &primitiveType{name: "string", article: "a", accepts: func(value any) bool {
		_, ok := value.(string)
		return ok
	}}
}

// Number accepts any Go integer or floating-point value.
func Number() Type {
	return &primitiveType{name: "number", article: "a", accepts: isNumber}
}

// Boolean accepts bool values.
func Boolean() Type {
	return &primitiveType{name: "boolean", article: "a", accepts: func(value any) bool {
		_, ok := value.(bool)
		return ok
	}}
}

// Null accepts only nil.
func Null() Type {
	return &primitiveType{name: "null", accepts: func(value any) bool {
		return value == nil
	}}
}

func (p *primitiveType) String() string { return p.name }

func isNumber(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Property is a named member of an object type.
type Property struct {
	Name     string
	Type     Type
	Optional bool
}

// Required declares a property that must be present.
func Required(name string, t Type) Property {
	return Property{Name: name, Type: t}
}

// Optional declares a property that may be absent.
func Optional(name string, t Type) Property {
	return Property{Name: name, Type: t, Optional: true}
}

// ObjectType accepts map[string]any values with the declared properties.
type ObjectType struct {
	props []Property
	exact bool
}

// Object declares an object type. Properties are checked in declaration order.
func Object(props ...Property) *ObjectType {
	return &ObjectType{props: append([]Property(nil), props...)}
}

// Exact returns a copy of o that rejects undeclared properties.
func (o *ObjectType) Exact() *ObjectType {
	return &ObjectType{props: o.props, exact: true}
}

// Properties returns the declared properties in order.
func (o *ObjectType) Properties() []Property {
	return append([]Property(nil), o.props...)
}

func (o *ObjectType) Name() string {
	parts := make([]string, len(o.props))
	for i, p := range o.props {
		sep := ": "
		if p.Optional {
			sep = "?: "
		}
		parts[i] = p.Name + sep + p.Type.Name()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (o *ObjectType) AcceptsSomeCompositeTypes() bool { return true }
func (o *ObjectType) Validate(value any) typedform.Result { return Check(o, value) }

func (o *ObjectType) check(v *Validation, path []any, value any) bool {
	obj, ok := asObject(value)
	if !ok {
		v.addError(path, o, "must be an object")
		return false
	}

	valid := true
	for _, p := range o.props {
		propValue, present := obj[p.Name]
		if !present {
			if !p.Optional {
				v.addError(path, o, "must have property: "+p.Name)
				valid = false
			}
			continue
		}
		if !p.Type.check(v, child(path, p.Name), propValue) {
			valid = false
		}
	}

	if o.exact {
		for _, key := range o.unknownKeys(obj) {
			v.addError(path, o, "must not have property: "+key)
			valid = false
		}
	}

	return valid
}

func (o *ObjectType) unknownKeys(obj map[string]any) []string {
	var unknown []string
	for key := range obj {
		declared := false
		for _, p := range o.props {
			if p.Name == key {
				declared = true
				break
			}
		}
		if !declared {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func asObject(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case map[string]any:
		return m, m != nil
	case map[any]any:
		if m == nil {
			return nil, false
		}
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// ArrayType accepts slices whose elements all satisfy the element type.
type ArrayType struct {
	elem Type
}

// ArrayOf declares an array type.
// Element failures are reported under int index segments. typedform.Convert
// accepts only string and symbol segments, so such a failure surfaces as an
// *typedform.InvalidPathSegmentError rather than a field error.
func ArrayOf(elem Type) *ArrayType {
	return &ArrayType{elem: elem}
}

func (a *ArrayType) Name() string { return "Array<" + a.elem.Name() + ">" }
func (a *ArrayType) AcceptsSomeCompositeTypes() bool { return true }
func (a *ArrayType) Validate(value any) typedform.Result { return Check(a, value) }

func (a *ArrayType) check(v *Validation, path []any, value any) bool {
	rv := reflect.ValueOf(value)
	if value == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || (rv.Kind() == reflect.Slice && rv.IsNil()) {
		v.addError(path, a, "must be an array")
		return false
	}

	valid := true
	for i := 0; i < rv.Len(); i++ {
		if !a.elem.check(v, child(path, i), rv.Index(i).Interface()) {
			valid = false
		}
	}
	return valid
}

// UnionType accepts a value satisfying at least one member.
type UnionType struct {
	members []Type
}

// Union declares a type accepting any of members. It panics without members.
func Union(members ...Type) *UnionType {
	if len(members) == 0 {
		panic("typed: Union needs at least one member")
	}
	return &UnionType{members: append([]Type(nil), members...)}
}

func (u *UnionType) Name() string {
	names := make([]string, len(u.members))
	for i, m := range u.members {
		names[i] = m.Name()
	}
	return strings.Join(names, " | ")
}

func (u *UnionType) AcceptsSomeCompositeTypes() bool {
	for _, m := range u.members {
		if m.AcceptsSomeCompositeTypes() {
			return true
		}
	}
	return false
}

func (u *UnionType) Validate(value any) typedform.Result { return Check(u, value) }

func (u *UnionType) check(v *Validation, path []any, value any) bool {
	for _, m := range u.members {
		if m.check(&Validation{Input: value}, path, value) {
			return true
		}
	}
	v.addLazyError(path, u, func() string {
		return "must be one of: " + u.Name()
	})
	return false
}

// Constraint inspects a value that already satisfies the underlying type.
// It returns a failure message, or "" when the value is acceptable.
type Constraint func(value any) string

// AliasType names an underlying type and refines it with constraints.
type AliasType struct {
	name        string
	underlying  Type
	constraints []Constraint
}

// Alias declares a named type.
func Alias(name string, underlying Type) *AliasType {
	return &AliasType{name: name, underlying: underlying}
}

// AddConstraint appends c. Constraints run in order and only after the
// underlying type accepted the value; the first failure wins.
// Constraints must be added before the alias is used concurrently.
func (a *AliasType) AddConstraint(c Constraint) *AliasType {
	a.constraints = append(a.constraints, c)
	return a
}

func (a *AliasType) Name() string { return a.name }
func (a *AliasType) AcceptsSomeCompositeTypes() bool { return a.underlying.AcceptsSomeCompositeTypes() }
func (a *AliasType) Validate(value any) typedform.Result { return Check(a, value) }

func (a *AliasType) check(v *Validation, path []any, value any) bool {
	if !a.underlying.check(v, path, value) {
		return false
	}
	for _, c := range a.constraints {
		if msg := c(value); msg != "" {
			v.addError(path, a, msg)
			return false
		}
	}
	return true
}

// RefType defers to a type resolved on first use, allowing recursive declarations.
type RefType struct {
	resolve  func() Type
	once     sync.Once
	resolved Type
}

// Ref declares a lazily resolved type.
//
// Recursion must pass through an object or array so each step consumes part of
// the value. A union (or alias) that reaches itself directly through a Ref, such as
// self = Union(Null(), Ref(func() Type { return self })), never terminates.
// Name also follows the Ref, so a recursive type needs an Alias somewhere on the
// cycle to give it a finite name.
func Ref(resolve func() Type) *RefType {
	return &RefType{resolve: resolve}
}

func (r *RefType) target() Type {
	r.once.Do(func() {
		r.resolved = r.resolve()
		if r.resolved == nil {
			panic("typed: Ref resolved to nil")
		}
	})
	return r.resolved
}

func (r *RefType) Name() string { return r.target().Name() }
func (r *RefType) AcceptsSomeCompositeTypes() bool { return r.target().AcceptsSomeCompositeTypes() }
func (r *RefType) Validate(value any) typedform.Result { return Check(r, value) }

func (r *RefType) check(v *Validation, path []any, value any) bool {
	return r.target().check(v, path, value)
}
