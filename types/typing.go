// Package types contains one implementation file per type expression shape.
// Each shape is a struct implementing tg.Type with a guarded IsInstance that
// performs a shallow structural comparison against the reflective metadata
// of a plain Go value.
package types

import (
	"bytes"
	"math"
	"reflect"
	"sort"

	"github.com/lyraproj/typeguard/tg"
)

// coreTypes maps a shape tag to the unparameterized default of that shape.
// The map doubles as the registry of names that a bare type reference may
// resolve to without consulting an ancestry context.
var coreTypes map[string]tg.Type

// supportedNames is the closed set of shape tags that the dispatcher
// recognizes. Shapes that have no sensible default, such as Literal or
// Validator, are present here but not in coreTypes.
var supportedNames map[string]bool

func init() {
	coreTypes = map[string]tg.Type{
		`Any`:       anyTypeDefault,
		`Undef`:     undefTypeDefault,
		`Boolean`:   booleanTypeDefault,
		`Integer`:   integerTypeDefault,
		`Float`:     floatTypeDefault,
		`String`:    stringTypeDefault,
		`Array`:     arrayTypeDefault,
		`Hash`:      hashTypeDefault,
		`Set`:       setTypeDefault,
		`Tuple`:     tupleTypeDefault,
		`Variant`:   variantTypeDefault,
		`Optional`:  optionalTypeDefault,
		`Struct`:    structTypeDefault,
		`Callable`:  callableTypeDefault,
		`Iterator`:  iteratorTypeDefault,
		`Generator`: generatorTypeDefault,
		`Ellipsis`:  ellipsisTypeDefault,
		`Pattern`:   patternTypeDefault,
		`SemVer`:    semVerTypeDefault,
	}
	supportedNames = make(map[string]bool, len(coreTypes)+6)
	for n := range coreTypes {
		supportedNames[n] = true
	}
	for _, n := range []string{`Literal`, `Class`, `Validator`, `Protocol`, `Unpack`, `Reference`} {
		supportedNames[n] = true
	}
}

// Core returns the default instance of the shape with the given tag
func Core(name string) (tg.Type, bool) {
	t, ok := coreTypes[name]
	return t, ok
}

// IsSupported answers if the given shape tag is a member of the supported
// typings registry
func IsSupported(name string) bool {
	return supportedNames[name]
}

// Supported returns the sorted registry of supported shape tags
func Supported() []string {
	names := make([]string, 0, len(supportedNames))
	for n := range supportedNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsInstance answers if value is an instance of the given type
func IsInstance(t tg.Type, value interface{}) bool {
	return GuardedIsInstance(t, value, nil)
}

// GuardedIsInstance dispatches to the type's IsInstance. A non nil guard
// counts the nesting level so that a self referential type graph hits the
// guard's depth limit instead of recursing without bound.
func GuardedIsInstance(t tg.Type, value interface{}, g *tg.Guard) bool {
	if g != nil {
		g.Descend(t)
		defer g.Ascend()
	}
	return t.IsInstance(value, g)
}

// Resolve resolves all named references in the given type against the
// context and returns the resolved type. A nil context resolves against
// the core types only.
func Resolve(t tg.Type, c tg.Context) tg.Type {
	if rt, ok := t.(tg.ResolvableType); ok {
		return rt.Resolve(c)
	}
	return t
}

func resolve(c tg.Context, t tg.Type) tg.Type {
	if rt, ok := t.(tg.ResolvableType); ok {
		return rt.Resolve(c)
	}
	return t
}

func resolveTypes(c tg.Context, ts []tg.Type) []tg.Type {
	rts := make([]tg.Type, len(ts))
	for i, t := range ts {
		rts[i] = resolve(c, t)
	}
	return rts
}

// UniqueTypes returns the given types with duplicates removed. Order is
// retained and the first occurrence wins.
func UniqueTypes(ts []tg.Type) []tg.Type {
	top := len(ts)
	if top < 2 {
		return ts
	}
	result := make([]tg.Type, 0, top)
	exists := make(map[string]bool, top)
	for _, t := range ts {
		key := t.String()
		if !exists[key] {
			exists[key] = true
			result = append(result, t)
		}
	}
	return result
}

func equalTypes(a, b []tg.Type, g *tg.Guard) bool {
	if len(a) != len(b) {
		return false
	}
	for i, t := range a {
		if !t.Equals(b[i], g) {
			return false
		}
	}
	return true
}

// equalValues compares literal constants by equality when the operands are
// comparable and falls back to a deep structural comparison otherwise.
// Numbers compare by magnitude regardless of kind, so a parsed literal
// holding an int64 matches a plain int value. Integer kinds compare
// without loss of precision.
func equalValues(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	ac, aNum := numberClassOf(av.Kind())
	bc, bNum := numberClassOf(bv.Kind())
	if aNum || bNum {
		return aNum && bNum && numbersEqual(av, ac, bv, bc)
	}
	if av.Type().Comparable() && bv.Type().Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

type numberClass int

const (
	signedNumber numberClass = iota
	unsignedNumber
	floatNumber
)

func numberClassOf(k reflect.Kind) (numberClass, bool) {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedNumber, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedNumber, true
	case reflect.Float32, reflect.Float64:
		return floatNumber, true
	}
	return 0, false
}

func numbersEqual(a reflect.Value, ac numberClass, b reflect.Value, bc numberClass) bool {
	if ac == floatNumber && bc != floatNumber {
		return floatEqualsInteger(a.Float(), b, bc)
	}
	if bc == floatNumber && ac != floatNumber {
		return floatEqualsInteger(b.Float(), a, ac)
	}
	switch {
	case ac == signedNumber && bc == signedNumber:
		return a.Int() == b.Int()
	case ac == unsignedNumber && bc == unsignedNumber:
		return a.Uint() == b.Uint()
	case ac == signedNumber:
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	case bc == signedNumber:
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	}
	return a.Float() == b.Float()
}

// floatEqualsInteger holds only when the float is integral and within the
// exact range of the integer kind. The float converts to the integer kind,
// never the other way around, since that conversion is lossless.
func floatEqualsInteger(f float64, i reflect.Value, c numberClass) bool {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return false
	}
	if c == unsignedNumber {
		return f >= 0 && f < 1<<64 && uint64(f) == i.Uint()
	}
	return f >= -(1<<63) && f < 1<<63 && int64(f) == i.Int()
}

// IsNil answers if the value is the absent sentinel, i.e. an untyped nil
// or a nil of a nillable kind
func IsNil(value interface{}) bool {
	return isNil(value)
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// refIdentity keys a guard visit for a kind whose interface value cannot
// be used as a map key directly
type refIdentity struct {
	kind reflect.Kind
	ptr  uintptr
}

// guardKey derives a comparable identity for a value so that a reference
// that is revisited with the same value during one check is assumed to
// conform. Pointers, channels and scalars key by their own value, maps,
// slices and funcs by their referent. Kinds without a cheap comparable
// identity report false and are left to the guard's depth limit.
func guardKey(value interface{}) (interface{}, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Chan, reflect.UnsafePointer,
		reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return value, true
	case reflect.Map, reflect.Slice, reflect.Func:
		return refIdentity{rv.Kind(), rv.Pointer()}, true
	}
	return nil, false
}

// typeString renders the canonical form of a type, i.e. the shape tag
// followed by its bracketed parameters unless the type is a default
func typeString(t tg.Type) string {
	pt, ok := t.(tg.ParameterizedType)
	if !ok {
		return t.Name()
	}
	params := pt.Parameters()
	if len(params) == 0 {
		return t.Name()
	}
	b := bytes.NewBufferString(t.Name())
	b.WriteByte('[')
	for i, p := range params {
		if i > 0 {
			b.WriteString(`, `)
		}
		b.WriteString(p.String())
	}
	b.WriteByte(']')
	return b.String()
}
