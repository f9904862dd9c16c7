package types

import (
	"reflect"

	"github.com/lyraproj/typeguard/tg"
)

// ArrayType matches slices and arrays whose elements are all instances of
// the element type. The default has an Any element type and accepts any
// element.
type ArrayType struct {
	typ tg.Type
}

var arrayTypeDefault = &ArrayType{typ: anyTypeDefault}

func DefaultArrayType() *ArrayType {
	return arrayTypeDefault
}

func NewArrayType(element tg.Type) *ArrayType {
	if element == nil || element == anyTypeDefault {
		return DefaultArrayType()
	}
	return &ArrayType{element}
}

func (t *ArrayType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
	t.typ.Accept(v, g)
}

func (t *ArrayType) Default() tg.Type {
	return arrayTypeDefault
}

func (t *ArrayType) ElementType() tg.Type {
	return t.typ
}

func (t *ArrayType) Equals(o interface{}, g *tg.Guard) bool {
	if ot, ok := o.(*ArrayType); ok {
		return t.typ.Equals(ot.typ, g)
	}
	return false
}

func (t *ArrayType) IsInstance(o interface{}, g *tg.Guard) bool {
	if o == nil {
		return false
	}
	rv := reflect.ValueOf(o)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return false
	}
	if t.typ == anyTypeDefault {
		return true
	}
	top := rv.Len()
	for idx := 0; idx < top; idx++ {
		if !GuardedIsInstance(t.typ, rv.Index(idx).Interface(), g) {
			return false
		}
	}
	return true
}

func (t *ArrayType) Name() string {
	return `Array`
}

func (t *ArrayType) Parameters() []tg.Type {
	if t.typ == anyTypeDefault {
		return []tg.Type{}
	}
	return []tg.Type{t.typ}
}

func (t *ArrayType) Resolve(c tg.Context) tg.Type {
	t.typ = resolve(c, t.typ)
	return t
}

func (t *ArrayType) String() string {
	return typeString(t)
}
