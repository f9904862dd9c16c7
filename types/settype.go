package types

import (
	"reflect"

	"github.com/lyraproj/typeguard/tg"
)

// SetType matches the Go rendering of a set, i.e. a map with struct{} or
// bool values, where every key is an instance of the element type
type SetType struct {
	typ tg.Type
}

var setTypeDefault = &SetType{typ: anyTypeDefault}

var emptyStructType = reflect.TypeOf(struct{}{})

func DefaultSetType() *SetType {
	return setTypeDefault
}

func NewSetType(element tg.Type) *SetType {
	if element == nil || element == anyTypeDefault {
		return DefaultSetType()
	}
	return &SetType{element}
}

func isSetValueKind(rt reflect.Type) bool {
	return rt == emptyStructType || rt.Kind() == reflect.Bool
}

func (t *SetType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
	t.typ.Accept(v, g)
}

func (t *SetType) Default() tg.Type {
	return setTypeDefault
}

func (t *SetType) ElementType() tg.Type {
	return t.typ
}

func (t *SetType) Equals(o interface{}, g *tg.Guard) bool {
	if ot, ok := o.(*SetType); ok {
		return t.typ.Equals(ot.typ, g)
	}
	return false
}

func (t *SetType) IsInstance(o interface{}, g *tg.Guard) bool {
	if o == nil {
		return false
	}
	rv := reflect.ValueOf(o)
	if rv.Kind() != reflect.Map || !isSetValueKind(rv.Type().Elem()) {
		return false
	}
	if t.typ == anyTypeDefault {
		return true
	}
	iter := rv.MapRange()
	for iter.Next() {
		if !GuardedIsInstance(t.typ, iter.Key().Interface(), g) {
			return false
		}
	}
	return true
}

func (t *SetType) Name() string {
	return `Set`
}

func (t *SetType) Parameters() []tg.Type {
	if t.typ == anyTypeDefault {
		return []tg.Type{}
	}
	return []tg.Type{t.typ}
}

func (t *SetType) Resolve(c tg.Context) tg.Type {
	t.typ = resolve(c, t.typ)
	return t
}

func (t *SetType) String() string {
	return typeString(t)
}
