package types

import (
	"reflect"

	"github.com/lyraproj/typeguard/tg"
)

// Iterator is the capability that a value may expose to be accepted by
// the Iterator shape without being a channel or an indexable container
type Iterator interface {
	Next() (interface{}, bool)
}

var iteratorInterface = reflect.TypeOf((*Iterator)(nil)).Elem()

// IteratorType matches values that can be asked for a next element: a
// receivable channel, a slice, an array, a map, or an Iterator. The check
// never consumes the value, so the element type is only verified against
// replayable containers, and only when eager checking is requested.
type IteratorType struct {
	typ tg.Type
}

var iteratorTypeDefault = &IteratorType{typ: anyTypeDefault}

func DefaultIteratorType() *IteratorType {
	return iteratorTypeDefault
}

func NewIteratorType(element tg.Type) *IteratorType {
	if element == nil || element == anyTypeDefault {
		return DefaultIteratorType()
	}
	return &IteratorType{element}
}

func (t *IteratorType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
	t.typ.Accept(v, g)
}

func (t *IteratorType) Default() tg.Type {
	return iteratorTypeDefault
}

// EachInstance verifies the element type against a replayable value. Non
// replayable values succeed vacuously since verifying them would consume
// them.
func (t *IteratorType) EachInstance(o interface{}, g *tg.Guard) bool {
	if t.typ == anyTypeDefault || o == nil {
		return true
	}
	rv := reflect.ValueOf(o)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		top := rv.Len()
		for idx := 0; idx < top; idx++ {
			if !GuardedIsInstance(t.typ, rv.Index(idx).Interface(), g) {
				return false
			}
		}
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if !GuardedIsInstance(t.typ, iter.Value().Interface(), g) {
				return false
			}
		}
	}
	return true
}

func (t *IteratorType) ElementType() tg.Type {
	return t.typ
}

func (t *IteratorType) Equals(o interface{}, g *tg.Guard) bool {
	if ot, ok := o.(*IteratorType); ok {
		return t.typ.Equals(ot.typ, g)
	}
	return false
}

func (t *IteratorType) IsInstance(o interface{}, g *tg.Guard) bool {
	if o == nil {
		return false
	}
	if _, ok := o.(Iterator); ok {
		return true
	}
	rv := reflect.ValueOf(o)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	case reflect.Chan:
		return rv.Type().ChanDir() != reflect.SendDir
	}
	return false
}

func (t *IteratorType) Name() string {
	return `Iterator`
}

func (t *IteratorType) Parameters() []tg.Type {
	if t.typ == anyTypeDefault {
		return []tg.Type{}
	}
	return []tg.Type{t.typ}
}

func (t *IteratorType) Resolve(c tg.Context) tg.Type {
	t.typ = resolve(c, t.typ)
	return t
}

func (t *IteratorType) String() string {
	return typeString(t)
}
