package types

import (
	"reflect"

	"github.com/lyraproj/typeguard/tg"
)

// TupleType matches slices and arrays positionally. A trailing Ellipsis
// acts as a variadic placeholder that consumes the remainder. Unpack
// members are spliced into the positional slots at construction time.
type TupleType struct {
	types    []tg.Type
	variadic bool
}

var tupleTypeDefault = &TupleType{types: []tg.Type{}}

func DefaultTupleType() *TupleType {
	return tupleTypeDefault
}

func NewTupleType(ts []tg.Type) *TupleType {
	if len(ts) == 0 {
		return DefaultTupleType()
	}
	flat := make([]tg.Type, 0, len(ts))
	variadic := false
	for i, t := range ts {
		switch t := t.(type) {
		case *UnpackType:
			flat = append(flat, t.typ.types...)
		case *EllipsisType:
			if i != len(ts)-1 {
				panic(tg.NewIllegalArgument(`Tuple[]`, i, `Ellipsis is only allowed in last position`))
			}
			variadic = true
		default:
			flat = append(flat, t)
		}
	}
	return &TupleType{types: flat, variadic: variadic}
}

func (t *TupleType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
	for _, c := range t.types {
		c.Accept(v, g)
	}
}

func (t *TupleType) Default() tg.Type {
	return tupleTypeDefault
}

func (t *TupleType) Equals(o interface{}, g *tg.Guard) bool {
	if ot, ok := o.(*TupleType); ok {
		return t.variadic == ot.variadic && equalTypes(t.types, ot.types, g)
	}
	return false
}

func (t *TupleType) IsInstance(o interface{}, g *tg.Guard) bool {
	if o == nil {
		return false
	}
	rv := reflect.ValueOf(o)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return false
	}
	osz := rv.Len()
	if !t.acceptsSize(osz) {
		return false
	}
	if t == tupleTypeDefault {
		return true
	}
	top := osz
	if len(t.types) < top {
		top = len(t.types)
	}
	for idx := 0; idx < top; idx++ {
		if !GuardedIsInstance(t.types[idx], rv.Index(idx).Interface(), g) {
			return false
		}
	}
	return true
}

// MinSize returns the number of positional slots that a value must fill
func (t *TupleType) MinSize() int {
	return len(t.types)
}

func (t *TupleType) Name() string {
	return `Tuple`
}

func (t *TupleType) Parameters() []tg.Type {
	if t == tupleTypeDefault {
		return []tg.Type{}
	}
	ps := make([]tg.Type, len(t.types), len(t.types)+1)
	copy(ps, t.types)
	if t.variadic {
		ps = append(ps, ellipsisTypeDefault)
	}
	return ps
}

func (t *TupleType) Resolve(c tg.Context) tg.Type {
	t.types = resolveTypes(c, t.types)
	return t
}

func (t *TupleType) String() string {
	return typeString(t)
}

func (t *TupleType) Types() []tg.Type {
	return t.types
}

func (t *TupleType) Variadic() bool {
	return t.variadic
}

func (t *TupleType) acceptsSize(n int) bool {
	if t == tupleTypeDefault || t.variadic {
		return n >= len(t.types)
	}
	return n == len(t.types)
}
