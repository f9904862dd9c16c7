package types

import "github.com/lyraproj/typeguard/tg"

// UnpackType wraps a tuple whose members are spliced into the positional
// slots of an enclosing Tuple or Callable signature before matching
type UnpackType struct {
	typ *TupleType
}

func NewUnpackType(typ *TupleType) *UnpackType {
	if typ == nil {
		typ = tupleTypeDefault
	}
	return &UnpackType{typ}
}

func (t *UnpackType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
	t.typ.Accept(v, g)
}

func (t *UnpackType) Equals(o interface{}, g *tg.Guard) bool {
	if ot, ok := o.(*UnpackType); ok {
		return t.typ.Equals(ot.typ, g)
	}
	return false
}

func (t *UnpackType) IsInstance(o interface{}, g *tg.Guard) bool {
	return t.typ.IsInstance(o, g)
}

func (t *UnpackType) Name() string {
	return `Unpack`
}

func (t *UnpackType) Tuple() *TupleType {
	return t.typ
}

func (t *UnpackType) Parameters() []tg.Type {
	return []tg.Type{t.typ}
}

func (t *UnpackType) Default() tg.Type {
	return NewUnpackType(nil)
}

func (t *UnpackType) Resolve(c tg.Context) tg.Type {
	t.typ = resolve(c, t.typ).(*TupleType)
	return t
}

func (t *UnpackType) String() string {
	return typeString(t)
}
