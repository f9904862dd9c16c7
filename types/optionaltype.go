package types

import "github.com/lyraproj/typeguard/tg"

// OptionalType accepts the absent sentinel regardless of the contained
// type and otherwise defers to it
type OptionalType struct {
	typ tg.Type
}

var optionalTypeDefault = &OptionalType{typ: anyTypeDefault}

func DefaultOptionalType() *OptionalType {
	return optionalTypeDefault
}

func NewOptionalType(containedType tg.Type) *OptionalType {
	if containedType == nil || containedType == anyTypeDefault {
		return DefaultOptionalType()
	}
	return &OptionalType{containedType}
}

func (t *OptionalType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
	t.typ.Accept(v, g)
}

func (t *OptionalType) ContainedType() tg.Type {
	return t.typ
}

func (t *OptionalType) Default() tg.Type {
	return optionalTypeDefault
}

func (t *OptionalType) Equals(o interface{}, g *tg.Guard) bool {
	if ot, ok := o.(*OptionalType); ok {
		return t.typ.Equals(ot.typ, g)
	}
	return false
}

func (t *OptionalType) IsInstance(o interface{}, g *tg.Guard) bool {
	return isNil(o) || GuardedIsInstance(t.typ, o, g)
}

func (t *OptionalType) Name() string {
	return `Optional`
}

func (t *OptionalType) Parameters() []tg.Type {
	if t.typ == anyTypeDefault {
		return []tg.Type{}
	}
	return []tg.Type{t.typ}
}

func (t *OptionalType) Resolve(c tg.Context) tg.Type {
	t.typ = resolve(c, t.typ)
	return t
}

func (t *OptionalType) String() string {
	return typeString(t)
}
