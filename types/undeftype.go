package types

import "github.com/lyraproj/typeguard/tg"

// UndefType matches the absent sentinel, i.e. an untyped nil or a nil
// value of a nillable kind
type UndefType struct{}

var undefTypeDefault = &UndefType{}

func DefaultUndefType() *UndefType {
	return undefTypeDefault
}

func (t *UndefType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
}

func (t *UndefType) Equals(o interface{}, g *tg.Guard) bool {
	_, ok := o.(*UndefType)
	return ok
}

func (t *UndefType) IsInstance(o interface{}, g *tg.Guard) bool {
	return isNil(o)
}

func (t *UndefType) Name() string {
	return `Undef`
}

func (t *UndefType) String() string {
	return typeString(t)
}
