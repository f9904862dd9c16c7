package types

import "github.com/lyraproj/typeguard/tg"

// AnyType matches every value including the absent sentinel
type AnyType struct{}

var anyTypeDefault = &AnyType{}

func DefaultAnyType() *AnyType {
	return anyTypeDefault
}

func (t *AnyType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
}

func (t *AnyType) Equals(o interface{}, g *tg.Guard) bool {
	_, ok := o.(*AnyType)
	return ok
}

func (t *AnyType) IsInstance(o interface{}, g *tg.Guard) bool {
	return true
}

func (t *AnyType) Name() string {
	return `Any`
}

func (t *AnyType) String() string {
	return typeString(t)
}
