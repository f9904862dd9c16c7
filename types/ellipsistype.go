package types

import "github.com/lyraproj/typeguard/tg"

// EllipsisType is the variadic placeholder inside Tuple and Callable
// signatures. It matches anything and consumes the remainder of the
// positional slots.
type EllipsisType struct{}

var ellipsisTypeDefault = &EllipsisType{}

func DefaultEllipsisType() *EllipsisType {
	return ellipsisTypeDefault
}

func (t *EllipsisType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
}

func (t *EllipsisType) Equals(o interface{}, g *tg.Guard) bool {
	_, ok := o.(*EllipsisType)
	return ok
}

func (t *EllipsisType) IsInstance(o interface{}, g *tg.Guard) bool {
	return true
}

func (t *EllipsisType) Name() string {
	return `Ellipsis`
}

func (t *EllipsisType) String() string {
	return typeString(t)
}
