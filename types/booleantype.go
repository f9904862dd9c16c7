package types

import (
	"reflect"

	"github.com/lyraproj/typeguard/tg"
)

type BooleanType struct{}

var booleanTypeDefault = &BooleanType{}

func DefaultBooleanType() *BooleanType {
	return booleanTypeDefault
}

func (t *BooleanType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
}

func (t *BooleanType) Equals(o interface{}, g *tg.Guard) bool {
	_, ok := o.(*BooleanType)
	return ok
}

func (t *BooleanType) IsInstance(o interface{}, g *tg.Guard) bool {
	return o != nil && reflect.ValueOf(o).Kind() == reflect.Bool
}

func (t *BooleanType) Name() string {
	return `Boolean`
}

func (t *BooleanType) String() string {
	return typeString(t)
}
