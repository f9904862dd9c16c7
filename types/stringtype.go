package types

import (
	"reflect"

	"github.com/lyraproj/typeguard/tg"
)

type StringType struct{}

var stringTypeDefault = &StringType{}

func DefaultStringType() *StringType {
	return stringTypeDefault
}

func (t *StringType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
}

func (t *StringType) Equals(o interface{}, g *tg.Guard) bool {
	_, ok := o.(*StringType)
	return ok
}

func (t *StringType) IsInstance(o interface{}, g *tg.Guard) bool {
	return o != nil && reflect.ValueOf(o).Kind() == reflect.String
}

func (t *StringType) Name() string {
	return `String`
}

func (t *StringType) String() string {
	return typeString(t)
}
