package types

import (
	"reflect"

	"github.com/lyraproj/typeguard/tg"
)

type FloatType struct{}

var floatTypeDefault = &FloatType{}

func DefaultFloatType() *FloatType {
	return floatTypeDefault
}

func (t *FloatType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
}

func (t *FloatType) Equals(o interface{}, g *tg.Guard) bool {
	_, ok := o.(*FloatType)
	return ok
}

func (t *FloatType) IsInstance(o interface{}, g *tg.Guard) bool {
	if o == nil {
		return false
	}
	switch reflect.ValueOf(o).Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func (t *FloatType) Name() string {
	return `Float`
}

func (t *FloatType) String() string {
	return typeString(t)
}
