package types

import (
	"reflect"

	"github.com/lyraproj/typeguard/tg"
)

// IntegerType matches every integer kind regardless of width or sign
type IntegerType struct{}

var integerTypeDefault = &IntegerType{}

func DefaultIntegerType() *IntegerType {
	return integerTypeDefault
}

func (t *IntegerType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
}

func (t *IntegerType) Equals(o interface{}, g *tg.Guard) bool {
	_, ok := o.(*IntegerType)
	return ok
}

func (t *IntegerType) IsInstance(o interface{}, g *tg.Guard) bool {
	if o == nil {
		return false
	}
	switch reflect.ValueOf(o).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func (t *IntegerType) Name() string {
	return `Integer`
}

func (t *IntegerType) String() string {
	return typeString(t)
}
