package types

import (
	"fmt"
	"reflect"

	"github.com/lyraproj/typeguard/tg"
)

// ClassType is the nominal shape: a value is an instance when its runtime
// type is assignable to the declared Go type
type ClassType struct {
	rt reflect.Type
}

func NewClassType(rt reflect.Type) *ClassType {
	if rt == nil {
		panic(tg.NewIllegalArgument(`Class[]`, 0, `reflect.Type must not be nil`))
	}
	return &ClassType{rt}
}

// NewClassTypeOf infers the class from an example value
func NewClassTypeOf(example interface{}) *ClassType {
	if example == nil {
		panic(tg.NewIllegalArgument(`Class[]`, 0, `example value must not be nil`))
	}
	return &ClassType{reflect.TypeOf(example)}
}

func (t *ClassType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
}

func (t *ClassType) Equals(o interface{}, g *tg.Guard) bool {
	if ot, ok := o.(*ClassType); ok {
		return t.rt == ot.rt
	}
	return false
}

func (t *ClassType) IsInstance(o interface{}, g *tg.Guard) bool {
	if o == nil {
		return false
	}
	ot := reflect.TypeOf(o)
	if t.rt.Kind() == reflect.Interface {
		return ot.Implements(t.rt)
	}
	return ot.AssignableTo(t.rt)
}

func (t *ClassType) Name() string {
	return `Class`
}

func (t *ClassType) ReflectType() reflect.Type {
	return t.rt
}

func (t *ClassType) String() string {
	return fmt.Sprintf(`Class[%s]`, t.rt.String())
}
