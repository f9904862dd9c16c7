package types

import (
	"reflect"

	"github.com/lyraproj/typeguard/tg"
)

// GeneratorType matches lazily produced sequences: a receivable channel,
// a pull function of the form func() (element, bool), or an Iterator.
// Element types are never verified since doing so would consume the
// generator.
type GeneratorType struct {
	typ tg.Type
}

var generatorTypeDefault = &GeneratorType{typ: anyTypeDefault}

var boolType = reflect.TypeOf(true)

func DefaultGeneratorType() *GeneratorType {
	return generatorTypeDefault
}

func NewGeneratorType(element tg.Type) *GeneratorType {
	if element == nil || element == anyTypeDefault {
		return DefaultGeneratorType()
	}
	return &GeneratorType{element}
}

func (t *GeneratorType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
	t.typ.Accept(v, g)
}

func (t *GeneratorType) Default() tg.Type {
	return generatorTypeDefault
}

func (t *GeneratorType) ElementType() tg.Type {
	return t.typ
}

func (t *GeneratorType) Equals(o interface{}, g *tg.Guard) bool {
	if ot, ok := o.(*GeneratorType); ok {
		return t.typ.Equals(ot.typ, g)
	}
	return false
}

func (t *GeneratorType) IsInstance(o interface{}, g *tg.Guard) bool {
	if o == nil {
		return false
	}
	if _, ok := o.(Iterator); ok {
		return true
	}
	rt := reflect.TypeOf(o)
	switch rt.Kind() {
	case reflect.Chan:
		return rt.ChanDir() != reflect.SendDir
	case reflect.Func:
		return rt.NumIn() == 0 && rt.NumOut() == 2 && rt.Out(1) == boolType
	}
	return false
}

func (t *GeneratorType) Name() string {
	return `Generator`
}

func (t *GeneratorType) Parameters() []tg.Type {
	if t.typ == anyTypeDefault {
		return []tg.Type{}
	}
	return []tg.Type{t.typ}
}

func (t *GeneratorType) Resolve(c tg.Context) tg.Type {
	t.typ = resolve(c, t.typ)
	return t
}

func (t *GeneratorType) String() string {
	return typeString(t)
}
