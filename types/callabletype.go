package types

import (
	"reflect"

	"github.com/lyraproj/typeguard/tg"
)

// CallableType matches invocable values. Signature matching is advisory:
// the parameter tuple constrains the arity, and a declared return type
// requires at least one result. Exact parameter and return types of a Go
// func are not mapped back onto type expressions.
type CallableType struct {
	params *TupleType
	ret    tg.Type
}

var callableTypeDefault = &CallableType{}

func DefaultCallableType() *CallableType {
	return callableTypeDefault
}

func NewCallableType(params *TupleType, ret tg.Type) *CallableType {
	if params == nil && ret == nil {
		return DefaultCallableType()
	}
	return &CallableType{params, ret}
}

func (t *CallableType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
	if t.params != nil {
		t.params.Accept(v, g)
	}
	if t.ret != nil {
		t.ret.Accept(v, g)
	}
}

func (t *CallableType) Default() tg.Type {
	return callableTypeDefault
}

func (t *CallableType) Equals(o interface{}, g *tg.Guard) bool {
	ot, ok := o.(*CallableType)
	if !ok {
		return false
	}
	if t.params == nil || ot.params == nil {
		if t.params != ot.params {
			return false
		}
	} else if !t.params.Equals(ot.params, g) {
		return false
	}
	if t.ret == nil || ot.ret == nil {
		return t.ret == ot.ret
	}
	return t.ret.Equals(ot.ret, g)
}

func (t *CallableType) IsInstance(o interface{}, g *tg.Guard) bool {
	if o == nil {
		return false
	}
	rt := reflect.TypeOf(o)
	if rt.Kind() != reflect.Func {
		return false
	}
	if t.params != nil {
		n := rt.NumIn()
		if rt.IsVariadic() {
			// A variadic func accepts anything at or above its fixed arity
			if t.params.MinSize() < n-1 && !t.params.Variadic() {
				return false
			}
		} else if !t.params.acceptsSize(n) {
			return false
		}
	}
	if t.ret != nil && t.ret != anyTypeDefault {
		if _, ok := t.ret.(*UndefType); !ok && rt.NumOut() == 0 {
			return false
		}
	}
	return true
}

func (t *CallableType) Name() string {
	return `Callable`
}

func (t *CallableType) Parameters() []tg.Type {
	ps := []tg.Type{}
	if t.params != nil && t.params != tupleTypeDefault {
		ps = append(ps, t.params)
	}
	if t.ret != nil {
		ps = append(ps, t.ret)
	}
	return ps
}

func (t *CallableType) ParamsType() *TupleType {
	return t.params
}

func (t *CallableType) Resolve(c tg.Context) tg.Type {
	if t.params != nil {
		t.params = resolve(c, t.params).(*TupleType)
	}
	if t.ret != nil {
		t.ret = resolve(c, t.ret)
	}
	return t
}

func (t *CallableType) ReturnType() tg.Type {
	return t.ret
}

func (t *CallableType) String() string {
	return typeString(t)
}
