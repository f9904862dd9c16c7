package types

import (
	"fmt"
	"reflect"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/typeguard/tg"
)

// Predicate is a user supplied acceptance function
type Predicate func(value interface{}) bool

// ValidatorType accepts a value when the attached predicate returns true.
// A panic raised by the predicate propagates as a TG_VALIDATION_ERROR,
// never as a silent rejection. The each variant applies the predicate to
// every element of an iterable value instead.
type ValidatorType struct {
	name string
	pred Predicate
	each bool
}

func NewValidatorType(name string, pred Predicate) *ValidatorType {
	if pred == nil {
		panic(tg.NewIllegalArgument(`Validator[]`, 1, `predicate must not be nil`))
	}
	if name == `` {
		name = `anonymous`
	}
	return &ValidatorType{name: name, pred: pred}
}

// NewEachValidatorType creates the iterable variant that applies the
// predicate to each element of a slice, array, or map value
func NewEachValidatorType(name string, pred Predicate) *ValidatorType {
	t := NewValidatorType(name, pred)
	t.each = true
	return t
}

func (t *ValidatorType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
}

func (t *ValidatorType) Each() bool {
	return t.each
}

func (t *ValidatorType) Equals(o interface{}, g *tg.Guard) bool {
	if ot, ok := o.(*ValidatorType); ok {
		return t.name == ot.name && t.each == ot.each
	}
	return false
}

func (t *ValidatorType) IsInstance(o interface{}, g *tg.Guard) bool {
	if !t.each {
		return t.apply(o)
	}
	rv := reflect.ValueOf(o)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		top := rv.Len()
		for idx := 0; idx < top; idx++ {
			if !t.apply(rv.Index(idx).Interface()) {
				return false
			}
		}
		return true
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if !t.apply(iter.Value().Interface()) {
				return false
			}
		}
		return true
	}
	return false
}

func (t *ValidatorType) Name() string {
	return `Validator`
}

func (t *ValidatorType) String() string {
	return fmt.Sprintf(`Validator[%s]`, t.name)
}

// ValidatorName returns the name the validator was registered with
func (t *ValidatorType) ValidatorName() string {
	return t.name
}

func (t *ValidatorType) apply(o interface{}) (accepted bool) {
	defer func() {
		if r := recover(); r != nil {
			panic(tg.Error(tg.ValidationError, issue.H{
				`validator`: t.name, `name`: Label(o), `message`: fmt.Sprintf(`%v`, r)}))
		}
	}()
	return t.pred(o)
}
