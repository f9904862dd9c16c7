package types

import (
	"bytes"
	"reflect"

	"github.com/lyraproj/typeguard/tg"
	"github.com/lyraproj/typeguard/utils"
)

// ProtocolType is the duck typed shape: a value conforms when it exposes
// every capability in the set, regardless of its declared class. A
// capability is the name of a method in the value's method set or of an
// exported field on a struct value.
type ProtocolType struct {
	name string
	caps []string
}

func NewProtocolType(name string, capabilities ...string) *ProtocolType {
	// an empty capability set would match any value
	if len(capabilities) == 0 {
		panic(tg.NewIllegalArgumentCount(`Protocol[]`, `at least 1 capability`, 0))
	}
	for i, c := range capabilities {
		if c == `` {
			panic(tg.NewIllegalArgument(`Protocol[]`, i+1, `capability name must not be empty`))
		}
	}
	return &ProtocolType{name, capabilities}
}

func (t *ProtocolType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
}

func (t *ProtocolType) Capabilities() []string {
	return t.caps
}

func (t *ProtocolType) Equals(o interface{}, g *tg.Guard) bool {
	if ot, ok := o.(*ProtocolType); ok {
		return t.name == ot.name && len(t.caps) == len(ot.caps) && utils.ContainsAllStrings(t.caps, ot.caps)
	}
	return false
}

func (t *ProtocolType) IsInstance(o interface{}, g *tg.Guard) bool {
	if o == nil {
		return false
	}
	rv := reflect.ValueOf(o)
	return utils.AllStrings(t.caps, func(c string) bool {
		return hasCapability(rv, c)
	})
}

func (t *ProtocolType) Name() string {
	return `Protocol`
}

func (t *ProtocolType) ProtocolName() string {
	return t.name
}

func (t *ProtocolType) String() string {
	b := bytes.NewBufferString(`Protocol[`)
	b.WriteString(t.name)
	for _, c := range t.caps {
		b.WriteString(`, `)
		b.WriteString(c)
	}
	b.WriteByte(']')
	return b.String()
}

func hasCapability(rv reflect.Value, name string) bool {
	if rv.MethodByName(name).IsValid() {
		return true
	}
	sv := rv
	if sv.Kind() == reflect.Ptr {
		if sv.IsNil() {
			return false
		}
		sv = sv.Elem()
	}
	if sv.Kind() == reflect.Struct {
		if f, ok := sv.Type().FieldByName(name); ok {
			return f.PkgPath == ``
		}
	}
	return false
}
