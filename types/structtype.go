package types

import (
	"bytes"
	"reflect"
	"unicode"

	"github.com/lyraproj/typeguard/hash"
	"github.com/lyraproj/typeguard/tg"
)

type (
	// StructElement is one named field of a record schema
	StructElement struct {
		name     string
		typ      tg.Type
		optional bool
	}

	// StructType is the typed record shape: a fixed schema of named
	// required and optional fields, validated against string keyed maps
	// and against Go structs. When total is true no keys beyond the
	// declared schema are permitted.
	StructType struct {
		elements []*StructElement
		index    *hash.StringHash
		total    bool
	}
)

var structTypeDefault = &StructType{elements: []*StructElement{}, index: hash.NewStringHash(0)}

func DefaultStructType() *StructType {
	return structTypeDefault
}

func NewStructElement(name string, typ tg.Type) *StructElement {
	if name == `` {
		panic(tg.NewIllegalArgument(`StructElement`, 0, `element name must not be empty`))
	}
	if typ == nil {
		typ = anyTypeDefault
	}
	_, optional := typ.(*OptionalType)
	return &StructElement{name, typ, optional}
}

// NewOptionalStructElement creates an element that may be omitted from the
// record even when its value type does not accept the absent sentinel
func NewOptionalStructElement(name string, typ tg.Type) *StructElement {
	e := NewStructElement(name, typ)
	e.optional = true
	return e
}

func NewStructType(elements []*StructElement, total bool) *StructType {
	if len(elements) == 0 && !total {
		return DefaultStructType()
	}
	index := hash.NewStringHash(len(elements))
	for i, e := range elements {
		if index.Put(e.name, e) != nil {
			panic(tg.NewIllegalArgument(`Struct[]`, i, `duplicate element name '`+e.name+`'`))
		}
	}
	return &StructType{elements, index, total}
}

func (e *StructElement) Accept(v tg.Visitor, g *tg.Guard) {
	e.typ.Accept(v, g)
}

func (e *StructElement) Equals(o interface{}, g *tg.Guard) bool {
	if oe, ok := o.(*StructElement); ok {
		return e.name == oe.name && e.optional == oe.optional && e.typ.Equals(oe.typ, g)
	}
	return false
}

func (e *StructElement) Name() string {
	return e.name
}

func (e *StructElement) Optional() bool {
	return e.optional
}

func (e *StructElement) Type() tg.Type {
	return e.typ
}

func (t *StructType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
	t.index.EachPair(func(_ string, e interface{}) {
		e.(*StructElement).Accept(v, g)
	})
}

func (t *StructType) Default() tg.Type {
	return structTypeDefault
}

// Element returns the named element of the schema
func (t *StructType) Element(name string) (*StructElement, bool) {
	if e, ok := t.index.Get(name); ok {
		return e.(*StructElement), true
	}
	return nil, false
}

func (t *StructType) Elements() []*StructElement {
	return t.elements
}

func (t *StructType) Equals(o interface{}, g *tg.Guard) bool {
	ot, ok := o.(*StructType)
	if !ok || t.total != ot.total || t.index.Len() != ot.index.Len() {
		return false
	}
	for i, e := range t.elements {
		if !e.Equals(ot.elements[i], g) {
			return false
		}
	}
	return true
}

func (t *StructType) IsInstance(o interface{}, g *tg.Guard) bool {
	if o == nil {
		return false
	}
	rv := reflect.ValueOf(o)
	switch rv.Kind() {
	case reflect.Map:
		return t.isMapInstance(rv, g)
	case reflect.Ptr:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return false
		}
		return t.isStructInstance(rv.Elem(), g)
	case reflect.Struct:
		return t.isStructInstance(rv, g)
	}
	return false
}

func (t *StructType) Name() string {
	return `Struct`
}

func (t *StructType) Parameters() []tg.Type {
	ps := make([]tg.Type, len(t.elements))
	for i, e := range t.elements {
		ps[i] = e.typ
	}
	return ps
}

func (t *StructType) Resolve(c tg.Context) tg.Type {
	for _, e := range t.elements {
		e.typ = resolve(c, e.typ)
	}
	return t
}

func (t *StructType) String() string {
	if t == structTypeDefault {
		return t.Name()
	}
	b := bytes.NewBufferString(`Struct[{`)
	for i, e := range t.elements {
		if i > 0 {
			b.WriteString(`, `)
		}
		if e.optional {
			b.WriteString(`Optional[`)
			b.WriteString(e.name)
			b.WriteByte(']')
		} else {
			b.WriteString(e.name)
		}
		b.WriteString(` => `)
		b.WriteString(e.typ.String())
	}
	b.WriteByte('}')
	if t.total {
		b.WriteString(`, true`)
	}
	b.WriteByte(']')
	return b.String()
}

// Total answers if keys beyond the declared schema are rejected
func (t *StructType) Total() bool {
	return t.total
}

// WithTotal returns a copy of this type with the extra key policy replaced
func (t *StructType) WithTotal(total bool) *StructType {
	if total == t.total {
		return t
	}
	return &StructType{t.elements, t.index, total}
}

func (t *StructType) isMapInstance(rv reflect.Value, g *tg.Guard) bool {
	if kk := rv.Type().Key().Kind(); kk != reflect.String && kk != reflect.Interface {
		return false
	}
	if !t.index.AllPair(func(name string, v interface{}) bool {
		e := v.(*StructElement)
		ev := rv.MapIndex(reflect.ValueOf(name))
		if !ev.IsValid() {
			return e.optional
		}
		return GuardedIsInstance(e.typ, ev.Interface(), g)
	}) {
		return false
	}
	if t.total {
		iter := rv.MapRange()
		for iter.Next() {
			k, ok := iter.Key().Interface().(string)
			if !ok || !t.index.Includes(k) {
				return false
			}
		}
	}
	return true
}

func (t *StructType) isStructInstance(rv reflect.Value, g *tg.Guard) bool {
	st := rv.Type()
	for _, e := range t.elements {
		f, ok := FieldFor(st, e.name)
		if !ok {
			if !e.optional {
				return false
			}
			continue
		}
		if !GuardedIsInstance(e.typ, rv.FieldByIndex(f.Index).Interface(), g) {
			return false
		}
	}
	if t.total {
		for i := 0; i < st.NumField(); i++ {
			f := st.Field(i)
			if f.PkgPath != `` {
				continue
			}
			if !t.Declares(f.Name) {
				return false
			}
		}
	}
	return true
}

// FieldFor finds the exported field that a schema element name maps to.
// An element name maps to the field with the same name or, following Go
// export rules, to the field with the first rune upper cased.
func FieldFor(st reflect.Type, name string) (reflect.StructField, bool) {
	if f, ok := st.FieldByName(name); ok && f.PkgPath == `` {
		return f, true
	}
	if name != `` {
		if f, ok := st.FieldByName(firstTo(unicode.ToUpper, name)); ok && f.PkgPath == `` {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

// Declares answers if a field with the given name maps to an element of
// the schema, either verbatim or with the first rune lower cased
func (t *StructType) Declares(fieldName string) bool {
	return t.index.Includes(fieldName) || t.index.Includes(firstTo(unicode.ToLower, fieldName))
}

func firstTo(c func(rune) rune, s string) string {
	r := []rune(s)
	r[0] = c(r[0])
	return string(r)
}
