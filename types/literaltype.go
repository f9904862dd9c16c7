package types

import (
	"bytes"
	"fmt"

	"github.com/lyraproj/typeguard/tg"
)

// LiteralType matches a value that is equal to one of the enumerated
// constants. Matching is by equality, never by structural subtyping, and
// does not recurse.
type LiteralType struct {
	values []interface{}
}

func NewLiteralType(values ...interface{}) *LiteralType {
	if len(values) == 0 {
		panic(tg.NewIllegalArgumentCount(`Literal[]`, `at least 1`, 0))
	}
	return &LiteralType{values}
}

func (t *LiteralType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
}

func (t *LiteralType) Equals(o interface{}, g *tg.Guard) bool {
	ot, ok := o.(*LiteralType)
	if !ok || len(t.values) != len(ot.values) {
		return false
	}
	for i, v := range t.values {
		if !equalValues(v, ot.values[i]) {
			return false
		}
	}
	return true
}

func (t *LiteralType) IsInstance(o interface{}, g *tg.Guard) bool {
	for _, v := range t.values {
		if equalValues(v, o) {
			return true
		}
	}
	return false
}

func (t *LiteralType) Name() string {
	return `Literal`
}

func (t *LiteralType) String() string {
	b := bytes.NewBufferString(`Literal[`)
	for i, v := range t.values {
		if i > 0 {
			b.WriteString(`, `)
		}
		if s, ok := v.(string); ok {
			fmt.Fprintf(b, `'%s'`, s)
		} else {
			fmt.Fprintf(b, `%v`, v)
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (t *LiteralType) Values() []interface{} {
	return t.values
}
