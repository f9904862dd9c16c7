package types

import (
	"strings"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/typeguard/tg"
)

// ReferenceType is a named reference to another type. The name is looked
// up through the ancestry context, falling back to the core types, which
// makes self-referential record declarations possible. A reference to a
// cyclic type graph is broken by the guard: a value/reference pair that is
// already being checked is assumed to conform, and a value without a
// comparable identity is bounded by the guard's depth limit.
type ReferenceType struct {
	name     string
	resolved tg.Type
}

func NewReferenceType(name string) *ReferenceType {
	if name == `` {
		panic(tg.NewIllegalArgument(`Reference[]`, 0, `type name must not be empty`))
	}
	return &ReferenceType{name: name}
}

func (t *ReferenceType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
}

func (t *ReferenceType) Equals(o interface{}, g *tg.Guard) bool {
	if ot, ok := o.(*ReferenceType); ok {
		return t.name == ot.name
	}
	return false
}

func (t *ReferenceType) IsInstance(o interface{}, g *tg.Guard) bool {
	rt := t.resolved
	if rt == nil {
		rt = t.lookup(nil)
	}
	if g == nil {
		g = tg.NewGuard(0)
	}
	if k, ok := guardKey(o); ok && g.Seen(t, k) {
		return true
	}
	return GuardedIsInstance(rt, o, g)
}

func (t *ReferenceType) Name() string {
	return t.name
}

// Resolve looks the reference up in the given context and memoizes the
// result. Resolution does not descend into the target, so mutually
// recursive declarations terminate.
func (t *ReferenceType) Resolve(c tg.Context) tg.Type {
	if t.resolved == nil {
		t.resolved = t.lookup(c)
	}
	return t
}

// ResolvedType returns the target of the reference, or nil when the
// reference has not been resolved yet
func (t *ReferenceType) ResolvedType() tg.Type {
	return t.resolved
}

func (t *ReferenceType) String() string {
	return t.name
}

func (t *ReferenceType) lookup(c tg.Context) tg.Type {
	if c != nil {
		if rt, ok := c.Lookup(t.name); ok {
			t.resolved = rt
			return rt
		}
	}
	if rt, ok := Core(t.name); ok {
		t.resolved = rt
		return rt
	}
	panic(tg.Error(tg.UndefinedType, issue.H{
		`name`: t.name, `supported`: strings.Join(Supported(), `, `)}))
}
