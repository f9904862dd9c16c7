package types

import "github.com/lyraproj/typeguard/tg"

// VariantType is the union shape. A value is an instance when it is an
// instance of at least one of the alternatives.
type VariantType struct {
	types []tg.Type
}

var variantTypeDefault = &VariantType{types: []tg.Type{}}

func DefaultVariantType() *VariantType {
	return variantTypeDefault
}

// NewVariantType returns the default for no alternatives, the alternative
// itself for exactly one, and a deduplicated union otherwise
func NewVariantType(ts ...tg.Type) tg.Type {
	switch len(ts) {
	case 0:
		return DefaultVariantType()
	case 1:
		return ts[0]
	default:
		ts = UniqueTypes(ts)
		if len(ts) == 1 {
			return ts[0]
		}
		return &VariantType{ts}
	}
}

func (t *VariantType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
	for _, c := range t.types {
		c.Accept(v, g)
	}
}

func (t *VariantType) Default() tg.Type {
	return variantTypeDefault
}

func (t *VariantType) Equals(o interface{}, g *tg.Guard) bool {
	if ot, ok := o.(*VariantType); ok {
		return equalTypes(t.types, ot.types, g)
	}
	return false
}

func (t *VariantType) IsInstance(o interface{}, g *tg.Guard) bool {
	for _, v := range t.types {
		if GuardedIsInstance(v, o, g) {
			return true
		}
	}
	return false
}

func (t *VariantType) Name() string {
	return `Variant`
}

func (t *VariantType) Parameters() []tg.Type {
	if len(t.types) == 0 {
		return []tg.Type{}
	}
	ps := make([]tg.Type, len(t.types))
	copy(ps, t.types)
	return ps
}

func (t *VariantType) Resolve(c tg.Context) tg.Type {
	t.types = resolveTypes(c, t.types)
	return t
}

func (t *VariantType) String() string {
	return typeString(t)
}

func (t *VariantType) Types() []tg.Type {
	return t.types
}
