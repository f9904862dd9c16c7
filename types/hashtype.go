package types

import (
	"reflect"

	"github.com/lyraproj/typeguard/tg"
)

// HashType matches maps where every key is an instance of the key type and
// every value an instance of the value type
type HashType struct {
	keyType   tg.Type
	valueType tg.Type
}

var hashTypeDefault = &HashType{keyType: anyTypeDefault, valueType: anyTypeDefault}

func DefaultHashType() *HashType {
	return hashTypeDefault
}

func NewHashType(keyType, valueType tg.Type) *HashType {
	if keyType == nil {
		keyType = anyTypeDefault
	}
	if valueType == nil {
		valueType = anyTypeDefault
	}
	if keyType == anyTypeDefault && valueType == anyTypeDefault {
		return DefaultHashType()
	}
	return &HashType{keyType, valueType}
}

func (t *HashType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
	t.keyType.Accept(v, g)
	t.valueType.Accept(v, g)
}

func (t *HashType) Default() tg.Type {
	return hashTypeDefault
}

func (t *HashType) Equals(o interface{}, g *tg.Guard) bool {
	if ot, ok := o.(*HashType); ok {
		return t.keyType.Equals(ot.keyType, g) && t.valueType.Equals(ot.valueType, g)
	}
	return false
}

func (t *HashType) IsInstance(o interface{}, g *tg.Guard) bool {
	if o == nil {
		return false
	}
	rv := reflect.ValueOf(o)
	if rv.Kind() != reflect.Map {
		return false
	}
	if t == hashTypeDefault {
		return true
	}
	iter := rv.MapRange()
	for iter.Next() {
		if !GuardedIsInstance(t.keyType, iter.Key().Interface(), g) {
			return false
		}
		if !GuardedIsInstance(t.valueType, iter.Value().Interface(), g) {
			return false
		}
	}
	return true
}

func (t *HashType) KeyType() tg.Type {
	return t.keyType
}

func (t *HashType) Name() string {
	return `Hash`
}

func (t *HashType) Parameters() []tg.Type {
	if t == hashTypeDefault {
		return []tg.Type{}
	}
	return []tg.Type{t.keyType, t.valueType}
}

func (t *HashType) Resolve(c tg.Context) tg.Type {
	t.keyType = resolve(c, t.keyType)
	t.valueType = resolve(c, t.valueType)
	return t
}

func (t *HashType) String() string {
	return typeString(t)
}

func (t *HashType) ValueType() tg.Type {
	return t.valueType
}
