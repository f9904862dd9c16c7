package types

import (
	"fmt"
	"reflect"

	"github.com/lyraproj/semver/semver"
	"github.com/lyraproj/typeguard/tg"
)

// Infer returns the shallow type of the given runtime value. Containers
// infer to their unparameterized defaults since Infer never descends into
// elements. Used by mismatch reports and by the generic class fallback.
func Infer(value interface{}) tg.Type {
	if isNil(value) {
		return DefaultUndefType()
	}
	if _, ok := value.(semver.Version); ok {
		return DefaultSemVerType()
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return DefaultBooleanType()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return DefaultIntegerType()
	case reflect.Float32, reflect.Float64:
		return DefaultFloatType()
	case reflect.String:
		return DefaultStringType()
	case reflect.Slice, reflect.Array:
		return DefaultArrayType()
	case reflect.Map:
		if isSetValueKind(rv.Type().Elem()) {
			return DefaultSetType()
		}
		return DefaultHashType()
	case reflect.Func:
		return DefaultCallableType()
	case reflect.Chan:
		return DefaultIteratorType()
	default:
		return NewClassType(rv.Type())
	}
}

// Label describes a value the way mismatch reports refer to it, e.g.
// `Integer value 4` or `value of type *main.T`
func Label(value interface{}) string {
	if isNil(value) {
		return `Undef`
	}
	switch t := Infer(value).(type) {
	case *StringType:
		return fmt.Sprintf(`String value '%v'`, value)
	case *BooleanType, *IntegerType, *FloatType:
		return fmt.Sprintf(`%s value %v`, t.Name(), value)
	case *ClassType:
		return fmt.Sprintf(`value of type %T`, value)
	default:
		return fmt.Sprintf(`%s value`, t.Name())
	}
}
