package check

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/typeguard/tg"
	"github.com/lyraproj/typeguard/types"
)

type pathElement struct {
	key  string
	kind string
}

// mismatch is the innermost failing comparison found by the describer:
// the path leading to the offending part, what was expected there, and
// what was actually found
type mismatch struct {
	path     []*pathElement
	expected string
	actual   string
}

type describer struct {
	maxDepth int
	eager    bool
}

// describe walks the value alongside the type to find the innermost
// failing comparison and renders it as a TG_TYPE_MISMATCH report
func describe(value interface{}, t tg.Type, o *options) issue.Reported {
	d := &describer{maxDepth: o.maxDepth, eager: o.eager}
	m := d.descend(value, t, nil, 0)
	if m == nil {
		m = &mismatch{expected: t.String(), actual: types.Label(value)}
	}
	return tg.Error(tg.TypeMismatch, issue.H{
		`name`:     subject(o.name, m.path),
		`expected`: m.expected,
		`actual`:   m.actual})
}

// subject renders the left hand side of a mismatch report, e.g.
// "argument 'person', entry 'age'"
func subject(name string, path []*pathElement) string {
	b := bytes.NewBufferString(``)
	if name == `` {
		b.WriteString(`value`)
	} else {
		fmt.Fprintf(b, `argument '%s'`, name)
	}
	for _, p := range path {
		fmt.Fprintf(b, `, %s %s`, p.kind, p.key)
	}
	return b.String()
}

func supportedList() string {
	return strings.Join(types.Supported(), `, `)
}

func pushed(path []*pathElement, key, kind string) []*pathElement {
	np := make([]*pathElement, len(path), len(path)+1)
	copy(np, path)
	return append(np, &pathElement{key, kind})
}

func quoted(k interface{}) string {
	if s, ok := k.(string); ok {
		return `'` + s + `'`
	}
	return fmt.Sprintf(`%v`, k)
}

// descend returns nil when the value conforms to the type and the
// innermost mismatch otherwise. The depth grows with every container
// level and with every reference hop, so a self referential declaration
// that keeps failing deeper and deeper hits the ceiling instead of
// looping.
func (d *describer) descend(v interface{}, t tg.Type, path []*pathElement, depth int) *mismatch {
	if depth > d.maxDepth {
		panic(tg.Error(tg.RecursionLimit, issue.H{`max`: d.maxDepth, `type`: t.String()}))
	}
	if rt, ok := t.(*types.ReferenceType); ok {
		if target := rt.ResolvedType(); target != nil {
			return d.descend(v, target, path, depth+1)
		}
		panic(tg.Error(tg.UnresolvedType, issue.H{`name`: rt.Name()}))
	}

	fail := func() *mismatch {
		return &mismatch{path, t.String(), types.Label(v)}
	}

	switch t := t.(type) {
	case *types.OptionalType:
		if types.IsNil(v) {
			return nil
		}
		return d.descend(v, t.ContainedType(), path, depth)
	case *types.ArrayType:
		rv, ok := indexable(v)
		if !ok {
			return fail()
		}
		return d.descendElements(rv, t.ElementType(), path, depth)
	case *types.TupleType:
		rv, ok := indexable(v)
		if !ok {
			return fail()
		}
		ts := t.Types()
		n := rv.Len()
		if t.Variadic() || t == types.DefaultTupleType() {
			if n < t.MinSize() {
				return fail()
			}
		} else if n != t.MinSize() {
			return fail()
		}
		for i := 0; i < n && i < len(ts); i++ {
			ev := rv.Index(i).Interface()
			if m := d.descend(ev, ts[i], pushed(path, strconv.Itoa(i), `index`), depth+1); m != nil {
				return m
			}
		}
		return nil
	case *types.HashType:
		rv := reflect.ValueOf(v)
		if types.IsNil(v) || rv.Kind() != reflect.Map {
			return fail()
		}
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().Interface()
			if !types.IsInstance(t.KeyType(), k) {
				return d.descend(k, t.KeyType(), pushed(path, quoted(k), `key of entry`), depth+1)
			}
			ev := iter.Value().Interface()
			if m := d.descend(ev, t.ValueType(), pushed(path, quoted(k), `entry`), depth+1); m != nil {
				return m
			}
		}
		return nil
	case *types.SetType:
		if !types.IsInstance(t, v) {
			if types.IsNil(v) || reflect.ValueOf(v).Kind() != reflect.Map {
				return fail()
			}
			iter := reflect.ValueOf(v).MapRange()
			for iter.Next() {
				k := iter.Key().Interface()
				if !types.IsInstance(t.ElementType(), k) {
					return d.descend(k, t.ElementType(), pushed(path, quoted(k), `entry`), depth+1)
				}
			}
			return fail()
		}
		return nil
	case *types.StructType:
		return d.descendStruct(v, t, path, depth)
	case *types.IteratorType:
		if !types.IsInstance(t, v) {
			return fail()
		}
		if d.eager {
			if rv, ok := indexable(v); ok {
				return d.descendElements(rv, t.ElementType(), path, depth)
			}
			rv := reflect.ValueOf(v)
			if rv.Kind() == reflect.Map {
				iter := rv.MapRange()
				for iter.Next() {
					ev := iter.Value().Interface()
					k := iter.Key().Interface()
					if m := d.descend(ev, t.ElementType(), pushed(path, quoted(k), `entry`), depth+1); m != nil {
						return m
					}
				}
			}
		}
		return nil
	default:
		if types.IsInstance(t, v) {
			return nil
		}
		return fail()
	}
}

func (d *describer) descendElements(rv reflect.Value, et tg.Type, path []*pathElement, depth int) *mismatch {
	top := rv.Len()
	for i := 0; i < top; i++ {
		ev := rv.Index(i).Interface()
		if m := d.descend(ev, et, pushed(path, strconv.Itoa(i), `index`), depth+1); m != nil {
			return m
		}
	}
	return nil
}

func (d *describer) descendStruct(v interface{}, t *types.StructType, path []*pathElement, depth int) *mismatch {
	if types.IsNil(v) {
		return &mismatch{path, t.String(), types.Label(v)}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return d.descendStructMap(rv, t, path, depth)
	case reflect.Ptr:
		if rv.Elem().Kind() == reflect.Struct {
			return d.descendStructFields(rv.Elem(), t, path, depth)
		}
	case reflect.Struct:
		return d.descendStructFields(rv, t, path, depth)
	}
	return &mismatch{path, t.String(), types.Label(v)}
}

func (d *describer) descendStructMap(rv reflect.Value, t *types.StructType, path []*pathElement, depth int) *mismatch {
	if kk := rv.Type().Key().Kind(); kk != reflect.String && kk != reflect.Interface {
		return &mismatch{path, t.String(), types.Label(rv.Interface())}
	}
	for _, e := range t.Elements() {
		ev := rv.MapIndex(reflect.ValueOf(e.Name()))
		if !ev.IsValid() {
			if e.Optional() {
				continue
			}
			return &mismatch{pushed(path, quoted(e.Name()), `entry`), e.Type().String(), `no entry`}
		}
		if m := d.descend(ev.Interface(), e.Type(), pushed(path, quoted(e.Name()), `entry`), depth+1); m != nil {
			return m
		}
	}
	if t.Total() {
		iter := rv.MapRange()
		for iter.Next() {
			k, ok := iter.Key().Interface().(string)
			if !ok {
				return &mismatch{pushed(path, quoted(iter.Key().Interface()), `key of entry`), `String`,
					types.Label(iter.Key().Interface())}
			}
			if _, declared := t.Element(k); !declared {
				return &mismatch{pushed(path, quoted(k), `entry`), `no entry beyond the declared schema`,
					types.Label(iter.Value().Interface())}
			}
		}
	}
	return nil
}

func (d *describer) descendStructFields(rv reflect.Value, t *types.StructType, path []*pathElement, depth int) *mismatch {
	st := rv.Type()
	for _, e := range t.Elements() {
		f, ok := types.FieldFor(st, e.Name())
		if !ok {
			if e.Optional() {
				continue
			}
			return &mismatch{pushed(path, quoted(e.Name()), `entry`), e.Type().String(), `no field`}
		}
		fv := rv.FieldByIndex(f.Index).Interface()
		if m := d.descend(fv, e.Type(), pushed(path, quoted(e.Name()), `entry`), depth+1); m != nil {
			return m
		}
	}
	if t.Total() {
		for i := 0; i < st.NumField(); i++ {
			f := st.Field(i)
			if f.PkgPath != `` {
				continue
			}
			if !t.Declares(f.Name) {
				return &mismatch{pushed(path, quoted(f.Name), `entry`), `no field beyond the declared schema`,
					types.Label(rv.Field(i).Interface())}
			}
		}
	}
	return nil
}

func indexable(v interface{}) (reflect.Value, bool) {
	if types.IsNil(v) {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	}
	return reflect.Value{}, false
}
