package types

import (
	"fmt"
	"strconv"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/typeguard/tg"
	"github.com/lyraproj/typeguard/utils"
)

// Parse creates a type from its string form, e.g.
//
//	List[Integer]
//	Hash[String, Variant[Integer, String]]
//	Struct[{name => String, Optional[age] => Integer}]
//	Struct[{id => Integer}, true]
//	Enum[red, green, blue]
//	Tuple[String, Integer, ...]
//	Callable[Tuple[String], Boolean]
//	Pattern[/^[a-z]+$/]
//	SemVer['>=1.0.0 <2.0.0']
//
// List, Dict, Map, Union, Record, None, and Nil are accepted aliases for
// Array, Hash, Variant, Struct, and Undef. A name that is not a core type
// becomes a named reference that resolves through an ancestry context.
// The returned error is an issue.Reported with the code TG_PARSE_ERROR.
func Parse(s string) (t tg.Type, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ri, ok := r.(issue.Reported); ok {
				t = nil
				err = ri
				return
			}
			panic(r)
		}
	}()

	tokens := make([]token, 0, 16)
	serr := scan(utils.NewStringReader(s), func(tk token) error {
		tokens = append(tokens, tk)
		return nil
	})
	if serr != nil {
		return nil, tg.Error(tg.ParseError, issue.H{`message`: serr.Error()})
	}
	p := &typeParser{tokens: tokens}
	t = p.parseType()
	p.expect(end)
	return
}

// MustParse is like Parse but panics on failure
func MustParse(s string) tg.Type {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

var aliases = map[string]string{
	`List`:   `Array`,
	`Dict`:   `Hash`,
	`Map`:    `Hash`,
	`Union`:  `Variant`,
	`Record`: `Struct`,
	`None`:   `Undef`,
	`Nil`:    `Undef`,
}

type typeParser struct {
	tokens []token
	pos    int
}

// param is one bracketed parameter: a type, a literal value, or a record
// schema
type param struct {
	typ     tg.Type
	value   interface{}
	schema  []*StructElement
	isValue bool
}

func (p *typeParser) error(msg string) {
	panic(tg.Error(tg.ParseError, issue.H{`message`: msg}))
}

func (p *typeParser) next() token {
	t := p.tokens[p.pos]
	if t.i != end {
		p.pos++
	}
	return t
}

func (p *typeParser) peek() token {
	return p.tokens[p.pos]
}

func (p *typeParser) expect(tt tokenType) token {
	t := p.next()
	if t.i != tt {
		p.error(fmt.Sprintf(`expected %s, got %s`, tt, t))
	}
	return t
}

func (p *typeParser) parseType() tg.Type {
	t := p.next()
	switch t.i {
	case name:
		if p.peek().i == leftBracket {
			p.next()
			params := p.parseParams()
			return makeType(t.s, params)
		}
		return makeBare(t.s)
	case ellipsis:
		return DefaultEllipsisType()
	case regexpLiteral:
		return NewPatternType2(t.s)
	default:
		p.error(fmt.Sprintf(`expected a type name, got %s`, t))
	}
	return nil
}

// parseParams parses everything between a '[' and the matching ']'
func (p *typeParser) parseParams() []*param {
	params := []*param{}
	if p.peek().i == rightBracket {
		p.next()
		return params
	}
	for {
		params = append(params, p.parseParam())
		t := p.next()
		if t.i == rightBracket {
			return params
		}
		if t.i != comma {
			p.error(fmt.Sprintf(`expected one of ',' or ']', got %s`, t))
		}
	}
}

func (p *typeParser) parseParam() *param {
	t := p.peek()
	switch t.i {
	case name, ellipsis, regexpLiteral:
		return &param{typ: p.parseType()}
	case leftCurlyBrace:
		p.next()
		return &param{schema: p.parseSchema()}
	case identifier:
		p.next()
		switch t.s {
		case `true`:
			return &param{value: true, isValue: true}
		case `false`:
			return &param{value: false, isValue: true}
		default:
			return &param{value: t.s, isValue: true}
		}
	case stringLiteral:
		p.next()
		return &param{value: t.s, isValue: true}
	case integer:
		p.next()
		i, err := strconv.ParseInt(t.s, 10, 64)
		if err != nil {
			p.error(err.Error())
		}
		return &param{value: i, isValue: true}
	case float:
		p.next()
		f, err := strconv.ParseFloat(t.s, 64)
		if err != nil {
			p.error(err.Error())
		}
		return &param{value: f, isValue: true}
	default:
		p.error(fmt.Sprintf(`expected a parameter, got %s`, t))
	}
	return nil
}

// parseSchema parses the entries of a record schema up to and including
// the closing curly brace. A key is an identifier, a quoted string, or
// Optional[key] for a field that may be omitted.
func (p *typeParser) parseSchema() []*StructElement {
	elements := []*StructElement{}
	if p.peek().i == rightCurlyBrace {
		p.next()
		return elements
	}
	for {
		optional := false
		t := p.next()
		if t.i == name && t.s == `Optional` {
			p.expect(leftBracket)
			t = p.next()
			p.expect(rightBracket)
			optional = true
		}
		if t.i != identifier && t.i != stringLiteral {
			p.error(fmt.Sprintf(`expected an element key, got %s`, t))
		}
		key := t.s
		p.expect(rocket)
		et := p.parseType()
		if optional {
			elements = append(elements, NewOptionalStructElement(key, et))
		} else {
			elements = append(elements, NewStructElement(key, et))
		}
		t = p.next()
		if t.i == rightCurlyBrace {
			return elements
		}
		if t.i != comma {
			p.error(fmt.Sprintf(`expected one of ',' or '}', got %s`, t))
		}
	}
}

func canonicalName(n string) string {
	if a, ok := aliases[n]; ok {
		return a
	}
	return n
}

func makeBare(n string) tg.Type {
	cn := canonicalName(n)
	if t, ok := Core(cn); ok {
		return t
	}
	return NewReferenceType(cn)
}

func typeParams(n string, params []*param) []tg.Type {
	ts := make([]tg.Type, len(params))
	for i, pr := range params {
		if pr.typ == nil {
			panic(tg.NewIllegalArgumentType(n+`[]`, i, `Type`, pr.value))
		}
		ts[i] = pr.typ
	}
	return ts
}

func makeType(n string, params []*param) tg.Type {
	cn := canonicalName(n)
	argc := len(params)
	switch cn {
	case `Array`:
		switch argc {
		case 0:
			return DefaultArrayType()
		case 1:
			return NewArrayType(typeParams(cn, params)[0])
		}
		panic(tg.NewIllegalArgumentCount(cn+`[]`, `0 - 1`, argc))
	case `Set`:
		switch argc {
		case 0:
			return DefaultSetType()
		case 1:
			return NewSetType(typeParams(cn, params)[0])
		}
		panic(tg.NewIllegalArgumentCount(cn+`[]`, `0 - 1`, argc))
	case `Iterator`:
		switch argc {
		case 0:
			return DefaultIteratorType()
		case 1:
			return NewIteratorType(typeParams(cn, params)[0])
		}
		panic(tg.NewIllegalArgumentCount(cn+`[]`, `0 - 1`, argc))
	case `Generator`:
		switch argc {
		case 0:
			return DefaultGeneratorType()
		case 1:
			return NewGeneratorType(typeParams(cn, params)[0])
		}
		panic(tg.NewIllegalArgumentCount(cn+`[]`, `0 - 1`, argc))
	case `Hash`:
		switch argc {
		case 0:
			return DefaultHashType()
		case 2:
			ts := typeParams(cn, params)
			return NewHashType(ts[0], ts[1])
		}
		panic(tg.NewIllegalArgumentCount(cn+`[]`, `0 or 2`, argc))
	case `Tuple`:
		return NewTupleType(typeParams(cn, params))
	case `Variant`:
		if argc == 0 {
			panic(tg.NewIllegalArgumentCount(cn+`[]`, `at least 1`, 0))
		}
		return NewVariantType(typeParams(cn, params)...)
	case `Optional`:
		if argc != 1 {
			panic(tg.NewIllegalArgumentCount(cn+`[]`, `1`, argc))
		}
		return NewOptionalType(typeParams(cn, params)[0])
	case `Unpack`:
		if argc == 1 && params[0].typ != nil {
			if tt, ok := params[0].typ.(*TupleType); ok {
				return NewUnpackType(tt)
			}
		}
		panic(tg.NewIllegalArgument(cn+`[]`, 0, `expected a single Tuple parameter`))
	case `Literal`:
		if argc == 0 {
			panic(tg.NewIllegalArgumentCount(cn+`[]`, `at least 1`, 0))
		}
		vs := make([]interface{}, argc)
		for i, pr := range params {
			if !pr.isValue {
				panic(tg.NewIllegalArgumentType(cn+`[]`, i, `literal value`, pr.typ))
			}
			vs[i] = pr.value
		}
		return NewLiteralType(vs...)
	case `Enum`:
		if argc == 0 {
			panic(tg.NewIllegalArgumentCount(cn+`[]`, `at least 1`, 0))
		}
		vs := make([]interface{}, argc)
		for i, pr := range params {
			s, ok := pr.value.(string)
			if !pr.isValue || !ok {
				panic(tg.NewIllegalArgumentType(cn+`[]`, i, `String`, pr.typ))
			}
			vs[i] = s
		}
		return NewLiteralType(vs...)
	case `Struct`:
		total := false
		switch argc {
		case 1:
		case 2:
			b, ok := params[1].value.(bool)
			if !params[1].isValue || !ok {
				panic(tg.NewIllegalArgumentType(cn+`[]`, 1, `Boolean`, params[1].typ))
			}
			total = b
		default:
			panic(tg.NewIllegalArgumentCount(cn+`[]`, `1 - 2`, argc))
		}
		if params[0].schema == nil {
			panic(tg.NewIllegalArgument(cn+`[]`, 0, `expected a schema, i.e. {key => Type, ...}`))
		}
		return NewStructType(params[0].schema, total)
	case `Callable`:
		switch argc {
		case 0:
			return DefaultCallableType()
		case 1, 2:
			ts := typeParams(cn, params)
			pt, ok := ts[0].(*TupleType)
			if !ok {
				panic(tg.NewIllegalArgumentType(cn+`[]`, 0, `Tuple`, ts[0]))
			}
			var ret tg.Type
			if argc == 2 {
				ret = ts[1]
			}
			return NewCallableType(pt, ret)
		}
		panic(tg.NewIllegalArgumentCount(cn+`[]`, `0 - 2`, argc))
	case `Pattern`:
		if argc == 1 {
			if params[0].isValue {
				if s, ok := params[0].value.(string); ok {
					return NewPatternType2(s)
				}
			} else if pt, ok := params[0].typ.(*PatternType); ok {
				return pt
			}
		}
		panic(tg.NewIllegalArgument(cn+`[]`, 0, `expected a regexp or a pattern string`))
	case `SemVer`:
		if argc == 1 && params[0].isValue {
			if s, ok := params[0].value.(string); ok {
				return NewSemVerType2(s)
			}
		}
		panic(tg.NewIllegalArgument(cn+`[]`, 0, `expected a version range string`))
	case `Protocol`:
		if argc < 2 {
			panic(tg.NewIllegalArgumentCount(cn+`[]`, `at least 2`, argc))
		}
		ss := make([]string, argc)
		for i, pr := range params {
			s, ok := pr.value.(string)
			if !pr.isValue || !ok {
				panic(tg.NewIllegalArgumentType(cn+`[]`, i, `String`, pr.typ))
			}
			ss[i] = s
		}
		return NewProtocolType(ss[0], ss[1:]...)
	case `Class`, `Validator`:
		panic(tg.NewIllegalArgument(cn+`[]`, 0, cn+` is not constructible from a type expression`))
	default:
		panic(tg.NewIllegalArgument(cn+`[]`, 0, `type '`+cn+`' does not accept parameters`))
	}
}
