package types

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/lyraproj/typeguard/tg"
)

// PatternType matches strings against a regular expression. The default
// has no expression and accepts any string.
type PatternType struct {
	rx *regexp.Regexp
}

var patternTypeDefault = &PatternType{}

func DefaultPatternType() *PatternType {
	return patternTypeDefault
}

func NewPatternType(rx *regexp.Regexp) *PatternType {
	if rx == nil {
		return DefaultPatternType()
	}
	return &PatternType{rx}
}

func NewPatternType2(pattern string) *PatternType {
	rx, err := regexp.Compile(pattern)
	if err != nil {
		panic(tg.NewIllegalArgument(`Pattern[]`, 0, err.Error()))
	}
	return NewPatternType(rx)
}

func (t *PatternType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
}

func (t *PatternType) Equals(o interface{}, g *tg.Guard) bool {
	ot, ok := o.(*PatternType)
	if !ok {
		return false
	}
	if t.rx == nil || ot.rx == nil {
		return t.rx == ot.rx
	}
	return t.rx.String() == ot.rx.String()
}

func (t *PatternType) IsInstance(o interface{}, g *tg.Guard) bool {
	if o == nil {
		return false
	}
	rv := reflect.ValueOf(o)
	if rv.Kind() != reflect.String {
		return false
	}
	return t.rx == nil || t.rx.MatchString(rv.String())
}

func (t *PatternType) Name() string {
	return `Pattern`
}

func (t *PatternType) Regexp() *regexp.Regexp {
	return t.rx
}

func (t *PatternType) String() string {
	if t.rx == nil {
		return t.Name()
	}
	return fmt.Sprintf(`Pattern[/%s/]`, t.rx.String())
}
