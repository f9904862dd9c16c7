package types

import (
	"fmt"
	"reflect"

	"github.com/lyraproj/semver/semver"
	"github.com/lyraproj/typeguard/tg"
)

// SemVerType matches semantic version values and strings that parse to
// one. A non nil range additionally constrains the version.
type SemVerType struct {
	vRange semver.VersionRange
}

var semVerTypeDefault = &SemVerType{}

func DefaultSemVerType() *SemVerType {
	return semVerTypeDefault
}

func NewSemVerType(vr semver.VersionRange) *SemVerType {
	if vr == nil {
		return DefaultSemVerType()
	}
	return &SemVerType{vr}
}

func NewSemVerType2(rangeString string) *SemVerType {
	vr, err := semver.ParseVersionRange(rangeString)
	if err != nil {
		panic(tg.NewIllegalArgument(`SemVer[]`, 0, err.Error()))
	}
	return NewSemVerType(vr)
}

func (t *SemVerType) Accept(v tg.Visitor, g *tg.Guard) {
	v(t)
}

func (t *SemVerType) Equals(o interface{}, g *tg.Guard) bool {
	ot, ok := o.(*SemVerType)
	if !ok {
		return false
	}
	if t.vRange == nil || ot.vRange == nil {
		return t.vRange == nil && ot.vRange == nil
	}
	return t.vRange.Equals(ot.vRange)
}

func (t *SemVerType) IsInstance(o interface{}, g *tg.Guard) bool {
	if o == nil {
		return false
	}
	if v, ok := o.(semver.Version); ok {
		return t.vRange == nil || t.vRange.Includes(v)
	}
	if reflect.ValueOf(o).Kind() == reflect.String {
		v, err := semver.ParseVersion(reflect.ValueOf(o).String())
		if err != nil {
			return false
		}
		return t.vRange == nil || t.vRange.Includes(v)
	}
	return false
}

func (t *SemVerType) Name() string {
	return `SemVer`
}

func (t *SemVerType) Range() semver.VersionRange {
	return t.vRange
}

func (t *SemVerType) String() string {
	if t.vRange == nil {
		return t.Name()
	}
	return fmt.Sprintf(`SemVer['%s']`, t.vRange.String())
}
