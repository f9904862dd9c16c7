package tg

import (
	"testing"

	"github.com/lyraproj/issue/issue"
)

type leafType struct{}

func (leafType) Name() string                        { return `Leaf` }
func (leafType) IsInstance(interface{}, *Guard) bool { return true }
func (leafType) Equals(o interface{}, g *Guard) bool { _, ok := o.(leafType); return ok }
func (leafType) Accept(v Visitor, g *Guard)          {}
func (leafType) String() string                      { return `Leaf` }

func TestGuardSeen(t *testing.T) {
	type node struct{ next *node }
	a := &node{}
	b := &node{}
	g := NewGuard(0)
	if g.Seen(a, b) {
		t.Error(`first visit reported as seen`)
	}
	if !g.Seen(a, b) {
		t.Error(`second visit not reported as seen`)
	}
	if g.Seen(b, a) {
		t.Error(`reversed pair reported as seen`)
	}
}

func TestGuardDepth(t *testing.T) {
	g := NewGuard(2)
	g.Descend(leafType{})
	g.Ascend()
	g.Descend(leafType{})
	g.Descend(leafType{})
	defer func() {
		r := recover()
		ri, ok := r.(issue.Reported)
		if !ok {
			t.Fatalf(`expected a reported issue, got %v`, r)
		}
		if ri.Code() != issue.Code(RecursionLimit) {
			t.Errorf(`expected %s, got %s`, RecursionLimit, ri.Code())
		}
	}()
	g.Descend(leafType{})
	t.Error(`limit breach did not panic`)
}
