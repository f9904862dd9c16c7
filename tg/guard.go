package tg

import "github.com/lyraproj/issue/issue"

type visit struct {
	a interface{}
	b interface{}
}

// DefaultRecursionLimit bounds the descent depth of a guarded check when
// no explicit limit is given
const DefaultRecursionLimit = 512

// Guard helps tracking endless recursion. The check algorithm assumes that
// all checks in progress are true when it reencounters them. Visited
// entries are short lived and added to the guard for the duration of the
// check that needs them. The guard also counts nesting depth so that a
// self referential type graph checked against a value without a usable
// identity terminates with TG_RECURSION_LIMIT instead of looping.
type Guard struct {
	seen  map[visit]bool
	depth int
	limit int
}

// NewGuard returns an empty guard with the given depth limit. A limit of
// zero or less selects the DefaultRecursionLimit.
func NewGuard(limit int) *Guard {
	if limit <= 0 {
		limit = DefaultRecursionLimit
	}
	return &Guard{seen: make(map[visit]bool), limit: limit}
}

// Seen returns true when the a/b pair has been seen before, otherwise it
// registers the pair and returns false
func (g *Guard) Seen(a, b interface{}) bool {
	v := visit{a, b}
	if _, ok := g.seen[v]; ok {
		return true
	}
	g.seen[v] = true
	return false
}

// Descend counts one level of nesting and panics with TG_RECURSION_LIMIT
// when the limit is breached. Every Descend is balanced by an Ascend, so
// siblings do not accumulate.
func (g *Guard) Descend(t Type) {
	g.depth++
	if g.depth > g.limit {
		panic(Error(RecursionLimit, issue.H{`max`: g.limit, `type`: t.String()}))
	}
}

func (g *Guard) Ascend() {
	g.depth--
}
