// Package loader maintains named type declarations. A registry is an
// ancestry context that named references resolve through, and registries
// nest, so a caller can shadow or extend an outer set of declarations
// without mutating it.
package loader

import (
	"sort"
	"sync"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/typeguard/tg"
	"github.com/lyraproj/typeguard/types"
)

// Registry is a named type store implementing tg.Context. Lookups that
// miss fall through to the parent. A Registry is safe for concurrent use.
type Registry struct {
	lock   sync.RWMutex
	parent tg.Context
	types  map[string]tg.Type
}

// NewRegistry creates a registry with the given parent context. A nil
// parent makes the core types the outermost ancestry.
func NewRegistry(parent tg.Context) *Registry {
	return &Registry{parent: parent, types: make(map[string]tg.Type, 16)}
}

// Lookup implements tg.Context
func (r *Registry) Lookup(name string) (tg.Type, bool) {
	r.lock.RLock()
	t, ok := r.types[name]
	r.lock.RUnlock()
	if !ok && r.parent != nil {
		return r.parent.Lookup(name)
	}
	return t, ok
}

// Names returns the sorted names declared in this registry, not
// including the parent
func (r *Registry) Names() []string {
	r.lock.RLock()
	names := make([]string, 0, len(r.types))
	for n := range r.types {
		names = append(names, n)
	}
	r.lock.RUnlock()
	sort.Strings(names)
	return names
}

// Register declares a named type. Redeclaring a name or shadowing a core
// type is an error.
func (r *Registry) Register(name string, t tg.Type) error {
	if name == `` || t == nil {
		return tg.Error(tg.IllegalArgument, issue.H{
			`type`: `Registry.Register`, `index`: 0, `message`: `name and type must be given`})
	}
	if _, ok := types.Core(name); ok {
		return tg.Error(tg.IllegalArgument, issue.H{
			`type`: `Registry.Register`, `index`: 0, `message`: `'` + name + `' shadows a core type`})
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.types[name]; ok {
		return tg.Error(tg.IllegalArgument, issue.H{
			`type`: `Registry.Register`, `index`: 0, `message`: `type '` + name + `' is already declared`})
	}
	r.types[name] = t
	return nil
}

// RegisterString parses the given type expression and declares it under
// the given name. The expression may refer to other declared names,
// including its own, since references resolve lazily.
func (r *Registry) RegisterString(name, expr string) error {
	t, err := types.Parse(expr)
	if err != nil {
		return err
	}
	return r.Register(name, t)
}

// ResolveAll resolves every declaration against this registry. Called
// once after a batch of declarations it surfaces dangling references
// before any value is checked.
func (r *Registry) ResolveAll() (err error) {
	defer func() {
		if rc := recover(); rc != nil {
			if ri, ok := rc.(issue.Reported); ok {
				err = ri
				return
			}
			panic(rc)
		}
	}()
	r.lock.RLock()
	ts := make([]tg.Type, 0, len(r.types))
	for _, t := range r.types {
		ts = append(ts, t)
	}
	r.lock.RUnlock()
	for _, t := range ts {
		types.Resolve(t, r)
	}
	return nil
}
