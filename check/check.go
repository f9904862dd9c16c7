// Package check is the entry point for runtime type validation. It
// dispatches a value against the shape of a type expression and converts
// a failed comparison into a reported error that names the offending part
// of the value.
package check

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/typeguard/tg"
	"github.com/lyraproj/typeguard/types"
)

const (
	// DefaultCacheCapacity is the number of shape classifications that a
	// checker retains before evicting the least recently used one
	DefaultCacheCapacity = 1024

	// DefaultMaxDepth is the recursion ceiling that a check applies to self
	// referential type graphs, both when comparing and when describing a
	// mismatch
	DefaultMaxDepth = tg.DefaultRecursionLimit
)

// Checker validates runtime values against type expressions. Each checker
// owns a bounded cache of shape classifications. A Checker is safe for
// concurrent use.
type Checker struct {
	cache *typeCache
}

var defaultChecker = NewChecker(DefaultCacheCapacity)

func NewChecker(cacheCapacity int) *Checker {
	return &Checker{cache: newTypeCache(cacheCapacity)}
}

// Default returns the checker that the package level entry points use
func Default() *Checker {
	return defaultChecker
}

// CheckType validates value against the given type using the default
// checker. It returns nil when the value conforms and an issue.Reported
// carrying the code TG_TYPE_MISMATCH or TG_VALIDATION_ERROR otherwise.
func CheckType(value interface{}, t tg.Type, opts ...Option) error {
	return defaultChecker.CheckType(value, t, opts...)
}

// CheckString parses the given type expression and validates value
// against the result using the default checker
func CheckString(value interface{}, expr string, opts ...Option) error {
	return defaultChecker.CheckString(value, expr, opts...)
}

// Is answers if value conforms to the given type. No error is produced.
func Is(value interface{}, t tg.Type) bool {
	return defaultChecker.Is(value, t)
}

func (c *Checker) CheckType(value interface{}, t tg.Type, opts ...Option) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ri, ok := r.(issue.Reported); ok {
				err = ri
				return
			}
			panic(r)
		}
	}()

	o := makeOptions(opts)
	if t == nil {
		return tg.Error(tg.IllegalArgument, issue.H{
			`type`: `CheckType`, `index`: 1, `message`: `type must not be nil`})
	}
	rt := c.classify(t, o)
	if types.GuardedIsInstance(rt, value, tg.NewGuard(o.maxDepth)) {
		it, ok := rt.(*types.IteratorType)
		if !ok || !o.eager || it.EachInstance(value, nil) {
			return nil
		}
	} else if vt, ok := rt.(*types.ValidatorType); ok {
		return tg.Error(tg.ValidationError, issue.H{
			`validator`: vt.ValidatorName(),
			`name`:      subject(o.name, nil),
			`message`:   `predicate returned false`})
	}
	return describe(value, rt, o)
}

func (c *Checker) CheckString(value interface{}, expr string, opts ...Option) error {
	t, err := types.Parse(expr)
	if err != nil {
		return err
	}
	return c.CheckType(value, t, opts...)
}

func (c *Checker) Is(value interface{}, t tg.Type) bool {
	return c.CheckType(value, t) == nil
}

// CacheLen returns the number of classifications the checker currently
// retains
func (c *Checker) CacheLen() int {
	return c.cache.len()
}

// PossibleTypes returns the shape tag of the given type together with the
// inner types it parameterizes, memoized in the checker's cache
func (c *Checker) PossibleTypes(t tg.Type) (string, []tg.Type) {
	return c.cache.possibleTypes(t)
}

// PossibleTypes classifies the given type using the default checker
func PossibleTypes(t tg.Type) (string, []tg.Type) {
	return defaultChecker.PossibleTypes(t)
}

// classify resolves named references against the ancestry context, runs
// the type through the possible types cache, rejects shapes outside the
// supported registry, and applies a per call total override to a record
// type
func (c *Checker) classify(t tg.Type, o *options) tg.Type {
	rt := types.Resolve(t, o.ctx)
	tagged := rt
	if ref, ok := rt.(*types.ReferenceType); ok {
		if target := ref.ResolvedType(); target != nil {
			tagged = target
		}
	}
	tag, _ := c.cache.possibleTypes(tagged)
	if !types.IsSupported(tag) {
		panic(tg.Error(tg.UndefinedType, issue.H{
			`name`: tag, `supported`: supportedList()}))
	}
	if o.total != nil {
		if st, ok := rt.(*types.StructType); ok {
			rt = st.WithTotal(*o.total)
		}
	}
	return rt
}
