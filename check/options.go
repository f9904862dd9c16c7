package check

import "github.com/lyraproj/typeguard/tg"

// Option adjusts a single CheckType call
type Option func(o *options)

type options struct {
	name     string
	total    *bool
	eager    bool
	maxDepth int
	ctx      tg.Context
}

func makeOptions(opts []Option) *options {
	o := &options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Named sets the argument name that mismatch reports refer to
func Named(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// Total overrides the extra key policy of a record type for this call.
// When true, keys beyond the declared schema are rejected.
func Total(total bool) Option {
	return func(o *options) {
		t := total
		o.total = &t
	}
}

// Eager requests that the element type of an iterator is verified against
// replayable values instead of being accepted lazily. Eager verification
// applies to the checked type itself and, when a mismatch is being
// described, to every iterator the describer walks through; an iterator
// nested inside a container that otherwise conforms stays lazy.
func Eager() Option {
	return func(o *options) {
		o.eager = true
	}
}

// MaxDepth replaces the default recursion ceiling
func MaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// In supplies the ancestry context that named type references resolve
// through
func In(c tg.Context) Option {
	return func(o *options) {
		o.ctx = c
	}
}
