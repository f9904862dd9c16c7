// Package tg defines the public surface of the typeguard type system: the
// Type interface implemented by every type expression, the Guard used to
// break recursion over self-referential type graphs, and the Context used
// to resolve named type references.
package tg

type (
	// Visitor is a callback used when traversing a type expression graph
	Visitor func(t Type)

	// Type is a structural type expression. Implementations are safe for
	// concurrent use once fully resolved; Resolve mutates the receiver and
	// must complete before a type is shared between goroutines.
	Type interface {
		// Name returns the shape tag of this type, e.g. `Array` or `Struct`
		Name() string

		// IsInstance answers if the given value conforms to this type. The
		// guard tracks checks that are already in progress and may be nil.
		IsInstance(o interface{}, g *Guard) bool

		// Equals answers if other denotes the same type expression
		Equals(other interface{}, g *Guard) bool

		// Accept calls the visitor with this type and all types that it
		// parameterizes
		Accept(v Visitor, g *Guard)

		String() string
	}

	// ParameterizedType is implemented by composite types. Parameters
	// returns the ordered inner types that the composite parameterizes,
	// i.e. zero, one, or many elements.
	ParameterizedType interface {
		Type

		// Default returns the variant of this type that has no parameters
		Default() Type

		Parameters() []Type
	}

	// ResolvableType is implemented by types that contain, or are, named
	// references that must be looked up in a Context before use
	ResolvableType interface {
		Type

		Resolve(c Context) Type
	}

	// Context resolves a type name into a type. Implementations typically
	// chain to a parent context, forming the ancestry that makes
	// self-referential record declarations possible.
	Context interface {
		Lookup(name string) (Type, bool)
	}
)
