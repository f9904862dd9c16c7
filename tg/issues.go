package tg

import "github.com/lyraproj/issue/issue"

const (
	TypeMismatch         = `TG_TYPE_MISMATCH`
	ValidationError      = `TG_VALIDATION_ERROR`
	UndefinedType        = `TG_UNDEFINED_TYPE`
	UnresolvedType       = `TG_UNRESOLVED_TYPE`
	RecursionLimit       = `TG_RECURSION_LIMIT`
	ParseError           = `TG_PARSE_ERROR`
	IllegalArgument      = `TG_ILLEGAL_ARGUMENT`
	IllegalArgumentType  = `TG_ILLEGAL_ARGUMENT_TYPE`
	IllegalArgumentCount = `TG_ILLEGAL_ARGUMENT_COUNT`
)

func init() {
	issue.Hard(TypeMismatch, `%{name} expected %{expected}, got %{actual}`)

	issue.Hard(ValidationError, `validator '%{validator}' rejected %{name}: %{message}`)

	issue.Hard(UndefinedType, `unknown type '%{name}', expected one of %{supported}`)

	issue.Hard(UnresolvedType, `reference to unresolved type '%{name}'`)

	issue.Hard(RecursionLimit, `max recursion depth %{max} exceeded when checking %{type}`)

	issue.Hard(ParseError, `%{message}`)

	issue.Hard(IllegalArgument, `illegal argument for %{type}, parameter %{index}: %{message}`)

	issue.Hard(IllegalArgumentType, `illegal argument for %{type}, parameter %{index}: expected %{expected}, got %{actual}`)

	issue.Hard(IllegalArgumentCount, `illegal number of parameters for %{type}: expected %{expected}, got %{actual}`)
}
