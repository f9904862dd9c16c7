package tg

import (
	"fmt"

	"github.com/lyraproj/issue/issue"
)

// Error creates a Reported error for the given issue code
func Error(code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SEVERITY_ERROR, args, nil)
}

// NewIllegalArgument is raised by type constructors and the expression
// parser when a parameter value is unacceptable for a named type
func NewIllegalArgument(typeName string, index int, message string) issue.Reported {
	return Error(IllegalArgument, issue.H{`type`: typeName, `index`: index, `message`: message})
}

func NewIllegalArgumentType(typeName string, index int, expected string, actual interface{}) issue.Reported {
	return Error(IllegalArgumentType, issue.H{
		`type`: typeName, `index`: index, `expected`: expected, `actual`: fmt.Sprintf(`%v`, actual)})
}

func NewIllegalArgumentCount(typeName string, expected string, actual int) issue.Reported {
	return Error(IllegalArgumentCount, issue.H{`type`: typeName, `expected`: expected, `actual`: actual})
}
