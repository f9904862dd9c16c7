package loader_test

import (
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyraproj/typeguard/loader"
	"github.com/lyraproj/typeguard/tg"
	"github.com/lyraproj/typeguard/types"
)

func TestRegistry(t *testing.T) {
	r := loader.NewRegistry(nil)
	require.NoError(t, r.RegisterString(`Name`, `String`))

	nt, ok := r.Lookup(`Name`)
	require.True(t, ok)
	assert.True(t, types.IsInstance(nt, `Bob`))

	assert.Error(t, r.RegisterString(`Name`, `Integer`), `redeclaration must fail`)
	assert.Error(t, r.Register(`Integer`, types.DefaultStringType()), `core types must not be shadowed`)
	assert.Equal(t, []string{`Name`}, r.Names())
}

func TestRegistryNesting(t *testing.T) {
	parent := loader.NewRegistry(nil)
	require.NoError(t, parent.RegisterString(`Name`, `String`))

	child := loader.NewRegistry(parent)
	require.NoError(t, child.RegisterString(`Team`, `List[Name]`))
	require.NoError(t, child.ResolveAll())

	team, ok := child.Lookup(`Team`)
	require.True(t, ok)
	assert.True(t, types.IsInstance(team, []string{`Ann`, `Bob`}))

	_, ok = parent.Lookup(`Team`)
	assert.False(t, ok, `child declarations must not leak into the parent`)
}

func TestFromYaml(t *testing.T) {
	reg, err := loader.FromYaml([]byte(`
types:
  Name: String
  Person: Struct[{name => Name, Optional[friends] => List[Person]}]
`), nil)
	require.NoError(t, err)

	person, ok := reg.Lookup(`Person`)
	require.True(t, ok)

	assert.True(t, types.IsInstance(person, map[string]interface{}{
		`name`: `Alice`,
		`friends`: []interface{}{
			map[string]interface{}{`name`: `Bob`},
		},
	}))
	assert.False(t, types.IsInstance(person, map[string]interface{}{
		`name`: `Alice`,
		`friends`: []interface{}{
			map[string]interface{}{`name`: 42},
		},
	}))
}

func TestFromYamlDanglingReference(t *testing.T) {
	_, err := loader.FromYaml([]byte("types:\n  Broken: NoSuchType\n"), nil)
	require.Error(t, err)
	ri, ok := err.(issue.Reported)
	require.True(t, ok)
	assert.Equal(t, issue.Code(tg.UndefinedType), ri.Code())
}

func TestFromYamlBadDocument(t *testing.T) {
	_, err := loader.FromYaml([]byte("types:\n  - one\n  - two\n"), nil)
	require.Error(t, err)
	ri, ok := err.(issue.Reported)
	require.True(t, ok)
	assert.Equal(t, issue.Code(tg.ParseError), ri.Code())
}

func TestFromYamlBadExpression(t *testing.T) {
	_, err := loader.FromYaml([]byte("types:\n  Broken: 'List['\n"), nil)
	require.Error(t, err)
	ri, ok := err.(issue.Reported)
	require.True(t, ok)
	assert.Equal(t, issue.Code(tg.ParseError), ri.Code())
}
