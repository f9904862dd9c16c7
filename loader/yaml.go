package loader

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/typeguard/tg"
	"gopkg.in/yaml.v2"
)

// typesDoc is the YAML form of a batch of named type declarations:
//
//	types:
//	  Name: String
//	  Person:
//	    Struct[{name => Name, Optional[friends] => List[Person]}]
type typesDoc struct {
	Types yaml.MapSlice `yaml:"types"`
}

// FromYaml parses a YAML document of named type declarations into a new
// registry with the given parent. All declarations are registered before
// any of them is resolved, so the expressions may refer to each other in
// any order, and to themselves.
func FromYaml(content []byte, parent tg.Context) (*Registry, error) {
	doc := &typesDoc{}
	if err := yaml.Unmarshal(content, doc); err != nil {
		return nil, tg.Error(tg.ParseError, issue.H{`message`: err.Error()})
	}
	r := NewRegistry(parent)
	for _, item := range doc.Types {
		name, ok := item.Key.(string)
		if !ok {
			return nil, tg.Error(tg.ParseError, issue.H{`message`: `type name must be a string`})
		}
		expr, ok := item.Value.(string)
		if !ok {
			return nil, tg.Error(tg.ParseError, issue.H{`message`: `declaration of '` + name + `' must be a type expression string`})
		}
		if err := r.RegisterString(name, expr); err != nil {
			return nil, err
		}
	}
	if err := r.ResolveAll(); err != nil {
		return nil, err
	}
	return r, nil
}
