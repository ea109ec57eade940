package env

import (
	"errors"
	"sort"

	"github.com/chidiwilliams/lm/ast"
)

// ErrUndefined is returned when retrieving an undefined variable
var ErrUndefined = errors.New("undefined variable")

// Environment holds the variable bindings of a program.
// There is no block scoping, so a single Environment
// lives for the whole run.
type Environment struct {
	values map[string]ast.Value
}

// New returns a new empty environment
func New() *Environment {
	return &Environment{values: make(map[string]ast.Value)}
}

// Define binds name to value, replacing any previous binding
func (e *Environment) Define(name string, value ast.Value) {
	e.values[name] = value
}

// Has returns true if a binding with the given name exists
func (e *Environment) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Get returns the value bound to name. If there is
// no such binding, it returns an ErrUndefined.
func (e *Environment) Get(name string) (ast.Value, error) {
	if val, ok := e.values[name]; ok {
		return val, nil
	}
	return nil, ErrUndefined
}

// Names returns the bound names in sorted order
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Environment) Len() int {
	return len(e.values)
}
