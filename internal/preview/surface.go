// Package preview keeps a rendered accent palette in step with user controls.
//
// The same Session drives the server's initial paint (through a StyleSheet)
// and the browser's live preview (through a DOM surface compiled to wasm).
package preview

import (
	"strings"

	"github.com/jmylchreest/accentd/pkg/accent"
)

// Surface is anything that holds CSS custom properties.
type Surface interface {
	// Property returns the current value of name, or "" if unset.
	Property(name string) string
	// SetProperty assigns value to name.
	SetProperty(name, value string)
}

// Remover is implemented by surfaces that can drop a property entirely.
type Remover interface {
	RemoveProperty(name string)
}

// StyleSheet is an in-memory Surface that renders to CSS text.
// Declarations keep first-write order; later writes replace the value in place.
type StyleSheet struct {
	selector string
	order    []string
	values   map[string]string
}

// NewStyleSheet returns an empty sheet for selector (":root" when empty).
func NewStyleSheet(selector string) *StyleSheet {
	if selector == "" {
		selector = ":root"
	}
	return &StyleSheet{
		selector: selector,
		values:   make(map[string]string),
	}
}

// Property implements Surface.
func (s *StyleSheet) Property(name string) string {
	return s.values[name]
}

// SetProperty implements Surface.
func (s *StyleSheet) SetProperty(name, value string) {
	if _, ok := s.values[name]; !ok {
		s.order = append(s.order, name)
	}
	s.values[name] = value
}

// RemoveProperty implements Remover.
func (s *StyleSheet) RemoveProperty(name string) {
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Variables returns the declarations in order.
func (s *StyleSheet) Variables() accent.VariableSet {
	vs := make(accent.VariableSet, 0, len(s.order))
	for _, name := range s.order {
		vs = append(vs, accent.Variable{Name: name, Value: s.values[name]})
	}
	return vs
}

// Only returns the declarations whose names start with prefix.
func (s *StyleSheet) Only(prefix string) accent.VariableSet {
	var vs accent.VariableSet
	for _, v := range s.Variables() {
		if strings.HasPrefix(v.Name, prefix) {
			vs = append(vs, v)
		}
	}
	return vs
}

// CSS renders the sheet as a single rule. An empty sheet renders "".
func (s *StyleSheet) CSS() string {
	return s.Variables().CSS(s.selector)
}
