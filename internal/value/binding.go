package value

import "fmt"

// Binding is a lexical scope: an ordered set of local variables plus an
// optional enclosing scope.
//
// Method bodies start a fresh Binding with no parent, so they cannot see
// the caller's locals. Blocks start a child Binding and can read and write
// their parent's variables, while their own locals disappear when the
// block ends.
type Binding struct {
	parent *Binding
	names  []string
	vals   map[string]any
}

// NewBinding creates a scope enclosed by parent (nil for a top-level or
// method scope).
func NewBinding(parent *Binding) *Binding {
	return &Binding{parent: parent, vals: map[string]any{}}
}

// Declare creates or overwrites a local in this scope, shadowing any
// variable of the same name in enclosing scopes.
func (b *Binding) Declare(name string, v any) {
	if _, ok := b.vals[name]; !ok {
		b.names = append(b.names, name)
	}
	b.vals[name] = v
}

// Assign updates the nearest existing variable with this name, declaring
// it locally when no enclosing scope has it.
func (b *Binding) Assign(name string, v any) {
	for s := b; s != nil; s = s.parent {
		if _, ok := s.vals[name]; ok {
			s.vals[name] = v
			return
		}
	}
	b.Declare(name, v)
}

// Lookup returns the value of the named variable, searching enclosing
// scopes. A missing variable is a NameError.
func (b *Binding) Lookup(name string) (any, error) {
	for s := b; s != nil; s = s.parent {
		if v, ok := s.vals[name]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("undefined local variable or method `%s'", name)
}

// LocalVariables returns the names visible from this scope as symbols,
// innermost scope first, each scope in declaration order.
func (b *Binding) LocalVariables() Array {
	var out Array
	seen := map[string]bool{}
	for s := b; s != nil; s = s.parent {
		for _, n := range s.names {
			if !seen[n] {
				seen[n] = true
				out = append(out, Symbol(n))
			}
		}
	}
	return out
}
