package symcalc

import "sort"

// Env is a variable environment: a mapping from variable names to the
// expressions bound to them. A binding may be a number or any other
// expression, which is evaluated under the same environment when the
// variable is used.
type Env interface {
	// Get returns the node bound to name, if any.
	Get(name string) (*Node, bool)
	// Put binds name to n, replacing any existing binding.
	Put(name string, n *Node)
	// Remove deletes the binding for name, if any.
	Remove(name string)
	// Contains reports whether name is bound.
	Contains(name string) bool
}

// Bindings is a map-backed Env. It is not safe to use a Bindings
// concurrently.
type Bindings struct {
	vars map[string]*Node
}

// NewBindings creates an empty environment.
func NewBindings() *Bindings {
	return &Bindings{vars: make(map[string]*Node)}
}

func (b *Bindings) Get(name string) (*Node, bool) {
	n, ok := b.vars[name]
	return n, ok
}

func (b *Bindings) Put(name string, n *Node) {
	if b.vars == nil {
		b.vars = make(map[string]*Node)
	}
	b.vars[name] = n
}

func (b *Bindings) Remove(name string) {
	delete(b.vars, name)
}

func (b *Bindings) Contains(name string) bool {
	_, ok := b.vars[name]
	return ok
}

// Len returns the number of bound variables.
func (b *Bindings) Len() int {
	return len(b.vars)
}

// Names returns the sorted names of the bound variables.
func (b *Bindings) Names() []string {
	names := make([]string, 0, len(b.vars))
	for k := range b.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Clone creates a copy of the environment. Since nodes are immutable, the
// copy shares bound expressions with b.
func (b *Bindings) Clone() *Bindings {
	c := &Bindings{vars: make(map[string]*Node, len(b.vars))}
	for k, v := range b.vars {
		c.vars[k] = v
	}
	return c
}

var _ Env = (*Bindings)(nil)

// walker carries the state of one traversal of an expression: the
// environment and the stack of variables currently being resolved, which
// detects cyclic bindings.
type walker struct {
	env   Env
	stack []string
}

// enter looks up the binding of a variable and pushes it onto the resolution
// stack. If the variable is bound and there is no error, the caller must call
// leave once it is done with the binding.
func (w *walker) enter(name string) (*Node, bool, error) {
	v, ok := w.env.Get(name)
	if !ok {
		return nil, false, nil
	}
	for i, s := range w.stack {
		if s == name {
			names := append(append(make([]string, 0, len(w.stack)-i+1), w.stack[i:]...), name)
			return nil, true, &CycleError{Names: names}
		}
	}
	w.stack = append(w.stack, name)
	return v, true, nil
}

// leave pops the innermost variable from the resolution stack.
func (w *walker) leave() {
	if len(w.stack) == 0 {
		panic("symcalc: leave with empty resolution stack")
	}
	w.stack = w.stack[:len(w.stack)-1]
}
