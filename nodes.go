package symcalc

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. A Node is a
// number, a variable, or an operation with an ordered list of arguments.
// Nodes are immutable once constructed, so trees may share subtrees freely.
type Node struct {
	kind Kind

	num  float64
	name string
	args []*Node
}

// Kind identifies the variant of a Node.
type Kind int8

const (
	KindNone Kind = iota

	KindNum // number literal
	KindVar // variable reference
	KindOp  // named operation with arguments
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNum:
		return "Num"
	case KindVar:
		return "Var"
	case KindOp:
		return "Op"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Num creates a number node.
func Num(v float64) *Node {
	return &Node{kind: KindNum, num: v}
}

// Var creates a variable reference node.
func Var(name string) *Node {
	return &Node{kind: KindVar, name: name}
}

// Op creates an operation node. The argument slice is copied, so the caller
// may reuse it.
func Op(name string, args ...*Node) *Node {
	return &Node{kind: KindOp, name: name, args: append([]*Node(nil), args...)}
}

// Kind returns the variant of n.
func (n *Node) Kind() Kind {
	return n.kind
}

// Value returns the value of a number node. It is zero for other kinds.
func (n *Node) Value() float64 {
	return n.num
}

// Name returns the variable name of a variable node or the operator name of
// an operation node.
func (n *Node) Name() string {
	return n.name
}

// Len returns the number of arguments of n.
func (n *Node) Len() int {
	return len(n.args)
}

// Arg returns the i'th argument of n.
func (n *Node) Arg(i int) *Node {
	return n.args[i]
}

// Args returns a copy of the arguments of n.
func (n *Node) Args() []*Node {
	return append([]*Node(nil), n.args...)
}

// Equal reports whether n and m are structurally identical. NaN numbers are
// equal to each other.
func (n *Node) Equal(m *Node) bool {
	if n == m {
		return true
	}
	if n == nil || m == nil || n.kind != m.kind {
		return false
	}
	switch n.kind {
	case KindNum:
		return n.num == m.num || math.IsNaN(n.num) && math.IsNaN(m.num)
	case KindVar:
		return n.name == m.name
	case KindOp:
		if n.name != m.name || len(n.args) != len(m.args) {
			return false
		}
		for i, a := range n.args {
			if !a.Equal(m.args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Vars returns the sorted names of the variables n refers to.
func (n *Node) Vars() []string {
	seen := make(map[string]bool)
	var names []string
	n.walk(func(m *Node) {
		if m.kind == KindVar && !seen[m.name] {
			seen[m.name] = true
			names = append(names, m.name)
		}
	})
	sort.Strings(names)
	return names
}

// walk calls f on each node of the tree in preorder.
func (n *Node) walk(f func(*Node)) {
	f(n)
	for _, a := range n.args {
		a.walk(f)
	}
}

// String formats n in infix notation, alternating round and square brackets
// to group each operation.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var b strings.Builder
	n.fmt(&b, false, true)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square, top bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	switch n.kind {
	case KindNone:
		// Invalid nodes use invalid characters.
		b.WriteString("$$")
	case KindNum:
		s := fmtnum(n.num)
		if s[0] == '-' && !top {
			b.WriteByte(l)
			b.WriteString(s)
			b.WriteByte(r)
			return
		}
		b.WriteString(s)
	case KindVar:
		b.WriteString(n.name)
	case KindOp:
		if len(n.args) == 2 && isinfix(n.name) {
			if !top {
				b.WriteByte(l)
			}
			n.args[0].fmt(b, !square, false)
			b.WriteByte(' ')
			b.WriteString(n.name)
			b.WriteByte(' ')
			n.args[1].fmt(b, !square, false)
			if !top {
				b.WriteByte(r)
			}
			return
		}
		if n.name == "negate" && len(n.args) == 1 {
			if !top {
				b.WriteByte(l)
			}
			b.WriteByte('-')
			n.args[0].fmt(b, !square, false)
			if !top {
				b.WriteByte(r)
			}
			return
		}
		b.WriteString(n.name)
		b.WriteByte('(')
		for i, a := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b, false, true)
		}
		b.WriteByte(')')
	default:
		panic("symcalc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func isinfix(name string) bool {
	switch name {
	case "+", "-", "*", "/", "^":
		return true
	}
	return false
}

func fmtnum(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
