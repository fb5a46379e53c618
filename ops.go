package symcalc

import "math"

// opdef describes an operator in the registry.
type opdef struct {
	// arity is the exact number of arguments the operator takes.
	arity int
	// unary and binary compute the operator. At most one is set. The
	// commands simplify and toDouble set neither; Simplify and Evaluate
	// handle them by name.
	unary  func(x float64) float64
	binary func(x, y float64) float64
	// symbolic operators are never folded to constants by the simplifier,
	// even when all their arguments are constant.
	symbolic bool
}

var ops = map[string]opdef{
	"+": {arity: 2, binary: func(x, y float64) float64 { return x + y }},
	"-": {arity: 2, binary: func(x, y float64) float64 { return x - y }},
	"*": {arity: 2, binary: func(x, y float64) float64 { return x * y }},
	"/": {arity: 2, binary: func(x, y float64) float64 { return x / y }, symbolic: true},
	"^": {arity: 2, binary: math.Pow},

	"negate": {arity: 1, unary: func(x float64) float64 { return -x }},
	"sin":    {arity: 1, unary: math.Sin, symbolic: true},
	"cos":    {arity: 1, unary: math.Cos, symbolic: true},
	"abs":    {arity: 1, unary: math.Abs},
	"exp":    {arity: 1, unary: math.Exp},
	"sqrt":   {arity: 1, unary: math.Sqrt},

	"simplify": {arity: 1},
	"toDouble": {arity: 1},
}

// lookupop finds an operator and checks the number of arguments n has.
func lookupop(n *Node) (opdef, error) {
	def, ok := ops[n.name]
	if !ok {
		return opdef{}, &OperationError{Op: n.name}
	}
	if len(n.args) != def.arity {
		return opdef{}, &ArityError{Op: n.name, Len: len(n.args), Want: def.arity}
	}
	return def, nil
}

// Arity returns the number of arguments an operator takes and whether the
// operator exists.
func Arity(op string) (int, bool) {
	def, ok := ops[op]
	return def.arity, ok
}
