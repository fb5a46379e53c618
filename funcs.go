package symcalc

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Func describes how the parser treats a function name.
type Func interface {
	// CanCall returns whether the function can be called with n arguments.
	// This controls how the expression parser handles instances of this
	// function:
	//
	// 	1.	If a bracketed list of n > 0 expressions follows a function, the
	//		parser treats it as an argument list if CanCall(n). If n is 1 and
	//		only CanCall(0) holds, the list is multiplied instead: pi(x) is
	//		pi*x. Otherwise the call is an error.
	//
	// 	2.	If a bare term follows a function and CanCall(1), the term is the
	//		argument: "exp x" is "exp(x)". If only CanCall(0) holds, the term
	//		is multiplied.
	CanCall(n int) bool
}

type fixed int

func (f fixed) CanCall(n int) bool {
	return n == int(f)
}

// Fixed returns a Func taking exactly n arguments. Calls parse to operation
// nodes named after the function.
func Fixed(n int) Func {
	return fixed(n)
}

type constant float64

func (constant) CanCall(n int) bool {
	return n == 0
}

// Constant returns a niladic Func which the parser replaces with a number.
func Constant(v float64) Func {
	return constant(v)
}

// bigconst computes a constant with 64 bits of precision and rounds it to the
// nearest float64. For pi and e this gives exactly math.Pi and math.E.
func bigconst(f func(out *big.Float) *big.Float) Func {
	v, _ := f(new(big.Float).SetPrec(64)).Float64()
	return constant(v)
}

var globalfuncs = map[string]Func{
	"negate":   fixed(1),
	"sin":      fixed(1),
	"cos":      fixed(1),
	"abs":      fixed(1),
	"exp":      fixed(1),
	"sqrt":     fixed(1),
	"simplify": fixed(1),
	"toDouble": fixed(1),

	// plot(expr, var, min, max, step) is a session command.
	"plot": fixed(5),

	// constants
	"pi": bigconst(bigfloat.Pi),
	"e": bigconst(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	}),
}

// DefaultFuncs returns a copy of the functions the parser recognizes by
// default.
func DefaultFuncs() map[string]Func {
	m := make(map[string]Func, len(globalfuncs))
	for k, v := range globalfuncs {
		m[k] = v
	}
	return m
}
