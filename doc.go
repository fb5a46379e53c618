// Package symcalc implements a symbolic calculator over float64 expression
// trees.
//
// An expression is an immutable tree of numbers, variables, and named
// operations. Expressions can be evaluated to a number, simplified by folding
// every subtree that does not depend on an unbound variable, and sampled over
// a range of one variable to produce points for plotting. Variables are
// looked up in an Env, and a variable may be bound to another expression
// rather than to a number.
//
// The syntax accepted by Parse is intended to be similar to math you'd write
// in your notes. "2 x y" is a multiplication of three terms, "sin^2 x" is
// "(sin(x))^2", and "-2^2^n" is the same as "-(2^(2^n))".
//
// A Session ties an environment and a plot sink together and interprets the
// top-level commands simplify, toDouble, and plot, as well as assignments of
// the form "name := expr".
//
package symcalc
