package symcalc

import (
	"io"
	"strings"
)

// Evaluate reduces an expression to a number under env. Variables are
// replaced by the evaluation of their bindings. Division by zero follows
// floating-point semantics rather than returning an error. toDouble(x)
// evaluates to the value of x, but simplify has no value and is an
// *OperationError wherever it appears.
func Evaluate(env Env, n *Node) (float64, error) {
	w := walker{env: env}
	return w.eval(n)
}

// eval computes the value of a node.
func (w *walker) eval(n *Node) (float64, error) {
	switch n.kind {
	case KindNum:
		return n.num, nil
	case KindVar:
		v, ok, err := w.enter(n.name)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		r, err := w.eval(v)
		w.leave()
		return r, err
	case KindOp:
		def, err := lookupop(n)
		if err != nil {
			return 0, err
		}
		switch {
		case def.binary != nil:
			x, err := w.eval(n.args[0])
			if err != nil {
				return 0, err
			}
			y, err := w.eval(n.args[1])
			if err != nil {
				return 0, err
			}
			return def.binary(x, y), nil
		case def.unary != nil:
			x, err := w.eval(n.args[0])
			if err != nil {
				return 0, err
			}
			return def.unary(x), nil
		case n.name == "toDouble":
			// Fold the argument first so that parts independent of unbound
			// variables resolve before any unbound one is reported.
			s, err := w.simplify(n.args[0])
			if err != nil {
				return 0, err
			}
			return w.eval(s)
		default:
			// simplify is a command with no numeric value.
			return 0, &OperationError{Op: n.name}
		}
	default:
		panic("symcalc: invalid AST node " + n.kind.String())
	}
}

// Eval is a shortcut to parse an expression and evaluate it under env using
// the default functions. A nil env is treated as empty.
func Eval(src io.RuneScanner, env Env) (float64, error) {
	if env == nil {
		env = NewBindings()
	}
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return Evaluate(env, a)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, env Env) (float64, error) {
	return Eval(strings.NewReader(src), env)
}
