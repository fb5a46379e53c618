package symcalc

// Simplify rewrites an expression by folding every subtree which is not an
// expression in the sense of IsExpression into a number, substituting bound
// variables with their simplified bindings, and leaving unbound variables in
// place. The result is a new tree; n is never modified.
//
// If n is itself an application of the simplify operator, its argument is
// simplified.
func Simplify(env Env, n *Node) (*Node, error) {
	w := walker{env: env}
	if n.kind == KindOp && n.name == "simplify" {
		if _, err := lookupop(n); err != nil {
			return nil, err
		}
		n = n.args[0]
	}
	return w.simplify(n)
}

func (w *walker) simplify(n *Node) (*Node, error) {
	switch n.kind {
	case KindNum:
		return n, nil
	case KindVar:
		v, ok, err := w.enter(n.name)
		if err != nil {
			return nil, err
		}
		if !ok {
			return n, nil
		}
		r, err := w.simplify(v)
		w.leave()
		return r, err
	case KindOp:
		e, err := w.isexpr(n)
		if err != nil {
			return nil, err
		}
		if !e {
			v, err := w.eval(n)
			if err != nil {
				return nil, err
			}
			return Num(v), nil
		}
		args := make([]*Node, len(n.args))
		for i, a := range n.args {
			args[i], err = w.simplify(a)
			if err != nil {
				return nil, err
			}
		}
		return &Node{kind: KindOp, name: n.name, args: args}, nil
	default:
		panic("symcalc: invalid AST node " + n.kind.String())
	}
}
